// Package ui is the interactive dashboard: one page per entity, each a loop
// of list, filter, and modal-style forms. Page flow is governed by a small
// state machine so a submit in flight can never be doubled or abandoned
// half-way.
package ui

// Mode is the page's current position in its flow.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCreating
	ModeEditing
	ModeConfirmingDelete
	ModeSubmitting
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	case ModeConfirmingDelete:
		return "confirmingDelete"
	case ModeSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// PageState tracks one page's modal flow. Transitions return false when the
// requested move is not legal from the current mode; callers treat that as
// "ignore the input".
type PageState struct {
	mode   Mode
	before Mode
	target string
}

func (s *PageState) Mode() Mode { return s.mode }

// Target is the id of the row an edit or delete flow is acting on.
func (s *PageState) Target() string { return s.target }

// OpenCreate opens the create modal. Only legal from idle.
func (s *PageState) OpenCreate() bool {
	if s.mode != ModeIdle {
		return false
	}
	s.mode = ModeCreating
	s.target = ""
	return true
}

// OpenEdit opens the edit modal for one row.
func (s *PageState) OpenEdit(id string) bool {
	if s.mode != ModeIdle || id == "" {
		return false
	}
	s.mode = ModeEditing
	s.target = id
	return true
}

// ConfirmDelete opens the delete confirmation for one row.
func (s *PageState) ConfirmDelete(id string) bool {
	if s.mode != ModeIdle || id == "" {
		return false
	}
	s.mode = ModeConfirmingDelete
	s.target = id
	return true
}

// BeginSubmit moves a modal into the submitting state. A second call while
// the first submit is in flight returns false, which is the double-submit
// guard.
func (s *PageState) BeginSubmit() bool {
	switch s.mode {
	case ModeCreating, ModeEditing, ModeConfirmingDelete:
		s.before = s.mode
		s.mode = ModeSubmitting
		return true
	default:
		return false
	}
}

// Succeed closes the modal after a successful submit.
func (s *PageState) Succeed() bool {
	if s.mode != ModeSubmitting {
		return false
	}
	s.mode = ModeIdle
	s.target = ""
	return true
}

// Fail returns to the modal the submit came from, inputs intact, so the
// user can correct and retry.
func (s *PageState) Fail() bool {
	if s.mode != ModeSubmitting {
		return false
	}
	s.mode = s.before
	return true
}

// Cancel dismisses an open modal. A submit in flight cannot be cancelled.
func (s *PageState) Cancel() bool {
	switch s.mode {
	case ModeCreating, ModeEditing, ModeConfirmingDelete:
		s.mode = ModeIdle
		s.target = ""
		return true
	default:
		return false
	}
}
