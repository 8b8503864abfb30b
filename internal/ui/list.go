package ui

import (
	"github.com/charmbracelet/huh"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

func localizedEntry(locale, arTitle, enTitle, arSub, enSub string) string {
	line := catalog.Localized(locale, arTitle, enTitle)
	if sub := catalog.Localized(locale, arSub, enSub); sub != "" {
		line += " - " + sub
	}
	return line
}

// askQuery reads the page's filter text. Empty keeps every row.
func (a *App) askQuery() (string, error) {
	var query string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(a.text("بحث", "Search")).
				Placeholder(a.text("اتركه فارغاً لعرض الكل", "leave empty to show all")).
				Value(&query),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return query, nil
}

// pickOne renders a select over labelled ids; the empty id is the back
// option, always present.
func (a *App) pickOne(title string, labels []string, ids []string) (string, error) {
	opts := make([]huh.Option[string], 0, len(ids)+1)
	for i := range ids {
		opts = append(opts, huh.NewOption(labels[i], ids[i]))
	}
	opts = append(opts, huh.NewOption(a.text("رجوع", "Back"), ""))

	var picked string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&picked),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return picked, nil
}

// confirmDelete is the shared deletion modal.
func (a *App) confirmDelete(label string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(a.text("حذف ", "Delete ") + label + a.text("؟", "?")).
				Affirmative(a.text("حذف", "Delete")).
				Negative(a.text("إلغاء", "Cancel")).
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// askFileRef prompts for an upload field. A new local path wins over the
// existing URL; leaving both empty keeps the field unset.
func (a *App) askFileRef(title string, current catalog.FileRef) (catalog.FileRef, error) {
	path := current.Path
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(currentFilePlaceholder(a, current)).
				Value(&path),
		),
	)
	if err := form.Run(); err != nil {
		return current, err
	}
	if path != "" {
		return catalog.FileRef{Path: path}, nil
	}
	return catalog.FileRef{URL: current.URL}, nil
}

func currentFilePlaceholder(a *App, current catalog.FileRef) string {
	if current.URL != "" {
		return a.text("الحالي: ", "current: ") + current.URL
	}
	return a.text("مسار الملف", "file path")
}
