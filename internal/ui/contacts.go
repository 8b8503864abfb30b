package ui

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

// RunContacts manages the phone contacts shown on the public site.
func (a *App) RunContacts(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	for {
		contacts, err := a.Catalog.Contacts(ctx)
		if err != nil {
			a.report(nil, err)
			return nil
		}

		a.printf("%s", pageTitle(a.text("جهات الاتصال", "Contacts")))
		query, err := a.askQuery()
		if err != nil {
			return err
		}
		visible := Filter(contacts, query, func(c catalog.Contact) []string {
			return []string{c.PhoneNumber}
		})
		for _, c := range visible {
			line := c.PhoneNumber
			if c.IsPrimary {
				line += " " + dim(a.text("(رئيسي)", "(primary)"))
			}
			if c.Unactive {
				line += " " + dim(a.text("(معطل)", "(inactive)"))
			}
			a.printf("  • %s", line)
		}

		var action string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(a.text("إجراء", "Action")).
					Options(
						huh.NewOption(a.text("إضافة جهة اتصال", "Add contact"), "create"),
						huh.NewOption(a.text("تعديل جهة اتصال", "Edit contact"), "edit"),
						huh.NewOption(a.text("حذف جهة اتصال", "Delete contact"), "delete"),
						huh.NewOption(a.text("رجوع", "Back"), "back"),
					).
					Value(&action),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		switch action {
		case "create":
			if err := a.writeContact(ctx, nil); err != nil {
				return err
			}
		case "edit":
			c, err := a.pickContact(visible)
			if err != nil {
				return err
			}
			if c == nil {
				continue
			}
			if err := a.writeContact(ctx, c); err != nil {
				return err
			}
		case "delete":
			c, err := a.pickContact(visible)
			if err != nil {
				return err
			}
			if c == nil {
				continue
			}
			confirmed, err := a.confirmDelete(c.PhoneNumber)
			if err != nil {
				return err
			}
			if confirmed {
				env, err := a.Catalog.DeleteContact(ctx, c.ID)
				a.report(env, err)
			}
		default:
			return nil
		}
	}
}

func (a *App) pickContact(contacts []catalog.Contact) (*catalog.Contact, error) {
	labels := make([]string, len(contacts))
	ids := make([]string, len(contacts))
	for i, c := range contacts {
		labels[i] = c.PhoneNumber
		ids[i] = c.ID
	}
	picked, err := a.pickOne(a.text("اختر جهة اتصال", "Pick a contact"), labels, ids)
	if err != nil || picked == "" {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == picked {
			return &contacts[i], nil
		}
	}
	return nil, nil
}

// writeContact covers both create (existing == nil) and edit.
func (a *App) writeContact(ctx context.Context, existing *catalog.Contact) error {
	state := &PageState{}
	payload := catalog.ContactPayload{New: existing == nil}
	if existing != nil {
		state.OpenEdit(existing.ID)
		payload.PhoneNumber = existing.PhoneNumber
		payload.Icon = catalog.FileRef{URL: existing.IconURL}
		payload.IsPrimary = existing.IsPrimary
		payload.Unactive = existing.Unactive
	} else {
		state.OpenCreate()
	}

	for state.Mode() != ModeIdle {
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title(a.text("رقم الهاتف", "Phone number")).Value(&payload.PhoneNumber),
				huh.NewConfirm().Title(a.text("رئيسي؟", "Primary?")).Value(&payload.IsPrimary),
				huh.NewConfirm().Title(a.text("معطل؟", "Inactive?")).Value(&payload.Unactive),
			),
		).Run(); err != nil {
			return err
		}
		var err error
		if payload.Icon, err = a.askFileRef(a.text("الأيقونة", "Icon"), payload.Icon); err != nil {
			return err
		}

		if fields := a.Validate.Fields(payload, a.locale()); len(fields) > 0 {
			a.showFieldErrors(fields)
			continue
		}
		if !state.BeginSubmit() {
			continue
		}

		var env *api.Envelope
		if existing == nil {
			env, err = a.Catalog.CreateContact(ctx, payload)
		} else {
			env, err = a.Catalog.UpdateContact(ctx, state.Target(), payload)
		}
		if a.report(env, err) {
			state.Succeed()
		} else {
			state.Fail()
			if !a.askRetry() {
				state.Cancel()
			}
		}
	}
	return nil
}
