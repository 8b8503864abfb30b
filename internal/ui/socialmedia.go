package ui

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

// RunSocialMedia manages the social links shown in the site footer.
func (a *App) RunSocialMedia(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	for {
		medias, err := a.Catalog.SocialMedias(ctx)
		if err != nil {
			a.report(nil, err)
			return nil
		}

		a.printf("%s", pageTitle(a.text("وسائل التواصل", "Social media")))
		query, err := a.askQuery()
		if err != nil {
			return err
		}
		visible := Filter(medias, query, func(m catalog.SocialMedia) []string {
			return []string{m.Name}
		})
		for _, m := range visible {
			line := m.Name
			if m.Unactive {
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
						huh.NewOption(a.text("إضافة وسيلة", "Add social media"), "create"),
						huh.NewOption(a.text("تعديل وسيلة", "Edit social media"), "edit"),
						huh.NewOption(a.text("حذف وسيلة", "Delete social media"), "delete"),
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
			if err := a.writeSocialMedia(ctx, nil); err != nil {
				return err
			}
		case "edit":
			m, err := a.pickSocialMedia(visible)
			if err != nil {
				return err
			}
			if m == nil {
				continue
			}
			if err := a.writeSocialMedia(ctx, m); err != nil {
				return err
			}
		case "delete":
			m, err := a.pickSocialMedia(visible)
			if err != nil {
				return err
			}
			if m == nil {
				continue
			}
			confirmed, err := a.confirmDelete(m.Name)
			if err != nil {
				return err
			}
			if confirmed {
				env, err := a.Catalog.DeleteSocialMedia(ctx, m.ID)
				a.report(env, err)
			}
		default:
			return nil
		}
	}
}

func (a *App) pickSocialMedia(medias []catalog.SocialMedia) (*catalog.SocialMedia, error) {
	labels := make([]string, len(medias))
	ids := make([]string, len(medias))
	for i, m := range medias {
		labels[i] = m.Name
		ids[i] = m.ID
	}
	picked, err := a.pickOne(a.text("اختر وسيلة", "Pick a social media"), labels, ids)
	if err != nil || picked == "" {
		return nil, err
	}
	for i := range medias {
		if medias[i].ID == picked {
			return &medias[i], nil
		}
	}
	return nil, nil
}

func (a *App) writeSocialMedia(ctx context.Context, existing *catalog.SocialMedia) error {
	state := &PageState{}
	payload := catalog.SocialMediaPayload{New: existing == nil}
	if existing != nil {
		state.OpenEdit(existing.ID)
		payload.Name = existing.Name
		payload.Icon = catalog.FileRef{URL: existing.IconURL}
		payload.DisplayOrder = existing.DisplayOrder
		payload.Unactive = existing.Unactive
	} else {
		state.OpenCreate()
	}

	for state.Mode() != ModeIdle {
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title(a.text("الاسم", "Name")).Value(&payload.Name),
				huh.NewInput().Title(a.text("ترتيب العرض", "Display order")).Accessor(intAccessor{&payload.DisplayOrder}),
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
			env, err = a.Catalog.CreateSocialMedia(ctx, payload)
		} else {
			env, err = a.Catalog.UpdateSocialMedia(ctx, state.Target(), payload)
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
