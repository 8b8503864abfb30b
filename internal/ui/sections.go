package ui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

// RunSections is the sections page: list with client-side filtering, the
// CRUD modals, and the drill-down into a section's services.
func (a *App) RunSections(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	for {
		sections, err := a.Catalog.Sections(ctx)
		if err != nil {
			a.report(nil, err)
			return nil
		}

		a.printf("%s", pageTitle(a.text("الأقسام", "Sections")))
		query, err := a.askQuery()
		if err != nil {
			return err
		}
		visible := Filter(sections, query, sectionSearch(a.locale()))
		for _, sec := range visible {
			line := sec.Title(a.locale())
			if sec.Unactive {
				line += " " + dim(a.text("(معطل)", "(inactive)"))
			}
			a.printf("  • %s %s", line, dim("("+strconv.Itoa(len(sec.Services))+")"))
		}

		var action string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(a.text("إجراء", "Action")).
					Options(
						huh.NewOption(a.text("إضافة قسم", "Add section"), "create"),
						huh.NewOption(a.text("تعديل قسم", "Edit section"), "edit"),
						huh.NewOption(a.text("حذف قسم", "Delete section"), "delete"),
						huh.NewOption(a.text("إدارة الخدمات", "Manage services"), "services"),
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
			if err := a.createSection(ctx); err != nil {
				return err
			}
		case "edit":
			sec, err := a.pickSection(visible)
			if err != nil {
				return err
			}
			if sec == nil {
				continue
			}
			if err := a.editSection(ctx, *sec); err != nil {
				return err
			}
		case "delete":
			sec, err := a.pickSection(visible)
			if err != nil {
				return err
			}
			if sec == nil {
				continue
			}
			if err := a.deleteSection(ctx, *sec); err != nil {
				return err
			}
		case "services":
			sec, err := a.pickSection(visible)
			if err != nil {
				return err
			}
			if sec == nil {
				continue
			}
			if err := a.manageServices(ctx, *sec); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (a *App) pickSection(sections []catalog.Section) (*catalog.Section, error) {
	labels := make([]string, len(sections))
	ids := make([]string, len(sections))
	for i, sec := range sections {
		labels[i] = sec.Title(a.locale())
		ids[i] = sec.ID
	}
	picked, err := a.pickOne(a.text("اختر قسماً", "Pick a section"), labels, ids)
	if err != nil || picked == "" {
		return nil, err
	}
	for i := range sections {
		if sections[i].ID == picked {
			return &sections[i], nil
		}
	}
	return nil, nil
}

func (a *App) sectionForm(ctx context.Context, payload *catalog.SectionPayload) error {
	pages, err := a.Catalog.Pages(ctx)
	if err != nil {
		return err
	}
	pageOpts := make([]huh.Option[string], 0, len(pages)+1)
	pageOpts = append(pageOpts, huh.NewOption(a.text("بدون صفحة", "No page"), ""))
	for _, p := range pages {
		pageOpts = append(pageOpts, huh.NewOption(catalog.Localized(a.locale(), p.ArTitle, p.EnTitle), p.Code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(a.text("العنوان بالعربية", "Arabic title")).Value(&payload.ArTitle),
			huh.NewInput().Title(a.text("العنوان بالإنجليزية", "English title")).Value(&payload.EnTitle),
			huh.NewText().Title(a.text("الوصف بالعربية", "Arabic description")).Value(&payload.ArDescription),
			huh.NewText().Title(a.text("الوصف بالإنجليزية", "English description")).Value(&payload.EnDescription),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title(a.text("الصفحة", "Page")).Options(pageOpts...).Value(&payload.PageCode),
			huh.NewInput().Title(a.text("الترتيب على الصفحة", "Order on page")).Accessor(intAccessor{&payload.OrderOnPage}),
			huh.NewConfirm().Title(a.text("معطل؟", "Inactive?")).Value(&payload.Unactive),
		),
	).Run()
}

func (a *App) createSection(ctx context.Context) error {
	state := &PageState{}
	state.OpenCreate()

	payload := catalog.SectionPayload{}
	for state.Mode() != ModeIdle {
		if err := a.sectionForm(ctx, &payload); err != nil {
			return err
		}
		if fields := a.Validate.Fields(payload, a.locale()); len(fields) > 0 {
			a.showFieldErrors(fields)
			continue
		}
		if !state.BeginSubmit() {
			continue
		}
		env, err := a.Catalog.CreateSection(ctx, payload)
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

func (a *App) editSection(ctx context.Context, sec catalog.Section) error {
	state := &PageState{}
	state.OpenEdit(sec.ID)

	payload := catalog.SectionPayload{
		ArTitle:       sec.ArTitle,
		EnTitle:       sec.EnTitle,
		ArDescription: sec.ArDescription,
		EnDescription: sec.EnDescription,
		PageCode:      sec.PageCode,
		OrderOnPage:   sec.OrderOnPage,
		Unactive:      sec.Unactive,
	}
	for state.Mode() != ModeIdle {
		if err := a.sectionForm(ctx, &payload); err != nil {
			return err
		}
		if fields := a.Validate.Fields(payload, a.locale()); len(fields) > 0 {
			a.showFieldErrors(fields)
			continue
		}
		if !state.BeginSubmit() {
			continue
		}
		env, err := a.Catalog.UpdateSection(ctx, state.Target(), payload)
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

func (a *App) deleteSection(ctx context.Context, sec catalog.Section) error {
	state := &PageState{}
	state.ConfirmDelete(sec.ID)

	confirmed, err := a.confirmDelete(sec.Title(a.locale()))
	if err != nil {
		return err
	}
	if !confirmed {
		state.Cancel()
		return nil
	}
	if !state.BeginSubmit() {
		return nil
	}

	env, err := a.Catalog.DeleteSection(ctx, state.Target())
	if a.report(env, err) {
		state.Succeed()
	} else {
		state.Fail()
		state.Cancel()
	}
	return nil
}

// askRetry asks whether to reopen the form after a failed submit.
func (a *App) askRetry() bool {
	var retry bool
	_ = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(a.text("إعادة المحاولة؟", "Try again?")).
				Value(&retry),
		),
	).Run()
	return retry
}
