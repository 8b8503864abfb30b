package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

// manageServices is the per-section services view: list, CRUD modals,
// gallery uploads, and the drill-down into a service's items.
func (a *App) manageServices(ctx context.Context, sec catalog.Section) error {
	for {
		services, err := a.Catalog.Services(ctx, catalog.ServiceFilter{SectionID: sec.ID, All: true})
		if err != nil {
			a.report(nil, err)
			return nil
		}

		a.printf("%s", pageTitle(a.text("خدمات ", "Services of ")+sec.Title(a.locale())))
		query, err := a.askQuery()
		if err != nil {
			return err
		}
		visible := Filter(services, query, serviceSearch(a.locale()))
		for _, svc := range visible {
			line := svc.Title(a.locale())
			if svc.HasParent() {
				line = "  ↳ " + line
			}
			if svc.Unactive {
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
						huh.NewOption(a.text("إضافة خدمة", "Add service"), "create"),
						huh.NewOption(a.text("تعديل خدمة", "Edit service"), "edit"),
						huh.NewOption(a.text("حذف خدمة", "Delete service"), "delete"),
						huh.NewOption(a.text("إدارة الصور", "Manage gallery"), "images"),
						huh.NewOption(a.text("إدارة العناصر", "Manage items"), "items"),
						huh.NewOption(a.text("رجوع", "Back"), "back"),
					).
					Value(&action),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		if action == "back" || action == "" {
			return nil
		}
		if action == "create" {
			if err := a.createService(ctx, sec, services); err != nil {
				return err
			}
			continue
		}

		svc, err := a.pickService(visible)
		if err != nil {
			return err
		}
		if svc == nil {
			continue
		}
		switch action {
		case "edit":
			err = a.editService(ctx, sec, services, *svc)
		case "delete":
			err = a.deleteService(ctx, *svc)
		case "images":
			err = a.manageImages(ctx, *svc)
		case "items":
			err = a.manageItems(ctx, *svc)
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) pickService(services []catalog.Service) (*catalog.Service, error) {
	labels := make([]string, len(services))
	ids := make([]string, len(services))
	for i, svc := range services {
		labels[i] = svc.Title(a.locale())
		ids[i] = svc.ID
	}
	picked, err := a.pickOne(a.text("اختر خدمة", "Pick a service"), labels, ids)
	if err != nil || picked == "" {
		return nil, err
	}
	for i := range services {
		if services[i].ID == picked {
			return &services[i], nil
		}
	}
	return nil, nil
}

// serviceForm collects the payload fields. Only root services are offered
// as parents: a variant cannot parent another service.
func (a *App) serviceForm(payload *catalog.ServicePayload, siblings []catalog.Service, selfID string) error {
	parentOpts := []huh.Option[string]{huh.NewOption(a.text("بدون أصل", "No parent"), "")}
	for _, svc := range siblings {
		if svc.HasParent() || svc.ID == selfID {
			continue
		}
		parentOpts = append(parentOpts, huh.NewOption(svc.Title(a.locale()), svc.ID))
	}

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(a.text("العنوان بالعربية", "Arabic title")).Value(&payload.ArTitle),
			huh.NewInput().Title(a.text("العنوان بالإنجليزية", "English title")).Value(&payload.EnTitle),
			huh.NewInput().Title(a.text("العنوان الفرعي بالعربية", "Arabic subtitle")).Value(&payload.ArSubTitle),
			huh.NewInput().Title(a.text("العنوان الفرعي بالإنجليزية", "English subtitle")).Value(&payload.EnSubTitle),
			huh.NewText().Title(a.text("الوصف بالعربية", "Arabic description")).Value(&payload.ArDescription),
			huh.NewText().Title(a.text("الوصف بالإنجليزية", "English description")).Value(&payload.EnDescription),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title(a.text("الخدمة الأصل", "Parent service")).Options(parentOpts...).Value(&payload.ParentServiceID),
			huh.NewInput().Title(a.text("الترتيب", "Order")).Accessor(intAccessor{&payload.Order}),
			huh.NewConfirm().Title(a.text("معطل؟", "Inactive?")).Value(&payload.Unactive),
		),
	).Run(); err != nil {
		return err
	}

	var err error
	if payload.Thumbnail, err = a.askFileRef(a.text("الصورة المصغرة", "Thumbnail"), payload.Thumbnail); err != nil {
		return err
	}
	if payload.Image, err = a.askFileRef(a.text("الصورة", "Image"), payload.Image); err != nil {
		return err
	}
	if payload.Video, err = a.askFileRef(a.text("الفيديو", "Video"), payload.Video); err != nil {
		return err
	}
	if payload.Poster, err = a.askFileRef(a.text("صورة الفيديو", "Video poster"), payload.Poster); err != nil {
		return err
	}
	return nil
}

// checkServicePayload runs struct tags plus the file size and type limits.
func (a *App) checkServicePayload(p catalog.ServicePayload) bool {
	fields := a.Validate.Fields(p, a.locale())
	if len(fields) > 0 {
		a.showFieldErrors(fields)
		return false
	}
	return true
}

func (a *App) createService(ctx context.Context, sec catalog.Section, siblings []catalog.Service) error {
	state := &PageState{}
	state.OpenCreate()

	payload := catalog.ServicePayload{New: true, SectionID: sec.ID}
	for state.Mode() != ModeIdle {
		if err := a.serviceForm(&payload, siblings, ""); err != nil {
			return err
		}
		if !a.checkServicePayload(payload) {
			continue
		}
		if !state.BeginSubmit() {
			continue
		}
		env, err := a.Catalog.CreateService(ctx, payload)
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

func (a *App) editService(ctx context.Context, sec catalog.Section, siblings []catalog.Service, svc catalog.Service) error {
	state := &PageState{}
	state.OpenEdit(svc.ID)

	payload := catalog.ServicePayload{
		SectionID:       sec.ID,
		ArTitle:         svc.ArTitle,
		EnTitle:         svc.EnTitle,
		ArSubTitle:      svc.ArSubTitle,
		EnSubTitle:      svc.EnSubTitle,
		ArDescription:   svc.ArDescription,
		EnDescription:   svc.EnDescription,
		ParentServiceID: svc.ParentServiceID,
		Thumbnail:       catalog.FileRef{URL: svc.ThumbnailURL},
		Image:           catalog.FileRef{URL: svc.ImageURL},
		Video:           catalog.FileRef{URL: svc.VideoURL},
		Poster:          catalog.FileRef{URL: svc.PosterURL},
		Order:           svc.Order,
		Unactive:        svc.Unactive,
	}
	for state.Mode() != ModeIdle {
		if err := a.serviceForm(&payload, siblings, svc.ID); err != nil {
			return err
		}
		if !a.checkServicePayload(payload) {
			continue
		}
		if !state.BeginSubmit() {
			continue
		}
		env, err := a.Catalog.UpdateService(ctx, state.Target(), payload)
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

func (a *App) deleteService(ctx context.Context, svc catalog.Service) error {
	state := &PageState{}
	state.ConfirmDelete(svc.ID)

	confirmed, err := a.confirmDelete(svc.Title(a.locale()))
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

	env, err := a.Catalog.DeleteService(ctx, state.Target())
	if a.report(env, err) {
		state.Succeed()
	} else {
		state.Fail()
		state.Cancel()
	}
	return nil
}

// manageImages handles the service gallery: batch upload of new images and
// deletion of stored ones.
func (a *App) manageImages(ctx context.Context, svc catalog.Service) error {
	for _, img := range svc.Images {
		a.printf("  • %s", img.ImageURL)
	}

	var action string
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(a.text("الصور", "Gallery")).
				Options(
					huh.NewOption(a.text("رفع صور", "Upload images"), "upload"),
					huh.NewOption(a.text("حذف صورة", "Delete image"), "delete"),
					huh.NewOption(a.text("رجوع", "Back"), "back"),
				).
				Value(&action),
		),
	).Run(); err != nil {
		return err
	}

	switch action {
	case "upload":
		var raw string
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(a.text("مسارات الصور، مفصولة بفاصلة", "Image paths, comma separated")).
					Value(&raw),
			),
		).Run(); err != nil {
			return err
		}
		var paths []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		if len(paths) == 0 {
			return nil
		}
		for _, p := range paths {
			if err := a.Validate.Struct(struct {
				File catalog.FileRef `validate:"image"`
			}{File: catalog.FileRef{Path: p}}); err != nil {
				a.toastError(p + ": " + a.text("ملف صورة غير صالح", "not a valid image file"))
				return nil
			}
		}
		env, err := a.Catalog.AddServiceImages(ctx, svc.ID, paths)
		a.report(env, err)
	case "delete":
		labels := make([]string, len(svc.Images))
		ids := make([]string, len(svc.Images))
		for i, img := range svc.Images {
			labels[i] = img.ImageURL
			ids[i] = img.ID
		}
		picked, err := a.pickOne(a.text("اختر صورة", "Pick an image"), labels, ids)
		if err != nil || picked == "" {
			return err
		}
		confirmed, err := a.confirmDelete(a.text("الصورة", "the image"))
		if err != nil || !confirmed {
			return err
		}
		env, err := a.Catalog.DeleteImage(ctx, picked)
		a.report(env, err)
	}
	return nil
}
