package ui

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/validation"
)

// RunItems opens the items view of one service directly, without going
// through the sections drill-down.
func (a *App) RunItems(ctx context.Context, serviceID string) error {
	if !a.requireAuth() {
		return nil
	}
	services, err := a.Catalog.Services(ctx, catalog.ServiceFilter{ID: serviceID, All: true})
	if err != nil {
		a.report(nil, err)
		return nil
	}
	if len(services) == 0 {
		a.toastError(a.text("الخدمة غير موجودة", "Service not found"))
		return nil
	}
	return a.manageItems(ctx, services[0])
}

// manageItems is the per-service items view. Item writes are two-step:
// the item first, then its new attributes; a failed second step leaves the
// item in place and is reported on its own.
func (a *App) manageItems(ctx context.Context, svc catalog.Service) error {
	for {
		items, err := a.Catalog.Items(ctx, svc.ID)
		if err != nil {
			a.report(nil, err)
			return nil
		}

		a.printf("%s", pageTitle(a.text("عناصر ", "Items of ")+svc.Title(a.locale())))
		query, err := a.askQuery()
		if err != nil {
			return err
		}
		visible := Filter(items, query, itemSearch(a.locale()))
		for _, item := range visible {
			line := item.Title(a.locale())
			if item.IsNewArrival {
				line += " " + dim(a.text("(وصل حديثاً)", "(new arrival)"))
			}
			if !item.IsAvailable {
				line += " " + dim(a.text("(غير متوفر)", "(unavailable)"))
			}
			a.printf("  • %s", line)
			for _, attr := range item.Attributes {
				a.printf("      %s: %s", attr.Name(a.locale()), attr.Display(a.locale()))
			}
		}

		var action string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(a.text("إجراء", "Action")).
					Options(
						huh.NewOption(a.text("إضافة عنصر", "Add item"), "create"),
						huh.NewOption(a.text("تعديل عنصر", "Edit item"), "edit"),
						huh.NewOption(a.text("حذف عنصر", "Delete item"), "delete"),
						huh.NewOption(a.text("حذف خاصية", "Delete attribute"), "deleteAttr"),
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
			if err := a.createItem(ctx, svc); err != nil {
				return err
			}
			continue
		}

		item, err := a.pickItem(visible)
		if err != nil {
			return err
		}
		if item == nil {
			continue
		}
		switch action {
		case "edit":
			err = a.editItem(ctx, svc, *item)
		case "delete":
			err = a.deleteItem(ctx, *item)
		case "deleteAttr":
			err = a.deleteAttribute(ctx, *item)
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) pickItem(items []catalog.ServiceItem) (*catalog.ServiceItem, error) {
	labels := make([]string, len(items))
	ids := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Title(a.locale())
		ids[i] = item.ID
	}
	picked, err := a.pickOne(a.text("اختر عنصراً", "Pick an item"), labels, ids)
	if err != nil || picked == "" {
		return nil, err
	}
	for i := range items {
		if items[i].ID == picked {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (a *App) itemForm(payload *catalog.ItemPayload) error {
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
			huh.NewInput().Title(a.text("السعر", "Price")).Accessor(floatAccessor{&payload.Price}),
			huh.NewInput().Title(a.text("الترتيب", "Order")).Accessor(intAccessor{&payload.Order}),
			huh.NewConfirm().Title(a.text("متوفر؟", "Available?")).Value(&payload.IsAvailable),
			huh.NewConfirm().Title(a.text("وصل حديثاً؟", "New arrival?")).Value(&payload.IsNewArrival),
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

// collectAttributes loops an attribute sub-form. Each attribute picks its
// variant up front; the value fields follow the choice.
func (a *App) collectAttributes() ([]catalog.Attribute, error) {
	var attrs []catalog.Attribute
	for {
		var more bool
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(a.text("إضافة خاصية؟", "Add an attribute?")).
					Value(&more),
			),
		).Run(); err != nil {
			return nil, err
		}
		if !more {
			return attrs, nil
		}

		attr := catalog.Attribute{Order: len(attrs)}
		var variant string
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title(a.text("الاسم بالعربية", "Arabic name")).Value(&attr.ArName),
				huh.NewInput().Title(a.text("الاسم بالإنجليزية", "English name")).Value(&attr.EnName),
				huh.NewSelect[string]().
					Title(a.text("نوع القيمة", "Value kind")).
					Options(
						huh.NewOption(a.text("قيمة واحدة", "Single value"), "single"),
						huh.NewOption(a.text("قيمة لكل لغة", "One value per language"), "dual"),
					).
					Value(&variant),
			),
		).Run(); err != nil {
			return nil, err
		}

		if variant == "single" {
			var value string
			if err := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().Title(a.text("القيمة", "Value")).Value(&value),
				),
			).Run(); err != nil {
				return nil, err
			}
			attr.Value = catalog.SingleValue{Value: value}
		} else {
			var ar, en string
			if err := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().Title(a.text("القيمة بالعربية", "Arabic value")).Value(&ar),
					huh.NewInput().Title(a.text("القيمة بالإنجليزية", "English value")).Value(&en),
				),
			).Run(); err != nil {
				return nil, err
			}
			attr.Value = catalog.DualValue{ArValue: ar, EnValue: en}
		}

		if fields := validation.ValidateAttribute(attr, a.locale()); len(fields) > 0 {
			a.showFieldErrors(fields)
			continue
		}
		attrs = append(attrs, attr)
	}
}

// reportItemWrite surfaces the two halves independently: a failed attribute
// step never undoes a created or updated item.
func (a *App) reportItemWrite(res catalog.ItemWriteResult) bool {
	if !res.Item.Success {
		return false
	}
	if res.AttributesErr != nil {
		a.toastError(a.text("حُفظ العنصر لكن تعذر حفظ الخصائص", "Item saved, but attributes could not be saved") + ": " + res.AttributesErr.Error())
	} else if res.Attributes != nil && !res.Attributes.Success {
		a.toastError(a.text("حُفظ العنصر لكن رُفضت الخصائص", "Item saved, but attributes were rejected") + ": " + res.Attributes.Message)
	}
	return true
}

func (a *App) createItem(ctx context.Context, svc catalog.Service) error {
	state := &PageState{}
	state.OpenCreate()

	payload := catalog.ItemPayload{New: true, ServiceID: svc.ID, IsAvailable: true}
	for state.Mode() != ModeIdle {
		if err := a.itemForm(&payload); err != nil {
			return err
		}
		if fields := a.Validate.Fields(payload, a.locale()); len(fields) > 0 {
			a.showFieldErrors(fields)
			continue
		}
		attrs, err := a.collectAttributes()
		if err != nil {
			return err
		}
		if !state.BeginSubmit() {
			continue
		}

		res, err := a.Catalog.CreateItemWithAttributes(ctx, payload, attrs)
		if err != nil {
			a.report(nil, err)
			state.Fail()
			if !a.askRetry() {
				state.Cancel()
			}
			continue
		}
		if a.reportItemWrite(res) {
			a.toastSuccess(res.Item.Message)
			state.Succeed()
		} else {
			a.report(res.Item, nil)
			state.Fail()
			if !a.askRetry() {
				state.Cancel()
			}
		}
	}
	return nil
}

func (a *App) editItem(ctx context.Context, svc catalog.Service, item catalog.ServiceItem) error {
	state := &PageState{}
	state.OpenEdit(item.ID)

	payload := catalog.ItemPayload{
		ServiceID:     svc.ID,
		ArTitle:       item.ArTitle,
		EnTitle:       item.EnTitle,
		ArSubTitle:    item.ArSubTitle,
		EnSubTitle:    item.EnSubTitle,
		ArDescription: item.ArDescription,
		EnDescription: item.EnDescription,
		Thumbnail:     catalog.FileRef{URL: item.ThumbnailURL},
		Image:         catalog.FileRef{URL: item.ImageURL},
		Video:         catalog.FileRef{URL: item.VideoURL},
		Poster:        catalog.FileRef{URL: item.PosterURL},
		Price:         item.Price,
		IsAvailable:   item.IsAvailable,
		IsNewArrival:  item.IsNewArrival,
		Order:         item.Order,
		Unactive:      item.Unactive,
	}
	for state.Mode() != ModeIdle {
		if err := a.itemForm(&payload); err != nil {
			return err
		}
		if fields := a.Validate.Fields(payload, a.locale()); len(fields) > 0 {
			a.showFieldErrors(fields)
			continue
		}
		// Persisted attributes are read-only; only new ones can be added.
		newAttrs, err := a.collectAttributes()
		if err != nil {
			return err
		}
		if !state.BeginSubmit() {
			continue
		}

		res, err := a.Catalog.UpdateItemWithAttributes(ctx, state.Target(), payload, newAttrs)
		if err != nil {
			a.report(nil, err)
			state.Fail()
			if !a.askRetry() {
				state.Cancel()
			}
			continue
		}
		if a.reportItemWrite(res) {
			a.toastSuccess(res.Item.Message)
			state.Succeed()
		} else {
			a.report(res.Item, nil)
			state.Fail()
			if !a.askRetry() {
				state.Cancel()
			}
		}
	}
	return nil
}

func (a *App) deleteItem(ctx context.Context, item catalog.ServiceItem) error {
	state := &PageState{}
	state.ConfirmDelete(item.ID)

	confirmed, err := a.confirmDelete(item.Title(a.locale()))
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

	env, err := a.Catalog.DeleteItem(ctx, state.Target())
	if a.report(env, err) {
		state.Succeed()
	} else {
		state.Fail()
		state.Cancel()
	}
	return nil
}

func (a *App) deleteAttribute(ctx context.Context, item catalog.ServiceItem) error {
	if len(item.Attributes) == 0 {
		a.toastError(a.text("لا توجد خصائص", "No attributes"))
		return nil
	}

	labels := make([]string, len(item.Attributes))
	ids := make([]string, len(item.Attributes))
	for i, attr := range item.Attributes {
		labels[i] = attr.Name(a.locale()) + ": " + attr.Display(a.locale())
		ids[i] = attr.ID
	}
	picked, err := a.pickOne(a.text("اختر خاصية", "Pick an attribute"), labels, ids)
	if err != nil || picked == "" {
		return err
	}
	confirmed, err := a.confirmDelete(a.text("الخاصية", "the attribute"))
	if err != nil || !confirmed {
		return err
	}

	env, err := a.Catalog.DeleteAttribute(ctx, picked)
	a.report(env, err)
	return nil
}
