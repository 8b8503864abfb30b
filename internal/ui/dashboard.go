package ui

import "context"

// RunDashboard prints the landing summary: per-entity counts and the five
// most recent services and items.
func (a *App) RunDashboard(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	dash, err := a.Catalog.GetDashboard(ctx)
	if err != nil {
		a.report(nil, err)
		return nil
	}
	if dash == nil {
		a.toastError(a.text("تعذر تحميل لوحة المعلومات", "Could not load the dashboard"))
		return nil
	}

	a.printf("%s", pageTitle(a.text("لوحة المعلومات", "Dashboard")))
	a.printf("  %s: %d", a.text("الخدمات", "Services"), dash.ServicesCount)
	a.printf("  %s: %d", a.text("العناصر", "Items"), dash.ItemsCount)
	a.printf("  %s: %d", a.text("جهات الاتصال", "Contacts"), dash.ContactsCount)
	a.printf("  %s: %d", a.text("وسائل التواصل", "Social media"), dash.SocialMediasCount)

	if len(dash.LastFiveServices) > 0 {
		a.printf("%s", pageTitle(a.text("أحدث الخدمات", "Latest services")))
		for _, entry := range dash.LastFiveServices {
			a.printf("  • %s", localizedEntry(a.locale(), entry.ArTitle, entry.EnTitle, entry.ArSubTitle, entry.EnSubTitle))
		}
	}
	if len(dash.LastFiveItems) > 0 {
		a.printf("%s", pageTitle(a.text("أحدث العناصر", "Latest items")))
		for _, entry := range dash.LastFiveItems {
			line := localizedEntry(a.locale(), entry.ArTitle, entry.EnTitle, entry.ArSubTitle, entry.EnSubTitle)
			if entry.IsNewArrival != nil && *entry.IsNewArrival {
				line += " " + dim(a.text("(وصل حديثاً)", "(new arrival)"))
			}
			if entry.IsAvailable != nil && !*entry.IsAvailable {
				line += " " + dim(a.text("(غير متوفر)", "(unavailable)"))
			}
			a.printf("  • %s", line)
		}
	}
	return nil
}
