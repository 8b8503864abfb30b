package ui

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

// RunProfile shows the signed-in user and offers profile and password
// updates plus sign-out.
func (a *App) RunProfile(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	user, err := a.Catalog.Me(ctx)
	if err != nil {
		a.report(nil, err)
		return nil
	}
	if user == nil {
		a.toastError(a.text("تعذر تحميل الملف الشخصي", "Could not load the profile"))
		return nil
	}

	a.printf("%s", pageTitle(a.text("الملف الشخصي", "Profile")))
	a.printf("  %s: %s", a.text("الاسم", "Name"), user.FullName)
	a.printf("  %s: %s", a.text("البريد", "Email"), user.Email)
	a.printf("  %s: %s", a.text("الجوال", "Mobile"), user.MobileNumber)
	if user.LastLogin != nil {
		a.printf("  %s: %s", a.text("آخر دخول", "Last login"), user.LastLogin.Local().Format("2006-01-02 15:04"))
	}

	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(a.text("إجراء", "Action")).
				Options(
					huh.NewOption(a.text("تعديل البيانات", "Edit profile"), "profile"),
					huh.NewOption(a.text("تغيير كلمة المرور", "Change password"), "password"),
					huh.NewOption(a.text("تسجيل الخروج", "Sign out"), "logout"),
					huh.NewOption(a.text("رجوع", "Back"), "back"),
				).
				Value(&action),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	switch action {
	case "profile":
		return a.editProfile(ctx, *user)
	case "password":
		return a.changeOwnPassword(ctx)
	case "logout":
		return a.RunLogout(ctx)
	}
	return nil
}

func (a *App) editProfile(ctx context.Context, user catalog.User) error {
	state := &PageState{}
	state.OpenEdit(user.ID)

	payload := catalog.ProfilePayload{
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		FullName:     user.FullName,
	}
	for state.Mode() != ModeIdle {
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title(a.text("الاسم الكامل", "Full name")).Value(&payload.FullName),
				huh.NewInput().Title(a.text("البريد الإلكتروني", "Email")).Value(&payload.Email),
				huh.NewInput().Title(a.text("رقم الجوال", "Mobile number")).Value(&payload.MobileNumber),
			),
		).Run(); err != nil {
			return err
		}

		if fields := a.Validate.Fields(payload, a.locale()); len(fields) > 0 {
			a.showFieldErrors(fields)
			continue
		}
		if !state.BeginSubmit() {
			continue
		}

		env, err := a.Catalog.UpdateProfile(ctx, payload)
		if a.report(env, err) {
			var updated catalog.User
			if env.Decode(&updated) == nil {
				_ = a.Session.SetUser(&updated)
			}
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

func (a *App) changeOwnPassword(ctx context.Context) error {
	state := &PageState{}
	state.OpenEdit("password")

	payload := catalog.PasswordPayload{}
	for state.Mode() != ModeIdle {
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title(a.text("كلمة المرور الحالية", "Current password")).EchoMode(huh.EchoModePassword).Value(&payload.CurrentPassword),
				huh.NewInput().Title(a.text("كلمة المرور الجديدة", "New password")).EchoMode(huh.EchoModePassword).Value(&payload.NewPassword),
				huh.NewInput().Title(a.text("تأكيد كلمة المرور", "Confirm password")).EchoMode(huh.EchoModePassword).Value(&payload.Confirm),
			),
		).Run(); err != nil {
			return err
		}

		if fields := a.Validate.Fields(payload, a.locale()); len(fields) > 0 {
			a.showFieldErrors(fields)
			continue
		}
		if !state.BeginSubmit() {
			continue
		}

		env, err := a.Catalog.UpdatePassword(ctx, payload)
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

// RunLogout tells the backend, then drops the local session either way.
func (a *App) RunLogout(ctx context.Context) error {
	if a.Session.Token() != "" {
		if _, err := a.Catalog.Logout(ctx); err != nil {
			a.Log.Warn("logout call failed", "error", err)
		}
	}
	a.Session.Clear()
	a.toastSuccess(a.text("تم تسجيل الخروج", "Signed out"))
	return nil
}
