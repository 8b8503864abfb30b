package ui

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

// RunSignIn drives the sign-in screen: credentials form, with an OTP-based
// password reset behind a separate choice.
func (a *App) RunSignIn(ctx context.Context) error {
	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(a.text("تسجيل الدخول", "Sign in")).
				Options(
					huh.NewOption(a.text("الدخول بالبريد وكلمة المرور", "Sign in with email and password"), "login"),
					huh.NewOption(a.text("نسيت كلمة المرور", "Forgot password"), "reset"),
				).
				Value(&action),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if action == "reset" {
		return a.resetPassword(ctx)
	}
	return a.login(ctx)
}

func (a *App) login(ctx context.Context) error {
	state := &PageState{}
	if !state.OpenCreate() {
		return nil
	}

	payload := catalog.SignInPayload{}
	for {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(a.text("البريد الإلكتروني", "Email")).
					Value(&payload.Email),
				huh.NewInput().
					Title(a.text("كلمة المرور", "Password")).
					EchoMode(huh.EchoModePassword).
					Value(&payload.Password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		if fields := a.Validate.Fields(payload, a.locale()); len(fields) > 0 {
			a.showFieldErrors(fields)
			continue
		}
		if !state.BeginSubmit() {
			continue
		}

		env, result, err := a.Catalog.Login(ctx, payload)
		if !a.report(env, err) {
			state.Fail()
			continue
		}

		if err := a.Session.Set(result.Token, result.User); err != nil {
			a.toastError(err.Error())
		}
		state.Succeed()
		a.toastSuccess(a.text("تم تسجيل الدخول", "Signed in"))
		return nil
	}
}

// resetPassword runs the two-step flow: verify sends the OTP, then the new
// password goes up with it.
func (a *App) resetPassword(ctx context.Context) error {
	verify := catalog.VerifyPayload{}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(a.text("البريد الإلكتروني", "Email")).
				Value(&verify.Email),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if fields := a.Validate.Fields(verify, a.locale()); len(fields) > 0 {
		a.showFieldErrors(fields)
		return nil
	}

	env, err := a.Catalog.VerifyEmail(ctx, verify)
	if !a.report(env, err) {
		return nil
	}
	a.toastSuccess(a.text("تم إرسال رمز التحقق إلى بريدك", "An OTP was sent to your email"))

	change := catalog.ChangePasswordPayload{Email: verify.Email}
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(a.text("رمز التحقق", "OTP")).
				Value(&change.Otp),
			huh.NewInput().
				Title(a.text("كلمة المرور الجديدة", "New password")).
				EchoMode(huh.EchoModePassword).
				Value(&change.NewPassword),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if fields := a.Validate.Fields(change, a.locale()); len(fields) > 0 {
		a.showFieldErrors(fields)
		return nil
	}

	env, err = a.Catalog.ChangePassword(ctx, change)
	if a.report(env, err) {
		a.toastSuccess(a.text("تم تغيير كلمة المرور، سجّل الدخول", "Password changed, sign in now"))
	}
	return nil
}
