package ui

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

// RunSettings edits the server-side settings singleton. There is no create
// or delete; the whole record goes up in one PUT.
func (a *App) RunSettings(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	current, err := a.Catalog.Settings(ctx)
	if err != nil {
		a.report(nil, err)
		return nil
	}
	if current == nil {
		a.toastError(a.text("تعذر تحميل الإعدادات", "Could not load settings"))
		return nil
	}

	state := &PageState{}
	state.OpenEdit(current.ID)

	payload := catalog.SettingsPayload{
		ApplicationName:                 current.ApplicationName,
		ArSummary:                       current.ArSummary,
		EnSummary:                       current.EnSummary,
		OtpExpiryInMin:                  current.OtpExpiryInMin,
		MisLoginAttemptsLimit:           current.MisLoginAttemptsLimit,
		PasswordMinLength:               current.PasswordMinLength,
		PasswordRequireUppercase:        current.PasswordRequireUppercase,
		PasswordRequireLowercase:        current.PasswordRequireLowercase,
		PasswordRequireNumber:           current.PasswordRequireNumber,
		PasswordRequireSpecialCharacter: current.PasswordRequireSpecialCharacter,
		Host:                            current.Host,
		Port:                            current.Port,
		UseSsl:                          current.UseSsl,
		Email:                           current.Email,
	}

	for state.Mode() != ModeIdle {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title(a.text("اسم التطبيق", "Application name")).Value(&payload.ApplicationName),
				huh.NewText().Title(a.text("الملخص بالعربية", "Arabic summary")).Value(&payload.ArSummary),
				huh.NewText().Title(a.text("الملخص بالإنجليزية", "English summary")).Value(&payload.EnSummary),
			),
			huh.NewGroup(
				huh.NewInput().Title(a.text("صلاحية رمز التحقق بالدقائق", "OTP expiry in minutes")).Accessor(intAccessor{&payload.OtpExpiryInMin}),
				huh.NewInput().Title(a.text("حد محاولات الدخول", "Login attempts limit")).Accessor(intAccessor{&payload.MisLoginAttemptsLimit}),
				huh.NewInput().Title(a.text("الحد الأدنى لطول كلمة المرور", "Password minimum length")).Accessor(intAccessor{&payload.PasswordMinLength}),
				huh.NewConfirm().Title(a.text("حرف كبير إلزامي؟", "Require uppercase?")).Value(&payload.PasswordRequireUppercase),
				huh.NewConfirm().Title(a.text("حرف صغير إلزامي؟", "Require lowercase?")).Value(&payload.PasswordRequireLowercase),
				huh.NewConfirm().Title(a.text("رقم إلزامي؟", "Require number?")).Value(&payload.PasswordRequireNumber),
				huh.NewConfirm().Title(a.text("رمز خاص إلزامي؟", "Require special character?")).Value(&payload.PasswordRequireSpecialCharacter),
			),
			huh.NewGroup(
				huh.NewInput().Title(a.text("خادم البريد", "SMTP host")).Value(&payload.Host),
				huh.NewInput().Title(a.text("المنفذ", "Port")).Accessor(intAccessor{&payload.Port}),
				huh.NewConfirm().Title("SSL").Value(&payload.UseSsl),
				huh.NewInput().Title(a.text("بريد المرسل", "Sender email")).Value(&payload.Email),
				huh.NewInput().Title(a.text("كلمة مرور البريد", "SMTP password")).EchoMode(huh.EchoModePassword).Value(&payload.Password),
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

		env, err := a.Catalog.UpdateSettings(ctx, payload)
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
