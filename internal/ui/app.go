package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/session"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/validation"
)

// App carries the shared dependencies every page needs. Pages are methods:
// each one loops over list, action pick, and form until the user backs out.
type App struct {
	Catalog  *catalog.Client
	Session  *session.Session
	Validate *validation.Validator
	Out      io.Writer
	Log      *slog.Logger
}

func NewApp(c *catalog.Client, s *session.Session, v *validation.Validator, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{
		Catalog:  c,
		Session:  s,
		Validate: v,
		Out:      os.Stdout,
		Log:      log,
	}
}

func (a *App) locale() string {
	return a.Catalog.Locale()
}

// text picks the Arabic or English variant of an interface string.
func (a *App) text(ar, en string) string {
	return catalog.Localized(a.locale(), ar, en)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.Out, format+"\n", args...)
}

func (a *App) toastSuccess(msg string) {
	a.printf("%s", successToast(msg))
}

func (a *App) toastError(msg string) {
	a.printf("%s", errorToast(msg))
}

// requireAuth gates every page except sign-in.
func (a *App) requireAuth() bool {
	if a.Session.Authenticated() {
		return true
	}
	a.toastError(a.text("الرجاء تسجيل الدخول أولاً", "Please sign in first"))
	return false
}

// report translates a call's outcome into a toast. It returns true only for
// a successful envelope; the session teardown on 401 has already happened
// inside the transport by the time the error reaches here.
func (a *App) report(env *api.Envelope, err error) bool {
	if errors.Is(err, api.ErrUnauthorized) {
		a.toastError(a.text("انتهت الجلسة، سجّل الدخول من جديد", "Session expired, sign in again"))
		return false
	}
	if err != nil {
		a.toastError(a.text("تعذر الاتصال بالخادم", "Could not reach the server") + ": " + err.Error())
		return false
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = a.text("فشلت العملية", "Operation failed")
		}
		a.toastError(msg)
		for _, ve := range env.ValidationErrors {
			a.printf("  %s", dim(ve.Identifier+": "+ve.ErrorMessage))
		}
		for _, e := range env.Errors {
			a.printf("  %s", dim(e))
		}
		return false
	}
	if env.Message != "" {
		a.toastSuccess(env.Message)
	}
	return true
}

// showFieldErrors prints client-side validation results under the form.
func (a *App) showFieldErrors(fields map[string]string) {
	for field, msg := range fields {
		if field == "_" {
			a.toastError(msg)
			continue
		}
		a.toastError(field + ": " + msg)
	}
}
