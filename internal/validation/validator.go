package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterValidation("image", func(fl validator.FieldLevel) bool {
		ref, ok := fl.Field().Interface().(catalog.FileRef)
		if !ok {
			return false
		}
		return CheckImage(ref) == nil
	})

	v.RegisterValidation("video", func(fl validator.FieldLevel) bool {
		ref, ok := fl.Field().Interface().(catalog.FileRef)
		if !ok {
			return false
		}
		return CheckVideo(ref) == nil
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}
	return nil
}

// Fields validates s and returns field-keyed localized messages. An empty
// map means the payload may be submitted.
func (v *Validator) Fields(s interface{}, locale string) map[string]string {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	errs := v.ValidationErrors(err)
	if len(errs) == 0 {
		// Not a field-level failure; surface it generically.
		return map[string]string{"_": Message("invalid", locale)}
	}
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = Message(fe.Tag(), locale)
	}
	return details
}

// ValidateAttribute checks the tagged value variant exhaustively: a
// single-valued attribute needs its shared value, a dual-valued one needs
// both language halves.
func ValidateAttribute(a catalog.Attribute, locale string) map[string]string {
	details := map[string]string{}
	if a.ArName == "" {
		details["arName"] = Message("required", locale)
	}
	if a.EnName == "" {
		details["enName"] = Message("required", locale)
	}
	switch v := a.Value.(type) {
	case catalog.SingleValue:
		if v.Value == "" {
			details["value"] = Message("required", locale)
		}
	case catalog.DualValue:
		if v.ArValue == "" {
			details["arValue"] = Message("required", locale)
		}
		if v.EnValue == "" {
			details["enValue"] = Message("required", locale)
		}
	default:
		details["value"] = Message("required", locale)
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
