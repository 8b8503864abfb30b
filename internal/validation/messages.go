package validation

// Localized validation messages keyed by tag. The dashboard is
// Arabic-first; English is the secondary locale.
var messages = map[string]map[string]string{
	"required": {
		"ar": "هذا الحقل مطلوب!",
		"en": "This field is required!",
	},
	"required_if": {
		"ar": "هذا الحقل مطلوب!",
		"en": "This field is required!",
	},
	"email": {
		"ar": "البريد الالكتروني غير صحيح!",
		"en": "Invalid email address!",
	},
	"min": {
		"ar": "القيمة أصغر من الحد المسموح!",
		"en": "Value is below the minimum!",
	},
	"max": {
		"ar": "القيمة أكبر من الحد المسموح!",
		"en": "Value is above the maximum!",
	},
	"len": {
		"ar": "الكود مطلوب!",
		"en": "Code length is invalid!",
	},
	"gte": {
		"ar": "القيمة يجب أن تكون موجبة!",
		"en": "Value must not be negative!",
	},
	"eqfield": {
		"ar": "كلمتا المرور غير متطابقتين!",
		"en": "Passwords do not match!",
	},
	"image": {
		"ar": "صورة غير صالحة! الصيغ المقبولة .png, .jpeg, .jpg, .webp وبحجم أقصى 5MB",
		"en": "Invalid image! Accepted formats are .png, .jpeg, .jpg, .webp up to 5MB",
	},
	"video": {
		"ar": "فيديو غير صالح! الصيغ المقبولة .mp4, .webm, .ogg, .mov وبحجم أقصى 10MB",
		"en": "Invalid video! Accepted formats are .mp4, .webm, .ogg, .mov up to 10MB",
	},
	"invalid": {
		"ar": "البيانات المدخلة غير صالحة!",
		"en": "The submitted data is invalid!",
	},
}

func Message(tag, locale string) string {
	byLocale, ok := messages[tag]
	if !ok {
		byLocale = messages["invalid"]
	}
	if msg, ok := byLocale[locale]; ok {
		return msg
	}
	return byLocale["ar"]
}
