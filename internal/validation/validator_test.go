package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

// pngHeader is enough for content sniffing to say image/png.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestCreateServiceRequiresThumbnail(t *testing.T) {
	v := New()

	p := catalog.ServicePayload{
		New:       true,
		SectionID: "sec-1",
		ArTitle:   "خدمة",
		EnTitle:   "Service",
	}
	details := v.Fields(p, "en")
	if details == nil {
		t.Fatalf("expected validation failure for missing thumbnail")
	}
	if _, ok := details["Thumbnail"]; !ok {
		t.Fatalf("expected error on Thumbnail, got %v", details)
	}
	// Optional uploads may stay unset.
	if _, ok := details["Image"]; ok {
		t.Fatalf("imageFile is optional, got error %v", details)
	}
	if _, ok := details["Video"]; ok {
		t.Fatalf("videoFile is optional, got error %v", details)
	}

	p.Thumbnail = catalog.FileRef{Path: writeTemp(t, "thumb.png", pngHeader)}
	if details := v.Fields(p, "en"); details != nil {
		t.Fatalf("expected valid payload, got %v", details)
	}
}

func TestEditServiceAcceptsExistingThumbnailURL(t *testing.T) {
	v := New()

	p := catalog.ServicePayload{
		SectionID: "sec-1",
		ArTitle:   "خدمة",
		EnTitle:   "Service",
		Thumbnail: catalog.FileRef{URL: "https://cdn.example.com/thumb.webp"},
	}
	if details := v.Fields(p, "ar"); details != nil {
		t.Fatalf("existing URL should satisfy the thumbnail, got %v", details)
	}
}

func TestImageSizeAndTypeLimits(t *testing.T) {
	big := make([]byte, MaxImageSize+1)
	copy(big, pngHeader)
	if err := CheckImage(catalog.FileRef{Path: writeTemp(t, "big.png", big)}); err != ErrFileTooLarge {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	text := writeTemp(t, "notes.txt", []byte("plain text, not an image"))
	if err := CheckImage(catalog.FileRef{Path: text}); err != ErrBadFileType {
		t.Fatalf("expected ErrBadFileType, got %v", err)
	}

	if err := CheckImage(catalog.FileRef{}); err != nil {
		t.Fatalf("unset ref must pass, got %v", err)
	}
	if err := CheckImage(catalog.FileRef{URL: "https://cdn.example.com/a.png"}); err != nil {
		t.Fatalf("url ref must pass, got %v", err)
	}
}

func TestAttributeVariantValidation(t *testing.T) {
	single := catalog.Attribute{
		ArName: "اللون",
		EnName: "Color",
		Value:  catalog.SingleValue{},
		Order:  1,
	}
	details := ValidateAttribute(single, "en")
	if details == nil {
		t.Fatalf("expected failure for empty single value")
	}
	if _, ok := details["value"]; !ok {
		t.Fatalf("expected error keyed on value, got %v", details)
	}

	dual := catalog.Attribute{
		ArName: "اللون",
		EnName: "Color",
		Value:  catalog.DualValue{EnValue: "Red"},
		Order:  1,
	}
	details = ValidateAttribute(dual, "en")
	if details == nil {
		t.Fatalf("expected failure for missing arValue")
	}
	if _, ok := details["arValue"]; !ok {
		t.Fatalf("expected error keyed on arValue, got %v", details)
	}
	if _, ok := details["enValue"]; ok {
		t.Fatalf("enValue is set, got error %v", details)
	}

	dual.Value = catalog.DualValue{ArValue: "أحمر", EnValue: "Red"}
	if details := ValidateAttribute(dual, "en"); details != nil {
		t.Fatalf("expected valid dual attribute, got %v", details)
	}
}

func TestPasswordConfirmMustMatch(t *testing.T) {
	v := New()

	p := catalog.PasswordPayload{
		CurrentPassword: "oldpass1",
		NewPassword:     "newpass1",
		Confirm:         "different",
	}
	details := v.Fields(p, "en")
	if details == nil {
		t.Fatalf("expected confirm mismatch failure")
	}
	if _, ok := details["Confirm"]; !ok {
		t.Fatalf("expected error on Confirm, got %v", details)
	}

	p.Confirm = "newpass1"
	if details := v.Fields(p, "en"); details != nil {
		t.Fatalf("expected valid payload, got %v", details)
	}
}

func TestLocalizedMessages(t *testing.T) {
	p := catalog.SignInPayload{}
	v := New()

	ar := v.Fields(p, "ar")
	en := v.Fields(p, "en")
	if ar["Password"] != "هذا الحقل مطلوب!" {
		t.Fatalf("unexpected arabic message %q", ar["Password"])
	}
	if en["Password"] != "This field is required!" {
		t.Fatalf("unexpected english message %q", en["Password"])
	}
}
