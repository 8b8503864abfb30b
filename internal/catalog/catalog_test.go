package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/cache"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/mockapi"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/resource"
)

type staticToken struct {
	token string
}

func (s *staticToken) Token() string { return s.token }

// newBackedClient spins up the in-memory backend, signs in, and returns a
// catalog client whose reads flow through a fresh memory cache.
func newBackedClient(t *testing.T) *catalog.Client {
	t.Helper()

	srv, err := mockapi.New(mockapi.Options{Log: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if err != nil {
		t.Fatalf("mockapi.New: %v", err)
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	tokens := &staticToken{}
	apiClient := api.New(ts.URL,
		api.WithTokenSource(tokens),
		api.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	store := resource.NewStore(cache.NewMemory(), time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	client := catalog.NewClient(apiClient, store)

	_, result, err := client.Login(context.Background(), catalog.SignInPayload{
		Email:    "admin@melfak.local",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result == nil {
		t.Fatal("login rejected")
	}
	tokens.token = result.Token
	return client
}

func mustCreateSection(t *testing.T, c *catalog.Client) string {
	t.Helper()
	ctx := context.Background()
	env, err := c.CreateSection(ctx, catalog.SectionPayload{ArTitle: "قسم", EnTitle: "Section"})
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	if !env.Success {
		t.Fatalf("CreateSection rejected: %s", env.Message)
	}
	var sec catalog.Section
	if err := env.Decode(&sec); err != nil {
		t.Fatalf("decode section: %v", err)
	}
	return sec.ID
}

func mustCreateService(t *testing.T, c *catalog.Client, sectionID string) string {
	t.Helper()
	ctx := context.Background()
	env, err := c.CreateService(ctx, catalog.ServicePayload{
		New:       true,
		SectionID: sectionID,
		ArTitle:   "خدمة",
		EnTitle:   "Service",
		Thumbnail: catalog.FileRef{URL: "/uploads/thumb.png"},
	})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if !env.Success {
		t.Fatalf("CreateService rejected: %s", env.Message)
	}
	var svc catalog.Service
	if err := env.Decode(&svc); err != nil {
		t.Fatalf("decode service: %v", err)
	}
	return svc.ID
}

func TestSectionWriteRefreshesCachedList(t *testing.T) {
	c := newBackedClient(t)
	ctx := context.Background()

	before, err := c.Sections(ctx)
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}

	mustCreateSection(t, c)

	after, err := c.Sections(ctx)
	if err != nil {
		t.Fatalf("Sections after create: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("sections = %d, want %d; write did not refresh the cached list", len(after), len(before)+1)
	}
}

func TestServiceUploadWithLocalFile(t *testing.T) {
	c := newBackedClient(t)
	ctx := context.Background()
	sectionID := mustCreateSection(t, c)

	thumb := filepath.Join(t.TempDir(), "thumb.png")
	if err := os.WriteFile(thumb, []byte("\x89PNG\r\n\x1a\n fake"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	env, err := c.CreateService(ctx, catalog.ServicePayload{
		New:       true,
		SectionID: sectionID,
		ArTitle:   "تنظيف",
		EnTitle:   "Cleaning",
		Thumbnail: catalog.FileRef{Path: thumb},
	})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if !env.Success {
		t.Fatalf("CreateService rejected: %s", env.Message)
	}

	var svc catalog.Service
	if err := env.Decode(&svc); err != nil {
		t.Fatalf("decode service: %v", err)
	}
	if svc.ThumbnailURL == "" {
		t.Fatal("uploaded thumbnail did not come back as a stored URL")
	}
}

func TestCreateItemWithAttributesTwoStep(t *testing.T) {
	c := newBackedClient(t)
	ctx := context.Background()
	serviceID := mustCreateService(t, c, mustCreateSection(t, c))

	payload := catalog.ItemPayload{
		New:       true,
		ServiceID: serviceID,
		ArTitle:   "عنصر",
		EnTitle:   "Item",
		Thumbnail: catalog.FileRef{URL: "/uploads/item.png"},
	}
	attrs := []catalog.Attribute{
		{ArName: "اللون", EnName: "Color", Value: catalog.SingleValue{Value: "red"}},
		{ArName: "المقاس", EnName: "Size", Value: catalog.DualValue{ArValue: "كبير", EnValue: "Large"}},
	}

	res, err := c.CreateItemWithAttributes(ctx, payload, attrs)
	if err != nil {
		t.Fatalf("CreateItemWithAttributes: %v", err)
	}
	if !res.Item.Success {
		t.Fatalf("item step rejected: %s", res.Item.Message)
	}
	if res.AttributesErr != nil {
		t.Fatalf("attribute step transport failure: %v", res.AttributesErr)
	}
	if res.Attributes == nil || !res.Attributes.Success {
		t.Fatal("attribute step should have succeeded")
	}

	items, err := c.Items(ctx, serviceID)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || len(items[0].Attributes) != 2 {
		t.Fatalf("items = %+v, want one item with two attributes", items)
	}
}

func TestItemCreatedEvenWhenAttributeStepFails(t *testing.T) {
	c := newBackedClient(t)
	ctx := context.Background()
	serviceID := mustCreateService(t, c, mustCreateSection(t, c))

	payload := catalog.ItemPayload{
		New:       true,
		ServiceID: serviceID,
		ArTitle:   "عنصر",
		EnTitle:   "Item",
		Thumbnail: catalog.FileRef{URL: "/uploads/item.png"},
	}
	// The dual variant misses its English half, so the server rejects the
	// batch after the item already exists.
	badAttrs := []catalog.Attribute{
		{ArName: "مادة", EnName: "Material", Value: catalog.DualValue{ArValue: "خشب"}},
	}

	res, err := c.CreateItemWithAttributes(ctx, payload, badAttrs)
	if err != nil {
		t.Fatalf("CreateItemWithAttributes: %v", err)
	}
	if !res.Item.Success {
		t.Fatalf("item step rejected: %s", res.Item.Message)
	}
	if res.Attributes == nil || res.Attributes.Success {
		t.Fatal("attribute step should have failed")
	}

	items, err := c.Items(ctx, serviceID)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1; step one must not be rolled back", len(items))
	}
	if len(items[0].Attributes) != 0 {
		t.Fatalf("attributes = %d, want none", len(items[0].Attributes))
	}
}

func TestAttributesSkippedWhenCreatedItemHasNoID(t *testing.T) {
	// A backend that accepts the item but answers without an id, so the
	// follow-up attribute write has nothing to reference.
	attributeCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/Items/addItem", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"statusCode":200,"message":"created","data":{}}`)
	})
	mux.HandleFunc("/Items/addAttribute", func(w http.ResponseWriter, r *http.Request) {
		attributeCalls++
		io.WriteString(w, `{"success":true,"statusCode":200,"message":"ok"}`)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	apiClient := api.New(ts.URL,
		api.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	store := resource.NewStore(cache.NewMemory(), time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c := catalog.NewClient(apiClient, store)

	res, err := c.CreateItemWithAttributes(context.Background(), catalog.ItemPayload{
		New:       true,
		ServiceID: "svc",
		ArTitle:   "عنصر",
		EnTitle:   "Item",
		Thumbnail: catalog.FileRef{URL: "/uploads/item.png"},
	}, []catalog.Attribute{
		{ArName: "اللون", EnName: "Color", Value: catalog.SingleValue{Value: "red"}},
	})
	if err != nil {
		t.Fatalf("CreateItemWithAttributes: %v", err)
	}
	if res.Attributes != nil || attributeCalls != 0 {
		t.Fatal("attribute step must not run without an item id")
	}
	if res.AttributesErr == nil {
		t.Fatal("skipped attribute step must be reported, not mistaken for none requested")
	}
}

func TestContactDeleteRefreshesCachedList(t *testing.T) {
	c := newBackedClient(t)
	ctx := context.Background()

	env, err := c.CreateContact(ctx, catalog.ContactPayload{
		New:         true,
		PhoneNumber: "+966551234567",
		Icon:        catalog.FileRef{URL: "/uploads/phone.svg"},
		IsPrimary:   true,
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if !env.Success {
		t.Fatalf("CreateContact rejected: %s", env.Message)
	}
	var contact catalog.Contact
	if err := env.Decode(&contact); err != nil {
		t.Fatalf("decode contact: %v", err)
	}

	contacts, err := c.Contacts(ctx)
	if err != nil {
		t.Fatalf("Contacts: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(contacts))
	}

	del, err := c.DeleteContact(ctx, contact.ID)
	if err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	if !del.Success {
		t.Fatalf("DeleteContact rejected: %s", del.Message)
	}

	contacts, err = c.Contacts(ctx)
	if err != nil {
		t.Fatalf("Contacts after delete: %v", err)
	}
	if len(contacts) != 0 {
		t.Fatal("deleted contact still served from cache")
	}
}

func TestFailedDeleteLeavesCacheAlone(t *testing.T) {
	c := newBackedClient(t)
	ctx := context.Background()

	env, err := c.CreateContact(ctx, catalog.ContactPayload{
		New:         true,
		PhoneNumber: "+966551234567",
		Icon:        catalog.FileRef{URL: "/uploads/phone.svg"},
	})
	if err != nil || !env.Success {
		t.Fatalf("CreateContact: %v (%+v)", err, env)
	}
	if _, err := c.Contacts(ctx); err != nil {
		t.Fatalf("Contacts: %v", err)
	}

	del, err := c.DeleteContact(ctx, "ghost")
	if err != nil {
		t.Fatalf("DeleteContact of unknown id must resolve, got %v", err)
	}
	if del.Success {
		t.Fatal("expected success=false for unknown id")
	}

	contacts, err := c.Contacts(ctx)
	if err != nil {
		t.Fatalf("Contacts: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("contacts = %d, want the cached list untouched", len(contacts))
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	c := newBackedClient(t)
	ctx := context.Background()

	current, err := c.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if current == nil {
		t.Fatal("settings singleton missing")
	}

	env, err := c.UpdateSettings(ctx, catalog.SettingsPayload{
		ApplicationName:       "Melfak Admin",
		OtpExpiryInMin:        10,
		MisLoginAttemptsLimit: 3,
		PasswordMinLength:     10,
		Host:                  "smtp.melfak.local",
		Port:                  465,
		UseSsl:                true,
		Email:                 "ops@melfak.local",
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if !env.Success {
		t.Fatalf("UpdateSettings rejected: %s", env.Message)
	}

	updated, err := c.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings after update: %v", err)
	}
	if updated.ApplicationName != "Melfak Admin" || updated.Port != 465 {
		t.Fatalf("settings did not round trip: %+v", updated)
	}
	if updated.ID != current.ID {
		t.Fatal("settings id must be stable across updates")
	}
}

func TestDashboardCountsFollowWrites(t *testing.T) {
	c := newBackedClient(t)
	ctx := context.Background()

	dash, err := c.GetDashboard(ctx)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if dash.ServicesCount != 0 {
		t.Fatalf("fresh backend reports %d services", dash.ServicesCount)
	}

	mustCreateService(t, c, mustCreateSection(t, c))

	dash, err = c.GetDashboard(ctx)
	if err != nil {
		t.Fatalf("GetDashboard after create: %v", err)
	}
	if dash.ServicesCount != 1 {
		t.Fatalf("servicesCount = %d, want 1", dash.ServicesCount)
	}
	if len(dash.LastFiveServices) != 1 {
		t.Fatalf("lastFiveServices = %d, want 1", len(dash.LastFiveServices))
	}
}
