package resource

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/cache"
)

func okEnvelope(data string) *api.Envelope {
	return &api.Envelope{Success: true, StatusCode: 200, Message: "ok", Data: json.RawMessage(data)}
}

func TestFetchCachesSuccessfulReads(t *testing.T) {
	ctx := context.Background()
	store := NewStore(cache.NewMemory(), time.Minute, nil)

	calls := 0
	fetch := func(context.Context) (*api.Envelope, error) {
		calls++
		return okEnvelope(`[{"id":"s1","arTitle":"قسم","enTitle":"Section"}]`), nil
	}

	var out []map[string]interface{}
	if _, err := store.Fetch(ctx, Sections, nil, fetch, &out); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 section, got %d", len(out))
	}

	out = nil
	if _, err := store.Fetch(ctx, Sections, nil, fetch, &out); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one upstream call, got %d", calls)
	}
	if len(out) != 1 {
		t.Fatalf("cached read lost data")
	}
}

func TestFetchDoesNotCacheFailures(t *testing.T) {
	ctx := context.Background()
	store := NewStore(cache.NewMemory(), time.Minute, nil)

	calls := 0
	fetch := func(context.Context) (*api.Envelope, error) {
		calls++
		return &api.Envelope{Success: false, StatusCode: 400, Message: "nope"}, nil
	}

	var out []struct{}
	env, err := store.Fetch(ctx, Contacts, nil, fetch, &out)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if env.Success {
		t.Fatalf("expected failure envelope")
	}

	if _, err := store.Fetch(ctx, Contacts, nil, fetch, &out); err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("failure envelopes must not be cached, got %d calls", calls)
	}
}

func TestMutateInvalidatesOnSuccessOnly(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()
	store := NewStore(mem, time.Minute, nil)

	seed := func() {
		mem.Set(ctx, cache.Key(string(Contacts)), []byte(`[]`), 0)
		mem.Set(ctx, cache.Key(string(Sections)), []byte(`[]`), 0)
	}

	seed()
	env, err := store.Mutate(ctx, DeleteContact, func(context.Context) (*api.Envelope, error) {
		return &api.Envelope{Success: false, StatusCode: 400, Message: "contact not found"}, nil
	})
	if err != nil {
		t.Fatalf("Mutate error: %v", err)
	}
	if env.Success {
		t.Fatalf("expected failure")
	}
	if _, ok, _ := mem.Get(ctx, cache.Key(string(Contacts))); !ok {
		t.Fatalf("failed delete must leave the cache untouched")
	}

	env, err = store.Mutate(ctx, DeleteContact, func(context.Context) (*api.Envelope, error) {
		return okEnvelope(`null`), nil
	})
	if err != nil {
		t.Fatalf("Mutate error: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected success")
	}
	if _, ok, _ := mem.Get(ctx, cache.Key(string(Contacts))); ok {
		t.Fatalf("contacts cache should be invalidated after successful delete")
	}
	if _, ok, _ := mem.Get(ctx, cache.Key(string(Sections))); !ok {
		t.Fatalf("unrelated namespace must survive")
	}
}

func TestServiceWritesInvalidateSections(t *testing.T) {
	// Sections embed their service lists, so any service write must clear
	// the sections namespace too.
	for _, m := range []Mutation{CreateService, UpdateService, DeleteService, AddServiceImages, DeleteImage} {
		found := false
		for _, ns := range Invalidates(m) {
			if ns == Sections {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s does not invalidate sections", m)
		}
	}
}

func TestEveryMutationDeclaresInvalidations(t *testing.T) {
	all := []Mutation{
		CreateSection, UpdateSection, DeleteSection,
		CreateService, UpdateService, DeleteService, AddServiceImages, DeleteImage,
		CreateItem, UpdateItem, DeleteItem, CreateAttributes, DeleteAttribute,
		CreateContact, UpdateContact, DeleteContact,
		CreateSocialMedia, UpdateSocialMedia, DeleteSocialMedia,
		UpdateSettings, UpdateProfile, UpdatePassword,
	}
	for _, m := range all {
		if len(Invalidates(m)) == 0 {
			t.Fatalf("mutation %s has no invalidation entry", m)
		}
	}
}
