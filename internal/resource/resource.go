// Package resource implements the read-through query cache and the mutation
// controller shared by every entity client. Mutations declare which read
// namespaces they invalidate in a single table instead of repeating the
// relationship at each call site.
package resource

import (
	"context"
	"log/slog"
	"time"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/cache"
)

// Namespace identifies a family of read queries.
type Namespace string

const (
	Sections     Namespace = "getSections"
	Services     Namespace = "getServices"
	Items        Namespace = "getItems"
	Contacts     Namespace = "getContacts"
	SocialMedias Namespace = "getSocialMedias"
	Settings     Namespace = "getSettings"
	UserInfo     Namespace = "getUserInfo"
	Dashboard    Namespace = "getDashboard"
	Pages        Namespace = "getPages"
)

// Mutation identifies a write operation for invalidation lookup.
type Mutation string

const (
	CreateSection     Mutation = "createSection"
	UpdateSection     Mutation = "updateSection"
	DeleteSection     Mutation = "deleteSection"
	CreateService     Mutation = "createService"
	UpdateService     Mutation = "updateService"
	DeleteService     Mutation = "deleteService"
	AddServiceImages  Mutation = "addServiceImages"
	DeleteImage       Mutation = "deleteImage"
	CreateItem        Mutation = "createItem"
	UpdateItem        Mutation = "updateItem"
	DeleteItem        Mutation = "deleteItem"
	CreateAttributes  Mutation = "createAttributes"
	DeleteAttribute   Mutation = "deleteAttribute"
	CreateContact     Mutation = "createContact"
	UpdateContact     Mutation = "updateContact"
	DeleteContact     Mutation = "deleteContact"
	CreateSocialMedia Mutation = "createSocialMedia"
	UpdateSocialMedia Mutation = "updateSocialMedia"
	DeleteSocialMedia Mutation = "deleteSocialMedia"
	UpdateSettings    Mutation = "updateSettings"
	UpdateProfile     Mutation = "updateProfile"
	UpdatePassword    Mutation = "updatePassword"
)

// invalidations maps each mutation to every read namespace whose cached
// results it can change. Sections embed their service lists, so service
// writes invalidate sections too; dashboard counts follow their source
// entities.
var invalidations = map[Mutation][]Namespace{
	CreateSection:     {Sections, Dashboard},
	UpdateSection:     {Sections},
	DeleteSection:     {Sections, Services, Items, Dashboard},
	CreateService:     {Sections, Services, Dashboard},
	UpdateService:     {Sections, Services},
	DeleteService:     {Sections, Services, Items, Dashboard},
	AddServiceImages:  {Sections, Services},
	DeleteImage:       {Sections, Services},
	CreateItem:        {Items, Dashboard},
	UpdateItem:        {Items, Dashboard},
	DeleteItem:        {Items, Dashboard},
	CreateAttributes:  {Items},
	DeleteAttribute:   {Items},
	CreateContact:     {Contacts, Dashboard},
	UpdateContact:     {Contacts},
	DeleteContact:     {Contacts, Dashboard},
	CreateSocialMedia: {SocialMedias, Dashboard},
	UpdateSocialMedia: {SocialMedias},
	DeleteSocialMedia: {SocialMedias, Dashboard},
	UpdateSettings:    {Settings},
	UpdateProfile:     {UserInfo},
	UpdatePassword:    {UserInfo},
}

// Invalidates returns the namespaces a mutation clears on success.
func Invalidates(m Mutation) []Namespace {
	return invalidations[m]
}

// Store serves cached reads and runs mutations against the shared cache.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
	log   *slog.Logger
}

func NewStore(c cache.Cache, ttl time.Duration, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{cache: c, ttl: ttl, log: log}
}

// Fetch resolves a read query through the cache. On a miss the fetch
// function runs and, when the envelope reports success, its data payload is
// cached under the namespace key and decoded into v. Failure envelopes are
// never cached; v is left untouched and the envelope is returned for the
// caller to inspect.
func (s *Store) Fetch(ctx context.Context, ns Namespace, params []string, fetch func(context.Context) (*api.Envelope, error), v interface{}) (*api.Envelope, error) {
	key := cache.Key(string(ns), params...)

	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		if err := decodeRaw(raw, v); err == nil {
			return &api.Envelope{Success: true, StatusCode: 200, Data: raw}, nil
		}
		_ = s.cache.Delete(ctx, key)
	}

	env, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return env, nil
	}
	if len(env.Data) > 0 {
		if err := env.Decode(v); err != nil && err != api.ErrNoData {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, env.Data, s.ttl); err != nil {
			s.log.Warn("cache set failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return env, nil
}

// Mutate runs a write operation. A nil error means the envelope arrived, not
// that the operation worked; the caller still inspects Success. Invalidation
// happens only on success, and only for the namespaces declared for m.
func (s *Store) Mutate(ctx context.Context, m Mutation, call func(context.Context) (*api.Envelope, error)) (*api.Envelope, error) {
	env, err := call(ctx)
	if err != nil {
		return nil, err
	}
	if env.Success {
		for _, ns := range invalidations[m] {
			if err := s.cache.DeletePrefix(ctx, cache.Prefix(string(ns))); err != nil {
				s.log.Warn("cache invalidation failed",
					slog.String("mutation", string(m)),
					slog.String("namespace", string(ns)),
					slog.String("error", err.Error()),
				)
			}
		}
	}
	return env, nil
}

func decodeRaw(raw []byte, v interface{}) error {
	env := api.Envelope{Success: true, Data: raw}
	return env.Decode(v)
}
