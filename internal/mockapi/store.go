package mockapi

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

// Store keeps every entity in memory behind one mutex. Reads copy out so
// handlers never hand aliased slices to the encoder while a writer runs.
type Store struct {
	mu sync.Mutex

	sections     []catalog.Section
	services     []catalog.Service
	items        []catalog.ServiceItem
	contacts     []catalog.Contact
	socialMedias []catalog.SocialMedia
	settings     catalog.Settings
	pages        []catalog.Page

	user         catalog.User
	passwordHash []byte
	otp          string
}

func newStore() *Store {
	now := time.Now().UTC()
	return &Store{
		settings: catalog.Settings{
			ID:                    uuid.NewString(),
			ApplicationName:       "Melfak",
			ArSummary:             "لوحة إدارة المحتوى",
			EnSummary:             "Content administration board",
			OtpExpiryInMin:        5,
			MisLoginAttemptsLimit: 5,
			PasswordMinLength:     8,
			PasswordRequireNumber: true,
			Host:                  "smtp.example.com",
			Port:                  587,
			UseSsl:                true,
			Email:                 "noreply@example.com",
		},
		pages: []catalog.Page{
			{Code: "home", ArTitle: "الرئيسية", EnTitle: "Home"},
			{Code: "about", ArTitle: "من نحن", EnTitle: "About"},
			{Code: "services", ArTitle: "الخدمات", EnTitle: "Services"},
		},
		user: catalog.User{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func newID() string {
	return uuid.NewString()
}

func (s *Store) sectionByID(id string) (int, bool) {
	for i := range s.sections {
		if s.sections[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) serviceByID(id string) (int, bool) {
	for i := range s.services {
		if s.services[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) itemByID(id string) (int, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// sectionsWithServices embeds each section's ordered service list, the shape
// getSections promises.
func (s *Store) sectionsWithServices() []catalog.Section {
	out := make([]catalog.Section, len(s.sections))
	copy(out, s.sections)
	for i := range out {
		var owned []catalog.Service
		for _, svc := range s.services {
			if svc.SectionID == out[i].ID {
				owned = append(owned, svc)
			}
		}
		sort.SliceStable(owned, func(a, b int) bool { return owned[a].Order < owned[b].Order })
		out[i].Services = owned
	}
	return out
}

func (s *Store) removeServicesOfSection(sectionID string) {
	kept := s.services[:0]
	for _, svc := range s.services {
		if svc.SectionID == sectionID {
			s.removeItemsOfService(svc.ID)
			continue
		}
		kept = append(kept, svc)
	}
	s.services = kept
}

func (s *Store) removeItemsOfService(serviceID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ServiceID == serviceID {
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
}
