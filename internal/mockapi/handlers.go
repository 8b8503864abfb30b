package mockapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

const maxUploadMemory = 32 << 20

// --- sections ---

func (s *Server) handleGetSections(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	sections := s.store.sectionsWithServices()
	s.store.mu.Unlock()
	ok(w, r, "ok", sections)
}

type sectionRequest struct {
	ArTitle       string `json:"arTitle"`
	EnTitle       string `json:"enTitle"`
	ArDescription string `json:"arDescription"`
	EnDescription string `json:"enDescription"`
	PageCode      string `json:"pageCode"`
	OrderOnPage   int    `json:"orderOnPage"`
	Unactive      bool   `json:"unactive"`
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.ArTitle) == "" || strings.TrimSpace(req.EnTitle) == "" {
		fail(w, r, http.StatusBadRequest, "section title is required in both languages")
		return
	}

	section := catalog.Section{
		ID:            newID(),
		ArTitle:       strings.TrimSpace(req.ArTitle),
		EnTitle:       strings.TrimSpace(req.EnTitle),
		ArDescription: req.ArDescription,
		EnDescription: req.EnDescription,
		PageCode:      req.PageCode,
		OrderOnPage:   req.OrderOnPage,
		Unactive:      req.Unactive,
		CreatedAt:     time.Now().UTC(),
	}

	s.store.mu.Lock()
	s.store.sections = append(s.store.sections, section)
	s.store.mu.Unlock()

	ok(w, r, "section created", section)
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	idx, found := s.store.sectionByID(id)
	if !found {
		fail(w, r, http.StatusBadRequest, "section not found")
		return
	}

	now := time.Now().UTC()
	sec := &s.store.sections[idx]
	sec.ArTitle = strings.TrimSpace(req.ArTitle)
	sec.EnTitle = strings.TrimSpace(req.EnTitle)
	sec.ArDescription = req.ArDescription
	sec.EnDescription = req.EnDescription
	sec.PageCode = req.PageCode
	sec.OrderOnPage = req.OrderOnPage
	sec.Unactive = req.Unactive
	sec.ModifiedAt = &now

	ok(w, r, "section updated", *sec)
}

func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	idx, found := s.store.sectionByID(id)
	if !found {
		// Unknown ids on delete stay 200: clients read success=false.
		fail(w, r, http.StatusOK, "section not found")
		return
	}

	s.store.removeServicesOfSection(id)
	s.store.sections = append(s.store.sections[:idx], s.store.sections[idx+1:]...)
	ok(w, r, "section deleted", nil)
}

// --- services ---

func (s *Server) handleGetServices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	s.store.mu.Lock()
	services := make([]catalog.Service, len(s.store.services))
	copy(services, s.store.services)
	s.store.mu.Unlock()

	filtered := services[:0]
	for _, svc := range services {
		if id := q.Get("id"); id != "" && svc.ID != id {
			continue
		}
		if sectionID := q.Get("sectionId"); sectionID != "" && svc.SectionID != sectionID {
			continue
		}
		if ar := q.Get("arTitle"); ar != "" && !strings.Contains(svc.ArTitle, ar) {
			continue
		}
		if en := q.Get("enTitle"); en != "" && !strings.Contains(strings.ToLower(svc.EnTitle), strings.ToLower(en)) {
			continue
		}
		filtered = append(filtered, svc)
	}
	sort.SliceStable(filtered, func(a, b int) bool { return filtered[a].Order < filtered[b].Order })

	if q.Get("all") != "true" {
		page, _ := strconv.Atoi(q.Get("page"))
		size, _ := strconv.Atoi(q.Get("size"))
		if page < 1 {
			page = 1
		}
		if size < 1 {
			size = 10
		}
		start := (page - 1) * size
		if start >= len(filtered) {
			filtered = nil
		} else {
			end := start + size
			if end > len(filtered) {
				end = len(filtered)
			}
			filtered = filtered[start:end]
		}
	}

	ok(w, r, "ok", filtered)
}

func (s *Server) serviceFromForm(r *http.Request, existing *catalog.Service) (catalog.Service, string) {
	svc := catalog.Service{}
	if existing != nil {
		svc = *existing
	}

	if v := formValue(r, "sectionId"); v != "" {
		svc.SectionID = v
	}
	svc.ArTitle = formValue(r, "arTitle")
	svc.EnTitle = formValue(r, "enTitle")
	svc.ArSubTitle = formValue(r, "arSubTitle")
	svc.EnSubTitle = formValue(r, "enSubTitle")
	svc.ArDescription = formValue(r, "arDescription")
	svc.EnDescription = formValue(r, "enDescription")
	svc.ParentServiceID = formValue(r, "parentServiceId")
	svc.Order = formInt(r, "order")
	svc.Unactive = formBool(r, "unactive")
	if url, present := formFileURL(r, "thumbnailFile"); present {
		svc.ThumbnailURL = url
	}
	if url, present := formFileURL(r, "imageFile"); present {
		svc.ImageURL = url
	}
	if url, present := formFileURL(r, "videoFile"); present {
		svc.VideoURL = url
	}
	if url, present := formFileURL(r, "posterFile"); present {
		svc.PosterURL = url
	}

	if svc.ArTitle == "" || svc.EnTitle == "" {
		return svc, "service title is required in both languages"
	}
	if svc.ThumbnailURL == "" {
		return svc, "thumbnail is required"
	}
	return svc, ""
}

// validateParent enforces the two-level service hierarchy on both the add
// and update paths. Callers hold store.mu.
func (s *Server) validateParent(svc catalog.Service) string {
	if svc.ParentServiceID == "" {
		return ""
	}
	if svc.ID != "" && svc.ParentServiceID == svc.ID {
		return "a service cannot be its own parent"
	}
	pidx, found := s.store.serviceByID(svc.ParentServiceID)
	if !found {
		return "parent service not found"
	}
	// The hierarchy is two levels at most.
	if s.store.services[pidx].HasParent() {
		return "parent service is already a variant"
	}
	if svc.ID != "" {
		for _, other := range s.store.services {
			if other.ParentServiceID == svc.ID {
				return "a service with variants cannot become a variant"
			}
		}
	}
	return ""
}

func (s *Server) handleAddService(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	svc, msg := s.serviceFromForm(r, nil)
	if msg != "" {
		fail(w, r, http.StatusBadRequest, msg)
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, found := s.store.sectionByID(svc.SectionID); !found {
		fail(w, r, http.StatusBadRequest, "section not found")
		return
	}
	if msg := s.validateParent(svc); msg != "" {
		fail(w, r, http.StatusBadRequest, msg)
		return
	}

	svc.ID = newID()
	svc.CreatedAt = time.Now().UTC()
	s.store.services = append(s.store.services, svc)
	ok(w, r, "service created", svc)
}

func (s *Server) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid form")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	idx, found := s.store.serviceByID(id)
	if !found {
		fail(w, r, http.StatusBadRequest, "service not found")
		return
	}

	svc, msg := s.serviceFromForm(r, &s.store.services[idx])
	if msg != "" {
		fail(w, r, http.StatusBadRequest, msg)
		return
	}
	if msg := s.validateParent(svc); msg != "" {
		fail(w, r, http.StatusBadRequest, msg)
		return
	}
	now := time.Now().UTC()
	svc.ModifiedAt = &now
	s.store.services[idx] = svc
	ok(w, r, "service updated", svc)
}

func (s *Server) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	idx, found := s.store.serviceByID(id)
	if !found {
		fail(w, r, http.StatusOK, "service not found")
		return
	}
	s.store.removeItemsOfService(id)
	s.store.services = append(s.store.services[:idx], s.store.services[idx+1:]...)
	ok(w, r, "service deleted", nil)
}

func (s *Server) handleAddImages(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid form")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	idx, found := s.store.serviceByID(id)
	if !found {
		fail(w, r, http.StatusBadRequest, "service not found")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		fail(w, r, http.StatusBadRequest, "no images submitted")
		return
	}
	for _, f := range files {
		s.store.services[idx].Images = append(s.store.services[idx].Images, catalog.Image{
			ID:       newID(),
			ImageURL: uploadURL(f),
		})
	}
	ok(w, r, "images added", s.store.services[idx].Images)
}

func (s *Server) handleDeleteImage(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.services {
		imgs := s.store.services[i].Images
		for j := range imgs {
			if imgs[j].ID == id {
				s.store.services[i].Images = append(imgs[:j], imgs[j+1:]...)
				ok(w, r, "image deleted", nil)
				return
			}
		}
	}
	fail(w, r, http.StatusOK, "image not found")
}

// --- items ---

func (s *Server) handleGetItems(w http.ResponseWriter, r *http.Request) {
	serviceID := r.URL.Query().Get("serviceId")

	s.store.mu.Lock()
	var items []catalog.ServiceItem
	for _, item := range s.store.items {
		if serviceID != "" && item.ServiceID != serviceID {
			continue
		}
		items = append(items, item)
	}
	s.store.mu.Unlock()

	sort.SliceStable(items, func(a, b int) bool { return items[a].Order < items[b].Order })
	ok(w, r, "ok", items)
}

func (s *Server) itemFromForm(r *http.Request, existing *catalog.ServiceItem) (catalog.ServiceItem, string) {
	item := catalog.ServiceItem{}
	if existing != nil {
		item = *existing
	}

	if v := formValue(r, "serviceId"); v != "" {
		item.ServiceID = v
	}
	item.ArTitle = formValue(r, "arTitle")
	item.EnTitle = formValue(r, "enTitle")
	item.ArSubTitle = formValue(r, "arSubTitle")
	item.EnSubTitle = formValue(r, "enSubTitle")
	item.ArDescription = formValue(r, "arDescription")
	item.EnDescription = formValue(r, "enDescription")
	item.Order = formInt(r, "order")
	item.Unactive = formBool(r, "unactive")
	item.IsAvailable = formBool(r, "isAvailable")
	item.IsNewArrival = formBool(r, "isNewArrival")
	if v := formValue(r, "price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			item.Price = &price
		}
	}
	if url, present := formFileURL(r, "thumbnailFile"); present {
		item.ThumbnailURL = url
	}
	if url, present := formFileURL(r, "imageFile"); present {
		item.ImageURL = url
	}
	if url, present := formFileURL(r, "videoFile"); present {
		item.VideoURL = url
	}
	if url, present := formFileURL(r, "posterFile"); present {
		item.PosterURL = url
	}

	if item.ArTitle == "" || item.EnTitle == "" {
		return item, "item title is required in both languages"
	}
	if item.ThumbnailURL == "" {
		return item, "thumbnail is required"
	}
	return item, ""
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	item, msg := s.itemFromForm(r, nil)
	if msg != "" {
		fail(w, r, http.StatusBadRequest, msg)
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, found := s.store.serviceByID(item.ServiceID); !found {
		fail(w, r, http.StatusBadRequest, "service not found")
		return
	}

	item.ID = newID()
	item.CreatedAt = time.Now().UTC()
	s.store.items = append(s.store.items, item)
	ok(w, r, "item created", item)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid form")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	idx, found := s.store.itemByID(id)
	if !found {
		fail(w, r, http.StatusBadRequest, "item not found")
		return
	}

	item, msg := s.itemFromForm(r, &s.store.items[idx])
	if msg != "" {
		fail(w, r, http.StatusBadRequest, msg)
		return
	}
	now := time.Now().UTC()
	item.ModifiedAt = &now
	s.store.items[idx] = item
	ok(w, r, "item updated", item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	idx, found := s.store.itemByID(id)
	if !found {
		fail(w, r, http.StatusOK, "item not found")
		return
	}
	s.store.items = append(s.store.items[:idx], s.store.items[idx+1:]...)
	ok(w, r, "item deleted", nil)
}

type attributeBatchRequest struct {
	ItemID     string              `json:"itemId"`
	Attributes []catalog.Attribute `json:"attributes"`
}

func (s *Server) handleAddAttributes(w http.ResponseWriter, r *http.Request) {
	var req attributeBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	for _, attr := range req.Attributes {
		if attr.ArName == "" || attr.EnName == "" {
			fail(w, r, http.StatusBadRequest, "attribute name is required in both languages")
			return
		}
		switch v := attr.Value.(type) {
		case catalog.SingleValue:
			if v.Value == "" {
				fail(w, r, http.StatusBadRequest, "attribute value is required")
				return
			}
		case catalog.DualValue:
			if v.ArValue == "" || v.EnValue == "" {
				fail(w, r, http.StatusBadRequest, "attribute value is required in both languages")
				return
			}
		default:
			fail(w, r, http.StatusBadRequest, "attribute value is required")
			return
		}
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	idx, found := s.store.itemByID(req.ItemID)
	if !found {
		fail(w, r, http.StatusBadRequest, "item not found")
		return
	}

	now := time.Now().UTC()
	for _, attr := range req.Attributes {
		attr.ID = newID()
		attr.ItemID = req.ItemID
		attr.CreatedAt = now
		s.store.items[idx].Attributes = append(s.store.items[idx].Attributes, attr)
	}
	ok(w, r, "attributes created", s.store.items[idx].Attributes)
}

func (s *Server) handleDeleteAttribute(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.items {
		attrs := s.store.items[i].Attributes
		for j := range attrs {
			if attrs[j].ID == id {
				s.store.items[i].Attributes = append(attrs[:j], attrs[j+1:]...)
				ok(w, r, "attribute deleted", nil)
				return
			}
		}
	}
	fail(w, r, http.StatusOK, "attribute not found")
}

// --- contacts ---

func (s *Server) handleGetContacts(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	contacts := make([]catalog.Contact, len(s.store.contacts))
	copy(contacts, s.store.contacts)
	s.store.mu.Unlock()
	ok(w, r, "ok", contacts)
}

func (s *Server) handleAddContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	phone := formValue(r, "phoneNumber")
	if phone == "" {
		fail(w, r, http.StatusBadRequest, "phone number is required")
		return
	}
	icon, present := formFileURL(r, "iconFile")
	if !present {
		fail(w, r, http.StatusBadRequest, "icon is required")
		return
	}

	contact := catalog.Contact{
		ID:          newID(),
		PhoneNumber: phone,
		IconURL:     icon,
		IsPrimary:   formBool(r, "isPrimary"),
		Unactive:    formBool(r, "unActive"),
		CreatedAt:   time.Now().UTC(),
	}

	s.store.mu.Lock()
	s.store.contacts = append(s.store.contacts, contact)
	s.store.mu.Unlock()
	ok(w, r, "contact created", contact)
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid form")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.contacts {
		if s.store.contacts[i].ID != id {
			continue
		}
		c := &s.store.contacts[i]
		if phone := formValue(r, "phoneNumber"); phone != "" {
			c.PhoneNumber = phone
		}
		if icon, present := formFileURL(r, "iconFile"); present {
			c.IconURL = icon
		}
		c.IsPrimary = formBool(r, "isPrimary")
		c.Unactive = formBool(r, "unActive")
		now := time.Now().UTC()
		c.ModifiedAt = &now
		ok(w, r, "contact updated", *c)
		return
	}
	fail(w, r, http.StatusBadRequest, "contact not found")
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.contacts {
		if s.store.contacts[i].ID == id {
			s.store.contacts = append(s.store.contacts[:i], s.store.contacts[i+1:]...)
			ok(w, r, "contact deleted", nil)
			return
		}
	}
	fail(w, r, http.StatusOK, "contact not found")
}

// --- social media ---

func (s *Server) handleGetSocialMedias(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	medias := make([]catalog.SocialMedia, len(s.store.socialMedias))
	copy(medias, s.store.socialMedias)
	s.store.mu.Unlock()
	sort.SliceStable(medias, func(a, b int) bool { return medias[a].DisplayOrder < medias[b].DisplayOrder })
	ok(w, r, "ok", medias)
}

func (s *Server) handleAddSocialMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	name := formValue(r, "name")
	if name == "" {
		fail(w, r, http.StatusBadRequest, "name is required")
		return
	}
	icon, present := formFileURL(r, "iconFile")
	if !present {
		fail(w, r, http.StatusBadRequest, "icon is required")
		return
	}

	media := catalog.SocialMedia{
		ID:           newID(),
		Name:         name,
		IconURL:      icon,
		DisplayOrder: formInt(r, "displayOrder"),
		Unactive:     formBool(r, "unActive"),
		CreatedAt:    time.Now().UTC(),
	}

	s.store.mu.Lock()
	s.store.socialMedias = append(s.store.socialMedias, media)
	s.store.mu.Unlock()
	ok(w, r, "social media created", media)
}

func (s *Server) handleUpdateSocialMedia(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid form")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.socialMedias {
		if s.store.socialMedias[i].ID != id {
			continue
		}
		m := &s.store.socialMedias[i]
		if name := formValue(r, "name"); name != "" {
			m.Name = name
		}
		if icon, present := formFileURL(r, "iconFile"); present {
			m.IconURL = icon
		}
		m.DisplayOrder = formInt(r, "displayOrder")
		m.Unactive = formBool(r, "unActive")
		now := time.Now().UTC()
		m.ModifiedAt = &now
		ok(w, r, "social media updated", *m)
		return
	}
	fail(w, r, http.StatusBadRequest, "social media not found")
}

func (s *Server) handleDeleteSocialMedia(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.socialMedias {
		if s.store.socialMedias[i].ID == id {
			s.store.socialMedias = append(s.store.socialMedias[:i], s.store.socialMedias[i+1:]...)
			ok(w, r, "social media deleted", nil)
			return
		}
	}
	fail(w, r, http.StatusOK, "social media not found")
}

// --- settings, dashboard, pages ---

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	settings := s.store.settings
	s.store.mu.Unlock()
	ok(w, r, "ok", settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req catalog.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ApplicationName == "" || req.Host == "" {
		fail(w, r, http.StatusBadRequest, "application name and host are required")
		return
	}

	s.store.mu.Lock()
	req.ID = s.store.settings.ID
	s.store.settings = req
	settings := s.store.settings
	s.store.mu.Unlock()
	ok(w, r, "settings updated", settings)
}

func (s *Server) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	dash := catalog.Dashboard{
		ServicesCount:     len(s.store.services),
		ItemsCount:        len(s.store.items),
		ContactsCount:     len(s.store.contacts),
		SocialMediasCount: len(s.store.socialMedias),
	}
	for i := len(s.store.services) - 1; i >= 0 && len(dash.LastFiveServices) < 5; i-- {
		svc := s.store.services[i]
		dash.LastFiveServices = append(dash.LastFiveServices, catalog.DashboardEntry{
			ArTitle:      svc.ArTitle,
			EnTitle:      svc.EnTitle,
			ArSubTitle:   svc.ArSubTitle,
			EnSubTitle:   svc.EnSubTitle,
			ThumbnailURL: svc.ThumbnailURL,
		})
	}
	for i := len(s.store.items) - 1; i >= 0 && len(dash.LastFiveItems) < 5; i-- {
		item := s.store.items[i]
		available := item.IsAvailable
		newArrival := item.IsNewArrival
		dash.LastFiveItems = append(dash.LastFiveItems, catalog.DashboardEntry{
			ArTitle:      item.ArTitle,
			EnTitle:      item.EnTitle,
			ArSubTitle:   item.ArSubTitle,
			EnSubTitle:   item.EnSubTitle,
			ThumbnailURL: item.ThumbnailURL,
			IsAvailable:  &available,
			IsNewArrival: &newArrival,
		})
	}
	ok(w, r, "ok", dash)
}

func (s *Server) handleGetPages(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	pages := make([]catalog.Page, len(s.store.pages))
	copy(pages, s.store.pages)
	s.store.mu.Unlock()
	ok(w, r, "ok", pages)
}
