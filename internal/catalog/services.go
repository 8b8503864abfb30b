package catalog

import (
	"context"
	"net/url"
	"strconv"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/resource"
)

type ServiceFilter struct {
	ID        string
	SectionID string
	ArTitle   string
	EnTitle   string
	Page      int
	Size      int
	All       bool
}

func (f ServiceFilter) query() url.Values {
	page := f.Page
	if page == 0 {
		page = 1
	}
	size := f.Size
	if size == 0 {
		size = 10
	}
	q := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
	if f.ID != "" {
		q.Set("id", f.ID)
	}
	if f.SectionID != "" {
		q.Set("sectionId", f.SectionID)
	}
	if f.ArTitle != "" {
		q.Set("arTitle", f.ArTitle)
	}
	if f.EnTitle != "" {
		q.Set("enTitle", f.EnTitle)
	}
	if f.All {
		q.Set("all", "true")
	}
	return q
}

func (f ServiceFilter) cacheParams() []string {
	return []string{
		strconv.Itoa(f.Page), strconv.Itoa(f.Size),
		f.SectionID, f.ArTitle, f.EnTitle, f.ID,
		strconv.FormatBool(f.All),
	}
}

// ServicePayload covers both create and edit. New marks the create flow: a
// thumbnail must be chosen before the request is attempted; on edit an
// existing URL satisfies it.
type ServicePayload struct {
	New             bool    `json:"-"`
	SectionID       string  `json:"sectionId" validate:"required"`
	ArTitle         string  `json:"arTitle" validate:"required"`
	EnTitle         string  `json:"enTitle" validate:"required"`
	ArSubTitle      string  `json:"arSubTitle,omitempty"`
	EnSubTitle      string  `json:"enSubTitle,omitempty"`
	ArDescription   string  `json:"arDescription,omitempty"`
	EnDescription   string  `json:"enDescription,omitempty"`
	ParentServiceID string  `json:"parentServiceId,omitempty"`
	Thumbnail       FileRef `json:"thumbnailFile" validate:"required_if=New true,image"`
	Image           FileRef `json:"imageFile" validate:"image"`
	Video           FileRef `json:"videoFile" validate:"video"`
	Poster          FileRef `json:"posterFile" validate:"image"`
	Order           int     `json:"order"`
	Unactive        bool    `json:"unactive"`
}

func (p ServicePayload) form() *api.Form {
	f := api.NewForm()
	f.Set("sectionId", p.SectionID)
	f.Set("arTitle", p.ArTitle)
	f.Set("enTitle", p.EnTitle)
	f.SetOptional("arSubTitle", p.ArSubTitle)
	f.SetOptional("enSubTitle", p.EnSubTitle)
	f.SetOptional("arDescription", p.ArDescription)
	f.SetOptional("enDescription", p.EnDescription)
	f.SetOptional("parentServiceId", p.ParentServiceID)
	f.SetInt("order", p.Order)
	f.SetBool("unactive", p.Unactive)
	addFileRef(f, "thumbnailFile", p.Thumbnail)
	addFileRef(f, "imageFile", p.Image)
	addFileRef(f, "videoFile", p.Video)
	addFileRef(f, "posterFile", p.Poster)
	return f
}

// addFileRef attaches a newly chosen file, or echoes the existing URL so the
// backend keeps it.
func addFileRef(f *api.Form, key string, ref FileRef) {
	if ref.Path != "" {
		f.AddFile(key, ref.Path)
		return
	}
	f.SetOptional(key, ref.URL)
}

func (c *Client) Services(ctx context.Context, filter ServiceFilter) ([]Service, error) {
	var services []Service
	env, err := c.store.Fetch(ctx, resource.Services, filter.cacheParams(), func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Get(ctx, "/Services/getServices", filter.query())
	}, &services)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return []Service{}, nil
	}
	return services, nil
}

func (c *Client) CreateService(ctx context.Context, p ServicePayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.CreateService, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PostForm(ctx, "/Services/addService", nil, p.form())
	})
}

func (c *Client) UpdateService(ctx context.Context, id string, p ServicePayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.UpdateService, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PutForm(ctx, "/Services/updateService", idQuery(id), p.form())
	})
}

func (c *Client) DeleteService(ctx context.Context, id string) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.DeleteService, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Delete(ctx, "/Services/deleteService", idQuery(id))
	})
}

// AddServiceImages uploads gallery images for a service.
func (c *Client) AddServiceImages(ctx context.Context, serviceID string, paths []string) (*api.Envelope, error) {
	f := api.NewForm()
	for _, p := range paths {
		f.AddFile("images", p)
	}
	return c.store.Mutate(ctx, resource.AddServiceImages, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PostForm(ctx, "/Services/addImages", idQuery(serviceID), f)
	})
}

func (c *Client) DeleteImage(ctx context.Context, imageID string) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.DeleteImage, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Delete(ctx, "/Services/deleteImage", idQuery(imageID))
	})
}
