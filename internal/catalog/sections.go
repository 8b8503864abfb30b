package catalog

import (
	"context"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/resource"
)

type SectionPayload struct {
	ArTitle       string `json:"arTitle" validate:"required"`
	EnTitle       string `json:"enTitle" validate:"required"`
	ArDescription string `json:"arDescription,omitempty"`
	EnDescription string `json:"enDescription,omitempty"`
	PageCode      string `json:"pageCode,omitempty"`
	OrderOnPage   int    `json:"orderOnPage"`
	Unactive      bool   `json:"unactive"`
}

// Sections returns the cached section list, services embedded. A failure
// envelope yields an empty list, the way the dashboard always rendered it.
func (c *Client) Sections(ctx context.Context) ([]Section, error) {
	var sections []Section
	env, err := c.store.Fetch(ctx, resource.Sections, nil, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Get(ctx, "/Sections/getSections", nil)
	}, &sections)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return []Section{}, nil
	}
	return sections, nil
}

func (c *Client) CreateSection(ctx context.Context, p SectionPayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.CreateSection, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PostJSON(ctx, "/Sections/addSection", nil, p)
	})
}

func (c *Client) UpdateSection(ctx context.Context, id string, p SectionPayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.UpdateSection, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PutJSON(ctx, "/Sections/updateSection", idQuery(id), p)
	})
}

func (c *Client) DeleteSection(ctx context.Context, id string) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.DeleteSection, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Delete(ctx, "/Sections/deleteSection", idQuery(id))
	})
}

// Pages lists the public page codes a section can be attached to.
func (c *Client) Pages(ctx context.Context) ([]Page, error) {
	var pages []Page
	env, err := c.store.Fetch(ctx, resource.Pages, nil, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Get(ctx, "/Pages/getPages", nil)
	}, &pages)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return []Page{}, nil
	}
	return pages, nil
}
