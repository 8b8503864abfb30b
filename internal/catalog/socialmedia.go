package catalog

import (
	"context"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/resource"
)

type SocialMediaPayload struct {
	New          bool    `json:"-"`
	Name         string  `json:"name" validate:"required"`
	Icon         FileRef `json:"iconFile" validate:"required_if=New true,image"`
	DisplayOrder int     `json:"displayOrder" validate:"gte=0"`
	Unactive     bool    `json:"unActive"`
}

func (p SocialMediaPayload) form() *api.Form {
	f := api.NewForm()
	f.Set("name", p.Name)
	f.SetInt("displayOrder", p.DisplayOrder)
	f.SetBool("unActive", p.Unactive)
	addFileRef(f, "iconFile", p.Icon)
	return f
}

func (c *Client) SocialMedias(ctx context.Context) ([]SocialMedia, error) {
	var medias []SocialMedia
	env, err := c.store.Fetch(ctx, resource.SocialMedias, nil, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Get(ctx, "/SocialMedias/getSocialMedias", nil)
	}, &medias)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return []SocialMedia{}, nil
	}
	return medias, nil
}

func (c *Client) CreateSocialMedia(ctx context.Context, p SocialMediaPayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.CreateSocialMedia, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PostForm(ctx, "/socialMedias/addSocialMedia", nil, p.form())
	})
}

func (c *Client) UpdateSocialMedia(ctx context.Context, id string, p SocialMediaPayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.UpdateSocialMedia, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PutForm(ctx, "/SocialMedias/updateSocialMedia", idQuery(id), p.form())
	})
}

func (c *Client) DeleteSocialMedia(ctx context.Context, id string) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.DeleteSocialMedia, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Delete(ctx, "/SocialMedias/deleteSocialMedia", idQuery(id))
	})
}
