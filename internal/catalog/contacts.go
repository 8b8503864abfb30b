package catalog

import (
	"context"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/resource"
)

type ContactPayload struct {
	New         bool    `json:"-"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Icon        FileRef `json:"iconFile" validate:"required_if=New true,image"`
	IsPrimary   bool    `json:"isPrimary"`
	Unactive    bool    `json:"unActive"`
}

func (p ContactPayload) form() *api.Form {
	f := api.NewForm()
	f.Set("phoneNumber", p.PhoneNumber)
	f.SetBool("isPrimary", p.IsPrimary)
	f.SetBool("unActive", p.Unactive)
	addFileRef(f, "iconFile", p.Icon)
	return f
}

func (c *Client) Contacts(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	env, err := c.store.Fetch(ctx, resource.Contacts, nil, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Get(ctx, "/Contacts/getContacts", nil)
	}, &contacts)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return []Contact{}, nil
	}
	return contacts, nil
}

func (c *Client) CreateContact(ctx context.Context, p ContactPayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.CreateContact, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PostForm(ctx, "/contacts/addContact", nil, p.form())
	})
}

func (c *Client) UpdateContact(ctx context.Context, id string, p ContactPayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.UpdateContact, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PutForm(ctx, "/Contacts/updateContact", idQuery(id), p.form())
	})
}

func (c *Client) DeleteContact(ctx context.Context, id string) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.DeleteContact, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Delete(ctx, "/Contacts/deleteContact", idQuery(id))
	})
}
