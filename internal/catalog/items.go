package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/resource"
)

type ItemPayload struct {
	New           bool     `json:"-"`
	ServiceID     string   `json:"serviceId" validate:"required"`
	ArTitle       string   `json:"arTitle" validate:"required"`
	EnTitle       string   `json:"enTitle" validate:"required"`
	ArSubTitle    string   `json:"arSubTitle,omitempty"`
	EnSubTitle    string   `json:"enSubTitle,omitempty"`
	ArDescription string   `json:"arDescription,omitempty"`
	EnDescription string   `json:"enDescription,omitempty"`
	Thumbnail     FileRef  `json:"thumbnailFile" validate:"required_if=New true,image"`
	Image         FileRef  `json:"imageFile" validate:"image"`
	Video         FileRef  `json:"videoFile" validate:"video"`
	Poster        FileRef  `json:"posterFile" validate:"image"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsAvailable   bool     `json:"isAvailable"`
	IsNewArrival  bool     `json:"isNewArrival"`
	Order         int      `json:"order"`
	Unactive      bool     `json:"unactive"`
}

func (p ItemPayload) form() *api.Form {
	f := api.NewForm()
	f.Set("serviceId", p.ServiceID)
	f.Set("arTitle", p.ArTitle)
	f.Set("enTitle", p.EnTitle)
	f.SetOptional("arSubTitle", p.ArSubTitle)
	f.SetOptional("enSubTitle", p.EnSubTitle)
	f.SetOptional("arDescription", p.ArDescription)
	f.SetOptional("enDescription", p.EnDescription)
	if p.Price != nil {
		f.SetFloat("price", *p.Price)
	}
	f.SetBool("isAvailable", p.IsAvailable)
	f.SetBool("isNewArrival", p.IsNewArrival)
	f.SetInt("order", p.Order)
	f.SetBool("unactive", p.Unactive)
	addFileRef(f, "thumbnailFile", p.Thumbnail)
	addFileRef(f, "imageFile", p.Image)
	addFileRef(f, "videoFile", p.Video)
	addFileRef(f, "posterFile", p.Poster)
	return f
}

func (c *Client) Items(ctx context.Context, serviceID string) ([]ServiceItem, error) {
	q := url.Values{}
	if serviceID != "" {
		q.Set("serviceId", serviceID)
	}
	var items []ServiceItem
	env, err := c.store.Fetch(ctx, resource.Items, []string{serviceID}, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Get(ctx, "/Items/getItems", q)
	}, &items)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return []ServiceItem{}, nil
	}
	return items, nil
}

func (c *Client) CreateItem(ctx context.Context, p ItemPayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.CreateItem, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PostForm(ctx, "/Items/addItem", nil, p.form())
	})
}

func (c *Client) UpdateItem(ctx context.Context, id string, p ItemPayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.UpdateItem, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PutForm(ctx, "/Items/updateItem", idQuery(id), p.form())
	})
}

func (c *Client) DeleteItem(ctx context.Context, id string) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.DeleteItem, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Delete(ctx, "/items/deleteItem", idQuery(id))
	})
}

type attributeBatch struct {
	ItemID     string      `json:"itemId"`
	Attributes []Attribute `json:"attributes"`
}

func (c *Client) AddAttributes(ctx context.Context, itemID string, attrs []Attribute) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.CreateAttributes, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PostJSON(ctx, "/Items/addAttribute", nil, attributeBatch{ItemID: itemID, Attributes: attrs})
	})
}

func (c *Client) DeleteAttribute(ctx context.Context, id string) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.DeleteAttribute, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Delete(ctx, "/items/deleteAttribute", idQuery(id))
	})
}

// ItemWriteResult reports the two halves of an item write independently.
// Attributes is nil when no attribute write was attempted; AttributesErr
// carries a transport failure of step two, or the reason step two was
// skipped despite attributes being requested. Step one is never rolled back.
type ItemWriteResult struct {
	Item          *api.Envelope
	Attributes    *api.Envelope
	AttributesErr error
}

// CreateItemWithAttributes performs the dependent two-step write: the item
// must exist (and yield its server-issued id) before attributes can
// reference it. Step two runs only when step one succeeds.
func (c *Client) CreateItemWithAttributes(ctx context.Context, p ItemPayload, attrs []Attribute) (ItemWriteResult, error) {
	res := ItemWriteResult{}

	env, err := c.CreateItem(ctx, p)
	if err != nil {
		return res, err
	}
	res.Item = env
	if !env.Success || len(attrs) == 0 {
		return res, nil
	}

	var created ServiceItem
	if err := env.Decode(&created); err != nil {
		res.AttributesErr = fmt.Errorf("decode created item: %w", err)
		return res, nil
	}
	if created.ID == "" {
		res.AttributesErr = errors.New("created item carries no id, attributes not sent")
		return res, nil
	}

	attrEnv, attrErr := c.AddAttributes(ctx, created.ID, attrs)
	res.Attributes = attrEnv
	res.AttributesErr = attrErr
	return res, nil
}

// UpdateItemWithAttributes updates the item and then creates any newly added
// attributes. Persisted attributes are immutable; they are only ever
// deleted, via DeleteAttribute.
func (c *Client) UpdateItemWithAttributes(ctx context.Context, id string, p ItemPayload, newAttrs []Attribute) (ItemWriteResult, error) {
	res := ItemWriteResult{}

	env, err := c.UpdateItem(ctx, id, p)
	if err != nil {
		return res, err
	}
	res.Item = env
	if !env.Success || len(newAttrs) == 0 {
		return res, nil
	}

	attrEnv, attrErr := c.AddAttributes(ctx, id, newAttrs)
	res.Attributes = attrEnv
	res.AttributesErr = attrErr
	return res, nil
}

// PendingAttributes keeps only attributes that have not been persisted yet.
func PendingAttributes(attrs []Attribute) []Attribute {
	out := make([]Attribute, 0, len(attrs))
	for _, a := range attrs {
		if !a.Persisted() {
			out = append(out, a)
		}
	}
	return out
}
