package catalog

import (
	"net/url"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/resource"
)

// Client groups the per-entity operations behind one handle. Reads go
// through the resource store's cache; writes go through its mutation
// controller so invalidation follows the declared table.
type Client struct {
	api   *api.Client
	store *resource.Store
}

func NewClient(apiClient *api.Client, store *resource.Store) *Client {
	return &Client{api: apiClient, store: store}
}

// Locale exposes the transport locale so views pick matching display fields.
func (c *Client) Locale() string {
	return c.api.Locale()
}

func idQuery(id string) url.Values {
	return url.Values{"id": {id}}
}
