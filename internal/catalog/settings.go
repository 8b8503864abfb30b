package catalog

import (
	"context"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/resource"
)

type SettingsPayload struct {
	ApplicationName                 string `json:"applicationName" validate:"required"`
	ArSummary                       string `json:"arSummary,omitempty"`
	EnSummary                       string `json:"enSummary,omitempty"`
	OtpExpiryInMin                  int    `json:"otpExpiryInMin" validate:"min=1,max=60"`
	MisLoginAttemptsLimit           int    `json:"misLoginAttemptsLimit" validate:"min=1,max=10"`
	PasswordMinLength               int    `json:"passwordMinLength" validate:"min=6,max=32"`
	PasswordRequireUppercase        bool   `json:"passwordRequireUppercase"`
	PasswordRequireLowercase        bool   `json:"passwordRequireLowercase"`
	PasswordRequireNumber           bool   `json:"passwordRequireNumber"`
	PasswordRequireSpecialCharacter bool   `json:"passwordRequireSpecialCharacter"`
	Host                            string `json:"host" validate:"required"`
	Port                            int    `json:"port" validate:"min=1,max=65535"`
	UseSsl                          bool   `json:"useSsl"`
	Email                           string `json:"email" validate:"required,email"`
	Password                        string `json:"password,omitempty"`
}

// Settings reads the singleton settings record.
func (c *Client) Settings(ctx context.Context) (*Settings, error) {
	var settings Settings
	env, err := c.store.Fetch(ctx, resource.Settings, nil, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Get(ctx, "/Settings/getSettings", nil)
	}, &settings)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, nil
	}
	return &settings, nil
}

// UpdateSettings writes the whole record in one PUT; there is no create or
// delete for settings.
func (c *Client) UpdateSettings(ctx context.Context, p SettingsPayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.UpdateSettings, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PutJSON(ctx, "/Settings/updateSettings", nil, p)
	})
}
