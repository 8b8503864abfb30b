package catalog

import (
	"context"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/api"
	"github.com/2024FullStackDeveloper/melfak-admin/internal/resource"
)

type SignInPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyPayload struct {
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordPayload is the OTP-based reset used from the sign-in screen.
type ChangePasswordPayload struct {
	Email       string `json:"email" validate:"required,email"`
	Otp         string `json:"otp" validate:"required,len=4"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type ProfilePayload struct {
	Email        string `json:"email" validate:"required,email"`
	MobileNumber string `json:"mobileNumber" validate:"required"`
	FullName     string `json:"fullName" validate:"required"`
}

// PasswordPayload changes the signed-in user's password. Confirm never goes
// over the wire; it only has to match NewPassword client-side.
type PasswordPayload struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=6"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	Confirm         string `json:"-" validate:"eqfield=NewPassword"`
}

func (c *Client) Login(ctx context.Context, p SignInPayload) (*api.Envelope, *LoginResult, error) {
	env, err := c.api.PostJSON(ctx, "/Authentication/login", nil, p)
	if err != nil {
		return nil, nil, err
	}
	if !env.Success {
		return env, nil, nil
	}
	var result LoginResult
	if err := env.Decode(&result); err != nil {
		return env, nil, err
	}
	return env, &result, nil
}

// VerifyEmail asks the backend to send a password-reset OTP.
func (c *Client) VerifyEmail(ctx context.Context, p VerifyPayload) (*api.Envelope, error) {
	return c.api.PostJSON(ctx, "/Authentication/verify", nil, p)
}

func (c *Client) ChangePassword(ctx context.Context, p ChangePasswordPayload) (*api.Envelope, error) {
	return c.api.PostJSON(ctx, "/Authentication/changePassword", nil, p)
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	env, err := c.store.Fetch(ctx, resource.UserInfo, nil, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Get(ctx, "/Users/me", nil)
	}, &user)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, nil
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, p ProfilePayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.UpdateProfile, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PutJSON(ctx, "/Users/updateProfile", nil, p)
	})
}

func (c *Client) UpdatePassword(ctx context.Context, p PasswordPayload) (*api.Envelope, error) {
	return c.store.Mutate(ctx, resource.UpdatePassword, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.PutJSON(ctx, "/Users/updatePassword", nil, p)
	})
}

func (c *Client) Logout(ctx context.Context) (*api.Envelope, error) {
	return c.api.PostJSON(ctx, "/Users/logout", nil, struct{}{})
}

func (c *Client) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var dash Dashboard
	env, err := c.store.Fetch(ctx, resource.Dashboard, nil, func(ctx context.Context) (*api.Envelope, error) {
		return c.api.Get(ctx, "/dashboard/getDashboard", nil)
	}, &dash)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, nil
	}
	return &dash, nil
}
