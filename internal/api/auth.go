package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tavolo/internal/model"
)

// SignInResult is the payload of a successful sign-in.
type SignInResult struct {
	Token string       `json:"token"`
	User  model.Tenant `json:"userdetails"`
}

// SignIn authenticates a super-admin. It is the only unauthenticated call.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	form := url.Values{}
	form.Set("email", strings.TrimSpace(email))
	form.Set("password", password)
	form.Set("userRoleType", "0")

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/sign_in", form, false)
	if err != nil {
		return nil, err
	}
	var out SignInResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Token) == "" {
		return nil, fmt.Errorf("sign in: empty token in response")
	}
	return &out, nil
}

// Tenants lists every restaurant account.
func (c *Client) Tenants(ctx context.Context) ([]model.Tenant, error) {
	var out []model.Tenant
	if err := c.get(ctx, "/auth/users_list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TenantProfile fetches one tenant's full profile.
func (c *Client) TenantProfile(ctx context.Context, id string) (*model.Tenant, error) {
	form := url.Values{}
	form.Set("id", strings.TrimSpace(id))
	var out model.Tenant
	if err := c.postForm(ctx, "/auth/user_profile", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterTenant creates a restaurant account. Table types go over the wire
// bracket-indexed, one group of fields per entry.
func (c *Client) RegisterTenant(ctx context.Context, t model.NewTenant) error {
	form := url.Values{}
	form.Set("username", strings.TrimSpace(t.Username))
	form.Set("email", strings.TrimSpace(t.Email))
	form.Set("phoneNumber", strings.TrimSpace(t.PhoneNumber))
	form.Set("password", t.Password)
	form.Set("restaurantName", strings.TrimSpace(t.RestaurantName))
	form.Set("restaurantAddress", strings.TrimSpace(t.RestaurantAddress))
	form.Set("userRoleType", "1")
	form.Set("createdBy", strings.TrimSpace(t.CreatedBy))
	encodeTableTypes(form, t.TableTypes)
	return c.postForm(ctx, "/auth/register", form, nil)
}

// UpdateTenantProfile applies the editable tenant fields.
func (c *Client) UpdateTenantProfile(ctx context.Context, id string, t model.UpdateTenant) error {
	form := url.Values{}
	form.Set("username", strings.TrimSpace(t.Username))
	form.Set("email", strings.TrimSpace(t.Email))
	form.Set("phoneNumber", strings.TrimSpace(t.PhoneNumber))
	form.Set("restaurantName", strings.TrimSpace(t.RestaurantName))
	form.Set("restaurantAddress", strings.TrimSpace(t.RestaurantAddress))
	if s := strings.TrimSpace(t.Status); s != "" {
		form.Set("status", s)
	}
	encodeTableTypes(form, t.TableTypes)
	return c.putForm(ctx, "/auth/update_user_profile/"+url.PathEscape(strings.TrimSpace(id)), form, nil)
}

// SetTenantStatus blocks or unblocks an account without touching the rest of
// the profile.
func (c *Client) SetTenantStatus(ctx context.Context, id, status string) error {
	form := url.Values{}
	form.Set("status", strings.TrimSpace(status))
	return c.putForm(ctx, "/auth/update_user_profile/"+url.PathEscape(strings.TrimSpace(id)), form, nil)
}

// ChangePassword rotates the signed-in admin's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	form := url.Values{}
	form.Set("oldPassword", oldPassword)
	form.Set("newPassword", newPassword)
	return c.postForm(ctx, "/auth/change_password", form, nil)
}

func encodeTableTypes(form url.Values, types []model.TableTypeConfig) {
	total := 0
	for i, tt := range types {
		prefix := "tableTypes[" + strconv.Itoa(i) + "]"
		form.Set(prefix+"[id]", strings.TrimSpace(tt.ID))
		form.Set(prefix+"[name]", strings.TrimSpace(tt.Name))
		form.Set(prefix+"[status]", strconv.FormatBool(tt.Status))
		form.Set(prefix+"[noOfTables]", strconv.Itoa(tt.NoOfTables))
		total += tt.NoOfTables
	}
	if len(types) > 0 {
		form.Set("noOfTables", strconv.Itoa(total))
	}
}
