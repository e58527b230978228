package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"tavolo/internal/model"
)

// MenuItems lists a tenant's dishes.
func (c *Client) MenuItems(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	q := url.Values{}
	q.Set("restaurant_id", strings.TrimSpace(restaurantID))
	var out []model.MenuItem
	if err := c.get(ctx, "/menuitem/menuitem_list", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MenuCategories lists a tenant's menu categories.
func (c *Client) MenuCategories(ctx context.Context, restaurantID string) ([]model.MenuCategory, error) {
	form := url.Values{}
	form.Set("restaurant_id", strings.TrimSpace(restaurantID))
	var out []model.MenuCategory
	if err := c.postForm(ctx, "/menucategory/menucategory_list", form, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMenuItem adds a dish to a tenant's menu.
func (c *Client) CreateMenuItem(ctx context.Context, restaurantID string, item model.NewMenuItem) error {
	form := menuItemForm(item)
	form.Set("restaurant_id", strings.TrimSpace(restaurantID))
	return c.postForm(ctx, "/menuitem/create_menuitem", form, nil)
}

// UpdateMenuItem applies the editable dish fields.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, item model.NewMenuItem) error {
	return c.putForm(ctx, "/menuitem/update/"+url.PathEscape(strings.TrimSpace(id)), menuItemForm(item), nil)
}

// DeleteMenuItem removes a dish permanently.
func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.delete(ctx, "/menuitem/delete/"+url.PathEscape(strings.TrimSpace(id)))
}

// CreateMenuCategory adds a category to a tenant's menu.
func (c *Client) CreateMenuCategory(ctx context.Context, restaurantID, name string) error {
	form := url.Values{}
	form.Set("restaurant_id", strings.TrimSpace(restaurantID))
	form.Set("name", strings.TrimSpace(name))
	return c.postForm(ctx, "/menucategory/create_menucategory", form, nil)
}

func menuItemForm(item model.NewMenuItem) url.Values {
	form := url.Values{}
	form.Set("name", strings.TrimSpace(item.Name))
	form.Set("category", strings.TrimSpace(item.Category))
	form.Set("price", strconv.FormatFloat(item.Price, 'f', 2, 64))
	form.Set("description", strings.TrimSpace(item.Description))
	form.Set("isAvailable", strconv.FormatBool(item.IsAvailable))
	return form
}
