package api

import (
	"context"
	"net/url"
	"strings"

	"tavolo/internal/model"
)

// Orders lists a tenant's food orders.
func (c *Client) Orders(ctx context.Context, restaurantID string) ([]model.Order, error) {
	q := url.Values{}
	q.Set("restaurant_id", strings.TrimSpace(restaurantID))
	var out []model.Order
	if err := c.get(ctx, "/order/order_list", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Order fetches one order with its line items.
func (c *Client) Order(ctx context.Context, id string) (*model.Order, error) {
	var out model.Order
	if err := c.postForm(ctx, "/order/view_order/"+url.PathEscape(strings.TrimSpace(id)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus moves an order along its lifecycle.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	form := url.Values{}
	form.Set("status", strings.TrimSpace(status))
	return c.putForm(ctx, "/order/update_order/"+url.PathEscape(strings.TrimSpace(id)), form, nil)
}

// DeleteOrder removes an order permanently.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.delete(ctx, "/order/delete_order/"+url.PathEscape(strings.TrimSpace(id)))
}
