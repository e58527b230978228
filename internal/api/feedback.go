package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"tavolo/internal/model"
)

// Feedback lists a tenant's customer reviews.
func (c *Client) Feedback(ctx context.Context, restaurantID string) ([]model.Feedback, error) {
	q := url.Values{}
	q.Set("restaurantId", strings.TrimSpace(restaurantID))
	var out []model.Feedback
	if err := c.get(ctx, "/feedback/feedback_list", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetFeedbackVisibility hides or shows a review on the tenant's public page.
func (c *Client) SetFeedbackVisibility(ctx context.Context, id string, visible bool) error {
	form := url.Values{}
	form.Set("isVisible", strconv.FormatBool(visible))
	return c.putForm(ctx, "/feedback/hide_show_feedback/"+url.PathEscape(strings.TrimSpace(id)), form, nil)
}
