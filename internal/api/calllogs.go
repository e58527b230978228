package api

import (
	"context"
	"net/url"
	"strings"

	"tavolo/internal/model"
)

// CallLogs lists the AI assistant's phone activity for a tenant.
func (c *Client) CallLogs(ctx context.Context, restaurantID string) ([]model.CallLog, error) {
	q := url.Values{}
	q.Set("restaurant_id", strings.TrimSpace(restaurantID))
	var out []model.CallLog
	if err := c.get(ctx, "/calllog/calllog_list", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
