package api

import (
	"context"

	"tavolo/internal/model"
)

// Recordings lists stored call audio files.
func (c *Client) Recordings(ctx context.Context) ([]model.Recording, error) {
	var out []model.Recording
	if err := c.get(ctx, "/admin/audio", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
