package api

import (
	"context"

	"tavolo/internal/model"
)

// TableTypes lists the catalog of table types tenants can be assigned.
func (c *Client) TableTypes(ctx context.Context) ([]model.TableType, error) {
	var out []model.TableType
	if err := c.get(ctx, "/tabletype/tabletype_list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
