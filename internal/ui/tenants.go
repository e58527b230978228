package ui

import (
	"strconv"
	"time"

	"tavolo/internal/listview"
	"tavolo/internal/model"
)

// TenantsModel is the restaurant-accounts list screen.
type TenantsModel struct {
	*listScreen[model.Tenant]
}

func NewTenantsModel(interval time.Duration) *TenantsModel {
	cfg := listview.Config[model.Tenant]{
		SearchFields: func(t model.Tenant) []string {
			return []string{t.ID, t.Username, t.Email, t.PhoneNumber, t.RestaurantName}
		},
		Status:              func(t model.Tenant) string { return t.Status },
		CreatedAt:           func(t model.Tenant) time.Time { return t.CreatedAt },
		ResetOnFilterChange: true,
		PageSize:            listview.DefaultPageSize,
		PollInterval:        interval,
	}
	columns := []column[model.Tenant]{
		{label: "restaurant", width: 24, cell: func(t model.Tenant) string { return t.RestaurantName }},
		{label: "owner", width: 16, cell: func(t model.Tenant) string { return t.Username }},
		{label: "email", width: 26, cell: func(t model.Tenant) string { return t.Email }},
		{label: "phone", width: 14, cell: func(t model.Tenant) string { return t.PhoneNumber }},
		{label: "tables", width: 7, cell: func(t model.Tenant) string { return strconv.Itoa(t.NoOfTables) }},
		{label: "status", width: 9, cell: func(t model.Tenant) string { return t.Status }},
		{label: "last payment", width: 14, cell: func(t model.Tenant) string { return t.LastPaymentDate }},
	}
	tabs := []string{listview.TabAll, model.TenantActive, model.TenantBlocked}
	dates := []string{"", "today", "week", "month", "last-month"}
	return &TenantsModel{newListScreen("Tenants", cfg, columns, tabs, dates)}
}
