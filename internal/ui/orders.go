package ui

import (
	"time"

	"tavolo/internal/listview"
	"tavolo/internal/model"
	"tavolo/internal/util"
)

// OrdersModel is the food-orders list screen.
type OrdersModel struct {
	*listScreen[model.Order]
}

func NewOrdersModel(interval time.Duration) *OrdersModel {
	cfg := listview.Config[model.Order]{
		SearchFields: func(o model.Order) []string {
			return []string{o.ID, o.OrderNo, o.CustomerName, o.CustomerPhone}
		},
		Status:              func(o model.Order) string { return o.Status },
		CreatedAt:           func(o model.Order) time.Time { return o.CreatedAt },
		ResetOnFilterChange: true,
		PageSize:            listview.DefaultPageSize,
		PollInterval:        interval,
	}
	columns := []column[model.Order]{
		{label: "order", width: 10, cell: func(o model.Order) string { return o.OrderNo }},
		{label: "customer", width: 20, cell: func(o model.Order) string { return o.CustomerName }},
		{label: "phone", width: 14, cell: func(o model.Order) string { return o.CustomerPhone }},
		{label: "table", width: 7, cell: func(o model.Order) string { return o.TableNo }},
		{label: "total", width: 10, cell: func(o model.Order) string { return util.FormatMoney(o.TotalBill) }},
		{label: "placed", width: 13, cell: func(o model.Order) string { return util.FormatTimestamp(o.CreatedAt) }},
		{label: "status", width: 16, cell: func(o model.Order) string { return o.Status }},
	}
	tabs := []string{listview.TabAll, "preparing", "out-for-delivery", "delivered", "cancelled"}
	dates := []string{"", "today", "yesterday", "week", "month", "last-month"}
	return &OrdersModel{newListScreen("Orders", cfg, columns, tabs, dates)}
}

// Revenue sums the bills of the rows matching the current filters, not
// just the visible page.
func (m *OrdersModel) Revenue() float64 {
	var total float64
	for _, o := range m.rows {
		total += o.TotalBill
	}
	return total
}

// View appends the filtered-set revenue under the shared list chrome.
func (m *OrdersModel) View(width, height int, lastSync time.Time, stale bool) string {
	base := m.listScreen.View(width, height-1, lastSync, stale)
	revenue := StatusBarStyle.Width(width).Render("revenue " + util.FormatMoney(m.Revenue()))
	return base + "\n" + revenue
}
