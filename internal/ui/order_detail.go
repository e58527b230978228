package ui

import (
	"fmt"
	"strings"

	"tavolo/internal/model"
	"tavolo/internal/util"
)

// OrderDetailModel shows one order with its line items.
type OrderDetailModel struct {
	order model.Order
}

func NewOrderDetailModel(o model.Order) *OrderDetailModel {
	return &OrderDetailModel{order: o}
}

func (m *OrderDetailModel) Order() model.Order { return m.order }

// NextStatus is the lifecycle step the "s" key advances to, empty when the
// order is already terminal.
func (m *OrderDetailModel) NextStatus() string {
	switch m.order.Status {
	case model.OrderPreparing:
		return model.OrderOutForDelivery
	case model.OrderOutForDelivery:
		return model.OrderDelivered
	default:
		return ""
	}
}

func (m *OrderDetailModel) View(width, height int) string {
	o := m.order
	var b strings.Builder

	b.WriteString(LabelStyle.Render("Order "+o.OrderNo) + "\n\n")
	writeDetailRow(&b, "Customer", o.CustomerName)
	writeDetailRow(&b, "Phone", o.CustomerPhone)
	writeDetailRow(&b, "Table", o.TableNo)
	writeDetailRow(&b, "Placed", util.FormatTimestamp(o.CreatedAt))
	writeDetailRow(&b, "Status", o.Status)

	b.WriteString("\n" + LabelStyle.Render("Items") + "\n")
	if len(o.Items) == 0 {
		b.WriteString(EmptyStateStyle.Render("No line items."))
	}
	for _, item := range o.Items {
		b.WriteString(fmt.Sprintf("  %-28s x%-3d %10s\n",
			util.TruncateString(item.Name, 28), item.Quantity, util.FormatMoney(item.Price)))
	}
	b.WriteString(fmt.Sprintf("\n  %-33s %10s\n", LabelStyle.Render("Total"), util.FormatMoney(o.TotalBill)))

	if next := m.NextStatus(); next != "" {
		b.WriteString("\n" + HelpDescStyle.Render("s advances status to ") + HelpKeyStyle.Render(next))
	}

	return PanelStyle.Width(width - 4).Height(height - 4).Render(b.String())
}
