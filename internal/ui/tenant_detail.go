package ui

import (
	"fmt"
	"strings"

	"tavolo/internal/model"
	"tavolo/internal/util"
)

// TenantDetailModel shows one restaurant account.
type TenantDetailModel struct {
	tenant model.Tenant
}

func NewTenantDetailModel(t model.Tenant) *TenantDetailModel {
	return &TenantDetailModel{tenant: t}
}

func (m *TenantDetailModel) Tenant() model.Tenant { return m.tenant }

func (m *TenantDetailModel) View(width, height int) string {
	t := m.tenant
	var b strings.Builder

	b.WriteString(LabelStyle.Render(t.RestaurantName) + "\n\n")
	writeDetailRow(&b, "Owner", t.Username)
	writeDetailRow(&b, "Email", t.Email)
	writeDetailRow(&b, "Phone", t.PhoneNumber)
	writeDetailRow(&b, "Address", t.RestaurantAddress)
	writeDetailRow(&b, "Registered", util.FormatTimestamp(t.CreatedAt))
	writeDetailRow(&b, "Last payment", util.FormatDate(t.LastPaymentDate))

	status := t.Status
	if t.Status == model.TenantBlocked {
		status = ErrorStyle.Render(t.Status)
	} else {
		status = SuccessStyle.Render(t.Status)
	}
	b.WriteString(fmt.Sprintf("%s %s\n", BreadcrumbStyle.Render("Status:"), status))

	b.WriteString("\n" + LabelStyle.Render(fmt.Sprintf("Tables (%d total)", t.NoOfTables)) + "\n")
	if len(t.TableTypes) == 0 {
		b.WriteString(EmptyStateStyle.Render("No table types assigned."))
	}
	for _, tt := range t.TableTypes {
		b.WriteString(fmt.Sprintf("  %-20s %d\n", tt.Name, tt.NoOfTables))
	}

	return PanelStyle.Width(width - 4).Height(height - 4).Render(b.String())
}

func writeDetailRow(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		value = "—"
	}
	b.WriteString(fmt.Sprintf("%s %s\n", BreadcrumbStyle.Render(label+":"), value))
}
