package ui

import (
	"strings"

	"tavolo/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(screen model.Screen, mode model.Mode, width int) string {
	if mode == model.ModeInsert {
		return renderFormHelp(width)
	}

	switch screen {
	case model.ScreenTenants:
		keys := append(listHelpKeys(),
			helpKey("a", "register"),
			helpKey("enter", "detail"),
			helpKey("B", "block/unblock"),
			helpKey("b/o/c/f/m/v", "jump to view"),
			helpKey("p", "password"),
		)
		return renderHelpLine(keys, width)
	case model.ScreenBookings:
		keys := append(listHelpKeys(),
			helpKey("enter", "detail"),
			helpKey("e", "edit"),
			helpKey("X", "delete"),
		)
		return renderHelpLine(keys, width)
	case model.ScreenOrders:
		keys := append(listHelpKeys(),
			helpKey("enter", "detail"),
			helpKey("X", "delete"),
		)
		return renderHelpLine(keys, width)
	case model.ScreenCallLogs:
		keys := append(listHelpKeys(), helpKey("enter", "transcript"))
		return renderHelpLine(keys, width)
	case model.ScreenFeedback:
		keys := append(listHelpKeys(),
			helpKey("r", "rating"),
			helpKey("v", "hide/show"),
		)
		return renderHelpLine(keys, width)
	case model.ScreenMenus:
		keys := append(listHelpKeys(),
			helpKey("c", "category"),
			helpKey("a", "add dish"),
			helpKey("e", "edit"),
			helpKey("v", "availability"),
			helpKey("X", "delete"),
		)
		return renderHelpLine(keys, width)
	case model.ScreenRecordings:
		return renderHelpLine(listHelpKeys(), width)
	case model.ScreenTenantDetail:
		return renderHelpLine([]string{
			helpKey("b/esc", "back"),
			helpKey("e", "edit"),
			helpKey("B", "block/unblock"),
		}, width)
	case model.ScreenBookingDetail:
		return renderHelpLine([]string{
			helpKey("b/esc", "back"),
			helpKey("e", "edit"),
			helpKey("X", "delete"),
		}, width)
	case model.ScreenOrderDetail:
		return renderHelpLine([]string{
			helpKey("b/esc", "back"),
			helpKey("s", "advance status"),
			helpKey("X", "delete"),
		}, width)
	case model.ScreenCallLogDetail:
		return renderHelpLine([]string{helpKey("b/esc", "back")}, width)
	default:
		return renderHelpLine([]string{
			helpKey("j/k", "navigate"),
			helpKey("q", "quit"),
		}, width)
	}
}

func listHelpKeys() []string {
	return []string{
		helpKey("j/k", "navigate"),
		helpKey("[/]", "page"),
		helpKey("tab", "status tab"),
		helpKey("/", "search"),
		helpKey("d", "dates"),
		helpKey("R", "refresh"),
	}
}

func renderFormHelp(width int) string {
	keys := []string{
		helpKey("tab", "next field"),
		helpKey("shift+tab", "prev field"),
		helpKey("ctrl+s", "save"),
		helpKey("esc", "cancel"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Screens"),
		helpSection([]helpItem{
			{"1", "Tenants"},
			{"2", "Bookings"},
			{"3", "Orders"},
			{"4", "Call logs"},
			{"5", "Feedback"},
			{"6", "Menu"},
			{"7", "Recordings"},
		}),
		titleSection("List Views"),
		helpSection([]helpItem{
			{"j / ↓, k / ↑", "Move cursor (crosses pages)"},
			{"[ / ], ← / →", "Previous / next page"},
			{"G", "Last page"},
			{"tab / shift+tab", "Cycle status tab"},
			{"/", "Search (live, esc clears)"},
			{"d", "Cycle date filter"},
			{"D", "Custom date range (start..end)"},
			{"x", "Clear all filters"},
			{"R", "Refresh now"},
			{"enter / l", "Open detail"},
			{"esc", "Cancel / close"},
			{"q", "Quit"},
			{"?", "Toggle help"},
		}),
		titleSection("Forms (Insert Mode)"),
		helpSection([]helpItem{
			{"tab", "Next field"},
			{"shift+tab", "Previous field"},
			{"ctrl+s", "Save"},
			{"esc", "Cancel"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
