package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

func renderFormField(label string, input textinput.Model, focused bool) string {
	style := LabelStyle
	if !focused {
		style = BreadcrumbStyle
	}
	return style.Render(label) + "\n" + input.View()
}

func newFormInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	return in
}

func joinFields(fields []string, errMsg string) string {
	if errMsg != "" {
		fields = append(fields, "", ErrorStyle.Render(errMsg))
	}
	return strings.Join(fields, "\n\n")
}
