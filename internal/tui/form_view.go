package tui

import (
	"strings"

	"github.com/MKhiriev/go-crypto-catalog/internal/session"
)

func (m appModel) viewForm() string {
	entry, _ := m.currentEntry()
	nav := m.session.Navigation()
	req := m.session.Request()

	var b strings.Builder
	b.WriteString(operationTabs(entry.Operations(nav.Category), nav.Operation))
	b.WriteString("\n\n")
	b.WriteString(m.form.View())
	b.WriteString("\n\n")

	switch req.Status {
	case session.RequestPending:
		b.WriteString(m.spinner.View() + " Processing...")
	case session.RequestFailed:
		b.WriteString(errorStyle.Render("Error: " + humanizeError(req.Err)))
	case session.RequestSucceeded:
		b.WriteString(titleStyle.Render("Result"))
		b.WriteString("\n")
		b.WriteString(m.result.View())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	hotKeys := "tab: next field  ctrl+s: submit  [ ]: operation  esc: back"
	if req.HasResult() {
		hotKeys += "  ctrl+y: copy result"
	}
	if req.Status == session.RequestFailed {
		hotKeys = strings.Replace(hotKeys, "ctrl+s: submit", "ctrl+s: retry", 1)
	}

	return renderPage(entry.Title+" / "+nav.Operation.Label(), b.String(), hotKeys)
}
