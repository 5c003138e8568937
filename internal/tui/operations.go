package tui

import "github.com/MKhiriev/go-crypto-catalog/models"

func (m appModel) viewOperations() string {
	entry, _ := m.currentEntry()
	ops := entry.Operations(m.session.Navigation().Category)

	body := "No operations"
	if len(ops) > 0 {
		labels := make([]string, len(ops))
		for i, op := range ops {
			labels[i] = op.Label()
		}
		body = renderMenu(labels, m.opIdx)
	}

	return renderPage(entry.Title, body, "enter: select  esc: back  q: quit")
}

func operationTabs(ops []models.Operation, current models.Operation) string {
	out := ""
	for i, op := range ops {
		if i > 0 {
			out += "  "
		}
		if op == current {
			out += cursorStyle.Render("[" + op.Label() + "]")
		} else {
			out += helpStyle.Render(op.Label())
		}
	}
	return out
}
