package tui

import (
	"strings"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

func (m appModel) viewEntries() string {
	c := m.session.Navigation().Category
	catalog := m.currentCatalog()

	var (
		body    string
		hotKeys = "enter: open  esc: back  q: quit"
	)

	switch catalog.Status {
	case models.CatalogLoaded:
		if catalog.Len() == 0 {
			body = "No entries"
			break
		}
		titles := make([]string, 0, catalog.Len())
		for _, e := range catalog.Entries() {
			titles = append(titles, entryLabel(e, c))
		}
		body = renderMenu(titles, m.entryIdx)
	case models.CatalogFailed:
		body = errorStyle.Render("Failed to load entries: " + humanizeError(catalog.Err))
		hotKeys = "enter: retry  esc: back  q: quit"
	default:
		body = m.spinner.View() + " Loading..."
	}

	return renderPage(strings.ToUpper(c.Title()), body, hotKeys)
}

func entryLabel(e models.Entry, c models.Category) string {
	title := fitText(e.Title, 60)
	if !c.HasOperations() {
		return title
	}
	return title + helpStyle.Render("  ["+joinOperationLabels(e.Operations(c))+"]")
}

func joinOperationLabels(ops []models.Operation) string {
	labels := make([]string, len(ops))
	for i, op := range ops {
		labels[i] = op.Label()
	}
	return strings.Join(labels, ", ")
}
