package tui

import (
	"strings"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

const introText = "A collection of algorithms, cryptosystems, signature schemes\n" +
	"and articles on cryptography and information security."

func (m appModel) viewHome() string {
	titles := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		titles[i] = c.Title()
	}

	var b strings.Builder
	b.WriteString(introText)
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Categories"))
	b.WriteString("\n\n")
	b.WriteString(renderMenu(titles, m.homeIdx))

	return renderPage("CRYPTO CATALOG", b.String(), "enter: open  v: about  q: quit")
}
