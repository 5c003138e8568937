package tui

func (m appModel) viewArticle() string {
	entry, _ := m.currentEntry()
	return renderPage(entry.Title, m.article.View(), "up/down: scroll  esc: back  q: quit")
}
