package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/service"
	"github.com/MKhiriev/go-crypto-catalog/internal/session"
	"github.com/MKhiriev/go-crypto-catalog/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenHome screen = iota
	screenEntries
	screenArticle
	screenOperations
	screenForm
)

const (
	defaultWidth       = 80
	defaultHeight      = 24
	statusClearTimeout = 2 * time.Second
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx        context.Context
	catalog    service.ClientCatalogService
	operations service.ClientOperationService
	logger     *logger.Logger
	buildInfo  models.AppBuildInfo

	session  session.Session
	catalogs map[models.Category]models.CatalogState

	homeIdx  int
	entryIdx int
	opIdx    int

	form    formModel
	spinner spinner.Model
	article viewport.Model
	result  viewport.Model

	width  int
	height int

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:        ctx,
		catalog:    services.CatalogService,
		operations: services.OperationService,
		logger:     log,
		buildInfo:  buildInfo,
		session:    session.New(),
		catalogs:   make(map[models.Category]models.CatalogState),
		spinner:    s,
		article:    viewport.New(defaultWidth, defaultHeight-8),
		result:     viewport.New(defaultWidth, defaultHeight/2),
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if key.Matches(msg, keys.buildInfo) && m.screen() != screenForm {
			m.showBuildInfo = true
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case catalogLoadedMsg:
		return m.onCatalogLoaded(msg)
	case operationDoneMsg:
		return m.onOperationDone(msg)
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.screen() {
	case screenHome:
		return m.updateHome(msg)
	case screenEntries:
		return m.updateEntries(msg)
	case screenArticle:
		return m.updateArticle(msg)
	case screenOperations:
		return m.updateOperations(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.screen() {
	case screenHome:
		body = m.viewHome()
	case screenEntries:
		body = m.viewEntries()
	case screenArticle:
		body = m.viewArticle()
	case screenOperations:
		body = m.viewOperations()
	case screenForm:
		body = m.viewForm()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// screen derives the visible screen from the navigation state.
func (m appModel) screen() screen {
	nav := m.session.Navigation()
	switch {
	case nav.Category == 0:
		return screenHome
	case !nav.HasEntry:
		return screenEntries
	}

	_, ok := m.currentEntry()
	switch {
	case !ok:
		return screenEntries
	case !nav.Category.HasOperations():
		return screenArticle
	case nav.Operation == "":
		return screenOperations
	default:
		return screenForm
	}
}

func (m appModel) currentCatalog() models.CatalogState {
	return m.catalogs[m.session.Navigation().Category]
}

func (m appModel) currentEntry() (models.Entry, bool) {
	return m.session.Navigation().CurrentEntry(m.currentCatalog())
}

func (m appModel) currentFields() []models.FieldSchema {
	entry, ok := m.currentEntry()
	if !ok {
		return []models.FieldSchema{}
	}
	return session.FieldsFor(entry, m.session.Navigation().Operation)
}

func (m appModel) busy() bool {
	return m.currentCatalog().Status == models.CatalogLoading || m.session.Request().IsLoading()
}

// navigate installs next and rebuilds everything derived from the position
// in the same Update call, so the previous form and result never render
// against the new position.
func (m *appModel) navigate(next session.Session) {
	moved := next.Navigation() != m.session.Navigation()
	m.session = next
	if !moved {
		return
	}

	m.status = ""
	m.form = newFormModel(m.currentFields(), m.session.FormValues())
	m.result.SetContent("")
	m.result.GotoTop()

	nav := m.session.Navigation()
	if !nav.HasEntry {
		m.opIdx = 0
	}
	if entry, ok := m.currentEntry(); ok {
		if !nav.Category.HasOperations() {
			m.article.SetContent(entry.Content)
			m.article.GotoTop()
		}
		if nav.Operation != "" {
			m.opIdx = indexOf(entry.Operations(nav.Category), nav.Operation)
		}
	}
}

func (m *appModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.article.Width = width - 4
	m.article.Height = max(height-10, 3)
	m.result.Width = width - 4
	m.result.Height = max(height/3, 3)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.quitByUser = true
	return m, tea.Quit
}

// ── home ────────────────────────────────────────────────────────────────────

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.homeIdx > 0 {
			m.homeIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.homeIdx < len(models.Categories)-1 {
			m.homeIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.openCategory(models.Categories[m.homeIdx])
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	}
	return m, nil
}

// openCategory selects c and starts its fetch unless it is loaded or
// already in flight. Reselecting a failed category retries the fetch.
func (m appModel) openCategory(c models.Category) (tea.Model, tea.Cmd) {
	m.navigate(m.session.SelectCategory(c))
	m.entryIdx = 0

	if !m.catalog.BeginLoad(c) {
		m.catalogs[c] = m.catalog.State(c)
		return m, nil
	}

	m.catalogs[c] = models.CatalogState{Status: models.CatalogLoading}
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadCatalog(c))
}

func (m appModel) onCatalogLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.catalogs[msg.category] = msg.state
	if msg.err != nil {
		m.logger.Debug().Err(msg.err).Str("category", msg.category.Slug()).Msg("catalog listing unavailable")
	}
	if msg.category == m.session.Navigation().Category && m.entryIdx >= msg.state.Len() {
		m.entryIdx = 0
	}
	return m, nil
}

// ── entries ─────────────────────────────────────────────────────────────────

func (m appModel) updateEntries(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	catalog := m.currentCatalog()
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.entryIdx > 0 {
			m.entryIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.entryIdx < catalog.Len()-1 {
			m.entryIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if catalog.Status == models.CatalogFailed {
			return m.openCategory(m.session.Navigation().Category)
		}
		if _, ok := catalog.Entry(m.entryIdx); !ok {
			return m, nil
		}
		m.navigate(m.session.SelectEntry(m.entryIdx))
	case key.Matches(keyMsg, keys.esc):
		m.navigate(m.session.Reset())
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	}
	return m, nil
}

// ── article ─────────────────────────────────────────────────────────────────

func (m appModel) updateArticle(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.backToEntries()
		case key.Matches(keyMsg, keys.quit):
			return m.quit()
		}
	}

	var cmd tea.Cmd
	m.article, cmd = m.article.Update(msg)
	return m, cmd
}

func (m appModel) backToEntries() (tea.Model, tea.Cmd) {
	nav := m.session.Navigation()
	m.entryIdx = nav.EntryIndex
	m.navigate(m.session.SelectCategory(nav.Category))
	return m, nil
}

// ── operations ──────────────────────────────────────────────────────────────

func (m appModel) updateOperations(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	entry, _ := m.currentEntry()
	ops := entry.Operations(m.session.Navigation().Category)

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.opIdx > 0 {
			m.opIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.opIdx < len(ops)-1 {
			m.opIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.opIdx < len(ops) {
			m.navigate(m.session.SelectOperation(ops[m.opIdx]))
		}
	case key.Matches(keyMsg, keys.esc):
		return m.backToEntries()
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	}
	return m, nil
}

// ── form ────────────────────────────────────────────────────────────────────

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToForm(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.submit):
		return m.submit()
	case key.Matches(keyMsg, keys.copy):
		return m.copyResult()
	case key.Matches(keyMsg, keys.esc):
		if m.session.Navigation().CanGoBack() {
			m.navigate(m.session.GoBack())
			return m, nil
		}
		nav := m.session.Navigation()
		m.navigate(m.session.SelectEntry(nav.EntryIndex))
		return m, nil
	case key.Matches(keyMsg, keys.prevOp):
		return m.switchOperation(-1)
	case key.Matches(keyMsg, keys.nextOp):
		return m.switchOperation(1)
	case key.Matches(keyMsg, keys.tab):
		m.form = m.form.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.form = m.form.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if f, ok := m.form.Focused(); !ok || !f.multiline {
			m.form = m.form.focusNext()
			return m, nil
		}
	case key.Matches(keyMsg, keys.pageUp), key.Matches(keyMsg, keys.pageDown):
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	}

	return m.forwardToForm(msg)
}

func (m appModel) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd, changed := m.form.Update(msg)
	m.form = form
	if changed {
		if f, ok := m.form.Focused(); ok {
			m.session = m.session.SetValue(f.Name(), f.Value())
		}
	}
	return m, cmd
}

func (m appModel) switchOperation(step int) (tea.Model, tea.Cmd) {
	entry, ok := m.currentEntry()
	if !ok {
		return m, nil
	}
	nav := m.session.Navigation()
	ops := entry.Operations(nav.Category)
	if len(ops) < 2 {
		return m, nil
	}

	i := indexOf(ops, nav.Operation)
	next := ops[(i+step+len(ops))%len(ops)]
	m.navigate(m.session.SelectOperation(next))
	return m, nil
}

// submit dispatches the current form. A submission while one is pending is
// ignored.
func (m appModel) submit() (tea.Model, tea.Cmd) {
	entry, ok := m.currentEntry()
	if !ok || m.session.Request().IsLoading() {
		return m, nil
	}

	nav := m.session.Navigation()
	values := m.session.Values(m.currentFields())
	req := m.operations.NewRequest(nav.Category, entry, nav.Operation, values)

	next, ticket, ok := m.session.BeginSubmit(req.RequestID)
	if !ok {
		return m, nil
	}
	m.session = next
	m.status = ""
	m.result.SetContent("")

	return m, tea.Batch(m.spinner.Tick, m.cmdSubmit(ticket, req))
}

func (m appModel) onOperationDone(msg operationDoneMsg) (tea.Model, tea.Cmd) {
	next, ok := m.session.CompleteSubmit(msg.ticket, msg.result, msg.err)
	if !ok {
		m.logger.Debug().
			Str("request_id", msg.ticket.RequestID).
			Msg("discarding stale operation response")
		return m, nil
	}

	m.session = next
	if req := m.session.Request(); req.HasResult() {
		m.result.SetContent(renderResult(req.Result))
		m.result.GotoTop()
	}
	return m, nil
}

func (m appModel) copyResult() (tea.Model, tea.Cmd) {
	req := m.session.Request()
	if !req.HasResult() {
		m.status = "Nothing to copy"
		return m, cmdClearStatus()
	}

	text, err := resultClipboardText(req.Result)
	if err == nil {
		err = writeClipboard(text)
	}
	if err != nil {
		m.showErrorf("Copy failed: " + err.Error())
		return m, nil
	}
	return m, func() tea.Msg { return copiedMsg{} }
}

// ── commands ────────────────────────────────────────────────────────────────

func (m appModel) cmdLoadCatalog(c models.Category) tea.Cmd {
	return func() tea.Msg {
		state, err := m.catalog.EnsureLoaded(m.ctx, c)
		return catalogLoadedMsg{category: c, state: state, err: err}
	}
}

func (m appModel) cmdSubmit(ticket session.Ticket, req models.OperationRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := m.operations.Submit(m.ctx, req)
		return operationDoneMsg{ticket: ticket, result: result, err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusClearTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func indexOf(ops []models.Operation, op models.Operation) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}
	return 0
}
