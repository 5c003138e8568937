package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/MKhiriev/go-crypto-catalog/internal/adapter"
	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/mock"
	"github.com/MKhiriev/go-crypto-catalog/internal/service"
	"github.com/MKhiriev/go-crypto-catalog/internal/session"
	"github.com/MKhiriev/go-crypto-catalog/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Fixtures ──────────────────────────────────────────────────────────────────

var rsaEntry = models.Entry{
	ID:    "1",
	Title: "RSA",
	Schemas: map[models.Operation][]models.FieldSchema{
		models.OperationCreateKey: {
			{Type: models.FieldNumber, Name: "p", Placeholder: "p"},
			{Type: models.FieldNumber, Name: "q", Placeholder: "q"},
		},
		models.OperationEncrypt: {
			{Type: models.FieldNumber, Name: "n"},
			{Type: models.FieldNumber, Name: "e"},
			{Type: models.FieldTextarea, Name: "message"},
		},
		models.OperationDecrypt: {
			{Type: models.FieldNumber, Name: "d"},
			{Type: models.FieldPassword, Name: "secret"},
		},
	},
}

var introArticle = models.Entry{ID: "a1", Title: "Intro to RSA", Content: "RSA was published in 1977."}

var draftArticle = models.Entry{ID: "a2", Title: "Draft"}

type testApp struct {
	model      appModel
	catalog    *mock.MockClientCatalogService
	operations *mock.MockClientOperationService
}

func newTestApp(t *testing.T, ctrl *gomock.Controller) *testApp {
	t.Helper()
	catalog := mock.NewMockClientCatalogService(ctrl)
	operations := mock.NewMockClientOperationService(ctrl)

	services := &service.ClientServices{CatalogService: catalog, OperationService: operations}
	m := newAppModel(context.Background(), services, models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123"), logger.Nop())

	return &testApp{model: m, catalog: catalog, operations: operations}
}

func (a *testApp) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := a.model.Update(msg)
	m, ok := next.(appModel)
	require.True(t, ok)
	a.model = m
	return cmd
}

func (a *testApp) press(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		a.send(t, keyPress(k))
	}
}

// openCryptosystem walks home -> Cryptosystem with a successful listing.
func (a *testApp) openCryptosystem(t *testing.T, entries ...models.Entry) {
	t.Helper()
	a.openCategory(t, models.Cryptosystem, entries...)
}

// openCategory moves the home cursor onto c and opens it with a successful
// listing.
func (a *testApp) openCategory(t *testing.T, c models.Category, entries ...models.Entry) {
	t.Helper()
	a.catalog.EXPECT().BeginLoad(c).Return(true)
	a.catalog.EXPECT().EnsureLoaded(gomock.Any(), c).
		Return(models.NewLoadedCatalog(entries), nil)

	for a.model.homeIdx < slices.Index(models.Categories, c) {
		a.press(t, "down")
	}
	cmd := a.send(t, keyPress("enter"))
	a.deliver(t, cmd)
}

// deliver runs cmd and feeds back every message except spinner ticks.
func (a *testApp) deliver(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		switch msg.(type) {
		case catalogLoadedMsg, operationDoneMsg, copiedMsg:
			a.send(t, msg)
		}
	}
}

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// ── Home & catalog ────────────────────────────────────────────────────────────

func TestApp_HomeListsCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	view := app.model.View()
	assert.Equal(t, screenHome, app.model.screen())
	for _, c := range models.Categories {
		assert.Contains(t, view, c.Title())
	}
}

func TestApp_OpenCategory_ShowsSpinnerThenEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.catalog.EXPECT().BeginLoad(models.Cryptosystem).Return(true)
	app.press(t, "down")
	cmd := app.send(t, keyPress("enter"))

	assert.Equal(t, screenEntries, app.model.screen())
	assert.Contains(t, app.model.View(), "Loading...")

	app.catalog.EXPECT().EnsureLoaded(gomock.Any(), models.Cryptosystem).
		Return(models.NewLoadedCatalog([]models.Entry{rsaEntry}), nil)
	app.deliver(t, cmd)

	view := app.model.View()
	assert.NotContains(t, view, "Loading...")
	assert.Contains(t, view, "RSA")
	assert.Contains(t, view, "Create Key, Encrypt, Decrypt")
}

func TestApp_OpenCategory_AlreadyLoadedSkipsFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.catalog.EXPECT().BeginLoad(models.Algorithm).Return(false)
	app.catalog.EXPECT().State(models.Algorithm).
		Return(models.NewLoadedCatalog([]models.Entry{{Title: "Miller-Rabin"}}))

	cmd := app.send(t, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Contains(t, app.model.View(), "Miller-Rabin")
}

func TestApp_EmptyCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.openCryptosystem(t)

	assert.Contains(t, app.model.View(), "No entries")
	app.press(t, "enter")
	assert.Equal(t, screenEntries, app.model.screen())
}

func TestApp_CatalogFailure_NavigationKeepsWorkingAndRetryOnEnter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	loadErr := fmt.Errorf("load cryptosystem catalog: %w", service.ErrServiceUnavailable)
	app.catalog.EXPECT().BeginLoad(models.Cryptosystem).Return(true)
	app.catalog.EXPECT().EnsureLoaded(gomock.Any(), models.Cryptosystem).
		Return(models.NewFailedCatalog(loadErr), loadErr)

	app.press(t, "down")
	app.deliver(t, app.send(t, keyPress("enter")))

	view := app.model.View()
	assert.Contains(t, view, "Failed to load entries")
	assert.Contains(t, view, msgServiceUnavailable)

	// retry
	app.catalog.EXPECT().BeginLoad(models.Cryptosystem).Return(true)
	app.catalog.EXPECT().EnsureLoaded(gomock.Any(), models.Cryptosystem).
		Return(models.NewLoadedCatalog([]models.Entry{rsaEntry}), nil)
	app.deliver(t, app.send(t, keyPress("enter")))
	assert.Contains(t, app.model.View(), "RSA")

	app.press(t, "esc")
	assert.Equal(t, screenHome, app.model.screen())
}

func TestApp_Article(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.openCategory(t, models.Article, draftArticle, introArticle)
	app.press(t, "down", "enter")

	require.Equal(t, screenArticle, app.model.screen())
	assert.Contains(t, app.model.View(), "published in 1977")

	app.press(t, "esc")
	assert.Equal(t, screenEntries, app.model.screen())
	assert.Equal(t, 1, app.model.entryIdx)
}

func TestApp_ArticleWithoutContentStaysAnArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.openCategory(t, models.Article, draftArticle)
	app.press(t, "enter")

	assert.Equal(t, screenArticle, app.model.screen())
	assert.NotContains(t, app.model.View(), "No operations")
}

func TestApp_LateListingOfOtherCategoryKeepsCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	others := []models.Entry{{ID: "2", Title: "ElGamal"}, {ID: "3", Title: "Elliptic Curve"}, {ID: "4", Title: "Paillier"}}
	app.openCryptosystem(t, append([]models.Entry{rsaEntry}, others...)...)
	app.press(t, "down", "down", "down")
	require.Equal(t, 3, app.model.entryIdx)

	app.send(t, catalogLoadedMsg{
		category: models.Algorithm,
		state:    models.NewLoadedCatalog([]models.Entry{{ID: "9", Title: "Extended Euclide"}}),
	})
	assert.Equal(t, 3, app.model.entryIdx)

	app.send(t, catalogLoadedMsg{
		category: models.Cryptosystem,
		state:    models.NewLoadedCatalog([]models.Entry{rsaEntry}),
	})
	assert.Equal(t, 0, app.model.entryIdx)
}

// ── Operations & form ─────────────────────────────────────────────────────────

func TestApp_SelectEntry_ListsDeclaredOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.openCryptosystem(t, rsaEntry)
	app.press(t, "enter")

	require.Equal(t, screenOperations, app.model.screen())
	view := app.model.View()
	assert.Contains(t, view, "Create Key")
	assert.Contains(t, view, "Encrypt")
	assert.Contains(t, view, "Decrypt")
	assert.NotContains(t, view, "Sign")
}

func TestApp_FormFollowsSchema(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.openCryptosystem(t, rsaEntry)
	app.press(t, "enter", "down", "enter")

	require.Equal(t, screenForm, app.model.screen())
	require.Equal(t, models.OperationEncrypt, app.model.session.Navigation().Operation)
	require.Equal(t, 3, app.model.form.Len())
	assert.True(t, app.model.form.fields[2].multiline)
}

func TestApp_TypingRecordsValuesAndNumberFieldsRejectLetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.openCryptosystem(t, rsaEntry)
	app.press(t, "enter", "enter")

	app.press(t, "6", "1", "x", "tab", "5", "3")

	assert.Equal(t, "61", app.model.session.FormValues().Get("p"))
	assert.Equal(t, "53", app.model.session.FormValues().Get("q"))
}

func TestApp_GoBackRestoresCreateKeyWithEmptyForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.openCryptosystem(t, rsaEntry)
	app.press(t, "enter", "enter")
	require.Equal(t, models.OperationCreateKey, app.model.session.Navigation().Operation)

	app.press(t, "7")
	app.press(t, "]")
	require.Equal(t, models.OperationEncrypt, app.model.session.Navigation().Operation)
	assert.Empty(t, app.model.session.FormValues())
	assert.Equal(t, 3, app.model.form.Len())

	app.press(t, "esc")
	assert.Equal(t, models.OperationCreateKey, app.model.session.Navigation().Operation)
	assert.Empty(t, app.model.session.FormValues())
	assert.Equal(t, 2, app.model.form.Len())
	assert.Empty(t, app.model.form.fields[0].Value())

	// slot consumed: esc now leaves the form
	app.press(t, "esc")
	assert.Equal(t, screenOperations, app.model.screen())
}

// ── Submission ────────────────────────────────────────────────────────────────

func createKeyRequest(id string) models.OperationRequest {
	return models.OperationRequest{
		Category:  models.Cryptosystem,
		Entry:     rsaEntry.Title,
		Operation: models.OperationCreateKey,
		Values:    models.FormValues{"p": "61", "q": "53"},
		RequestID: id,
	}
}

func (a *testApp) fillCreateKey(t *testing.T) {
	t.Helper()
	a.openCryptosystem(t, rsaEntry)
	a.press(t, "enter", "enter", "6", "1", "tab", "5", "3")
}

func TestApp_SubmitRendersResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)
	app.fillCreateKey(t)

	req := createKeyRequest("req-1")
	require.Equal(t, "/cryptosystem/rsa/create_key/", req.Path())
	result, err := models.DecodeResult([]byte(`{"public_key": {"n": 3233, "e": 17}, "private_key": {"d": 2753}}`))
	require.NoError(t, err)

	app.operations.EXPECT().
		NewRequest(models.Cryptosystem, rsaEntry, models.OperationCreateKey, models.FormValues{"p": "61", "q": "53"}).
		Return(req)
	app.operations.EXPECT().Submit(gomock.Any(), req).Return(result, nil)

	cmd := app.send(t, keyPress("ctrl+s"))
	assert.True(t, app.model.session.Request().IsLoading())
	assert.Contains(t, app.model.View(), "Processing...")

	// a second submit while pending is ignored
	assert.Nil(t, app.send(t, keyPress("ctrl+s")))

	app.deliver(t, cmd)

	require.True(t, app.model.session.Request().HasResult())
	view := app.model.View()
	assert.Contains(t, view, "Result")
	assert.Contains(t, view, "public_key:")
	assert.Contains(t, view, "3233")
	assert.Equal(t, "61", app.model.session.FormValues().Get("p"))
}

func TestApp_SubmitFailureKeepsFormAndAllowsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)
	app.fillCreateKey(t)

	first := createKeyRequest("req-1")
	app.operations.EXPECT().NewRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(first)
	app.operations.EXPECT().Submit(gomock.Any(), first).
		Return(models.OperationResult{}, fmt.Errorf("%w: connection refused", service.ErrServiceUnavailable))

	app.deliver(t, app.send(t, keyPress("ctrl+s")))

	req := app.model.session.Request()
	assert.Equal(t, session.RequestFailed, req.Status)
	assert.False(t, req.IsLoading())
	assert.Contains(t, app.model.View(), msgServiceUnavailable)
	assert.Contains(t, app.model.View(), "ctrl+s: retry")
	assert.Equal(t, "61", app.model.session.FormValues().Get("p"))
	assert.Equal(t, "53", app.model.session.FormValues().Get("q"))

	second := createKeyRequest("req-2")
	app.operations.EXPECT().NewRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(second)
	app.operations.EXPECT().Submit(gomock.Any(), second).
		Return(models.OperationResult{Kind: models.ResultString, Scalar: "ok"}, nil)

	app.deliver(t, app.send(t, keyPress("ctrl+s")))
	assert.True(t, app.model.session.Request().HasResult())
}

func TestApp_ServiceReportedErrorShowsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)
	app.fillCreateKey(t)

	req := createKeyRequest("req-1")
	app.operations.EXPECT().NewRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(req)
	app.operations.EXPECT().Submit(gomock.Any(), req).
		Return(models.OperationResult{}, fmt.Errorf("%w: %w", service.ErrOperationRejected, &adapter.ServiceError{Message: "NULL Value"}))

	app.deliver(t, app.send(t, keyPress("ctrl+s")))

	assert.Contains(t, app.model.View(), "Error: NULL Value")
}

func TestApp_StaleResponseDiscardedAfterOperationChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)
	app.fillCreateKey(t)

	req := createKeyRequest("req-1")
	app.operations.EXPECT().NewRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(req)
	app.operations.EXPECT().Submit(gomock.Any(), req).
		Return(models.OperationResult{Kind: models.ResultString, Scalar: "late"}, nil)

	cmd := app.send(t, keyPress("ctrl+s"))
	app.press(t, "]")
	app.deliver(t, cmd)

	assert.Equal(t, models.OperationEncrypt, app.model.session.Navigation().Operation)
	assert.Equal(t, session.RequestIdle, app.model.session.Request().Status)
	assert.NotContains(t, app.model.View(), "late")
}

func TestApp_CopyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	// nothing yet
	app.fillCreateKey(t)
	app.press(t, "ctrl+y")
	assert.Equal(t, "Nothing to copy", app.model.status)

	req := createKeyRequest("req-1")
	result, err := models.DecodeResult([]byte(`{"n":3233,"e":17}`))
	require.NoError(t, err)
	app.operations.EXPECT().NewRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(req)
	app.operations.EXPECT().Submit(gomock.Any(), req).Return(result, nil)
	app.deliver(t, app.send(t, keyPress("ctrl+s")))

	app.deliver(t, app.send(t, keyPress("ctrl+y")))
	assert.Equal(t, "{\n  \"n\": 3233,\n  \"e\": 17\n}", copied)
	assert.Equal(t, "Copied!", app.model.status)
}

func TestApp_CopyFailureShowsOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	t.Cleanup(func() { writeClipboard = orig })

	app.fillCreateKey(t)
	req := createKeyRequest("req-1")
	app.operations.EXPECT().NewRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(req)
	app.operations.EXPECT().Submit(gomock.Any(), req).Return(models.OperationResult{Kind: models.ResultBool, Scalar: "true"}, nil)
	app.deliver(t, app.send(t, keyPress("ctrl+s")))

	app.press(t, "ctrl+y")
	assert.True(t, app.model.showError)
	assert.Contains(t, app.model.View(), "no clipboard utility")

	app.press(t, "esc")
	assert.False(t, app.model.showError)
	assert.Equal(t, screenForm, app.model.screen())
}

// ── Global keys ───────────────────────────────────────────────────────────────

func TestApp_BuildInfoOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.press(t, "v")
	view := app.model.View()
	assert.Contains(t, view, "ABOUT")
	assert.Contains(t, view, "1.2.0")
	assert.Contains(t, view, "abc123")

	app.press(t, "esc")
	assert.NotContains(t, app.model.View(), "ABOUT")
}

func TestApp_Quit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			app := newTestApp(t, ctrl)
			cmd := app.send(t, keyPress(k))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.True(t, app.model.quitByUser)
		})
	}
}

func TestApp_QTypesIntoForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	app := newTestApp(t, ctrl)

	app.openCryptosystem(t, rsaEntry)
	app.press(t, "enter", "enter", "]", "]")
	require.Equal(t, models.OperationDecrypt, app.model.session.Navigation().Operation)

	app.press(t, "tab", "q", "v")
	assert.False(t, app.model.quitByUser)
	assert.False(t, app.model.showBuildInfo)
	assert.Equal(t, "qv", app.model.session.FormValues().Get("secret"))
}
