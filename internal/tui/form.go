package tui

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/go-crypto-catalog/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formInputWidth  = 50
	formAreaHeight  = 4
	formLabelIndent = "  "
)

// formField is one input control built from a FieldSchema. Textarea fields
// use area, every other kind uses input.
type formField struct {
	schema    models.FieldSchema
	multiline bool
	input     textinput.Model
	area      textarea.Model
}

// formModel renders the fields of one operation in schema order.
type formModel struct {
	fields []formField
	focus  int
}

func newFormModel(schema []models.FieldSchema, values models.FormValues) formModel {
	fields := make([]formField, 0, len(schema))
	for _, s := range schema {
		fields = append(fields, newFormField(s, values.Get(s.Name)))
	}

	m := formModel{fields: fields}
	m.applyFocus()
	return m
}

func newFormField(schema models.FieldSchema, value string) formField {
	f := formField{schema: schema}

	switch schema.Type.Normalize() {
	case models.FieldTextarea:
		f.multiline = true
		f.area = textarea.New()
		f.area.Placeholder = schema.Placeholder
		f.area.SetWidth(formInputWidth)
		f.area.SetHeight(formAreaHeight)
		f.area.ShowLineNumbers = false
		f.area.SetValue(value)
	case models.FieldPassword:
		f.input = newTextInput(schema, value)
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = '•'
	default:
		f.input = newTextInput(schema, value)
	}

	return f
}

func newTextInput(schema models.FieldSchema, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = schema.Placeholder
	in.Width = formInputWidth
	in.SetValue(value)
	return in
}

func (m formModel) Len() int {
	return len(m.fields)
}

// Focused returns the field with focus.
func (m formModel) Focused() (formField, bool) {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return formField{}, false
	}
	return m.fields[m.focus], true
}

func (m formModel) focusNext() formModel {
	if len(m.fields) == 0 {
		return m
	}
	m.focus = (m.focus + 1) % len(m.fields)
	m.applyFocus()
	return m
}

func (m formModel) focusPrev() formModel {
	if len(m.fields) == 0 {
		return m
	}
	m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)
	m.applyFocus()
	return m
}

func (m *formModel) applyFocus() {
	for i := range m.fields {
		f := &m.fields[i]
		if i == m.focus {
			if f.multiline {
				f.area.Focus()
			} else {
				f.input.Focus()
			}
			continue
		}
		if f.multiline {
			f.area.Blur()
		} else {
			f.input.Blur()
		}
	}
}

// Update forwards msg to the focused control. changed is set when the
// field value differs afterwards, so the caller can record it.
func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	f, ok := m.Focused()
	if !ok {
		return m, nil, false
	}

	if keyMsg, isKey := msg.(tea.KeyMsg); isKey && f.schema.Type.Normalize() == models.FieldNumber {
		if !numericKey(keyMsg) {
			return m, nil, false
		}
	}

	before := f.Value()
	var cmd tea.Cmd
	if f.multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	m.fields[m.focus] = f

	return m, cmd, f.Value() != before
}

// numericKey drops typed runes that cannot appear in an integer. Editing
// and cursor keys pass through.
func numericKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return true
	}
	for _, r := range msg.Runes {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

func (f formField) Value() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f formField) Name() string {
	return f.schema.Name
}

func (m formModel) View() string {
	if len(m.fields) == 0 {
		return helpStyle.Render("This operation takes no input.")
	}

	var b strings.Builder
	for i, f := range m.fields {
		label := f.schema.Label()
		if i == m.focus {
			label = cursorStyle.Render("> " + label)
		} else {
			label = formLabelIndent + label
		}
		b.WriteString(label)
		b.WriteString("\n")

		if f.multiline {
			b.WriteString(indent(f.area.View(), formLabelIndent))
		} else {
			b.WriteString(formLabelIndent)
			b.WriteString(f.input.View())
		}
		if i < len(m.fields)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
