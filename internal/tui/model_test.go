package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadcomposer/internal/catalog"
	"leadcomposer/internal/leads"
)

type memoryStorage struct {
	values map[string]string
	setErr error
}

func (m *memoryStorage) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStorage) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

type harness struct {
	model   Model
	list    *leads.List
	editor  *catalog.Editor
	storage *memoryStorage
	copied  []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cat := catalog.New(nil)
	storage := &memoryStorage{values: map[string]string{}}
	editor := catalog.NewEditor(cat, catalog.NewStore(storage, nil), nil)
	list := leads.New(cat, leads.Settings{Language: "es"})
	h := &harness{list: list, editor: editor, storage: storage}
	h.model = New(list, cat, editor, "Enviar Leads WhatsApp")
	h.model.copy = func(s string) error {
		h.copied = append(h.copied, s)
		return nil
	}
	return h
}

func (h *harness) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		next, _ := h.model.Update(msg)
		h.model = next.(Model)
	}
}

func (h *harness) typeText(text string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestTypingNameRerendersMessage(t *testing.T) {
	h := newHarness(t)

	h.typeText("Ana")

	lead := h.list.Leads()[0]
	assert.Equal(t, "Ana", lead.Name)
	assert.True(t, strings.HasPrefix(lead.CustomMessage, "Hola Ana"))
	assert.Equal(t, lead.CustomMessage, h.model.message.Value())
}

func TestFocusCycle(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, fieldName, h.model.focus)

	h.send(press(tea.KeyTab))
	assert.Equal(t, fieldPhone, h.model.focus)
	h.typeText("+34 612")
	assert.Equal(t, "+34 612", h.list.Leads()[0].Phone)

	h.send(press(tea.KeyTab), press(tea.KeyTab))
	assert.Equal(t, fieldAgent, h.model.focus)
	h.typeText("Marta")
	assert.Equal(t, "Marta", h.list.Settings().AgentName)

	h.send(press(tea.KeyTab))
	assert.Equal(t, fieldName, h.model.focus)

	h.send(press(tea.KeyShiftTab))
	assert.Equal(t, fieldAgent, h.model.focus)
}

func TestEditingMessage(t *testing.T) {
	h := newHarness(t)
	h.send(press(tea.KeyTab), press(tea.KeyTab))
	require.Equal(t, fieldMessage, h.model.focus)

	h.typeText("!")

	assert.True(t, strings.HasSuffix(h.list.Leads()[0].CustomMessage, "!"))
}

func TestEditingRemovedLeadReportsError(t *testing.T) {
	tests := []struct {
		name  string
		focus int
	}{
		{"phone", 1},
		{"message", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.send(press(tea.KeyCtrlA))
			require.Equal(t, 1, h.model.current)
			require.NoError(t, h.list.Remove(h.list.Leads()[1].ID))

			for i := 0; i < tt.focus; i++ {
				h.send(press(tea.KeyTab))
			}
			h.typeText("612")

			assert.True(t, h.model.statusErr)
			assert.Equal(t, leads.ErrLeadNotFound.Error(), h.model.status)
			assert.Equal(t, 0, h.model.current)
			assert.Empty(t, h.list.Leads()[0].Phone)
			assert.Equal(t, h.list.Leads()[0].CustomMessage, h.model.message.Value())
		})
	}
}

func TestAddAndSwitchLeads(t *testing.T) {
	h := newHarness(t)
	h.typeText("Ana")

	h.send(press(tea.KeyCtrlA))
	require.Equal(t, 2, h.list.Len())
	assert.Equal(t, 1, h.model.current)
	assert.Empty(t, h.model.name.Value())

	h.typeText("Pau")
	assert.Equal(t, "Pau", h.list.Leads()[1].Name)

	h.send(press(tea.KeyPgUp))
	assert.Equal(t, 0, h.model.current)
	assert.Equal(t, "Ana", h.model.name.Value())

	h.send(press(tea.KeyPgUp))
	assert.Equal(t, 0, h.model.current)

	h.send(press(tea.KeyPgDown), press(tea.KeyPgDown))
	assert.Equal(t, 1, h.model.current)
}

func TestRemoveLead(t *testing.T) {
	h := newHarness(t)

	h.send(press(tea.KeyCtrlX))
	assert.Equal(t, 1, h.list.Len())
	assert.True(t, h.model.statusErr)

	h.send(press(tea.KeyCtrlA))
	h.send(press(tea.KeyCtrlX))
	assert.Equal(t, 1, h.list.Len())
	assert.False(t, h.model.statusErr)
	assert.Equal(t, 0, h.model.current)
}

func TestCycleTemplate(t *testing.T) {
	h := newHarness(t)

	h.send(press(tea.KeyCtrlT))
	assert.Equal(t, catalog.BuiltinOutOfHours, h.list.Leads()[0].TemplateID)
	assert.Equal(t, h.list.Leads()[0].CustomMessage, h.model.message.Value())

	h.send(press(tea.KeyCtrlT), press(tea.KeyCtrlT))
	assert.Equal(t, catalog.BuiltinAppGeneral, h.list.Leads()[0].TemplateID)
}

func TestToggleLanguage(t *testing.T) {
	h := newHarness(t)

	h.send(press(tea.KeyCtrlL))
	assert.Equal(t, "ca", h.list.Settings().Language)
	assert.Contains(t, h.model.message.Value(), "Sóc en")

	h.send(press(tea.KeyCtrlL))
	assert.Equal(t, "es", h.list.Settings().Language)
}

func TestCopyLink(t *testing.T) {
	h := newHarness(t)

	h.send(press(tea.KeyCtrlW))
	assert.Empty(t, h.copied)
	assert.True(t, h.model.statusErr)
	assert.Equal(t, "Por favor, ingresa un número de teléfono", h.model.status)

	h.typeText("Ana")
	h.send(press(tea.KeyTab))
	h.typeText("+34 612 345 678")
	h.send(press(tea.KeyCtrlW))

	require.Len(t, h.copied, 1)
	assert.True(t, strings.HasPrefix(h.copied[0], "https://wa.me/34612345678?text=Hola%20Ana"))
	assert.Contains(t, h.copied[0], "Juanjo")
	assert.False(t, h.model.statusErr)
}

func TestCopyShortcut(t *testing.T) {
	h := newHarness(t)

	h.send(press(tea.KeyCtrlS))
	assert.Empty(t, h.copied)
	assert.True(t, h.model.statusErr)

	h.typeText("Ana")
	h.send(press(tea.KeyTab))
	h.typeText("612")
	h.send(press(tea.KeyCtrlS))

	require.Len(t, h.copied, 1)
	assert.True(t, strings.HasPrefix(h.copied[0], "shortcuts://run-shortcut?name=Enviar%20Leads%20WhatsApp&input=text&text=612%20%7C%7C%7C%20Hola%20Ana"))
}

func TestClipboardFailure(t *testing.T) {
	h := newHarness(t)
	h.model.copy = func(string) error { return errors.New("no display") }
	h.typeText("Ana")
	h.send(press(tea.KeyTab))
	h.typeText("612")

	h.send(press(tea.KeyCtrlW))

	assert.True(t, h.model.statusErr)
	assert.Contains(t, h.model.status, "no display")
}

func TestSavePreset(t *testing.T) {
	h := newHarness(t)

	h.send(press(tea.KeyCtrlP))
	require.True(t, h.model.naming)
	h.typeText("Seguimiento")
	assert.Empty(t, h.list.Leads()[0].Name)
	assert.Contains(t, h.model.View(), "Guardar")

	h.send(press(tea.KeyEnter))

	assert.False(t, h.model.naming)
	assert.False(t, h.model.statusErr)
	assert.Equal(t, "Plantilla guardada: Seguimiento", h.model.status)
	assert.Equal(t, fieldName, h.model.focus)

	custom := h.editor.List()
	require.Len(t, custom, 1)
	assert.Equal(t, "Seguimiento", custom[0].InternalName)
	assert.Equal(t, map[string]string{"es": "Seguimiento"}, custom[0].Label)
	assert.Equal(t, h.model.message.Value(), custom[0].Message["es"])
	assert.Equal(t, custom[0].ID, h.list.Leads()[0].TemplateID)
	assert.Contains(t, h.storage.values[catalog.StorageKey], "Seguimiento")
	assert.Contains(t, h.model.View(), "Seguimiento")
}

func TestSavePresetInCurrentLanguage(t *testing.T) {
	h := newHarness(t)
	h.send(press(tea.KeyCtrlL))

	h.send(press(tea.KeyCtrlP))
	h.typeText("Seguiment")
	h.send(press(tea.KeyEnter))

	custom := h.editor.List()
	require.Len(t, custom, 1)
	assert.Equal(t, "Seguiment", custom[0].Label["ca"])
	assert.Contains(t, custom[0].Message["ca"], "Sóc en")
	assert.Equal(t, custom[0].Message["ca"], custom[0].Message["es"])
}

func TestSavePresetRequiresLabel(t *testing.T) {
	h := newHarness(t)

	h.send(press(tea.KeyCtrlP), press(tea.KeyEnter))

	assert.True(t, h.model.naming)
	assert.True(t, h.model.statusErr)
	assert.Empty(t, h.editor.List())
}

func TestSavePresetCancel(t *testing.T) {
	h := newHarness(t)

	h.send(press(tea.KeyCtrlP))
	h.typeText("Descartada")
	next, _ := h.model.Update(press(tea.KeyEsc))
	h.model = next.(Model)

	assert.False(t, h.model.naming)
	assert.Empty(t, h.editor.List())
	assert.Equal(t, catalog.DefaultTemplateID, h.list.Leads()[0].TemplateID)

	h.typeText("Ana")
	assert.Equal(t, "Ana", h.list.Leads()[0].Name)
}

func TestSavePresetPersistFailure(t *testing.T) {
	h := newHarness(t)
	h.storage.setErr = errors.New("disk full")

	h.send(press(tea.KeyCtrlP))
	h.typeText("Seguimiento")
	h.send(press(tea.KeyEnter))

	assert.True(t, h.model.statusErr)
	assert.Contains(t, h.model.status, "disk full")
	assert.True(t, h.model.naming)
	assert.Empty(t, h.editor.List())
	assert.Equal(t, catalog.DefaultTemplateID, h.list.Leads()[0].TemplateID)
}

func TestDeletePreset(t *testing.T) {
	h := newHarness(t)

	h.send(press(tea.KeyCtrlD))
	assert.True(t, h.model.statusErr)
	assert.Equal(t, "Solo se pueden eliminar plantillas personalizadas", h.model.status)

	h.send(press(tea.KeyCtrlP))
	h.typeText("Seguimiento")
	h.send(press(tea.KeyEnter))
	require.Len(t, h.editor.List(), 1)
	message := h.list.Leads()[0].CustomMessage

	h.send(press(tea.KeyCtrlD))

	assert.False(t, h.model.statusErr)
	assert.Equal(t, "Plantilla eliminada: Seguimiento", h.model.status)
	assert.Empty(t, h.editor.List())
	assert.Equal(t, "[]", h.storage.values[catalog.StorageKey])
	assert.Equal(t, message, h.list.Leads()[0].CustomMessage)
}

func TestQuit(t *testing.T) {
	h := newHarness(t)

	_, cmd := h.model.Update(press(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	h := newHarness(t)
	h.typeText("Ana")
	h.send(press(tea.KeyTab))
	h.typeText("612")

	view := h.model.View()

	assert.Contains(t, view, "Lead Composer")
	assert.Contains(t, view, "1 Ana ✓")
	assert.Contains(t, view, "App de Reservas (General)")
	assert.Contains(t, view, "Juanjo")
}
