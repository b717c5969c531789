// Package tui is a terminal form over the lead list: one lead is edited at a
// time and links are copied to the clipboard instead of opened. The current
// message can be saved as a custom template.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadcomposer/internal/catalog"
	"leadcomposer/internal/leads"
	"leadcomposer/internal/links"
)

type field int

const (
	fieldName field = iota
	fieldPhone
	fieldMessage
	fieldAgent
	fieldCount
)

// Model is the bubbletea model for the lead form.
type Model struct {
	list         *leads.List
	catalog      *catalog.Catalog
	editor       *catalog.Editor
	shortcutName string
	copy         func(string) error

	keys keyMap
	help help.Model

	current int
	leadID  string
	focus   field
	name    textinput.Model
	phone   textinput.Model
	agent   textinput.Model
	message textarea.Model

	// naming is set while the preset label prompt owns the keyboard.
	naming bool
	preset textinput.Model

	status    string
	statusErr bool
}

func New(list *leads.List, cat *catalog.Catalog, editor *catalog.Editor, shortcutName string) Model {
	name := textinput.New()
	name.Placeholder = "Nombre del cliente"
	name.CharLimit = 120

	phone := textinput.New()
	phone.Placeholder = "+34 600 000 000"
	phone.CharLimit = 32

	agent := textinput.New()
	agent.Placeholder = links.DefaultAgentName
	agent.CharLimit = 60
	agent.SetValue(list.Settings().AgentName)

	message := textarea.New()
	message.ShowLineNumbers = false
	message.CharLimit = 0
	message.SetWidth(72)
	message.SetHeight(10)

	preset := textinput.New()
	preset.Placeholder = "Nombre de la plantilla"
	preset.CharLimit = 80

	m := Model{
		list:         list,
		catalog:      cat,
		editor:       editor,
		shortcutName: shortcutName,
		copy:         clipboard.WriteAll,
		keys:         defaultKeyMap(),
		help:         help.New(),
		name:         name,
		phone:        phone,
		agent:        agent,
		message:      message,
		preset:       preset,
	}
	m.loadLead()
	m.setFocus(fieldName)
	return m
}

// Run starts the form in the alternate screen and blocks until it exits.
func Run(list *leads.List, cat *catalog.Catalog, editor *catalog.Editor, shortcutName string) error {
	_, err := tea.NewProgram(New(list, cat, editor, shortcutName), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if msg.Width > 8 {
			m.message.SetWidth(msg.Width - 4)
		}
		return m, nil

	case tea.KeyMsg:
		if m.naming {
			return m.updateNaming(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case key.Matches(msg, m.keys.NextLead):
			m.selectLead(m.current + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevLead):
			m.selectLead(m.current - 1)
			return m, nil
		case key.Matches(msg, m.keys.Add):
			m.list.Add()
			m.selectLead(m.list.Len() - 1)
			m.ok(fmt.Sprintf("Lead %d añadido", m.list.Len()))
			return m, m.setFocus(fieldName)
		case key.Matches(msg, m.keys.Remove):
			m.removeLead()
			return m, nil
		case key.Matches(msg, m.keys.Template):
			m.cycleTemplate()
			return m, nil
		case key.Matches(msg, m.keys.Language):
			m.toggleLanguage()
			return m, nil
		case key.Matches(msg, m.keys.CopyLink):
			m.copyLink()
			return m, nil
		case key.Matches(msg, m.keys.CopyBatch):
			m.copyShortcut()
			return m, nil
		case key.Matches(msg, m.keys.SavePreset):
			return m, m.startNaming()
		case key.Matches(msg, m.keys.DeletePreset):
			m.deletePreset()
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and writes any change back
// to the lead list.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case fieldName:
		before := m.name.Value()
		m.name, cmd = m.name.Update(msg)
		if v := m.name.Value(); v != before {
			lead, err := m.list.UpdateName(m.leadID, v)
			if err != nil {
				m.syncFailed(err)
				break
			}
			m.message.SetValue(lead.CustomMessage)
		}
	case fieldPhone:
		before := m.phone.Value()
		m.phone, cmd = m.phone.Update(msg)
		if v := m.phone.Value(); v != before {
			if _, err := m.list.UpdatePhone(m.leadID, v); err != nil {
				m.syncFailed(err)
			}
		}
	case fieldMessage:
		before := m.message.Value()
		m.message, cmd = m.message.Update(msg)
		if v := m.message.Value(); v != before {
			if _, err := m.list.UpdateMessage(m.leadID, v); err != nil {
				m.syncFailed(err)
			}
		}
	case fieldAgent:
		before := m.agent.Value()
		m.agent, cmd = m.agent.Update(msg)
		if v := m.agent.Value(); v != before {
			m.list.SetAgentName(v)
		}
	}
	return m, cmd
}

// syncFailed reports a write-back error. When the edited lead is gone the
// inputs are reloaded from whichever lead now sits at the current tab.
func (m *Model) syncFailed(err error) {
	m.fail(err.Error())
	if errors.Is(err, leads.ErrLeadNotFound) {
		m.selectLead(m.current)
	}
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	m.name.Blur()
	m.phone.Blur()
	m.agent.Blur()
	m.message.Blur()

	switch f {
	case fieldName:
		return m.name.Focus()
	case fieldPhone:
		return m.phone.Focus()
	case fieldMessage:
		return m.message.Focus()
	default:
		return m.agent.Focus()
	}
}

func (m *Model) currentLead() leads.Lead {
	return m.list.Leads()[m.current]
}

func (m *Model) selectLead(i int) {
	n := m.list.Len()
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	m.current = i
	m.loadLead()
}

func (m *Model) loadLead() {
	lead := m.currentLead()
	m.leadID = lead.ID
	m.name.SetValue(lead.Name)
	m.phone.SetValue(lead.Phone)
	m.message.SetValue(lead.CustomMessage)
}

func (m *Model) removeLead() {
	if err := m.list.Remove(m.currentLead().ID); err != nil {
		if errors.Is(err, leads.ErrLastLead) {
			m.fail("No se puede eliminar el último lead")
			return
		}
		m.fail(err.Error())
		return
	}
	m.selectLead(m.current)
	m.ok("Lead eliminado")
}

func (m *Model) cycleTemplate() {
	lead := m.currentLead()
	entries := m.catalog.List(m.list.Settings().Language)
	next := 0
	for i, e := range entries {
		if e.ID == lead.TemplateID {
			next = (i + 1) % len(entries)
			break
		}
	}

	updated, err := m.list.UpdateTemplate(lead.ID, entries[next].ID)
	if err != nil {
		m.fail(err.Error())
		return
	}
	m.message.SetValue(updated.CustomMessage)
	m.ok("Plantilla: " + entries[next].Label)
}

func (m *Model) toggleLanguage() {
	langs := catalog.SupportedLanguages
	current := m.list.Settings().Language
	next := langs[0]
	for i, lang := range langs {
		if lang == current {
			next = langs[(i+1)%len(langs)]
			break
		}
	}

	if err := m.list.SetLanguage(next); err != nil {
		m.fail(err.Error())
		return
	}
	m.loadLead()
	m.ok("Idioma: " + next)
}

func (m *Model) copyLink() {
	settings := m.list.Settings()
	link, err := links.WhatsAppLink(m.currentLead(), settings.AgentName)
	if err != nil {
		m.fail(links.Notice(err, settings.Language))
		return
	}
	if err := m.copy(link); err != nil {
		m.fail(fmt.Sprintf("clipboard: %v", err))
		return
	}
	m.ok("Enlace de WhatsApp copiado")
}

func (m *Model) copyShortcut() {
	settings := m.list.Settings()
	batch, err := links.BuildBatch(m.shortcutName, m.list.Leads(), settings.AgentName)
	if err != nil {
		m.fail(links.Notice(err, settings.Language))
		return
	}
	if err := m.copy(batch.URL); err != nil {
		m.fail(fmt.Sprintf("clipboard: %v", err))
		return
	}
	m.ok(fmt.Sprintf("Atajo copiado (%d leads)", batch.Count))
}

func (m Model) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, m.stopNaming()
	case key.Matches(msg, m.keys.Confirm):
		return m, m.savePreset()
	}
	var cmd tea.Cmd
	m.preset, cmd = m.preset.Update(msg)
	return m, cmd
}

func (m *Model) startNaming() tea.Cmd {
	if m.editor == nil {
		m.fail("Las plantillas personalizadas no están disponibles")
		return nil
	}
	m.naming = true
	m.preset.SetValue("")
	m.name.Blur()
	m.phone.Blur()
	m.agent.Blur()
	m.message.Blur()
	return m.preset.Focus()
}

func (m *Model) stopNaming() tea.Cmd {
	m.naming = false
	m.preset.Blur()
	return m.setFocus(m.focus)
}

// savePreset stores the message as shown, in Spanish and in the current
// language, and points the lead at the new template.
func (m *Model) savePreset() tea.Cmd {
	label := strings.TrimSpace(m.preset.Value())
	if label == "" {
		m.fail("El nombre de la plantilla es obligatorio")
		return nil
	}

	lang := m.list.Settings().Language
	text := m.message.Value()
	created, err := m.editor.Create(catalog.Draft{
		InternalName: label,
		Label:        map[string]string{catalog.DefaultLanguage: label, lang: label},
		Message:      map[string]string{catalog.DefaultLanguage: text, lang: text},
	})
	if err != nil {
		m.fail(err.Error())
		return nil
	}

	cmd := m.stopNaming()
	lead, err := m.list.UpdateTemplate(m.leadID, created.ID)
	if err != nil {
		m.syncFailed(err)
		return cmd
	}
	m.message.SetValue(lead.CustomMessage)
	m.ok("Plantilla guardada: " + label)
	return cmd
}

// deletePreset removes the custom template the current lead uses. The lead
// keeps its text.
func (m *Model) deletePreset() {
	if m.editor == nil {
		m.fail("Las plantillas personalizadas no están disponibles")
		return
	}
	lead := m.currentLead()
	ref, ok := m.catalog.Lookup(lead.TemplateID)
	if !ok || ref.Kind != catalog.KindCustom {
		m.fail("Solo se pueden eliminar plantillas personalizadas")
		return
	}

	label := m.catalog.Label(ref.ID, m.list.Settings().Language)
	if err := m.editor.Delete(ref.ID); err != nil {
		m.fail(err.Error())
		return
	}
	m.ok("Plantilla eliminada: " + label)
}

func (m *Model) ok(text string) {
	m.status, m.statusErr = text, false
}

func (m *Model) fail(text string) {
	m.status, m.statusErr = text, true
}

func (m Model) View() string {
	var b strings.Builder
	settings := m.list.Settings()

	agent := settings.AgentName
	if agent == "" {
		agent = links.DefaultAgentName
	}
	b.WriteString(titleStyle.Render("Lead Composer"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  idioma: %s · agente: %s", settings.Language, agent)))
	b.WriteString("\n\n")

	all := m.list.Leads()
	tabs := make([]string, 0, len(all))
	for i, lead := range all {
		label := fmt.Sprintf("%d", i+1)
		if name := strings.TrimSpace(lead.Name); name != "" {
			label += " " + name
		}
		if lead.Ready() {
			label += " ✓"
		}
		style := tabStyle
		if i == m.current {
			style = activeTab
		}
		tabs = append(tabs, style.Render(label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	lead := all[m.current]
	b.WriteString(labelStyle.Render("Nombre") + m.name.View() + "\n")
	b.WriteString(labelStyle.Render("Teléfono") + m.phone.View() + "\n")
	b.WriteString(labelStyle.Render("Plantilla") + badgeStyle.Render(m.catalog.Label(lead.TemplateID, settings.Language)) + "\n")
	b.WriteString(labelStyle.Render("Mensaje") + "\n" + m.message.View() + "\n")
	b.WriteString(labelStyle.Render("Agente") + m.agent.View() + "\n\n")

	if m.naming {
		b.WriteString(labelStyle.Render("Guardar") + m.preset.View() + "\n")
		b.WriteString(dimStyle.Render("enter guardar · esc cancelar") + "\n\n")
	}

	preview := m.list.Preview()
	b.WriteString(dimStyle.Render("Vista previa · "+m.catalog.Label(preview.TemplateID, settings.Language)) + "\n")
	b.WriteString(previewStyle.Render(links.Compose(preview, settings.AgentName)))
	b.WriteString("\n")

	if m.status != "" {
		style := statusOK
		if m.statusErr {
			style = statusErr
		}
		b.WriteString(style.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
