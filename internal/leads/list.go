// Package leads keeps the ordered list of leads and their composed messages in
// step with the name, template and language they were rendered from.
package leads

import (
	"strings"

	"github.com/google/uuid"

	"leadcomposer/internal/catalog"
	"leadcomposer/internal/template"
)

// Resolver supplies raw template text by id and language.
type Resolver interface {
	Resolve(templateID, lang string) string
}

// List owns the leads and the shared settings. It always holds at least one
// lead. It is not safe for concurrent use.
type List struct {
	resolver Resolver
	settings Settings
	leads    []*Lead
	newID    func() string
}

// New returns a list with a single empty lead rendered in settings.Language.
func New(resolver Resolver, settings Settings) *List {
	settings.Language = catalog.NormalizeLanguage(settings.Language)
	if settings.Language == "" {
		settings.Language = catalog.DefaultLanguage
	}
	settings.AgentName = strings.TrimSpace(settings.AgentName)

	l := &List{
		resolver: resolver,
		settings: settings,
		newID:    uuid.NewString,
	}
	l.Add()
	return l
}

// Add appends an empty lead using the default template.
func (l *List) Add() Lead {
	lead := &Lead{
		ID:         l.newID(),
		TemplateID: catalog.DefaultTemplateID,
	}
	l.render(lead)
	l.leads = append(l.leads, lead)
	return *lead
}

// Remove deletes the lead with id unless it is the last one left.
func (l *List) Remove(id string) error {
	i := l.index(id)
	if i < 0 {
		return ErrLeadNotFound
	}
	if len(l.leads) == 1 {
		return ErrLastLead
	}
	l.leads = append(l.leads[:i], l.leads[i+1:]...)
	return nil
}

// UpdateName sets the name and re-renders the lead's template with it.
func (l *List) UpdateName(id, name string) (Lead, error) {
	lead, err := l.find(id)
	if err != nil {
		return Lead{}, err
	}
	lead.Name = name
	l.render(lead)
	return *lead, nil
}

// UpdatePhone sets the phone number. The message is left alone.
func (l *List) UpdatePhone(id, phone string) (Lead, error) {
	lead, err := l.find(id)
	if err != nil {
		return Lead{}, err
	}
	lead.Phone = phone
	return *lead, nil
}

// UpdateTemplate switches the template and renders it from scratch; manual
// edits to the previous message are discarded.
func (l *List) UpdateTemplate(id, templateID string) (Lead, error) {
	lead, err := l.find(id)
	if err != nil {
		return Lead{}, err
	}
	lead.TemplateID = templateID
	l.render(lead)
	return *lead, nil
}

// UpdateMessage overrides the composed text. The override lasts until the
// name, template or language changes.
func (l *List) UpdateMessage(id, text string) (Lead, error) {
	lead, err := l.find(id)
	if err != nil {
		return Lead{}, err
	}
	lead.CustomMessage = text
	return *lead, nil
}

// SetLanguage switches the language and re-renders every lead.
func (l *List) SetLanguage(lang string) error {
	lang = catalog.NormalizeLanguage(lang)
	if lang == "" {
		return ErrLanguageRequired
	}
	l.settings.Language = lang
	for _, lead := range l.leads {
		l.render(lead)
	}
	return nil
}

// SetAgentName records the agent name used when links are built. Existing
// messages are not re-rendered.
func (l *List) SetAgentName(name string) {
	l.settings.AgentName = strings.TrimSpace(name)
}

func (l *List) Settings() Settings {
	return l.settings
}

// Leads returns a snapshot of the leads in order.
func (l *List) Leads() []Lead {
	out := make([]Lead, 0, len(l.leads))
	for _, lead := range l.leads {
		out = append(out, *lead)
	}
	return out
}

func (l *List) Get(id string) (Lead, error) {
	lead, err := l.find(id)
	if err != nil {
		return Lead{}, err
	}
	return *lead, nil
}

func (l *List) Len() int {
	return len(l.leads)
}

// Preview returns the first lead, whose message is shown as the preview.
func (l *List) Preview() Lead {
	return *l.leads[0]
}

func (l *List) render(lead *Lead) {
	text := l.resolver.Resolve(lead.TemplateID, l.settings.Language)
	lead.CustomMessage = template.Render(text, map[string]string{
		template.NamePlaceholder: strings.TrimSpace(lead.Name),
	})
}

func (l *List) find(id string) (*Lead, error) {
	i := l.index(id)
	if i < 0 {
		return nil, ErrLeadNotFound
	}
	return l.leads[i], nil
}

func (l *List) index(id string) int {
	for i, lead := range l.leads {
		if lead.ID == id {
			return i
		}
	}
	return -1
}
