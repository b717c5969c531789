package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"leadcomposer/pkg/logging"
)

// Draft is the user's input when creating or editing a custom template.
type Draft struct {
	InternalName string            `json:"internalName"`
	Label        map[string]string `json:"label"`
	Message      map[string]string `json:"message"`
}

// Validate checks the fields a custom template cannot do without.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.InternalName) == "" {
		return ErrInternalNameRequired
	}
	if cleanVariants(d.Label, true)[DefaultLanguage] == "" {
		return ErrLabelRequired
	}
	if cleanVariants(d.Message, false)[DefaultLanguage] == "" {
		return ErrMessageRequired
	}
	return nil
}

// Editor creates, edits and deletes custom templates. Every change is written
// through to the store before it becomes visible in the catalog; a failed write
// leaves the catalog untouched.
type Editor struct {
	catalog *Catalog
	store   *Store
	logger  *logging.Logger
	newID   func() string
}

func NewEditor(catalog *Catalog, store *Store, logger *logging.Logger) *Editor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Editor{
		catalog: catalog,
		store:   store,
		logger:  logger,
		newID:   func() string { return customIDPrefix + uuid.NewString() },
	}
}

// List returns the custom templates in creation order.
func (e *Editor) List() []Template {
	return e.catalog.Custom()
}

func (e *Editor) Get(id string) (Template, error) {
	t, ok := e.catalog.CustomByID(id)
	if !ok {
		return Template{}, ErrTemplateNotFound
	}
	return t, nil
}

func (e *Editor) Create(d Draft) (Template, error) {
	if err := d.Validate(); err != nil {
		return Template{}, err
	}

	t := Template{
		ID:           e.newID(),
		InternalName: strings.TrimSpace(d.InternalName),
		Label:        cleanVariants(d.Label, true),
		Message:      cleanVariants(d.Message, false),
	}

	next := append(e.catalog.Custom(), t)
	if err := e.commit(next); err != nil {
		return Template{}, fmt.Errorf("failed to create template: %w", err)
	}

	e.logger.Info().Str("template_id", t.ID).Str("internal_name", t.InternalName).Msg("custom template created")
	return cloneTemplate(t), nil
}

func (e *Editor) Update(id string, d Draft) (Template, error) {
	if err := d.Validate(); err != nil {
		return Template{}, err
	}

	next := e.catalog.Custom()
	i := indexOf(next, id)
	if i < 0 {
		return Template{}, ErrTemplateNotFound
	}

	next[i] = Template{
		ID:           id,
		InternalName: strings.TrimSpace(d.InternalName),
		Label:        cleanVariants(d.Label, true),
		Message:      cleanVariants(d.Message, false),
	}
	if err := e.commit(next); err != nil {
		return Template{}, fmt.Errorf("failed to update template: %w", err)
	}

	e.logger.Info().Str("template_id", id).Msg("custom template updated")
	return cloneTemplate(next[i]), nil
}

// Delete removes a custom template. Leads that already rendered it keep their text.
func (e *Editor) Delete(id string) error {
	current := e.catalog.Custom()
	i := indexOf(current, id)
	if i < 0 {
		return ErrTemplateNotFound
	}

	next := append(current[:i:i], current[i+1:]...)
	if err := e.commit(next); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	e.logger.Info().Str("template_id", id).Msg("custom template deleted")
	return nil
}

func (e *Editor) commit(next []Template) error {
	if err := e.store.SaveAll(next); err != nil {
		return err
	}
	e.catalog.setCustom(next)
	return nil
}

func indexOf(templates []Template, id string) int {
	for i, t := range templates {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// cleanVariants drops blank variants so lookups fall back to the default language.
func cleanVariants(in map[string]string, trim bool) map[string]string {
	out := make(map[string]string, len(in))
	for lang, value := range in {
		lang = NormalizeLanguage(lang)
		if lang == "" || strings.TrimSpace(value) == "" {
			continue
		}
		if trim {
			value = strings.TrimSpace(value)
		}
		out[lang] = value
	}
	return out
}
