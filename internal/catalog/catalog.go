// Package catalog holds the message templates a lead can be composed from:
// a fixed set of built-ins and the user's own templates.
package catalog

// Catalog resolves template ids across the built-in and custom namespaces.
// It is not safe for concurrent use.
type Catalog struct {
	custom []Template
}

// New returns a catalog holding the given custom templates in creation order.
func New(custom []Template) *Catalog {
	return &Catalog{custom: cloneTemplates(custom)}
}

// Lookup classifies id. Custom templates are checked first.
func (c *Catalog) Lookup(id string) (Ref, bool) {
	if c.customIndex(id) >= 0 {
		return Ref{Kind: KindCustom, ID: id}, true
	}
	if _, ok := builtins[id]; ok {
		return Ref{Kind: KindBuiltin, ID: id}, true
	}
	return Ref{}, false
}

// Resolve returns the raw template text for id in lang. Unknown ids resolve
// to the default built-in template.
func (c *Catalog) Resolve(templateID, lang string) string {
	ref, ok := c.Lookup(templateID)
	if !ok {
		return builtins[DefaultTemplateID].message(lang)
	}
	switch ref.Kind {
	case KindCustom:
		return c.custom[c.customIndex(ref.ID)].MessageFor(lang)
	default:
		return builtins[ref.ID].message(lang)
	}
}

// Label returns the display label for id in lang.
func (c *Catalog) Label(templateID, lang string) string {
	ref, ok := c.Lookup(templateID)
	if !ok {
		return builtins[DefaultTemplateID].label(lang)
	}
	if ref.Kind == KindCustom {
		return c.custom[c.customIndex(ref.ID)].LabelFor(lang)
	}
	return builtins[ref.ID].label(lang)
}

// List returns the built-ins in fixed order followed by custom templates in creation order.
func (c *Catalog) List(lang string) []Entry {
	entries := make([]Entry, 0, len(builtinOrder)+len(c.custom))
	for _, id := range builtinOrder {
		entries = append(entries, Entry{
			ID:    id,
			Kind:  KindBuiltin.String(),
			Label: builtins[id].label(lang),
		})
	}
	for _, t := range c.custom {
		entries = append(entries, Entry{
			ID:           t.ID,
			Kind:         KindCustom.String(),
			Label:        t.LabelFor(lang),
			InternalName: t.InternalName,
		})
	}
	return entries
}

// Custom returns a copy of the custom templates.
func (c *Catalog) Custom() []Template {
	return cloneTemplates(c.custom)
}

// CustomByID returns the custom template with the given id.
func (c *Catalog) CustomByID(id string) (Template, bool) {
	i := c.customIndex(id)
	if i < 0 {
		return Template{}, false
	}
	return cloneTemplate(c.custom[i]), true
}

func (c *Catalog) setCustom(templates []Template) {
	c.custom = templates
}

func (c *Catalog) customIndex(id string) int {
	for i, t := range c.custom {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTemplates(in []Template) []Template {
	out := make([]Template, 0, len(in))
	for _, t := range in {
		out = append(out, cloneTemplate(t))
	}
	return out
}

func cloneTemplate(t Template) Template {
	t.Label = cloneMap(t.Label)
	t.Message = cloneMap(t.Message)
	return t
}

func cloneMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
