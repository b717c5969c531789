package catalog

import (
	"strings"
)

const (
	// DefaultLanguage is the language every variant falls back to.
	DefaultLanguage = "es"
	// DefaultTemplateID is used for new leads and for ids that resolve to nothing.
	DefaultTemplateID = BuiltinAppGeneral

	customIDPrefix = "custom-"
)

// SupportedLanguages are the languages the built-in templates ship with.
var SupportedLanguages = []string{"es", "ca"}

// Kind distinguishes the two template namespaces.
type Kind int

const (
	KindBuiltin Kind = iota
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Ref identifies a template within its namespace.
type Ref struct {
	Kind Kind
	ID   string
}

// Template is a user-defined message template with per-language variants.
type Template struct {
	ID           string            `json:"id"`
	InternalName string            `json:"internalName"`
	Label        map[string]string `json:"label"`
	Message      map[string]string `json:"message"`
}

// LabelFor returns the label in lang, falling back to the default language.
func (t Template) LabelFor(lang string) string {
	return localized(t.Label, lang)
}

// MessageFor returns the message text in lang, falling back to the default language.
func (t Template) MessageFor(lang string) string {
	return localized(t.Message, lang)
}

// Entry is one selectable template as shown to the user.
type Entry struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Label        string `json:"label"`
	InternalName string `json:"internalName,omitempty"`
}

// NormalizeLanguage lower-cases and trims a language code.
func NormalizeLanguage(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}

func localized(variants map[string]string, lang string) string {
	if value, ok := variants[NormalizeLanguage(lang)]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return variants[DefaultLanguage]
}
