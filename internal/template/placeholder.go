package template

import (
	"regexp"
	"sort"
	"strings"
)

// Recognized placeholder names. Only these are ever substituted.
const (
	NamePlaceholder  = "name"
	AgentPlaceholder = "agent"
)

var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

var recognized = map[string]bool{
	NamePlaceholder:  true,
	AgentPlaceholder: true,
}

// Token returns the literal text of a placeholder, e.g. Token("name") == "{{name}}".
func Token(name string) string {
	return "{{" + name + "}}"
}

// IsRecognized reports whether name is one of the substitutable placeholders.
func IsRecognized(name string) bool {
	return recognized[name]
}

// Render substitutes every occurrence of the recognized placeholders with values.
// Matching is literal and case-sensitive. Unknown tokens are left as they are, and
// a blank value leaves the placeholder token itself in the output so previews
// always show something.
func Render(content string, values map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := match[2 : len(match)-2]
		if !IsRecognized(name) {
			return match
		}
		value, ok := values[name]
		if !ok || strings.TrimSpace(value) == "" {
			return match
		}
		return value
	})
}

// ExtractPlaceholders returns all unique placeholder names from the content, sorted.
func ExtractPlaceholders(content string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(content, -1)

	seen := make(map[string]bool)
	for _, match := range matches {
		if len(match) > 1 {
			seen[match[1]] = true
		}
	}

	result := make([]string, 0, len(seen))
	for name := range seen {
		result = append(result, name)
	}

	sort.Strings(result)

	return result
}

type PreviewResult struct {
	Original            string   `json:"original"`
	Preview             string   `json:"preview"`
	PlaceholdersFound   []string `json:"placeholders_found"`
	PlaceholdersFilled  []string `json:"placeholders_filled"`
	PlaceholdersMissing []string `json:"placeholders_missing"`
	PlaceholdersUnknown []string `json:"placeholders_unknown"`
}

// Preview renders content and reports which placeholders were filled, which
// recognized ones had no value, and which tokens are not substitutable at all.
func Preview(content string, values map[string]string) PreviewResult {
	found := ExtractPlaceholders(content)

	filled := []string{}
	missing := []string{}
	unknown := []string{}
	for _, name := range found {
		switch {
		case !IsRecognized(name):
			unknown = append(unknown, name)
		case strings.TrimSpace(values[name]) == "":
			missing = append(missing, name)
		default:
			filled = append(filled, name)
		}
	}

	return PreviewResult{
		Original:            content,
		Preview:             Render(content, values),
		PlaceholdersFound:   found,
		PlaceholdersFilled:  filled,
		PlaceholdersMissing: missing,
		PlaceholdersUnknown: unknown,
	}
}
