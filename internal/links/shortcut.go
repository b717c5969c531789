package links

import (
	"strings"

	"leadcomposer/internal/leads"
)

const (
	shortcutBaseURL   = "shortcuts://run-shortcut"
	payloadFieldSep   = " ||| "
	payloadEntryDelim = "\n\n"
)

// ShortcutPayload formats every ready lead as "<digits> ||| <message>",
// separated by a blank line. Leads missing a name or phone are skipped.
func ShortcutPayload(list []leads.Lead, agentName string) (string, error) {
	entries := make([]string, 0, len(list))
	for _, lead := range list {
		if !lead.Ready() {
			continue
		}
		entries = append(entries, Digits(lead.Phone)+payloadFieldSep+Compose(lead, agentName))
	}
	if len(entries) == 0 {
		return "", ErrEmptyBatch
	}
	return strings.Join(entries, payloadEntryDelim), nil
}

// ShortcutURL returns the URL that runs the named OS shortcut with payload as text input.
func ShortcutURL(name, payload string) string {
	return shortcutBaseURL +
		"?name=" + EncodeURIComponent(name) +
		"&input=text" +
		"&text=" + EncodeURIComponent(payload)
}

// Batch is a ready-to-open shortcut invocation.
type Batch struct {
	Payload string `json:"payload"`
	URL     string `json:"url"`
	Count   int    `json:"count"`
}

// BuildBatch builds the payload and the shortcut URL in one step.
func BuildBatch(shortcutName string, list []leads.Lead, agentName string) (Batch, error) {
	payload, err := ShortcutPayload(list, agentName)
	if err != nil {
		return Batch{}, err
	}
	count := 0
	for _, lead := range list {
		if lead.Ready() {
			count++
		}
	}
	return Batch{
		Payload: payload,
		URL:     ShortcutURL(shortcutName, payload),
		Count:   count,
	}, nil
}
