// Package links turns composed lead messages into outbound URLs.
package links

import (
	"strings"

	"leadcomposer/internal/leads"
	"leadcomposer/internal/template"
)

// DefaultAgentName is substituted when no agent name has been set.
const DefaultAgentName = "Juanjo"

const waBaseURL = "https://wa.me/"

// Compose fills the lead's message with the lead name and agent name as it
// will be sent.
func Compose(lead leads.Lead, agentName string) string {
	agent := strings.TrimSpace(agentName)
	if agent == "" {
		agent = DefaultAgentName
	}
	return template.Render(lead.CustomMessage, map[string]string{
		template.NamePlaceholder:  strings.TrimSpace(lead.Name),
		template.AgentPlaceholder: agent,
	})
}

// Validate checks the fields a lead needs before it can be sent, phone first.
func Validate(lead leads.Lead) error {
	if strings.TrimSpace(lead.Phone) == "" {
		return &ValidationError{Field: FieldPhone}
	}
	if strings.TrimSpace(lead.Name) == "" {
		return &ValidationError{Field: FieldName}
	}
	return nil
}

// WhatsAppLink returns https://wa.me/<digits>?text=<message> for the lead.
func WhatsAppLink(lead leads.Lead, agentName string) (string, error) {
	if err := Validate(lead); err != nil {
		return "", err
	}
	return waBaseURL + Digits(lead.Phone) + "?text=" + EncodeURIComponent(Compose(lead, agentName)), nil
}

// Digits strips everything but ASCII digits from a phone number.
func Digits(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// EncodeURIComponent percent-encodes s the way browsers do for a URI
// component: only A-Z a-z 0-9 and -_.!~*'() are left as is.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
