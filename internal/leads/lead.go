package leads

import (
	"strings"
)

// Lead is one prospective customer and the message composed for them.
type Lead struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phoneNumber"`
	CustomMessage string `json:"customMessage"`
	TemplateID    string `json:"selectedTemplateId"`
}

// Ready reports whether the lead has both a name and a phone number, the
// precondition for building any outbound link.
func (l Lead) Ready() bool {
	return strings.TrimSpace(l.Name) != "" && strings.TrimSpace(l.Phone) != ""
}

// Settings are the values shared by every lead.
type Settings struct {
	Language  string `json:"language"`
	AgentName string `json:"agentName"`
}
