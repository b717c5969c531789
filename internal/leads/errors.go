package leads

import "errors"

var (
	// ErrLeadNotFound is returned when no lead has the given id
	ErrLeadNotFound = errors.New("lead not found")

	// ErrLastLead is returned when removing the only remaining lead
	ErrLastLead = errors.New("at least one lead is required")

	// ErrLanguageRequired is returned when setting a blank language
	ErrLanguageRequired = errors.New("language is required")
)
