package catalog

import "errors"

var (
	// ErrInternalNameRequired is returned when a custom template has no internal name
	ErrInternalNameRequired = errors.New("internal name is required")

	// ErrLabelRequired is returned when a custom template has no default-language label
	ErrLabelRequired = errors.New("label (es) is required")

	// ErrMessageRequired is returned when a custom template has no default-language message
	ErrMessageRequired = errors.New("message (es) is required")

	// ErrTemplateNotFound is returned when no custom template has the given id
	ErrTemplateNotFound = errors.New("template not found")

	// ErrPersistenceRead marks an unreadable or malformed stored collection.
	// It is only ever logged; loading falls back to an empty collection.
	ErrPersistenceRead = errors.New("custom templates unreadable")
)
