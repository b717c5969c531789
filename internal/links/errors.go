package links

import (
	"errors"
	"fmt"

	"leadcomposer/internal/catalog"
)

// Lead fields that must be present before a link is built.
const (
	FieldPhone = "phone"
	FieldName  = "name"
)

// ErrEmptyBatch is returned when no lead qualifies for the shortcut payload.
var ErrEmptyBatch = errors.New("no lead has both a name and a phone number")

// ValidationError reports a required lead field that is blank.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lead %s is required", e.Field)
}

var notices = map[string]map[string]string{
	FieldPhone: {
		"es": "Por favor, ingresa un número de teléfono",
		"ca": "Si us plau, introdueix un número de telèfon",
	},
	FieldName: {
		"es": "Por favor, ingresa el nombre del cliente",
		"ca": "Si us plau, introdueix el nom del client",
	},
}

var emptyBatchNotices = map[string]string{
	"es": "Ningún cliente tiene nombre y teléfono",
	"ca": "Cap client no té nom i telèfon",
}

// Notice returns the user-facing message for lang, defaulting to Spanish.
func (e *ValidationError) Notice(lang string) string {
	byLang, ok := notices[e.Field]
	if !ok {
		return e.Error()
	}
	if text, ok := byLang[catalog.NormalizeLanguage(lang)]; ok {
		return text
	}
	return byLang[catalog.DefaultLanguage]
}

// Notice returns the user-facing message for err in lang, or err.Error()
// when there is no localized text for it.
func Notice(err error, lang string) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Notice(lang)
	}
	if errors.Is(err, ErrEmptyBatch) {
		if text, ok := emptyBatchNotices[catalog.NormalizeLanguage(lang)]; ok {
			return text
		}
		return emptyBatchNotices[catalog.DefaultLanguage]
	}
	return err.Error()
}
