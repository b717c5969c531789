package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T) (*Editor, *Catalog, *memoryStorage) {
	t.Helper()
	storage := newMemoryStorage()
	c := New(nil)
	return NewEditor(c, NewStore(storage, nil), nil), c, storage
}

func validDraft() Draft {
	return Draft{
		InternalName: "  recordatorio ",
		Label:        map[string]string{"es": " Recordatorio ", "ca": ""},
		Message:      map[string]string{"es": "Hola {{name}}, te recuerdo la demo."},
	}
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  error
	}{
		{"valid", validDraft(), nil},
		{"missing internal name", Draft{Label: map[string]string{"es": "x"}, Message: map[string]string{"es": "y"}}, ErrInternalNameRequired},
		{"missing es label", Draft{InternalName: "n", Label: map[string]string{"ca": "x"}, Message: map[string]string{"es": "y"}}, ErrLabelRequired},
		{"blank es message", Draft{InternalName: "n", Label: map[string]string{"es": "x"}, Message: map[string]string{"es": "  "}}, ErrMessageRequired},
		{"uppercase language keys", Draft{InternalName: "n", Label: map[string]string{"ES": "x"}, Message: map[string]string{" Es ": "y"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEditorCreate(t *testing.T) {
	editor, c, storage := newTestEditor(t)

	created, err := editor.Create(validDraft())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, customIDPrefix))
	assert.Equal(t, "recordatorio", created.InternalName)
	assert.Equal(t, map[string]string{"es": "Recordatorio"}, created.Label)

	ref, ok := c.Lookup(created.ID)
	require.True(t, ok)
	assert.Equal(t, KindCustom, ref.Kind)
	assert.Equal(t, "Hola {{name}}, te recuerdo la demo.", c.Resolve(created.ID, "ca"))
	assert.Equal(t, "Recordatorio", c.Label(created.ID, "ca"))

	assert.Equal(t, []Template{created}, NewStore(storage, nil).LoadAll())
}

func TestEditorCreateNormalizesLanguageKeys(t *testing.T) {
	editor, c, _ := newTestEditor(t)

	created, err := editor.Create(Draft{
		InternalName: "mayusculas",
		Label:        map[string]string{"ES": "Etiqueta", "CA": "Etiqueta ca"},
		Message:      map[string]string{"ES": "Hola {{name}}"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"es": "Etiqueta", "ca": "Etiqueta ca"}, created.Label)
	assert.Equal(t, "Hola {{name}}", c.Resolve(created.ID, "es"))
}

func TestEditorCreateRejectsInvalid(t *testing.T) {
	editor, c, storage := newTestEditor(t)

	_, err := editor.Create(Draft{InternalName: "x"})
	assert.ErrorIs(t, err, ErrLabelRequired)
	assert.Empty(t, c.Custom())
	assert.Zero(t, storage.setHits)
}

func TestEditorCreatePersistFailureRollsBack(t *testing.T) {
	editor, c, storage := newTestEditor(t)
	storage.setErr = errors.New("quota exceeded")

	_, err := editor.Create(validDraft())
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.setErr)
	assert.Empty(t, c.Custom())
}

func TestEditorUpdate(t *testing.T) {
	editor, c, storage := newTestEditor(t)
	created, err := editor.Create(validDraft())
	require.NoError(t, err)

	draft := validDraft()
	draft.Message["ca"] = "Hola {{name}}, et recordo la demo."
	updated, err := editor.Update(created.ID, draft)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Hola {{name}}, et recordo la demo.", c.Resolve(created.ID, "ca"))
	assert.Equal(t, []Template{updated}, NewStore(storage, nil).LoadAll())
}

func TestEditorUpdateMissing(t *testing.T) {
	editor, _, _ := newTestEditor(t)

	_, err := editor.Update("custom-nope", validDraft())
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestEditorDelete(t *testing.T) {
	editor, c, storage := newTestEditor(t)
	first, err := editor.Create(validDraft())
	require.NoError(t, err)
	second, err := editor.Create(validDraft())
	require.NoError(t, err)

	require.NoError(t, editor.Delete(first.ID))

	_, ok := c.Lookup(first.ID)
	assert.False(t, ok)
	assert.Equal(t, []Template{second}, editor.List())
	assert.Equal(t, []Template{second}, NewStore(storage, nil).LoadAll())

	assert.ErrorIs(t, editor.Delete(first.ID), ErrTemplateNotFound)
}

func TestEditorDeletePersistFailureKeepsTemplate(t *testing.T) {
	editor, c, storage := newTestEditor(t)
	created, err := editor.Create(validDraft())
	require.NoError(t, err)

	storage.setErr = errors.New("quota exceeded")
	require.Error(t, editor.Delete(created.ID))

	_, ok := c.Lookup(created.ID)
	assert.True(t, ok)
}

func TestEditorGet(t *testing.T) {
	editor, _, _ := newTestEditor(t)
	created, err := editor.Create(validDraft())
	require.NoError(t, err)

	got, err := editor.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = editor.Get("custom-missing")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
