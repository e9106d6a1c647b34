package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Email: " alice@example.com ", Password: "12345678", Name: " Alice "}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, "alice@example.com", valid.Email) // trim edilir
	assert.Equal(t, "Alice", valid.Name)

	bad := []RegisterRequest{
		{Email: "", Password: "12345678"},
		{Email: "not-an-email", Password: "12345678"},
		{Email: "a@b.co", Password: "1234567"}, // 7 karakter
		{Email: "a@b.co", Password: "12345678", Name: strings.Repeat("x", 65)},
	}
	for i := range bad {
		assert.Error(t, bad[i].Validate(), "case %d", i)
	}
}

func TestCreateNoteRequestValidate(t *testing.T) {
	req := CreateNoteRequest{Title: "  hello  "}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "hello", req.Title)
	assert.Equal(t, string(NoteColorYellow), req.Color) // renk default'u

	assert.Error(t, (&CreateNoteRequest{Title: "   "}).Validate())
	assert.Error(t, (&CreateNoteRequest{Title: "x", Color: "magenta"}).Validate())
	assert.Error(t, (&CreateNoteRequest{Title: strings.Repeat("x", 201)}).Validate())
}

func TestUpdateNoteRequestValidate(t *testing.T) {
	// Tüm alanlar nil — geçerli no-op patch
	assert.NoError(t, (&UpdateNoteRequest{}).Validate())

	empty := "  "
	assert.Error(t, (&UpdateNoteRequest{Title: &empty}).Validate())

	badColor := "teal"
	assert.Error(t, (&UpdateNoteRequest{Color: &badColor}).Validate())
}

func TestReorderRequestValidate(t *testing.T) {
	assert.NoError(t, (&ReorderRequest{OrderedIDs: []string{"a", "b"}}).Validate())
	assert.Error(t, (&ReorderRequest{}).Validate())
	assert.Error(t, (&ReorderRequest{OrderedIDs: []string{"a", " "}}).Validate())
}

func TestFolderNameValidation(t *testing.T) {
	assert.NoError(t, (&CreateFolderRequest{Name: "Work"}).Validate())
	assert.Error(t, (&CreateFolderRequest{Name: ""}).Validate())
	assert.Error(t, (&CreateFolderRequest{Name: strings.Repeat("x", 65)}).Validate())

	assert.Error(t, (&UpdateFolderRequest{}).Validate()) // name zorunlu
}
