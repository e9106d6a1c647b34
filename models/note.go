package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// NoteColor, notun kart rengini temsil eder.
type NoteColor string

// İzin verilen renkler — frontend'deki kart paleti ile birebir aynı.
const (
	NoteColorYellow NoteColor = "yellow"
	NoteColorOrange NoteColor = "orange"
	NoteColorPurple NoteColor = "purple"
	NoteColorGreen  NoteColor = "green"
	NoteColorBlue   NoteColor = "blue"
)

var validNoteColors = map[NoteColor]bool{
	NoteColorYellow: true,
	NoteColorOrange: true,
	NoteColorPurple: true,
	NoteColorGreen:  true,
	NoteColorBlue:   true,
}

// Note, bir notu temsil eder.
// Position semantiği Folder ile aynıdır (bkz. models/folder.go).
type Note struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	FolderID   *string   `json:"folderId"` // nil → klasörsüz
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Color      NoteColor `json:"color"`
	IsFavorite bool      `json:"isFavorite"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateNoteRequest, not oluşturma isteği.
type CreateNoteRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Color      string  `json:"color"`
	IsFavorite bool    `json:"isFavorite"`
	FolderID   *string `json:"folderId"`
}

// Validate, CreateNoteRequest'i kontrol eder.
// Renk gönderilmemişse varsayılan "yellow" atanır.
func (r *CreateNoteRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(r.Title) > 200 {
		return fmt.Errorf("title must be at most 200 characters")
	}

	if r.Color == "" {
		r.Color = string(NoteColorYellow)
	}
	if !validNoteColors[NoteColor(r.Color)] {
		return fmt.Errorf("invalid color: %s", r.Color)
	}

	return nil
}

// UpdateNoteRequest, not güncelleme isteği (partial update).
// nil alanlar dokunulmadan bırakılır.
//
// FolderID için boş string özel anlam taşır: notu klasöründen çıkar.
type UpdateNoteRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Color      *string `json:"color"`
	IsFavorite *bool   `json:"isFavorite"`
	FolderID   *string `json:"folderId"`
}

// Validate, UpdateNoteRequest'i kontrol eder.
func (r *UpdateNoteRequest) Validate() error {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		if trimmed == "" {
			return fmt.Errorf("title must not be empty")
		}
		if utf8.RuneCountInString(trimmed) > 200 {
			return fmt.Errorf("title must be at most 200 characters")
		}
		*r.Title = trimmed
	}

	if r.Color != nil && !validNoteColors[NoteColor(*r.Color)] {
		return fmt.Errorf("invalid color: %s", *r.Color)
	}

	return nil
}

// NoteFilter, not listeleme filtreleri (GET /api/notes query parametreleri).
// Sıfır değerli alanlar filtre uygulamaz.
type NoteFilter struct {
	Color    string // renk eşitliği
	Favorite *bool  // sadece favoriler / sadece favori olmayanlar
	Search   string // başlık + içerikte case-insensitive substring
	FolderID string // klasör eşitliği
}
