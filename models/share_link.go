package models

import "time"

// ShareLink, bir notun public paylaşım linkini temsil eder.
//
// Token tahmin edilemez bir hex string'dir ve tek lookup key'dir —
// linki bilen herkes notu okuyabilir, authentication gerekmez.
// Not başına en fazla bir link vardır (note_id UNIQUE); tekrar
// oluşturma isteği mevcut linki döner (idempotent).
type ShareLink struct {
	ID        string     `json:"id"`
	NoteID    string     `json:"noteId"`
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expiresAt"` // nil → süresiz
	CreatedAt time.Time  `json:"createdAt"`
}

// SharedNote, public paylaşım endpoint'inin döndürdüğü görünüm:
// notun kendisi + ekleri. UserID gibi sahiplik alanları Note içinde
// zaten var ama public görünümde zararsızdır (sadece opaque id).
type SharedNote struct {
	Note        Note         `json:"note"`
	Attachments []Attachment `json:"attachments"`
}
