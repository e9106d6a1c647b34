package models

import "time"

// Attachment, bir nota eklenmiş dosyayı temsil eder.
//
// Filename diskteki (random) ad, OriginalName kullanıcının yüklediği addır.
// URL, DB'de tutulmaz — repository scan sonrası "/api/uploads/{filename}"
// olarak doldurulur.
type Attachment struct {
	ID           string    `json:"id"`
	NoteID       string    `json:"noteId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
}
