package models

import "time"

// Session, bir refresh token oturumunu temsil eder.
//
// Access token kısa ömürlüdür (15dk) ve server-side tutulmaz.
// Refresh token uzun ömürlüdür (30 gün) ve DB'de satır olarak yaşar:
//   - Çalınan token iptal edilebilir (satır silinir)
//   - Her kullanımda rotation yapılır — eski satır silinir, yenisi eklenir
//   - Logout sadece ilgili oturumu düşürür
//
// Invariant: bir token değeri için en fazla bir satır (UNIQUE).
// Token geçerlidir ⇔ satır var VE expires_at gelecekte.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	RefreshToken string    `json:"-"` // API'ye gönderilmez — sadece cookie
	ExpiresAt    time.Time `json:"expiresAt"`
	CreatedAt    time.Time `json:"createdAt"`
}
