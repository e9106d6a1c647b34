// Package handlers, HTTP katmanını barındırır.
//
// Handler'lar incedir: request'i parse et, service'i çağır, cevabı yaz.
// İş kuralı BURADA YAŞAMAZ — handler'da if'ler çoğalmaya başladıysa
// o mantık services katmanına aittir.
package handlers

import (
	"net/http"

	"github.com/akinalp/docket/models"
)

// contextKey, context.WithValue için özel tip.
// string yerine özel tip: başka paketlerin aynı key'i (yanlışlıkla)
// ezmesini derleme seviyesinde engeller.
type contextKey string

// UserContextKey, auth middleware'ının doğrulanmış kullanıcıyı
// request context'ine koyduğu key.
const UserContextKey contextKey = "user"

// userFromContext, middleware'ın context'e koyduğu kullanıcıyı döner.
// Auth middleware'ından geçmeyen bir route'ta çağrılırsa ok=false döner —
// bu bir programlama hatasıdır, route tanımı eksiktir.
func userFromContext(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	return user, ok
}
