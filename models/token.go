package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, access token'ın payload'ı.
//
// Server her request'te imzayı ve süreyi doğrular — DB'ye gitmeden
// kullanıcının kim olduğunu bilir. Bu struct models paketindedir çünkü
// birden fazla katman (services, middleware) tarafından kullanılır;
// her katman models'e bağımlı olabilir, circular dependency oluşmaz.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
