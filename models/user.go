// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model, veritabanındaki bir tablonun Go karşılığıdır; aynı zamanda API'den
// gelen/giden verilerin şeklini belirler. Request DTO'ları (CreateXRequest)
// Validate() metodlarını taşır — validation kuralları böylece handler yerine
// modelin yanında yaşar.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// User, bir kullanıcıyı temsil eder.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"` // *string = nullable — opsiyonel görünen ad
	PasswordHash string    `json:"-"`    // json:"-" → API response'a DAHİL ETME
	CreatedAt    time.Time `json:"createdAt"`
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailRegex, email format kontrolü için kullanılan regex'i döner.
func EmailRegex() *regexp.Regexp {
	return emailRegex
}

// RegisterRequest, kayıt olurken frontend'den gelen veri.
// PasswordHash yerine Password alırız — hash'leme service katmanında yapılır.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate, RegisterRequest'in geçerli olup olmadığını kontrol eder.
//   - Email: geçerli format, max 254 karakter
//   - Password: minimum 8 karakter
//   - Name: opsiyonel, max 64 karakter
func (r *RegisterRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || len(r.Email) > 254 || !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("a valid email is required")
	}

	if utf8.RuneCountInString(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	r.Name = strings.TrimSpace(r.Name)
	if utf8.RuneCountInString(r.Name) > 64 {
		return fmt.Errorf("name must be at most 64 characters")
	}

	return nil
}

// LoginRequest, giriş yaparken frontend'den gelen veri.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// UpdateProfileRequest, profil güncellemesi için.
// Name pointer'dır: nil → alan gönderilmedi, boş string → adı kaldır.
type UpdateProfileRequest struct {
	Name *string `json:"name"`
}

// Validate, UpdateProfileRequest'i kontrol eder.
func (r *UpdateProfileRequest) Validate() error {
	if r.Name == nil {
		return fmt.Errorf("name is required")
	}
	trimmed := strings.TrimSpace(*r.Name)
	if utf8.RuneCountInString(trimmed) > 64 {
		return fmt.Errorf("name must be at most 64 characters")
	}
	*r.Name = trimmed
	return nil
}
