// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile Repository (DB) arasında oturan katmandır.
// Tüm iş kuralları burada yaşar: şifre hash'leme, token üretimi,
// sahiplik kontrolleri, position kaydırma.
//
// Service ASLA http.Request/Response bilmez — sadece domain modelleri alır/verir.
// Service ASLA doğrudan SQL çalıştırmaz — Repository interface'i kullanır.
package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/pkg"
	"github.com/akinalp/docket/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost, şifre hash maliyeti. 12 referans donanımda deneme başına
// ~100ms demektir — offline brute-force'u anlamsızlaştırır.
const bcryptCost = 12

// refreshTokenBytes, refresh token'ın entropy miktarı.
// 40 byte → 80 karakterlik hex string; tahmin edilmesi pratik olarak imkansız.
const refreshTokenBytes = 40

// AuthService interface'i — dışarıya açık API.
// Handler bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *models.LoginRequest) (*AuthResult, error)
	// Refresh, refresh token rotation yapar: sunulan token'ın satırı silinir,
	// aynı kullanıcı için yepyeni bir token çifti üretilir. Aynı token ile
	// ikinci çağrı ErrUnauthorized alır.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	// Logout, token'a ait oturumları düşürür. Token geçersiz/boş olsa da
	// hata dönmez — logout her zaman başarılıdır.
	Logout(ctx context.Context, refreshToken string) error
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// AuthResult, login/register/refresh sonrası dönen sonuç.
//
// RefreshToken JSON'a yazılmaz — client'a sadece HTTP-only cookie ile
// ulaşır (handler katmanı set eder). Script'lerin token'ı okuyamaması
// XSS ile token çalınmasını engeller.
type AuthResult struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"-"`
	User         models.User `json:"user"`
}

// authService, AuthService interface'inin implementasyonu.
type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtSecret   []byte
	accessExp   time.Duration
	refreshExp  time.Duration
}

// NewAuthService, constructor.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	accessExpMinutes int,
	refreshExpDays int,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   []byte(jwtSecret),
		accessExp:   time.Duration(accessExpMinutes) * time.Minute,
		refreshExp:  time.Duration(refreshExpDays) * 24 * time.Hour,
	}
}

// Register, yeni kullanıcı kaydı oluşturur.
// Email unique'tir — çakışmada repository ErrAlreadyExists döner, aynen iletilir.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var name *string
	if req.Name != "" {
		name = &req.Name
	}

	user := &models.User{
		Email:        req.Email,
		Name:         name,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrAlreadyExists olabilir
	}

	return s.generateTokens(ctx, user)
}

// Login, kullanıcı girişi yapar.
//
// Hata mesajı her iki durumda da aynıdır ("invalid email or password") —
// email'in kayıtlı olup olmadığı dışarıya sızdırılmaz (account enumeration).
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
	}

	return s.generateTokens(ctx, user)
}

// Refresh, access token'ı yenilemek için kullanılır — rotation ile.
//
// Silme işlemi rows-affected kontrolü ile fence'lenir: aynı token'ı
// eşzamanlı sunan iki istekten yalnızca satırı gerçekten silen kazanır,
// diğeri ErrUnauthorized alır. Eski token ile yeni token'ın aynı anda
// geçerli olduğu bir pencere yoktur.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	session, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		// Stale satırı lazily temizle, sonra reddet
		if _, delErr := s.sessionRepo.DeleteByToken(ctx, refreshToken); delErr != nil {
			return nil, fmt.Errorf("failed to delete expired session: %w", delErr)
		}
		return nil, fmt.Errorf("%w: refresh token expired", pkg.ErrUnauthorized)
	}

	affected, err := s.sessionRepo.DeleteByToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to delete old session: %w", err)
	}
	if affected == 0 {
		// Eşzamanlı bir refresh token'ı bizden önce tüketti
		return nil, fmt.Errorf("%w: invalid refresh token", pkg.ErrUnauthorized)
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	return s.generateTokens(ctx, user)
}

// Logout, refresh token'ı iptal eder (oturum satırlarını siler).
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if _, err := s.sessionRepo.DeleteByToken(ctx, refreshToken); err != nil {
		return err
	}
	return nil
}

// ValidateAccessToken, access token'ı doğrular ve claims'i döner.
// İmza VE süre kontrolü jwt kütüphanesindedir — ikisinden biri geçersizse
// parse hata verir.
func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}

	return claims, nil
}

// UpdateProfile, kullanıcının görünen adını günceller ve güncel kullanıcıyı döner.
func (s *authService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	var name *string
	if *req.Name != "" {
		name = req.Name
	}

	if err := s.userRepo.UpdateName(ctx, userID, name); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangePassword, mevcut şifre doğrulandıktan sonra yeni şifreyi yazar.
func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", pkg.ErrBadRequest)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", pkg.ErrUnauthorized)
	}

	if currentPassword == newPassword {
		return fmt.Errorf("%w: new password must be different from current password", pkg.ErrBadRequest)
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(newHash))
}

// ─── Private Helpers ───

// generateTokens, bir token çifti üretir:
//   - access token: imzalı JWT, {user_id, email}, 15 dakika
//   - refresh token: crypto/rand hex string, DB'de satır, 30 gün
//
// Refresh token'ın kendisi dönen struct'ta taşınır ama JSON'a girmez —
// cookie set etmek handler'ın işidir.
func (s *authService) generateTokens(ctx context.Context, user *models.User) (*AuthResult, error) {
	now := time.Now()
	accessClaims := &models.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "docket",
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessString, err := accessToken.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshBytes := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(refreshBytes); err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshString := hex.EncodeToString(refreshBytes)

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: refreshString,
		ExpiresAt:    now.Add(s.refreshExp),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	user.PasswordHash = ""

	return &AuthResult{
		AccessToken:  accessString,
		RefreshToken: refreshString,
		User:         *user,
	}, nil
}
