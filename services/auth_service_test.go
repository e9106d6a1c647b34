package services

import (
	"context"
	"testing"
	"time"

	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/pkg"
	"github.com/akinalp/docket/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-do-not-use-in-production"

func newAuthService(t *testing.T) (AuthService, repository.SessionRepository) {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewSQLiteUserRepo(db)
	sessionRepo := repository.NewSQLiteSessionRepo(db)

	return NewAuthService(userRepo, sessionRepo, testJWTSecret, 15, 30), sessionRepo
}

func TestRegister(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
		Name:     "Alice",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.Len(t, result.RefreshToken, 80) // 40 byte → 80 hex karakter
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Empty(t, result.User.PasswordHash)

	// Aynı email ile ikinci kayıt reddedilir
	_, err = svc.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "different-pass",
	})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Email: "not-an-email", Password: "longenough"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	_, err = svc.Register(ctx, &models.RegisterRequest{Email: "bob@example.com", Password: "short"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	// Yanlış şifre ve bilinmeyen email AYNI mesajı döner — enumeration yok
	_, errWrongPass := svc.Login(ctx, &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	_, errUnknown := svc.Login(ctx, &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, errWrongPass, pkg.ErrUnauthorized)
	assert.ErrorIs(t, errUnknown, pkg.ErrUnauthorized)
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
}

func TestRefreshRotation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// İlk refresh: yeni token çifti, eski refresh token artık geçersiz
	refreshed, err := svc.Refresh(ctx, reg.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, refreshed.RefreshToken)
	assert.Equal(t, reg.User.ID, refreshed.User.ID)

	// Aynı (eski) token ile ikinci deneme reddedilir — rotation
	_, err = svc.Refresh(ctx, reg.RefreshToken)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	// Yeni token hâlâ çalışır
	_, err = svc.Refresh(ctx, refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshUnknownToken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Refresh(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestRefreshExpiredToken(t *testing.T) {
	svc, sessionRepo := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// Süresi geçmiş bir oturum satırı oluştur
	expired := &models.Session{
		UserID:       reg.User.ID,
		RefreshToken: "aaaabbbbccccdddd",
		ExpiresAt:    time.Now().Add(-time.Hour),
	}
	require.NoError(t, sessionRepo.Create(ctx, expired))

	_, err = svc.Refresh(ctx, expired.RefreshToken)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	// Satır lazily silinmiş olmalı
	_, err = sessionRepo.GetByRefreshToken(ctx, expired.RefreshToken)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestLogout(t *testing.T) {
	svc, sessionRepo := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, reg.RefreshToken))

	_, err = sessionRepo.GetByRefreshToken(ctx, reg.RefreshToken)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// Logout idempotenttir: bilinmeyen veya boş token hata değildir
	assert.NoError(t, svc.Logout(ctx, reg.RefreshToken))
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestValidateAccessToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(reg.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)

	_, err = svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	// Başka secret ile imzalanmış token reddedilir
	otherDB := newTestDB(t)
	otherSvc := NewAuthService(
		repository.NewSQLiteUserRepo(otherDB),
		repository.NewSQLiteSessionRepo(otherDB),
		"a-completely-different-secret", 15, 30,
	)
	other, err := otherSvc.Register(ctx, &models.RegisterRequest{
		Email:    "eve@example.com",
		Password: "evil-password",
	})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(other.AccessToken)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	userID := reg.User.ID

	// Yanlış mevcut şifre
	err = svc.ChangePassword(ctx, userID, "wrong-current", "new-password-1")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	// Yeni şifre eskisiyle aynı olamaz
	err = svc.ChangePassword(ctx, userID, "correct-horse", "correct-horse")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	// Çok kısa yeni şifre
	err = svc.ChangePassword(ctx, userID, "correct-horse", "short")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	// Başarılı değişim sonrası eski şifre çalışmaz, yenisi çalışır
	require.NoError(t, svc.ChangePassword(ctx, userID, "correct-horse", "new-password-1"))

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "new-password-1"})
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
		Name:     "Alice",
	})
	require.NoError(t, err)

	newName := "Alice Cooper"
	updated, err := svc.UpdateProfile(ctx, reg.User.ID, &models.UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)
	require.NotNil(t, updated.Name)
	assert.Equal(t, "Alice Cooper", *updated.Name)

	// Boş string adı kaldırır
	empty := ""
	updated, err = svc.UpdateProfile(ctx, reg.User.ID, &models.UpdateProfileRequest{Name: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.Name)
}
