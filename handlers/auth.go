package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/docket/config"
	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/pkg"
	"github.com/akinalp/docket/pkg/ratelimit"
	"github.com/akinalp/docket/services"
)

// refreshCookieName, refresh token'ı taşıyan cookie'nin adı.
const refreshCookieName = "refresh_token"

// AuthHandler, authentication endpoint'leri.
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.LoginRateLimiter
	jwtCfg       config.JWTConfig
}

// NewAuthHandler, constructor.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.LoginRateLimiter, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
		jwtCfg:       jwtCfg,
	}
}

// Register, POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	h.setRefreshCookie(w, result.RefreshToken)
	pkg.JSON(w, http.StatusCreated, result)
}

// Login, POST /api/auth/login
// IP bazlı rate limit: şifre denemesi sınırsız değildir.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", ratelimit.FormatRetryMessage(retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			"too many login attempts, try again in "+ratelimit.FormatRetryMessage(retryAfter))
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	// Başarılı giriş sayacı sıfırlar — meşru kullanıcı bloke olmasın
	h.loginLimiter.Reset(ip)

	h.setRefreshCookie(w, result.RefreshToken)
	pkg.JSON(w, http.StatusOK, result)
}

// Refresh, POST /api/auth/refresh
//
// Refresh token SADECE cookie'den okunur — body veya header kabul edilmez.
// Başarılı rotation yeni refresh cookie'yi set eder; başarısızlıkta cookie
// temizlenir ki client aynı ölü token'ı tekrar tekrar sunmasın.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "refresh token required")
		return
	}

	result, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		h.clearRefreshCookie(w)
		pkg.Error(w, err)
		return
	}

	h.setRefreshCookie(w, result.RefreshToken)
	pkg.JSON(w, http.StatusOK, result)
}

// Logout, POST /api/auth/logout
// Cookie yoksa da 200 döner — logout idempotenttir.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var refreshToken string
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		refreshToken = cookie.Value
	}

	if err := h.authService.Logout(r.Context(), refreshToken); err != nil {
		pkg.Error(w, err)
		return
	}

	h.clearRefreshCookie(w)
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me, GET /api/auth/me — access token'daki kullanıcıyı döner.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}

// UpdateProfile, PATCH /api/auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.authService.UpdateProfile(r.Context(), user.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, updated)
}

// changePasswordRequest, PATCH /api/auth/password body'si.
type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword, PATCH /api/auth/password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.ChangePassword(r.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// ─── Cookie Helpers ───

// setRefreshCookie, refresh token'ı HTTP-only cookie olarak yazar.
//
//   - HttpOnly: JavaScript cookie'yi okuyamaz (XSS koruması)
//   - SameSite=Lax: cross-site POST'larla cookie gönderilmez (CSRF koruması)
//   - Path: cookie sadece auth endpoint'lerine gider — her API çağrısında
//     refresh token'ı ağda taşımanın anlamı yok
func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     h.jwtCfg.CookiePath,
		MaxAge:   h.jwtCfg.RefreshTokenExpiry * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearRefreshCookie, cookie'yi geçersiz kılar (MaxAge < 0 → tarayıcı siler).
func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     h.jwtCfg.CookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
