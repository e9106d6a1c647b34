// Package client, docket API'si için Go client'ıdır ve sessiz token
// yenileme protokolünü implement eder.
//
// Token saklama kuralları:
//   - Access token SADECE bellekte tutulur — diske asla yazılmaz.
//   - Refresh token client kodunun eline hiç geçmez: HTTP-only cookie'dir,
//     cookie jar tarafından taşınır.
//
// Yenileme protokolü:
//   - Bir istek 401 aldığında client sessizce POST /api/auth/refresh çağırır
//     ve orijinal isteği yeni access token ile BİR kez tekrarlar.
//   - Eşzamanlı 401'ler tek bir refresh'e indirgenir (singleflight) —
//     rotation yüzünden ikinci refresh zaten başarısız olurdu.
//   - Refresh başarısız olursa oturum düşmüştür: token temizlenir ve
//     OnSessionExpired callback'i tetiklenir (UI login ekranına döner).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/akinalp/docket/models"
	"golang.org/x/sync/singleflight"
)

// ErrSessionExpired — refresh token da geçersiz, kullanıcı yeniden
// giriş yapmalı.
var ErrSessionExpired = errors.New("session expired")

// apiEnvelope, sunucunun standart yanıt zarfı.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// authPayload, login/register/refresh yanıtlarının data alanı.
type authPayload struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}

// Client, docket API client'ı.
// Tüm metotlar goroutine-safe'dir — eşzamanlı istekler aynı client'ı
// paylaşabilir, refresh tekilleştirmesi bunun için vardır.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu          sync.RWMutex
	accessToken string

	// refreshGroup, eşzamanlı 401'lerin tek refresh'e inmesini sağlar.
	refreshGroup singleflight.Group

	// onSessionExpired, refresh başarısız olduğunda çağrılır (opsiyonel).
	onSessionExpired func()
}

// New, yeni bir Client oluşturur.
// Cookie jar refresh cookie'sini taşır — client kodu cookie'yi hiç görmez.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		httpc: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// OnSessionExpired, oturum düştüğünde çağrılacak callback'i kaydeder.
// Refresh denemesi başarısız olduğunda bir kez tetiklenir.
func (c *Client) OnSessionExpired(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSessionExpired = fn
}

// AccessToken, bellekteki güncel access token'ı döner (test ve debug için).
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// ─── Auth ───

// Register, yeni hesap açar ve oturumu başlatır.
func (c *Client) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	return c.authenticate(ctx, "/api/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
}

// Login, giriş yapar ve oturumu başlatır.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	return c.authenticate(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Logout, sunucudaki oturumu düşürür ve lokal token'ı temizler.
func (c *Client) Logout(ctx context.Context) error {
	err := c.Do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.setAccessToken("")
	return err
}

// Me, oturum açmış kullanıcıyı döner.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.Do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*models.User, error) {
	var payload authPayload
	if err := c.doOnce(ctx, http.MethodPost, path, body, &payload); err != nil {
		return nil, err
	}

	c.setAccessToken(payload.AccessToken)
	return &payload.User, nil
}

// ─── Folders ───

// ListFolders, kullanıcının klasörlerini position sırasıyla döner.
func (c *Client) ListFolders(ctx context.Context) ([]models.Folder, error) {
	var folders []models.Folder
	if err := c.Do(ctx, http.MethodGet, "/api/folders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// CreateFolder, yeni klasör oluşturur (listenin başına eklenir).
func (c *Client) CreateFolder(ctx context.Context, name string) (*models.Folder, error) {
	var folder models.Folder
	body := map[string]string{"name": name}
	if err := c.Do(ctx, http.MethodPost, "/api/folders", body, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// ReorderFolders, klasörleri verilen id sırasına göre yeniden sıralar.
func (c *Client) ReorderFolders(ctx context.Context, orderedIDs []string) error {
	body := models.ReorderRequest{OrderedIDs: orderedIDs}
	return c.Do(ctx, http.MethodPut, "/api/folders/reorder", body, nil)
}

// DeleteFolder, klasörü siler (içindeki notlar klasörsüz kalır).
func (c *Client) DeleteFolder(ctx context.Context, folderID string) error {
	return c.Do(ctx, http.MethodDelete, "/api/folders/"+folderID, nil, nil)
}

// ─── Notes ───

// ListNotes, kullanıcının notlarını position sırasıyla döner.
func (c *Client) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := c.Do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote, yeni not oluşturur (listenin başına eklenir).
func (c *Client) CreateNote(ctx context.Context, req *models.CreateNoteRequest) (*models.Note, error) {
	var note models.Note
	if err := c.Do(ctx, http.MethodPost, "/api/notes", req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// ReorderNotes, notları verilen id sırasına göre yeniden sıralar.
func (c *Client) ReorderNotes(ctx context.Context, orderedIDs []string) error {
	body := models.ReorderRequest{OrderedIDs: orderedIDs}
	return c.Do(ctx, http.MethodPut, "/api/notes/reorder", body, nil)
}

// DeleteNote, notu siler.
func (c *Client) DeleteNote(ctx context.Context, noteID string) error {
	return c.Do(ctx, http.MethodDelete, "/api/notes/"+noteID, nil, nil)
}

// ─── Core Request Machinery ───

// Do, authenticated bir API isteği yapar.
//
// 401 alınırsa bir kez sessiz refresh denenir ve istek yeni token ile
// BİR kez tekrarlanır. Tekrar da 401 dönerse ErrSessionExpired değil,
// sunucunun verdiği hata döner — sonsuz retry döngüsü yoktur.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	status, err := c.send(ctx, method, path, body, out)
	if err != nil {
		return err
	}
	if status != http.StatusUnauthorized {
		return nil
	}

	// Token süresi dolmuş olabilir — sessiz refresh dene
	if err := c.refresh(ctx); err != nil {
		return err
	}

	// Yeni token ile tek replay
	status, err = c.send(ctx, method, path, body, out)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		return fmt.Errorf("request unauthorized after token refresh")
	}
	return nil
}

// doOnce, refresh mekanizmasına girmeyen tek seferlik istek (login/register).
func (c *Client) doOnce(ctx context.Context, method, path string, body, out any) error {
	status, err := c.send(ctx, method, path, body, out)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		return fmt.Errorf("%w: unauthorized", ErrSessionExpired)
	}
	return nil
}

// send, isteği gönderir ve zarfı çözer.
//
// Dönüş: (statusCode, error). 401 hata DEĞİLDİR — caller'ın refresh
// kararı vermesi için status olarak döner. Diğer başarısız status'lar
// sunucunun error mesajıyla error olur.
func (c *Client) send(ctx context.Context, method, path string, body, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := c.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body) // connection reuse için body tüketilir
		return resp.StatusCode, nil
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	if !envelope.Success {
		return resp.StatusCode, fmt.Errorf("api error (%d): %s", resp.StatusCode, envelope.Error)
	}

	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return resp.StatusCode, nil
}

// refresh, access token'ı yeniler — eşzamanlı çağrılar tekilleştirilir.
//
// singleflight.Group: aynı anda N goroutine refresh isterse yalnızca biri
// gerçekten HTTP çağrısı yapar, diğerleri sonucu paylaşır. Rotation yüzünden
// bu şart: ikinci refresh isteği eski (artık silinmiş) cookie'yi sunar ve
// tüm oturumu düşürürdü.
func (c *Client) refresh(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/refresh", nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create refresh request: %w", err)
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, fmt.Errorf("refresh request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			c.expireSession()
			return nil, ErrSessionExpired
		}

		var envelope apiEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return nil, fmt.Errorf("failed to decode refresh response: %w", err)
		}

		var payload authPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode refresh payload: %w", err)
		}

		c.setAccessToken(payload.AccessToken)
		return nil, nil
	})
	return err
}

// expireSession, lokal oturumu düşürür ve callback'i tetikler.
func (c *Client) expireSession() {
	c.mu.Lock()
	c.accessToken = ""
	fn := c.onSessionExpired
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (c *Client) setAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}
