package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Folder, kullanıcının not klasörünü temsil eder.
//
// Position, kullanıcı bazlı manuel sıralamadır. Yeni klasör her zaman 0'a
// girer, mevcutlar +1 kaydırılır. Listeleme position ASC, created_at DESC
// (tie-break) sırasıyla yapılır — position'ların dense olması gerekmez,
// silme sonrası oluşan boşluklar tolere edilir.
type Folder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateFolderRequest, klasör oluşturma isteği.
type CreateFolderRequest struct {
	Name string `json:"name"`
}

// Validate, CreateFolderRequest'i kontrol eder.
func (r *CreateFolderRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	n := utf8.RuneCountInString(r.Name)
	if n < 1 || n > 64 {
		return fmt.Errorf("folder name must be between 1 and 64 characters")
	}
	return nil
}

// UpdateFolderRequest, klasör güncelleme isteği (şimdilik sadece isim).
type UpdateFolderRequest struct {
	Name *string `json:"name"`
}

// Validate, UpdateFolderRequest'i kontrol eder.
func (r *UpdateFolderRequest) Validate() error {
	if r.Name == nil {
		return fmt.Errorf("name is required")
	}
	trimmed := strings.TrimSpace(*r.Name)
	n := utf8.RuneCountInString(trimmed)
	if n < 1 || n > 64 {
		return fmt.Errorf("folder name must be between 1 and 64 characters")
	}
	*r.Name = trimmed
	return nil
}

// ReorderRequest, toplu sıralama isteği — hem klasörler hem notlar için.
//
// OrderedIDs istenen sıradaki entity id listesidir (tam veya kısmi).
// Her id'ye listedeki index'i position olarak atanır. Listede olmayan
// kayıtların position'ı değişmez.
type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds"`
}

// Validate, ReorderRequest'i kontrol eder.
func (r *ReorderRequest) Validate() error {
	if len(r.OrderedIDs) == 0 {
		return fmt.Errorf("orderedIds must not be empty")
	}
	for _, id := range r.OrderedIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("orderedIds must not contain empty ids")
		}
	}
	return nil
}
