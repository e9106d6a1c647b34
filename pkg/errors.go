// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir. errors.New() ile sabit error
// değişkenleri tanımlarız; karşılaştırma string yerine errors.Is ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Service katmanı bu error'ları fmt.Errorf("%w: detay") ile sarıp döner,
// handler katmanı pkg.Error ile HTTP status code'una çevirir.
package pkg

import "errors"

// Domain-level error'lar.
//
// Sahiplik kuralı: başka kullanıcıya ait bir kayıt da ErrNotFound döner —
// "var ama senin değil" bilgisi sızdırılmaz (bkz. not/klasör servisleri).
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrGone          = errors.New("gone") // süresi dolmuş paylaşım linki → 410
	ErrInternal      = errors.New("internal error")
)
