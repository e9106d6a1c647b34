// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// Her repository bir SQL.DB bağlantısı alır ve interface döner.
// main.go'daki wire-up'ı modülerleştirmek için bu dosyaya taşındı.
package main

import (
	"database/sql"

	"github.com/akinalp/docket/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
// Ayrı ayrı değişkenler yerine tek struct: fonksiyon imzaları temiz kalır,
// yeni repository eklendiğinde sadece struct + initRepositories güncellenir.
type Repositories struct {
	User       repository.UserRepository
	Session    repository.SessionRepository
	Folder     repository.FolderRepository
	Note       repository.NoteRepository
	Attachment repository.AttachmentRepository
	ShareLink  repository.ShareLinkRepository
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
//
// Her NewSQLite* fonksiyonu aynı *sql.DB'yi alır — Go'nun sql.DB'si
// thread-safe connection pool'dur, paylaşılması güvenlidir.
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		User:       repository.NewSQLiteUserRepo(conn),
		Session:    repository.NewSQLiteSessionRepo(conn),
		Folder:     repository.NewSQLiteFolderRepo(conn),
		Note:       repository.NewSQLiteNoteRepo(conn),
		Attachment: repository.NewSQLiteAttachmentRepo(conn),
		ShareLink:  repository.NewSQLiteShareLinkRepo(conn),
	}
}
