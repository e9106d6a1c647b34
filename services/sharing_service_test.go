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

func newSharingService(t *testing.T) (SharingService, NoteService, *models.User, *models.User) {
	t.Helper()

	db := newTestDB(t)
	alice := newTestUser(t, db, "alice@example.com")
	mallory := newTestUser(t, db, "mallory@example.com")

	noteRepo := repository.NewSQLiteNoteRepo(db)
	sharingSvc := NewSharingService(
		repository.NewSQLiteShareLinkRepo(db),
		noteRepo,
		repository.NewSQLiteAttachmentRepo(db),
	)
	noteSvc := NewNoteService(noteRepo, repository.NewSQLiteFolderRepo(db), db)

	return sharingSvc, noteSvc, alice, mallory
}

func TestCreateShareLinkIdempotent(t *testing.T) {
	svc, noteSvc, alice, _ := newSharingService(t)
	ctx := context.Background()

	note := createNote(t, noteSvc, alice.ID, "shared")

	first, err := svc.CreateShareLink(ctx, alice.ID, note.ID, nil)
	require.NoError(t, err)
	assert.Len(t, first.Token, 48) // 24 byte → 48 hex karakter
	assert.Nil(t, first.ExpiresAt)

	// İkinci çağrı yeni link üretmez, mevcut olanı döner
	second, err := svc.CreateShareLink(ctx, alice.ID, note.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, first.Token, second.Token)
	assert.Equal(t, first.ID, second.ID)
}

func TestCreateShareLinkOwnership(t *testing.T) {
	svc, noteSvc, alice, mallory := newSharingService(t)
	ctx := context.Background()

	note := createNote(t, noteSvc, alice.ID, "private")

	_, err := svc.CreateShareLink(ctx, mallory.ID, note.ID, nil)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestGetSharedNote(t *testing.T) {
	svc, noteSvc, alice, _ := newSharingService(t)
	ctx := context.Background()

	note := createNote(t, noteSvc, alice.ID, "public note")
	link, err := svc.CreateShareLink(ctx, alice.ID, note.ID, nil)
	require.NoError(t, err)

	// Public lookup — kullanıcı kimliği gerekmez
	shared, err := svc.GetSharedNote(ctx, link.Token)
	require.NoError(t, err)
	assert.Equal(t, "public note", shared.Note.Title)
	assert.Empty(t, shared.Attachments)

	// Bilinmeyen token 404
	_, err = svc.GetSharedNote(ctx, "0000000000000000000000000000000000000000000000ff")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestRevokeShareLink(t *testing.T) {
	svc, noteSvc, alice, _ := newSharingService(t)
	ctx := context.Background()

	note := createNote(t, noteSvc, alice.ID, "soon gone")
	link, err := svc.CreateShareLink(ctx, alice.ID, note.ID, nil)
	require.NoError(t, err)

	// Cache'i ısıt — revoke sonrası stale kopya dönmemeli
	_, err = svc.GetSharedNote(ctx, link.Token)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeShareLink(ctx, alice.ID, note.ID))

	_, err = svc.GetSharedNote(ctx, link.Token)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// Revoke sonrası yeni link üretilebilir — farklı token olmalı
	fresh, err := svc.CreateShareLink(ctx, alice.ID, note.ID, nil)
	require.NoError(t, err)
	assert.NotEqual(t, link.Token, fresh.Token)
}

func TestExpiredShareLinkReturnsGone(t *testing.T) {
	svc, noteSvc, alice, _ := newSharingService(t)
	ctx := context.Background()

	note := createNote(t, noteSvc, alice.ID, "expired")

	past := time.Now().Add(-time.Hour)
	link, err := svc.CreateShareLink(ctx, alice.ID, note.ID, &past)
	require.NoError(t, err)

	// Süresi dolmuş link 404 değil 410 semantiği taşır
	_, err = svc.GetSharedNote(ctx, link.Token)
	assert.ErrorIs(t, err, pkg.ErrGone)

	// Süresi dolmuş linke rağmen create yenisini üretir
	future := time.Now().Add(24 * time.Hour)
	fresh, err := svc.CreateShareLink(ctx, alice.ID, note.ID, &future)
	require.NoError(t, err)
	assert.NotEqual(t, link.Token, fresh.Token)

	_, err = svc.GetSharedNote(ctx, fresh.Token)
	assert.NoError(t, err)
}

func TestDeleteNoteCascadesShareLink(t *testing.T) {
	svc, noteSvc, alice, _ := newSharingService(t)
	ctx := context.Background()

	note := createNote(t, noteSvc, alice.ID, "doomed")
	link, err := svc.CreateShareLink(ctx, alice.ID, note.ID, nil)
	require.NoError(t, err)

	require.NoError(t, noteSvc.Delete(ctx, alice.ID, note.ID))

	// Not silinince link satırı FK cascade ile gider
	_, err = svc.GetSharedNote(ctx, link.Token)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
