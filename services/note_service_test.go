package services

import (
	"context"
	"testing"

	"github.com/akinalp/docket/models"
	"github.com/akinalp/docket/pkg"
	"github.com/akinalp/docket/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteService(t *testing.T) (NoteService, FolderService, *models.User, *models.User) {
	t.Helper()

	db := newTestDB(t)
	alice := newTestUser(t, db, "alice@example.com")
	mallory := newTestUser(t, db, "mallory@example.com")

	folderRepo := repository.NewSQLiteFolderRepo(db)
	noteSvc := NewNoteService(repository.NewSQLiteNoteRepo(db), folderRepo, db)
	folderSvc := NewFolderService(folderRepo, db)

	return noteSvc, folderSvc, alice, mallory
}

func createNote(t *testing.T, svc NoteService, userID, title string) *models.Note {
	t.Helper()
	note, err := svc.Create(context.Background(), userID, &models.CreateNoteRequest{Title: title})
	require.NoError(t, err)
	return note
}

func noteTitles(notes []models.Note) []string {
	titles := make([]string, len(notes))
	for i, n := range notes {
		titles[i] = n.Title
	}
	return titles
}

func TestCreateNoteInsertsAtTop(t *testing.T) {
	svc, _, alice, _ := newNoteService(t)
	ctx := context.Background()

	createNote(t, svc, alice.ID, "first")
	createNote(t, svc, alice.ID, "second")
	third := createNote(t, svc, alice.ID, "third")

	assert.Equal(t, 0, third.Position)
	assert.Equal(t, models.NoteColorYellow, third.Color) // renk default'u

	notes, err := svc.GetAll(ctx, alice.ID, models.NoteFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second", "first"}, noteTitles(notes))
}

func TestCreateNoteInFolder(t *testing.T) {
	svc, folderSvc, alice, mallory := newNoteService(t)
	ctx := context.Background()

	folder, err := folderSvc.Create(ctx, alice.ID, &models.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)

	note, err := svc.Create(ctx, alice.ID, &models.CreateNoteRequest{
		Title:    "meeting notes",
		FolderID: &folder.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, note.FolderID)
	assert.Equal(t, folder.ID, *note.FolderID)

	// Yabancı klasöre not konamaz
	_, err = svc.Create(ctx, mallory.ID, &models.CreateNoteRequest{
		Title:    "sneaky",
		FolderID: &folder.ID,
	})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestNoteFilters(t *testing.T) {
	svc, folderSvc, alice, _ := newNoteService(t)
	ctx := context.Background()

	folder, err := folderSvc.Create(ctx, alice.ID, &models.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice.ID, &models.CreateNoteRequest{
		Title: "Groceries", Content: "milk, eggs", Color: "green",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice.ID, &models.CreateNoteRequest{
		Title: "Sprint planning", Content: "retro items", Color: "blue",
		IsFavorite: true, FolderID: &folder.ID,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice.ID, &models.CreateNoteRequest{
		Title: "Reading list", Content: "some BOOKS to read", Color: "blue",
	})
	require.NoError(t, err)

	// Renk filtresi
	notes, err := svc.GetAll(ctx, alice.ID, models.NoteFilter{Color: "blue"})
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	// Favori filtresi
	fav := true
	notes, err = svc.GetAll(ctx, alice.ID, models.NoteFilter{Favorite: &fav})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Sprint planning", notes[0].Title)

	// Arama — başlık ve içerikte, case-insensitive
	notes, err = svc.GetAll(ctx, alice.ID, models.NoteFilter{Search: "books"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Reading list", notes[0].Title)

	// Klasör filtresi
	notes, err = svc.GetAll(ctx, alice.ID, models.NoteFilter{FolderID: folder.ID})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Sprint planning", notes[0].Title)
}

func TestUpdateNotePartial(t *testing.T) {
	svc, folderSvc, alice, _ := newNoteService(t)
	ctx := context.Background()

	folder, err := folderSvc.Create(ctx, alice.ID, &models.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)

	note := createNote(t, svc, alice.ID, "draft")

	// Sadece başlık değişir, diğer alanlar korunur
	newTitle := "final"
	updated, err := svc.Update(ctx, alice.ID, note.ID, &models.UpdateNoteRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, note.Color, updated.Color)
	assert.Nil(t, updated.FolderID)

	// Klasöre taşı
	updated, err = svc.Update(ctx, alice.ID, note.ID, &models.UpdateNoteRequest{FolderID: &folder.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.FolderID)
	assert.Equal(t, folder.ID, *updated.FolderID)

	// Boş string klasörden çıkarır
	empty := ""
	updated, err = svc.Update(ctx, alice.ID, note.ID, &models.UpdateNoteRequest{FolderID: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.FolderID)

	// Geçersiz renk reddedilir
	badColor := "magenta"
	_, err = svc.Update(ctx, alice.ID, note.ID, &models.UpdateNoteRequest{Color: &badColor})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestReorderNotes(t *testing.T) {
	svc, _, alice, mallory := newNoteService(t)
	ctx := context.Background()

	a := createNote(t, svc, alice.ID, "a")
	b := createNote(t, svc, alice.ID, "b")
	c := createNote(t, svc, alice.ID, "c")

	require.NoError(t, svc.Reorder(ctx, alice.ID, &models.ReorderRequest{
		OrderedIDs: []string{a.ID, c.ID, b.ID},
	}))

	notes, err := svc.GetAll(ctx, alice.ID, models.NoteFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, noteTitles(notes))

	// Yabancı id tüm isteği düşürür
	evil := createNote(t, svc, mallory.ID, "evil")
	err = svc.Reorder(ctx, alice.ID, &models.ReorderRequest{
		OrderedIDs: []string{a.ID, evil.ID},
	})
	require.ErrorIs(t, err, pkg.ErrBadRequest)
	assert.Contains(t, err.Error(), evil.ID)
}

func TestNoteOwnership(t *testing.T) {
	svc, _, alice, mallory := newNoteService(t)
	ctx := context.Background()

	note := createNote(t, svc, alice.ID, "private")

	_, err := svc.GetByID(ctx, mallory.ID, note.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	err = svc.Delete(ctx, mallory.ID, note.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// Sahibi erişebilir
	got, err := svc.GetByID(ctx, alice.ID, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)
}

func TestDeleteFolderDetachesNotes(t *testing.T) {
	svc, folderSvc, alice, _ := newNoteService(t)
	ctx := context.Background()

	folder, err := folderSvc.Create(ctx, alice.ID, &models.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)

	note, err := svc.Create(ctx, alice.ID, &models.CreateNoteRequest{
		Title:    "survivor",
		FolderID: &folder.ID,
	})
	require.NoError(t, err)

	require.NoError(t, folderSvc.Delete(ctx, alice.ID, folder.ID))

	// Klasör gitti ama not duruyor — folder_id NULL (ON DELETE SET NULL)
	got, err := svc.GetByID(ctx, alice.ID, note.ID)
	require.NoError(t, err)
	assert.Nil(t, got.FolderID)
}
