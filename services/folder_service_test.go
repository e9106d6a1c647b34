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

func newFolderService(t *testing.T) (FolderService, *models.User, *models.User) {
	t.Helper()

	db := newTestDB(t)
	alice := newTestUser(t, db, "alice@example.com")
	mallory := newTestUser(t, db, "mallory@example.com")

	return NewFolderService(repository.NewSQLiteFolderRepo(db), db), alice, mallory
}

func createFolder(t *testing.T, svc FolderService, userID, name string) *models.Folder {
	t.Helper()
	folder, err := svc.Create(context.Background(), userID, &models.CreateFolderRequest{Name: name})
	require.NoError(t, err)
	return folder
}

func folderNames(folders []models.Folder) []string {
	names := make([]string, len(folders))
	for i, f := range folders {
		names[i] = f.Name
	}
	return names
}

func TestCreateFolderInsertsAtTop(t *testing.T) {
	svc, alice, _ := newFolderService(t)
	ctx := context.Background()

	createFolder(t, svc, alice.ID, "Work")
	createFolder(t, svc, alice.ID, "Personal")
	createFolder(t, svc, alice.ID, "Archive")

	folders, err := svc.GetAll(ctx, alice.ID)
	require.NoError(t, err)

	// En son oluşturulan en başta — her create mevcutları +1 kaydırır
	assert.Equal(t, []string{"Archive", "Personal", "Work"}, folderNames(folders))
	assert.Equal(t, 0, folders[0].Position)
	assert.Equal(t, 1, folders[1].Position)
	assert.Equal(t, 2, folders[2].Position)
}

func TestCreateFolderValidation(t *testing.T) {
	svc, alice, _ := newFolderService(t)

	_, err := svc.Create(context.Background(), alice.ID, &models.CreateFolderRequest{Name: "   "})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestReorderFolders(t *testing.T) {
	svc, alice, _ := newFolderService(t)
	ctx := context.Background()

	work := createFolder(t, svc, alice.ID, "Work")
	personal := createFolder(t, svc, alice.ID, "Personal")
	archive := createFolder(t, svc, alice.ID, "Archive")

	req := &models.ReorderRequest{OrderedIDs: []string{work.ID, archive.ID, personal.ID}}
	require.NoError(t, svc.Reorder(ctx, alice.ID, req))

	folders, err := svc.GetAll(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "Archive", "Personal"}, folderNames(folders))

	// Idempotent: aynı istek tekrar uygulanınca sonuç değişmez
	require.NoError(t, svc.Reorder(ctx, alice.ID, req))
	folders, err = svc.GetAll(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "Archive", "Personal"}, folderNames(folders))
}

func TestReorderRejectsForeignIDs(t *testing.T) {
	svc, alice, mallory := newFolderService(t)
	ctx := context.Background()

	work := createFolder(t, svc, alice.ID, "Work")
	personal := createFolder(t, svc, alice.ID, "Personal")
	malloryFolder := createFolder(t, svc, mallory.ID, "Evil")

	before, err := svc.GetAll(ctx, alice.ID)
	require.NoError(t, err)

	// Listedeki tek bir yabancı id tüm isteği düşürür
	err = svc.Reorder(ctx, alice.ID, &models.ReorderRequest{
		OrderedIDs: []string{work.ID, personal.ID, malloryFolder.ID},
	})
	require.ErrorIs(t, err, pkg.ErrBadRequest)
	assert.Contains(t, err.Error(), malloryFolder.ID)

	// Alice'in pozisyonları kısmen bile değişmedi
	after, err := svc.GetAll(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Mallory'nin klasörüne dokunulmadı
	malloryFolders, err := svc.GetAll(ctx, mallory.ID)
	require.NoError(t, err)
	require.Len(t, malloryFolders, 1)
	assert.Equal(t, 0, malloryFolders[0].Position)
}

func TestReorderValidation(t *testing.T) {
	svc, alice, _ := newFolderService(t)

	err := svc.Reorder(context.Background(), alice.ID, &models.ReorderRequest{OrderedIDs: nil})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestDeleteFolderLeavesGaps(t *testing.T) {
	svc, alice, _ := newFolderService(t)
	ctx := context.Background()

	createFolder(t, svc, alice.ID, "Work")
	personal := createFolder(t, svc, alice.ID, "Personal")
	createFolder(t, svc, alice.ID, "Archive")

	require.NoError(t, svc.Delete(ctx, alice.ID, personal.ID))

	folders, err := svc.GetAll(ctx, alice.ID)
	require.NoError(t, err)

	// Göreli sıra korunur; position'lar sıkıştırılmaz (0 ve 2 kalır)
	assert.Equal(t, []string{"Archive", "Work"}, folderNames(folders))
	assert.Equal(t, 0, folders[0].Position)
	assert.Equal(t, 2, folders[1].Position)
}

func TestFolderOwnership(t *testing.T) {
	svc, alice, mallory := newFolderService(t)
	ctx := context.Background()

	folder := createFolder(t, svc, alice.ID, "Work")

	// Yabancı kullanıcı için klasör YOK gibi davranılır — 403 değil 404
	newName := "Pwned"
	_, err := svc.Update(ctx, mallory.ID, folder.ID, &models.UpdateFolderRequest{Name: &newName})
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	err = svc.Delete(ctx, mallory.ID, folder.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestUpdateFolder(t *testing.T) {
	svc, alice, _ := newFolderService(t)
	ctx := context.Background()

	folder := createFolder(t, svc, alice.ID, "Work")

	newName := "Projects"
	updated, err := svc.Update(ctx, alice.ID, folder.ID, &models.UpdateFolderRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Projects", updated.Name)
	assert.Equal(t, folder.Position, updated.Position) // rename position'a dokunmaz
}
