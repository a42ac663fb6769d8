package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"quill/internal/cache"
	"quill/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectStore records puts and deletes and can be told to fail.
type fakeObjectStore struct {
	objects   map[string][]byte
	failPut   error
	failDel   error
	deleteLog []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (f *fakeObjectStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.failPut != nil {
		return "", f.failPut
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.objects[key] = data
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeObjectStore) Delete(ctx context.Context, key string) error {
	f.deleteLog = append(f.deleteLog, key)
	if f.failDel != nil {
		return f.failDel
	}
	delete(f.objects, key)
	return nil
}

func newMediaService(t *testing.T) (*MediaService, *fakeObjectStore) {
	t.Helper()
	db := newTestDB(t)
	store := newFakeObjectStore()
	svc := NewMediaService(repository.NewMediaRepository(db), store, cache.New(), slog.Default())
	return svc, store
}

func TestUploadStoresBlobAndRecord(t *testing.T) {
	svc, store := newMediaService(t)
	ctx := context.Background()

	item, err := svc.Upload(ctx, "photo.jpg", "image/jpeg", 4, strings.NewReader("data"), "a photo")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(item.FilePath, "uploads/"))
	assert.True(t, strings.HasSuffix(item.FilePath, ".jpg"))
	assert.Equal(t, "https://cdn.example.com/"+item.FilePath, item.FileURL)
	assert.Contains(t, store.objects, item.FilePath)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUploadFailurePropagates(t *testing.T) {
	svc, store := newMediaService(t)
	store.failPut = errors.New("bucket unavailable")

	_, err := svc.Upload(context.Background(), "photo.jpg", "image/jpeg", 4, strings.NewReader("data"), "")
	require.Error(t, err)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items, "no record without a stored blob")
}

func TestDeleteRemovesBlobThenRecord(t *testing.T) {
	svc, store := newMediaService(t)
	ctx := context.Background()

	item, err := svc.Upload(ctx, "photo.jpg", "image/jpeg", 4, strings.NewReader("data"), "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, item.ID))
	assert.NotContains(t, store.objects, item.FilePath)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteAbortsWhenBlobRemovalFails(t *testing.T) {
	svc, store := newMediaService(t)
	ctx := context.Background()

	item, err := svc.Upload(ctx, "photo.jpg", "image/jpeg", 4, strings.NewReader("data"), "")
	require.NoError(t, err)

	store.failDel = errors.New("object locked")
	err = svc.Delete(ctx, item.ID)
	require.Error(t, err)

	// The record must survive: deleting it while the blob remains would
	// silently orphan the object.
	items, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	assert.Len(t, items, 1)
}
