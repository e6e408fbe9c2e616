package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackStorage_UploadAndExists(t *testing.T) {
	storage := NewFallbackStorageService(t.TempDir(), "http://localhost:8080/uploads")

	data := []byte("fake image bytes")
	url, err := storage.Upload(context.Background(), "foods/test/original.png", bytes.NewReader(data), "image/png", int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/foods/test/original.png", url)

	exists, err := storage.Exists(context.Background(), "foods/test/original.png")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = storage.Exists(context.Background(), "foods/test/missing.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFallbackStorage_UploadSizeMismatch(t *testing.T) {
	storage := NewFallbackStorageService(t.TempDir(), "http://localhost:8080/uploads")

	data := []byte("short")
	_, err := storage.Upload(context.Background(), "foods/short.png", bytes.NewReader(data), "image/png", 999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "size mismatch")
}

func TestFallbackStorage_Delete(t *testing.T) {
	storage := NewFallbackStorageService(t.TempDir(), "http://localhost:8080/uploads")

	data := []byte("fake image bytes")
	_, err := storage.Upload(context.Background(), "foods/test/original.png", bytes.NewReader(data), "image/png", int64(len(data)))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(context.Background(), "foods/test/original.png"))

	exists, err := storage.Exists(context.Background(), "foods/test/original.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error.
	assert.NoError(t, storage.Delete(context.Background(), "foods/never-existed.png"))
}

func TestFallbackStorage_PresignedURLUnsupported(t *testing.T) {
	storage := NewFallbackStorageService(t.TempDir(), "http://localhost:8080/uploads")

	_, err := storage.GeneratePresignedURL(context.Background(), "foods/x.png", "image/png", 0)
	assert.Error(t, err)
}
