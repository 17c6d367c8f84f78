package storage

import (
	"context"
	"strings"
	"testing"

	"tripdesk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlobFileStore_MissingConfig(t *testing.T) {
	_, _, err := NewBlobFileStore(context.Background(), &config.Config{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "storage bucket url must be provided")
}

func TestBlobFileStore_Save(t *testing.T) {
	cfg := &config.Config{
		Storage: &config.StorageConfig{
			BucketURL:     "mem://",
			PublicBaseURL: "https://cdn.example.com/uploads/",
		},
	}

	store, closer, err := NewBlobFileStore(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = closer() }()

	url, err := store.Save(context.Background(), "menu photo.png", "image/png", strings.NewReader("fake-png-bytes"))
	require.NoError(t, err)

	// Trailing slash on the base URL is normalized away.
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/uploads/"))
	assert.True(t, strings.HasSuffix(url, "-menu_photo.png"))
}

func TestBlobFileStore_SaveUniqueKeys(t *testing.T) {
	cfg := &config.Config{
		Storage: &config.StorageConfig{
			BucketURL:     "mem://",
			PublicBaseURL: "https://cdn.example.com",
		},
	}

	store, closer, err := NewBlobFileStore(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = closer() }()

	first, err := store.Save(context.Background(), "logo.png", "image/png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "logo.png", "image/png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestObjectKey(t *testing.T) {
	assert.True(t, strings.HasSuffix(objectKey("../../etc/passwd"), "-passwd"))
	assert.True(t, strings.HasSuffix(objectKey(""), "-upload"))
	assert.True(t, strings.HasSuffix(objectKey("weird name!.jpg"), "-weird_name_.jpg"))
}
