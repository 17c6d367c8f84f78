package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	mockService "tripdesk/internal/mocks/service"
	"tripdesk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// uploadServiceFixtures holds all test dependencies for upload service tests.
type uploadServiceFixtures struct {
	service   usecase.UploadUsecase
	fileStore *mockService.MockFileStore
}

func createTestUploadService(t *testing.T) uploadServiceFixtures {
	fileStore := mockService.NewMockFileStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUploadService(UploadServiceParams{FileStore: fileStore, Logger: logger})

	return uploadServiceFixtures{service: service, fileStore: fileStore}
}

func TestUploadService_UploadFile_ReturnsPublicURL(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()
	content := strings.NewReader("fake-image-bytes")

	fx.fileStore.EXPECT().
		Save(ctx, "menu.png", "image/png", content).
		Return("https://cdn.example.com/uploads/menu.png", nil)

	url, err := fx.service.UploadFile(ctx, usecase.UploadInput{
		Filename:    "menu.png",
		ContentType: "image/png",
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/menu.png", url)
}

func TestUploadService_UploadFile_StoreFailure(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()

	fx.fileStore.EXPECT().
		Save(ctx, "menu.png", "image/png", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	url, err := fx.service.UploadFile(ctx, usecase.UploadInput{
		Filename:    "menu.png",
		ContentType: "image/png",
		Content:     strings.NewReader("fake-image-bytes"),
	})

	require.Error(t, err)
	assert.Empty(t, url)
}

func TestUploadService_UploadFiles_PreservesOrder(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()

	fx.fileStore.EXPECT().
		Save(ctx, "first.jpg", "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/uploads/first.jpg", nil)
	fx.fileStore.EXPECT().
		Save(ctx, "second.jpg", "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/uploads/second.jpg", nil)

	urls, err := fx.service.UploadFiles(ctx, []usecase.UploadInput{
		{Filename: "first.jpg", ContentType: "image/jpeg", Content: strings.NewReader("a")},
		{Filename: "second.jpg", ContentType: "image/jpeg", Content: strings.NewReader("b")},
	})

	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Equal(t, "https://cdn.example.com/uploads/first.jpg", urls[0])
	assert.Equal(t, "https://cdn.example.com/uploads/second.jpg", urls[1])
}

func TestUploadService_UploadFiles_StopsOnFirstFailure(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()

	fx.fileStore.EXPECT().
		Save(ctx, "first.jpg", "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/uploads/first.jpg", nil)
	fx.fileStore.EXPECT().
		Save(ctx, "second.jpg", "image/jpeg", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	urls, err := fx.service.UploadFiles(ctx, []usecase.UploadInput{
		{Filename: "first.jpg", ContentType: "image/jpeg", Content: strings.NewReader("a")},
		{Filename: "second.jpg", ContentType: "image/jpeg", Content: strings.NewReader("b")},
	})

	require.Error(t, err)
	assert.Nil(t, urls)
}
