package usecase

import (
	"context"
	"io"
)

// UploadInput is one file to push through to the blob bucket.
type UploadInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// UploadUsecase defines the upload passthrough business operations.
type UploadUsecase interface {
	// UploadFile stores one file and returns its public URL.
	UploadFile(ctx context.Context, input UploadInput) (string, error)

	// UploadFiles stores a batch of files and returns their public URLs in order.
	UploadFiles(ctx context.Context, inputs []UploadInput) ([]string, error)
}
