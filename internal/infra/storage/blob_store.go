// Package storage implements the FileStore interface on top of gocloud.dev
// blob buckets, so the same code serves local disk in development and a
// cloud bucket in production.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"gocloud.dev/blob"

	// Bucket drivers selected by the configured bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"

	"tripdesk/config"
	"tripdesk/internal/domain/service"
	"tripdesk/internal/errors"
)

type blobFileStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobFileStore opens the configured bucket and returns it as a FileStore.
// The returned closer releases the bucket connection on shutdown.
func NewBlobFileStore(ctx context.Context, cfg *config.Config) (service.FileStore, func() error, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, nil, errors.New("storage bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open storage bucket")
	}

	store := &blobFileStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}
	return store, bucket.Close, nil
}

// Save writes the content under a collision-free object key and returns the
// public URL clients can use to fetch it.
func (s *blobFileStore) Save(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := objectKey(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()
		return "", errors.Wrap(err, "write object")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "close bucket writer")
	}

	return s.publicBaseURL + "/" + key, nil
}

// objectKey prefixes the sanitized filename with a random UUID so repeated
// uploads of the same file never clobber each other.
func objectKey(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." {
		base = "upload"
	}
	return uuid.NewString() + "-" + base
}
