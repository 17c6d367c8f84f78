package impl

import (
	"context"
	"log/slog"

	deliverycontext "tripdesk/internal/delivery/context"
	"tripdesk/internal/domain/service"
	"tripdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	fileStore service.FileStore
	logger    *slog.Logger
}

// UploadServiceParams holds dependencies for uploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	FileStore service.FileStore
	Logger    *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{fileStore: params.FileStore, logger: params.Logger}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadFile stores one file in the bucket and returns its public URL.
func (srv *uploadService) UploadFile(ctx context.Context, input usecase.UploadInput) (string, error) {
	url, err := srv.fileStore.Save(ctx, input.Filename, input.ContentType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store upload", slog.String("filename", input.Filename), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to store upload")
	}

	srv.log(ctx).Debug("Upload stored", slog.String("filename", input.Filename), slog.String("url", url))

	return url, nil
}

// UploadFiles stores a batch of files and returns their URLs in input order.
// The batch is not atomic: files stored before a failure stay in the bucket.
func (srv *uploadService) UploadFiles(ctx context.Context, inputs []usecase.UploadInput) ([]string, error) {
	urls := make([]string, 0, len(inputs))
	for _, input := range inputs {
		url, err := srv.UploadFile(ctx, input)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}
