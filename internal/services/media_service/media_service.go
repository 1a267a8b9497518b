package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"

	"premium_motors/internal/lib/logger/sl"
	"premium_motors/internal/storage"
	filestorage "premium_motors/internal/storage/filestorage"
	"premium_motors/internal/transport/http/dto"
)

// allowedImageTypes is the upload whitelist; everything else is rejected
// before any byte hits storage.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type MediaService struct {
	log         *slog.Logger
	fileStorage filestorage.FileStorage
	maxSize     int64
}

func NewMediaService(log *slog.Logger, fileStorage filestorage.FileStorage, maxSize int64) *MediaService {
	return &MediaService{
		log:         log,
		fileStorage: fileStorage,
		maxSize:     maxSize,
	}
}

// Upload validates and stores one image file, returning its public URL.
func (s *MediaService) Upload(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	const op = "service.MediaService.Upload"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", file.Filename),
		slog.Int64("size", file.Size),
	)

	if file.Size > s.maxSize {
		log.Warn("file too large")
		return nil, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		log.Warn("rejected content type", slog.String("content_type", contentType))
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidFileType)
	}

	url, err := s.fileStorage.Save(ctx, file)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("file uploaded", slog.String("url", url))

	return &dto.UploadResponse{
		URL:      url,
		Filename: file.Filename,
	}, nil
}
