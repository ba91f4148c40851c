package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nkalgutkar/sports-management/storage"
)

// Upload key prefixes, one per use-site.
const (
	keyPrefixTeamLogo       = "team-logo"
	keyPrefixEventImage     = "event-image"
	keyPrefixNoticeDocument = "notice-document"
	keyPrefixNoticeSchedule = "notice-schedule"
)

// FileInput carries one multipart file from a handler into a service.
type FileInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// storeFile validates and persists one upload. Callers own cleanup: if any
// later step fails they must delete the returned key so no orphaned file
// remains.
func storeFile(ctx context.Context, uploader storage.FileUploader, prefix string, kind storage.FileKind, file *FileInput) (key, url string, err error) {
	if file.Size > storage.MaxUploadSize {
		return "", "", fmt.Errorf("%w: %d bytes", ErrUploadTooLarge, file.Size)
	}

	ext, err := storage.ValidateFile(file.Filename, file.ContentType, kind)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return "", "", fmt.Errorf("%w: %s", ErrUploadTypeNotAllowed, file.Filename)
		}
		return "", "", err
	}

	key = storage.GenerateKey(prefix, ext)
	result, err := uploader.Upload(ctx, key, file.ContentType, file.Reader)
	if err != nil {
		return "", "", fmt.Errorf("failed to store %s upload: %w", prefix, err)
	}
	return key, result.Location, nil
}

// discardFile removes a stored upload on a failure path. The original error
// is what the caller reports, so a cleanup failure is swallowed.
func discardFile(ctx context.Context, uploader storage.FileUploader, key string) {
	if key == "" {
		return
	}
	_ = uploader.Delete(ctx, key)
}
