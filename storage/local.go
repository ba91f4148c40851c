package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// localUploader stores files on disk under a single directory and builds
// public URLs as <baseURL>/uploads/<key>. The URL is baked into stored
// metadata at write time.
type localUploader struct {
	dir     string
	baseURL string
}

func NewLocalUploader(dir, publicBaseURL string) (FileUploader, error) {
	if dir == "" || publicBaseURL == "" {
		return nil, errors.New("invalid local storage configuration: dir and public base URL are required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &localUploader{
		dir:     dir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (u *localUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Keys are generated server-side, but never trust one with path parts.
	if key != filepath.Base(key) {
		return nil, fmt.Errorf("invalid storage key: %s", key)
	}

	path := filepath.Join(u.dir, key)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if _, err = io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to close file %s: %w", path, err)
	}

	return &UploadResult{
		Key:      key,
		Location: u.GetPublicURL(key),
	}, nil
}

// Delete removes the stored file. A missing file is not an error, so
// cleanup paths stay idempotent.
func (u *localUploader) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" || key != filepath.Base(key) {
		return fmt.Errorf("invalid storage key: %s", key)
	}
	err := os.Remove(filepath.Join(u.dir, key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file %s: %w", key, err)
	}
	return nil
}

func (u *localUploader) GetPublicURL(key string) string {
	if key == "" {
		return ""
	}
	return u.baseURL + "/uploads/" + key
}
