package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadSize is the global cap applied before any handler logic runs.
const MaxUploadSize = 10 << 20 // 10 MiB

// FileKind selects the allow-list a file is validated against.
type FileKind int

const (
	KindImage FileKind = iota
	KindDocument
)

var ErrFileTypeNotAllowed = errors.New("file type not allowed")

var (
	imageExtensions = map[string]bool{
		".jpeg": true, ".jpg": true, ".png": true, ".gif": true, ".webp": true,
	}
	imageContentTypes = map[string]bool{
		"image/jpeg": true, "image/jpg": true, "image/png": true,
		"image/gif": true, "image/webp": true,
	}
	documentExtensions   = map[string]bool{".pdf": true}
	documentContentTypes = map[string]bool{"application/pdf": true}
)

// ValidateFile checks both the file extension and the declared content type
// against the allow-list for kind and returns the normalized extension.
func ValidateFile(filename, contentType string, kind FileKind) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))

	var extOK, typeOK bool
	switch kind {
	case KindDocument:
		extOK, typeOK = documentExtensions[ext], documentContentTypes[mediaType]
	default:
		extOK, typeOK = imageExtensions[ext], imageContentTypes[mediaType]
	}
	if !extOK || !typeOK {
		return "", fmt.Errorf("%w: %s (%s)", ErrFileTypeNotAllowed, filename, contentType)
	}
	return ext, nil
}

// GenerateKey builds a collision-free stored name: <prefix>-<timestamp>-<random><ext>.
func GenerateKey(prefix, ext string) string {
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixNano(), uuid.NewString(), ext)
}
