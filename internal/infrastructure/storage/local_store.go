// Package storage persists uploaded files on the local disk and maps
// them to public URL paths served by the HTTP layer.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/infrastructure/config"
)

var (
	// ErrFileTooLarge is returned when an upload exceeds the configured limit
	ErrFileTooLarge = errors.New("file exceeds the maximum upload size")

	// ErrUnsupportedType is returned for file extensions outside the allow list
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrInvalidCategory is returned for category names that are not plain identifiers
	ErrInvalidCategory = errors.New("invalid upload category")
)

// Categories group uploads into subdirectories under the base dir.
const (
	CategoryReceipts  = "receipts"
	CategoryInvoices  = "invoices"
	CategoryPhotos    = "photos"
	CategoryDocuments = "documents"
)

// allowedExtensions lists the file types field staff may upload.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".pdf":  {},
}

var categoryPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// StoredFile describes a file persisted by the store
type StoredFile struct {
	// PublicPath is the URL path clients use to fetch the file,
	// e.g. /uploads/receipts/9f8a...c1.jpg
	PublicPath string
	// DiskPath is the absolute location on disk
	DiskPath string
	// OriginalName is the client-supplied filename, kept for display
	OriginalName string
	Size         int64
	UploadedAt   time.Time
}

// FileStore saves and removes uploaded files
type FileStore interface {
	Save(ctx context.Context, category, originalName string, r io.Reader) (*StoredFile, error)
	Delete(ctx context.Context, publicPath string) error
}

// LocalFileStore implements FileStore on the local filesystem
type LocalFileStore struct {
	baseDir     string
	publicPath  string
	maxFileSize int64
}

// NewLocalFileStore creates a store rooted at the configured base dir,
// creating it if needed.
func NewLocalFileStore(cfg config.UploadConfig) (*LocalFileStore, error) {
	baseDir, err := filepath.Abs(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalFileStore{
		baseDir:     baseDir,
		publicPath:  strings.TrimSuffix(cfg.PublicPath, "/"),
		maxFileSize: cfg.MaxFileSize,
	}, nil
}

// Save writes the reader's content to disk under the category
// directory. The stored name is a random UUID with the original
// extension, so client-supplied names never reach the filesystem.
func (s *LocalFileStore) Save(ctx context.Context, category, originalName string, r io.Reader) (*StoredFile, error) {
	if !categoryPattern.MatchString(category) {
		return nil, ErrInvalidCategory
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, ErrUnsupportedType
	}

	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create category dir: %w", err)
	}

	name := uuid.New().String() + ext
	diskPath := filepath.Join(dir, name)

	f, err := os.OpenFile(diskPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	// Read one byte past the limit to detect oversized uploads.
	written, err := io.Copy(f, io.LimitReader(r, s.maxFileSize+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(diskPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if written > s.maxFileSize {
		os.Remove(diskPath)
		return nil, ErrFileTooLarge
	}

	return &StoredFile{
		PublicPath:   path.Join(s.publicPath, category, name),
		DiskPath:     diskPath,
		OriginalName: filepath.Base(originalName),
		Size:         written,
		UploadedAt:   time.Now(),
	}, nil
}

// Delete removes the file behind a public path. Unknown paths are not
// an error so handlers can delete optimistically.
func (s *LocalFileStore) Delete(ctx context.Context, publicPath string) error {
	rel := strings.TrimPrefix(publicPath, s.publicPath)
	rel = strings.TrimPrefix(rel, "/")

	diskPath := filepath.Join(s.baseDir, filepath.FromSlash(rel))

	// Refuse anything that escapes the base dir.
	if !strings.HasPrefix(diskPath, s.baseDir+string(os.PathSeparator)) {
		return ErrInvalidCategory
	}

	if err := os.Remove(diskPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// BaseDir returns the absolute root the store writes under
func (s *LocalFileStore) BaseDir() string {
	return s.baseDir
}

// Ensure LocalFileStore implements FileStore
var _ FileStore = (*LocalFileStore)(nil)
