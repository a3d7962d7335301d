// Package storage archives the attachments of sent notifications.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prostech/outbound-api/internal/config"
	"go.uber.org/zap"
)

// ErrNotFound is returned when an archived object does not exist
var ErrNotFound = errors.New("archived object not found")

// Archive stores attachment bytes under slash-separated keys.
type Archive interface {
	Put(ctx context.Context, key string, contentType string, data io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// ArchiveKey builds the key of one attachment:
// <kind>/<YYYY>/<MM>/<DD>/<short id>_<filename>. The id keeps repeated sends
// of the same file on one day apart.
func ArchiveKey(kind string, sentAt time.Time, filename string) string {
	id := uuid.New().String()[:8]
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return path.Join(kind, sentAt.Format("2006/01/02"), id+"_"+name)
}

// NewArchive creates the archive selected by cfg.Mode. Mode "none" (or empty)
// returns nil, which disables archiving.
func NewArchive(cfg *config.StorageConfig, logger *zap.Logger) (Archive, error) {
	switch cfg.Mode {
	case "", "none":
		return nil, nil
	case "local":
		return NewLocalArchive(cfg.LocalBasePath)
	case "cloud", "azure":
		if cfg.CloudConnectionString == "" {
			return nil, fmt.Errorf("cloud connection string required for azure storage")
		}
		return NewAzureBlobArchive(cfg.CloudConnectionString, cfg.CloudContainer, logger)
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.Mode)
	}
}

// LocalArchive keeps attachments on the local filesystem
type LocalArchive struct {
	basePath string
}

// NewLocalArchive creates the base directory if needed
func NewLocalArchive(basePath string) (*LocalArchive, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalArchive{basePath: basePath}, nil
}

func (s *LocalArchive) fullPath(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("invalid archive key: %q", key)
	}
	return filepath.Join(s.basePath, filepath.FromSlash(clean)), nil
}

// Put writes data under key, replacing an existing object
func (s *LocalArchive) Put(ctx context.Context, key string, contentType string, data io.Reader) (int64, error) {
	fullPath, err := s.fullPath(key)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, data)
	if err != nil {
		os.Remove(fullPath) // Cleanup on error
		return 0, fmt.Errorf("failed to write file: %w", err)
	}
	return size, nil
}

// Open returns the object stored under key
func (s *LocalArchive) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath, err := s.fullPath(key)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// Delete removes key. Missing objects are not an error.
func (s *LocalArchive) Delete(ctx context.Context, key string) error {
	fullPath, err := s.fullPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
