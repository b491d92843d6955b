package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/SergeyBogomolovv/pedidos-service/internal/config"
	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"

	"github.com/google/uuid"
)

// URLPrefix is the public prefix of every stored image path.
const URLPrefix = "uploads/"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type LocalStore struct {
	logger  *slog.Logger
	dir     string
	maxSize int64
}

func NewLocalStore(logger *slog.Logger, cfg config.Storage) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{
		logger:  logger.With(slog.String("component", "storage")),
		dir:     cfg.UploadDir,
		maxSize: cfg.MaxImageSize,
	}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

// Validate checks the declared metadata of img without reading its content.
func (s *LocalStore) Validate(img entities.Image) error {
	ext := strings.ToLower(filepath.Ext(img.Filename))
	if !allowedExtensions[ext] {
		return &entities.ImageError{Reason: "allowed formats are .jpg, .jpeg, .png and .webp"}
	}
	if img.Size > s.maxSize {
		return &entities.ImageError{Reason: fmt.Sprintf("file exceeds %d bytes", s.maxSize)}
	}
	return nil
}

// Save writes img under a fresh name and returns its public relative path.
func (s *LocalStore) Save(ctx context.Context, img entities.Image) (string, error) {
	if err := s.Validate(img); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(img.Filename))

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(img.Content, s.maxSize+1))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if n > s.maxSize {
		return "", &entities.ImageError{Reason: fmt.Sprintf("file exceeds %d bytes", s.maxSize)}
	}
	if n == 0 {
		return "", &entities.ImageError{Reason: "file is empty"}
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	s.logger.DebugContext(ctx, "image stored", slog.String("name", name), slog.Int64("size", n))
	return URLPrefix + name, nil
}

// Delete removes a stored image. Failures are logged and never returned.
func (s *LocalStore) Delete(ctx context.Context, imagePath string) {
	name, ok := s.resolve(imagePath)
	if !ok {
		s.logger.WarnContext(ctx, "refusing to delete image outside upload dir", slog.String("path", imagePath))
		return
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.DebugContext(ctx, "image already gone", slog.String("path", imagePath))
		return
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete image", slog.String("path", imagePath), slog.Any("error", err))
		return
	}
	s.logger.DebugContext(ctx, "image deleted", slog.String("path", imagePath))
}

// resolve maps a public path to a bare file name inside the upload dir.
func (s *LocalStore) resolve(imagePath string) (string, bool) {
	if !strings.HasPrefix(imagePath, URLPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(imagePath, URLPrefix)
	if name == "" || name != path.Base(name) || name == "." || name == ".." || strings.ContainsRune(name, '\\') {
		return "", false
	}
	return name, true
}
