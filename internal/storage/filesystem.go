package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore persists generated flyer images onto the local filesystem. The
// pipeline treats durable storage as an external concern, so this store only
// covers local output directories for development and batch runs.
type FileStore struct {
	basePath string
}

// NewFileStore initializes a FileStore rooted at basePath.
func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// BasePath returns the configured root directory.
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Write persists the provided bytes at the given relative key and returns the
// canonicalized storage key. Keys are cleaned to prevent directory traversal.
func (s *FileStore) Write(ctx context.Context, key string, data []byte) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(cleanKey))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: ensure directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return cleanKey, nil
}

// WriteTimestamped persists data under a generated name of the form
// {prefix}_{timestamp}_{index}.{ext} and returns the absolute path of the
// written file. Generation adapters use it so batch outputs never collide.
func (s *FileStore) WriteTimestamped(ctx context.Context, prefix string, index int, ext string, data []byte) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", errors.New("storage: prefix is required")
	}
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		ext = "png"
	}
	key := fmt.Sprintf("%s_%s_%d.%s", prefix, time.Now().Format("20060102_150405"), index, ext)
	cleanKey, err := s.Write(ctx, key, data)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filepath.Join(s.basePath, filepath.FromSlash(cleanKey)))
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	return abs, nil
}

// sanitizeKey normalizes a key and prevents escaping the storage root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.Clean(key)
	cleaned = strings.ReplaceAll(cleaned, "\\", "/")
	if cleaned == "." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}
