package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStorage is where car and carousel images live. Implementations are
// selected once at startup; callers never know which backend is active.
// Delete is best-effort: it removes a single object addressed by the public
// URL that Save returned.
type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader) (url string, err error)
	Delete(ctx context.Context, url string) error
	BaseURL() string
}

// ObjectName builds a unique storage key for an uploaded file, keeping the
// original extension: cars/<unix-millis>-<random>.<ext>.
func ObjectName(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	random := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("cars/%d-%s.%s", time.Now().UnixMilli(), random, ext)
}

// LocalFileStorage keeps files on the local filesystem, for development
// deployments without object storage configured.
type LocalFileStorage struct {
	baseDir string // storage root, e.g. "./uploads"
	baseURL string // URL prefix the files are served from, e.g. "/uploads"
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := ObjectName(file.Filename)
	filePath := filepath.Join(s.baseDir, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directories: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(filePath)
		return "", fmt.Errorf("failed to copy file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Delete removes the file addressed by a URL previously returned from Save.
func (s *LocalFileStorage) Delete(ctx context.Context, url string) error {
	rel := strings.TrimPrefix(url, s.baseURL+"/")
	if rel == url {
		// Not one of ours (absolute URL from another backend, seed data).
		return nil
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(path.Clean(rel)))
	if !strings.HasPrefix(fullPath, filepath.Clean(s.baseDir)+string(os.PathSeparator)) {
		return fmt.Errorf("refusing to delete outside base dir: %s", url)
	}

	return os.Remove(fullPath)
}

func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}
