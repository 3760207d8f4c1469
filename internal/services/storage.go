package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/candidate-screening/internal/config"
)

// Storage is a bucket-scoped blob store addressed by key.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type localStorage struct {
	root string
}

// NewLocalStorage stores every bucket as a directory under uploadPath.
func NewLocalStorage(uploadPath, bucket string) (Storage, error) {
	root := filepath.Join(uploadPath, bucket)
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &localStorage{root: root}, nil
}

func (s *localStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	filePath, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

func (s *localStorage) Download(ctx context.Context, key string) ([]byte, error) {
	filePath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

func (s *localStorage) Delete(ctx context.Context, key string) error {
	filePath, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// resolve maps a key to a path inside the bucket directory.
func (s *localStorage) resolve(key string) (string, error) {
	cleaned := filepath.Clean("/" + strings.TrimSpace(key))
	if cleaned == "/" {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(s.root, cleaned), nil
}

// NewStorage opens bucket on the configured storage driver.
func NewStorage(ctx context.Context, cfg config.StorageConfig, bucket string) (Storage, error) {
	switch cfg.Driver {
	case config.StorageDriverLocal:
		return NewLocalStorage(cfg.UploadPath, bucket)
	case config.StorageDriverS3:
		return NewS3Storage(ctx, S3Options{
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			UseSSL:          cfg.S3UseSSL,
			Bucket:          bucket,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Driver)
	}
}
