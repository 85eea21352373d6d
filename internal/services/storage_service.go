package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"organizer/internal/config"
)

// StorageService is the blob store behind photo uploads: write a binary
// payload under a path-like key, get back a publicly fetchable URL.
// Writes overwrite an existing key (upsert).
type StorageService interface {
	Save(key string, r io.Reader) (string, error)
	Delete(key string) error
	DeleteByURL(url string) error
	KeyFromURL(url string) string
	ListKeys(prefix string) ([]string, error)
}

type storageServiceImpl struct {
	configuration *config.Configuration
}

func NewStorageService(configuration *config.Configuration) StorageService {
	return &storageServiceImpl{configuration: configuration}
}

func (s *storageServiceImpl) Save(key string, r io.Reader) (string, error) {
	destination := filepath.Join(s.configuration.Storage.Path, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(destination)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = dst.Close()
	}()
	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return s.publicURL(key), nil
}

func (s *storageServiceImpl) Delete(key string) error {
	err := os.Remove(filepath.Join(s.configuration.Storage.Path, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *storageServiceImpl) DeleteByURL(url string) error {
	key := s.KeyFromURL(url)
	if key == "" {
		return nil
	}
	return s.Delete(key)
}

// KeyFromURL inverts publicURL. Foreign URLs yield an empty key.
func (s *storageServiceImpl) KeyFromURL(url string) string {
	base := strings.TrimRight(s.configuration.Storage.BaseURL, "/") + "/"
	if !strings.HasPrefix(url, base) {
		return ""
	}
	return strings.TrimPrefix(url, base)
}

func (s *storageServiceImpl) ListKeys(prefix string) ([]string, error) {
	root := s.configuration.Storage.Path
	var keys []string
	err := filepath.Walk(filepath.Join(root, filepath.FromSlash(prefix)), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipAll
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *storageServiceImpl) publicURL(key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.configuration.Storage.BaseURL, "/"), key)
}
