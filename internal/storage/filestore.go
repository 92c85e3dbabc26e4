package storage

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"resume-builder/internal/domain"
)

// FileStore keeps each slot as a JSON file in a data directory. It is
// the default backend and mirrors the two-blob local storage layout
// this snapshot format came from.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) LoadResume(ctx context.Context) (domain.Resume, error) {
	b, err := os.ReadFile(s.path(ResumeKey))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Resume{}, ErrNotFound
		}
		return domain.Resume{}, err
	}
	rec, err := decodeResume(b)
	if err != nil {
		log.Printf("storage: corrupt resume snapshot, starting fresh: %v", err)
		return domain.Resume{}, ErrNotFound
	}
	return rec, nil
}

func (s *FileStore) SaveResume(ctx context.Context, rec domain.Resume) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(ResumeKey), b, 0o644)
}

func (s *FileStore) ClearResume(ctx context.Context) error {
	err := os.Remove(s.path(ResumeKey))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) LoadTheme(ctx context.Context) (domain.ThemeSettings, error) {
	b, err := os.ReadFile(s.path(ThemeKey))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ThemeSettings{}, ErrNotFound
		}
		return domain.ThemeSettings{}, err
	}
	t, err := decodeTheme(b)
	if err != nil {
		log.Printf("storage: corrupt theme snapshot, using defaults: %v", err)
		return domain.ThemeSettings{}, ErrNotFound
	}
	return t, nil
}

func (s *FileStore) SaveTheme(ctx context.Context, t domain.ThemeSettings) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(ThemeKey), b, 0o644)
}
