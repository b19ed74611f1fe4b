// Package disk implements port.FileStore on the local filesystem under a
// single configured data directory.
package disk

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"resumehub/internal/config"
	"resumehub/internal/port"
)

type diskStore struct {
	root string
}

// NewStore creates a filesystem-backed FileStore rooted at the configured
// data directory. Directories are created lazily on first write.
func NewStore(cfg *config.StorageConfig) port.FileStore {
	return &diskStore{root: cfg.DataDir}
}

func (s *diskStore) Save(_ context.Context, relPath string, r io.Reader) (int64, error) {
	abs := filepath.Join(s.root, relPath)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return 0, fmt.Errorf("diskStore.Save mkdir: %w", err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return 0, fmt.Errorf("diskStore.Save create: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(abs)
		return 0, fmt.Errorf("diskStore.Save write: %w", err)
	}
	return n, nil
}

func (s *diskStore) Open(_ context.Context, relPath string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, relPath))
	if err != nil {
		return nil, fmt.Errorf("diskStore.Open: %w", err)
	}
	return f, nil
}

func (s *diskStore) Delete(_ context.Context, relPath string) error {
	if err := os.Remove(filepath.Join(s.root, relPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("diskStore.Delete: %w", err)
	}
	return nil
}

func (s *diskStore) Exists(_ context.Context, relPath string) bool {
	info, err := os.Stat(filepath.Join(s.root, relPath))
	return err == nil && !info.IsDir()
}

func (s *diskStore) RemoveDir(_ context.Context, relDir string) error {
	if err := os.RemoveAll(filepath.Join(s.root, relDir)); err != nil {
		return fmt.Errorf("diskStore.RemoveDir: %w", err)
	}
	return nil
}

func (s *diskStore) TotalSize(_ context.Context) (int64, error) {
	var total int64
	err := filepath.WalkDir(s.root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("diskStore.TotalSize: %w", err)
	}
	return total, nil
}
