package port

import (
	"context"
	"io"
)

// FileStore is write-once binary storage addressed by relative path.
// Directory hierarchy is created lazily on save.
type FileStore interface {
	Save(ctx context.Context, relPath string, r io.Reader) (int64, error)
	Open(ctx context.Context, relPath string) (io.ReadCloser, error)
	Delete(ctx context.Context, relPath string) error
	Exists(ctx context.Context, relPath string) bool
	RemoveDir(ctx context.Context, relDir string) error
	TotalSize(ctx context.Context) (int64, error)
}
