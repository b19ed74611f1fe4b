package port

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"resumehub/internal/domain"
)

// ParseEventRepository persists parse events. Events accumulate; the latest
// view is an explicit created_at descending sort, never an id-ordering
// assumption.
type ParseEventRepository interface {
	Create(ctx context.Context, event *domain.ParseEvent) error
	GetLatest(ctx context.Context) (*domain.ParseEvent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseEvent, error)
	List(ctx context.Context) ([]domain.ParseEvent, error)
	UpdateMapped(ctx context.Context, id uuid.UUID, mapped json.RawMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileMetaRepository persists uploaded-file metadata.
type FileMetaRepository interface {
	Create(ctx context.Context, meta *domain.FileMeta) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FileMeta, error)
	ListByCategory(ctx context.Context, category domain.Category, projectID *uuid.UUID) ([]domain.FileMeta, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.FileMeta, error)
	Update(ctx context.Context, meta *domain.FileMeta) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountsByCategory(ctx context.Context) (map[domain.Category]int, error)
}

// ProjectRepository persists projects. FileCount on returned projects is
// computed from the file table at read time.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
