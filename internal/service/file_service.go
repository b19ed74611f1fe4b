package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumehub/internal/domain"
	"resumehub/internal/port"
)

// UploadFileInput carries one file upload.
type UploadFileInput struct {
	Category         domain.Category
	ProjectID        *uuid.UUID
	OriginalFilename string
	Mimetype         string
	Size             int64
	Content          io.Reader
}

// UpdateStatusInput carries a partial lifecycle update. Nil pointers leave
// the corresponding field unchanged.
type UpdateStatusInput struct {
	ParseStatus  *domain.ParseStatus
	ParseEnabled *bool
	ParseResult  []byte
	ParseError   *string
	SyncStatus   *domain.SyncStatus
	SyncEnabled  *bool
	SyncResult   []byte
	SyncError    *string
}

// FileService handles upload, retrieval and lifecycle updates of stored files.
type FileService interface {
	Upload(ctx context.Context, input UploadFileInput) (*domain.FileMeta, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FileMeta, error)
	ListByCategory(ctx context.Context, category domain.Category, projectID *uuid.UUID) ([]domain.FileMeta, error)
	Download(ctx context.Context, id uuid.UUID) (*domain.FileMeta, io.ReadCloser, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileService struct {
	files    port.FileMetaRepository
	projects port.ProjectRepository
	store    port.FileStore
	maxSize  int64
}

// NewFileService creates a new FileService.
func NewFileService(files port.FileMetaRepository, projects port.ProjectRepository, store port.FileStore, maxSize int64) FileService {
	return &fileService{files: files, projects: projects, store: store, maxSize: maxSize}
}

func (s *fileService) Upload(ctx context.Context, input UploadFileInput) (*domain.FileMeta, error) {
	if input.Category == domain.CategoryProject {
		if input.ProjectID == nil {
			return nil, domain.ErrInvalidCategory
		}
		if _, err := s.projects.GetByID(ctx, *input.ProjectID); err != nil {
			return nil, err
		}
	} else if !domain.UploadCategories[input.Category] {
		return nil, domain.ErrInvalidCategory
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(input.OriginalFilename), "."))
	if !domain.AllowedExtensions[ext] {
		return nil, domain.ErrUnsupportedFileType
	}
	if s.maxSize > 0 && input.Size > s.maxSize {
		return nil, domain.ErrFileTooLarge
	}

	// Generated names are collision-free, so concurrent uploads never
	// contend on a path.
	id := uuid.New()
	storedName := id.String()
	if ext != "" {
		storedName += "." + ext
	}
	relPath := storedPath(input.Category, input.ProjectID, storedName)

	size, err := s.store.Save(ctx, relPath, input.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailed, err)
	}

	now := time.Now().UTC()
	meta := &domain.FileMeta{
		ID:               id,
		OriginalFilename: input.OriginalFilename,
		StoredFilename:   storedName,
		Path:             relPath,
		Category:         input.Category,
		ProjectID:        input.ProjectID,
		Size:             size,
		Mimetype:         input.Mimetype,
		UploadDate:       now,
		ParseStatus:      domain.ParseStatusPending,
		ParseEnabled:     true,
		SyncStatus:       domain.SyncStatusPending,
		SyncEnabled:      true,
	}
	if err := s.files.Create(ctx, meta); err != nil {
		// Keep disk and metadata consistent when the insert fails.
		_ = s.store.Delete(ctx, relPath)
		return nil, err
	}

	log.Printf("fileService.Upload: stored %s as %s (category %s)", input.OriginalFilename, storedName, input.Category)
	return meta, nil
}

// GetByID returns the file metadata, lazily deleting the record if the
// backing file has gone missing on disk.
func (s *fileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.FileMeta, error) {
	meta, err := s.files.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.store.Exists(ctx, meta.Path) {
		log.Printf("fileService.GetByID: backing file missing, deleting record %s", meta.ID)
		_ = s.files.Delete(ctx, meta.ID)
		return nil, domain.ErrFileNotFound
	}
	return meta, nil
}

func (s *fileService) ListByCategory(ctx context.Context, category domain.Category, projectID *uuid.UUID) ([]domain.FileMeta, error) {
	if _, known := domain.CategoryNames[category]; !known {
		return nil, domain.ErrInvalidCategory
	}
	if category == domain.CategoryProject && projectID != nil {
		if _, err := s.projects.GetByID(ctx, *projectID); err != nil {
			return nil, err
		}
	}

	all, err := s.files.ListByCategory(ctx, category, projectID)
	if err != nil {
		return nil, err
	}

	present := make([]domain.FileMeta, 0, len(all))
	for _, meta := range all {
		if s.store.Exists(ctx, meta.Path) {
			present = append(present, meta)
			continue
		}
		log.Printf("fileService.ListByCategory: backing file missing, deleting record %s", meta.ID)
		_ = s.files.Delete(ctx, meta.ID)
	}
	return present, nil
}

func (s *fileService) Download(ctx context.Context, id uuid.UUID) (*domain.FileMeta, io.ReadCloser, error) {
	meta, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Open(ctx, meta.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("fileService.Download: %w", err)
	}
	return meta, rc, nil
}

func (s *fileService) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) error {
	if input.ParseStatus == nil && input.ParseEnabled == nil && input.ParseResult == nil &&
		input.ParseError == nil && input.SyncStatus == nil && input.SyncEnabled == nil &&
		input.SyncResult == nil && input.SyncError == nil {
		return domain.ErrEmptyPayload
	}
	if input.ParseStatus != nil && !domain.ValidParseStatus(*input.ParseStatus) {
		return domain.ErrInvalidStatus
	}
	if input.SyncStatus != nil && !domain.ValidSyncStatus(*input.SyncStatus) {
		return domain.ErrInvalidStatus
	}

	meta, err := s.files.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if input.ParseStatus != nil {
		meta.ParseStatus = *input.ParseStatus
		if *input.ParseStatus == domain.ParseStatusCompleted {
			meta.ParseDate = &now
		}
	}
	if input.ParseEnabled != nil {
		meta.ParseEnabled = *input.ParseEnabled
	}
	if input.ParseResult != nil {
		meta.ParseResult = input.ParseResult
	}
	if input.ParseError != nil {
		meta.ParseError = *input.ParseError
	}
	if input.SyncStatus != nil {
		meta.SyncStatus = *input.SyncStatus
		if *input.SyncStatus == domain.SyncStatusCompleted {
			meta.SyncDate = &now
		}
	}
	if input.SyncEnabled != nil {
		meta.SyncEnabled = *input.SyncEnabled
	}
	if input.SyncResult != nil {
		meta.SyncResult = input.SyncResult
	}
	if input.SyncError != nil {
		meta.SyncError = *input.SyncError
	}

	return s.files.Update(ctx, meta)
}

func (s *fileService) Delete(ctx context.Context, id uuid.UUID) error {
	meta, err := s.files.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, meta.Path); err != nil {
		return err
	}
	if err := s.files.Delete(ctx, meta.ID); err != nil && !errors.Is(err, domain.ErrFileNotFound) {
		return err
	}
	log.Printf("fileService.Delete: removed %s", meta.ID)
	return nil
}

func storedPath(category domain.Category, projectID *uuid.UUID, storedName string) string {
	if category == domain.CategoryProject && projectID != nil {
		return path.Join("projects", projectID.String(), storedName)
	}
	return path.Join(string(category), storedName)
}
