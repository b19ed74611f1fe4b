package service

import (
	"context"
	"errors"
	"log"
	"path"
	"strings"

	"github.com/google/uuid"

	"resumehub/internal/domain"
	"resumehub/internal/port"
)

// CreateProjectInput carries a project creation request.
type CreateProjectInput struct {
	Name        string
	Description string
}

// ProjectService handles project CRUD. Deleting a project removes its files
// from disk and metadata along with the project record.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	projects port.ProjectRepository
	files    port.FileMetaRepository
	store    port.FileStore
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projects port.ProjectRepository, files port.FileMetaRepository, store port.FileStore) ProjectService {
	return &projectService{projects: projects, files: files, store: store}
}

func (s *projectService) Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrEmptyProjectName
	}

	_, err := s.projects.GetByName(ctx, name)
	if err == nil {
		return nil, domain.ErrDuplicateProjectName
	}
	if !errors.Is(err, domain.ErrProjectNotFound) {
		return nil, err
	}

	project := &domain.Project{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	log.Printf("projectService.Create: created project %s (%s)", project.Name, project.ID)
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}

	files, err := s.files.ListByProject(ctx, id)
	if err != nil {
		return err
	}
	for _, meta := range files {
		if err := s.files.Delete(ctx, meta.ID); err != nil && !errors.Is(err, domain.ErrFileNotFound) {
			return err
		}
	}
	if err := s.store.RemoveDir(ctx, path.Join("projects", id.String())); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("projectService.Delete: removed project %s with %d files", project.Name, len(files))
	return nil
}
