package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumehub/internal/domain"
	"resumehub/internal/service"
	"resumehub/mocks"
)

type projectFixture struct {
	projects *mocks.MockProjectRepo
	files    *mocks.MockFileMetaRepo
	store    *mocks.MockFileStore
	svc      service.ProjectService
}

func newProjectFixture() *projectFixture {
	f := &projectFixture{
		projects: new(mocks.MockProjectRepo),
		files:    new(mocks.MockFileMetaRepo),
		store:    new(mocks.MockFileStore),
	}
	f.svc = service.NewProjectService(f.projects, f.files, f.store)
	return f
}

func TestCreateProject(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	f.projects.On("GetByName", ctx, "alpha").Return(nil, domain.ErrProjectNotFound)
	f.projects.On("Create", ctx, mock.AnythingOfType("*domain.Project")).Return(nil)

	project, err := f.svc.Create(ctx, service.CreateProjectInput{Name: "  alpha  ", Description: "first"})
	require.NoError(t, err)

	assert.Equal(t, "alpha", project.Name)
	assert.Equal(t, "first", project.Description)
	assert.NotEqual(t, uuid.Nil, project.ID)
}

func TestCreateProjectRejectsEmptyName(t *testing.T) {
	f := newProjectFixture()

	_, err := f.svc.Create(context.Background(), service.CreateProjectInput{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyProjectName)
}

func TestCreateProjectRejectsDuplicateName(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	f.projects.On("GetByName", ctx, "alpha").
		Return(&domain.Project{ID: uuid.New(), Name: "alpha"}, nil)

	_, err := f.svc.Create(ctx, service.CreateProjectInput{Name: "alpha"})
	assert.ErrorIs(t, err, domain.ErrDuplicateProjectName)
	f.projects.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteProjectRemovesFilesAndDir(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	id := uuid.New()
	fileA := domain.FileMeta{ID: uuid.New(), Path: "projects/" + id.String() + "/a.txt"}
	fileB := domain.FileMeta{ID: uuid.New(), Path: "projects/" + id.String() + "/b.txt"}

	f.projects.On("GetByID", ctx, id).Return(&domain.Project{ID: id, Name: "alpha"}, nil)
	f.files.On("ListByProject", ctx, id).Return([]domain.FileMeta{fileA, fileB}, nil)
	f.files.On("Delete", ctx, fileA.ID).Return(nil)
	f.files.On("Delete", ctx, fileB.ID).Return(nil)
	f.store.On("RemoveDir", ctx, "projects/"+id.String()).Return(nil)
	f.projects.On("Delete", ctx, id).Return(nil)

	require.NoError(t, f.svc.Delete(ctx, id))
	f.store.AssertCalled(t, "RemoveDir", ctx, "projects/"+id.String())
	f.projects.AssertCalled(t, "Delete", ctx, id)
}

func TestDeleteUnknownProject(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	id := uuid.New()

	f.projects.On("GetByID", ctx, id).Return(nil, domain.ErrProjectNotFound)

	err := f.svc.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
