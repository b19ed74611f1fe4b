package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/internal/domain"
	"resumehub/internal/service"
	"resumehub/mocks"
)

func TestSystemInfo(t *testing.T) {
	files := new(mocks.MockFileMetaRepo)
	projects := new(mocks.MockProjectRepo)
	store := new(mocks.MockFileStore)
	svc := service.NewSystemService(files, projects, store, "./data")
	ctx := context.Background()

	files.On("CountsByCategory", ctx).Return(map[domain.Category]int{
		domain.CategoryResume:  3,
		domain.CategoryProject: 7,
	}, nil)
	projects.On("List", ctx).Return([]domain.Project{
		{ID: uuid.New(), Name: "a"},
		{ID: uuid.New(), Name: "b"},
	}, nil)
	store.On("TotalSize", ctx).Return(int64(2*1024*1024), nil)

	info, err := svc.Info(ctx)
	require.NoError(t, err)

	assert.Equal(t, "./data", info.DataDirectory)
	assert.Equal(t, 3, info.FileCategories[domain.CategoryResume].Count)
	assert.Equal(t, 0, info.FileCategories[domain.CategoryJob].Count)
	// Project files are reported separately, not as a category stat.
	_, listed := info.FileCategories[domain.CategoryProject]
	assert.False(t, listed)
	assert.Equal(t, 2, info.ProjectCount)
	assert.Equal(t, 7, info.ProjectFileCount)
	assert.Equal(t, int64(2*1024*1024), info.TotalDiskUsage)
	assert.Equal(t, 2.0, info.TotalDiskUsageMB)
}
