package service

import (
	"context"

	"resumehub/internal/domain"
	"resumehub/internal/port"
)

// CategoryStat is one category's display name and file count.
type CategoryStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SystemInfo aggregates storage statistics across categories and projects.
type SystemInfo struct {
	DataDirectory    string                           `json:"data_directory"`
	FileCategories   map[domain.Category]CategoryStat `json:"file_categories"`
	ProjectCount     int                              `json:"project_count"`
	ProjectFileCount int                              `json:"project_file_count"`
	TotalDiskUsage   int64                            `json:"total_disk_usage"`
	TotalDiskUsageMB float64                          `json:"total_disk_usage_mb"`
}

// SystemService reports storage statistics.
type SystemService interface {
	Info(ctx context.Context) (*SystemInfo, error)
}

type systemService struct {
	files    port.FileMetaRepository
	projects port.ProjectRepository
	store    port.FileStore
	dataDir  string
}

// NewSystemService creates a new SystemService.
func NewSystemService(files port.FileMetaRepository, projects port.ProjectRepository, store port.FileStore, dataDir string) SystemService {
	return &systemService{files: files, projects: projects, store: store, dataDir: dataDir}
}

func (s *systemService) Info(ctx context.Context) (*SystemInfo, error) {
	counts, err := s.files.CountsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	stats := make(map[domain.Category]CategoryStat, len(domain.UploadCategories))
	for category := range domain.UploadCategories {
		stats[category] = CategoryStat{
			Name:  domain.CategoryNames[category],
			Count: counts[category],
		}
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	usage, err := s.store.TotalSize(ctx)
	if err != nil {
		return nil, err
	}

	return &SystemInfo{
		DataDirectory:    s.dataDir,
		FileCategories:   stats,
		ProjectCount:     len(projects),
		ProjectFileCount: counts[domain.CategoryProject],
		TotalDiskUsage:   usage,
		TotalDiskUsageMB: float64(usage) / 1024 / 1024,
	}, nil
}
