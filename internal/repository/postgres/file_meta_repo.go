package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"resumehub/internal/domain"
	"resumehub/internal/port"
)

type fileMetaRepo struct {
	db *sqlx.DB
}

// NewFileMetaRepo creates a new PostgreSQL-backed FileMetaRepository.
func NewFileMetaRepo(db *sqlx.DB) port.FileMetaRepository {
	return &fileMetaRepo{db: db}
}

func (r *fileMetaRepo) Create(ctx context.Context, meta *domain.FileMeta) error {
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	query := `INSERT INTO file_metadata
		(id, original_filename, stored_filename, path, category, project_id,
		 size, mimetype, upload_date,
		 parse_status, parse_enabled, parse_result, parse_error, parse_date,
		 sync_status, sync_enabled, sync_result, sync_error, sync_date,
		 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
		        $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	_, err := r.db.ExecContext(ctx, query,
		meta.ID, meta.OriginalFilename, meta.StoredFilename, meta.Path,
		meta.Category, meta.ProjectID, meta.Size, meta.Mimetype, meta.UploadDate,
		meta.ParseStatus, meta.ParseEnabled, meta.ParseResult, meta.ParseError, meta.ParseDate,
		meta.SyncStatus, meta.SyncEnabled, meta.SyncResult, meta.SyncError, meta.SyncDate,
		meta.CreatedAt, meta.UpdatedAt)
	if err != nil {
		return fmt.Errorf("fileMetaRepo.Create: %w", err)
	}
	return nil
}

func (r *fileMetaRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FileMeta, error) {
	var meta domain.FileMeta
	err := r.db.GetContext(ctx, &meta,
		"SELECT * FROM file_metadata WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("fileMetaRepo.GetByID: %w", err)
	}
	return &meta, nil
}

func (r *fileMetaRepo) ListByCategory(ctx context.Context, category domain.Category, projectID *uuid.UUID) ([]domain.FileMeta, error) {
	var files []domain.FileMeta
	var err error
	if projectID != nil {
		err = r.db.SelectContext(ctx, &files,
			`SELECT * FROM file_metadata
			 WHERE category = $1 AND project_id = $2
			 ORDER BY upload_date DESC`,
			category, *projectID)
	} else {
		err = r.db.SelectContext(ctx, &files,
			`SELECT * FROM file_metadata
			 WHERE category = $1 AND project_id IS NULL
			 ORDER BY upload_date DESC`,
			category)
	}
	if err != nil {
		return nil, fmt.Errorf("fileMetaRepo.ListByCategory: %w", err)
	}
	return files, nil
}

func (r *fileMetaRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.FileMeta, error) {
	var files []domain.FileMeta
	err := r.db.SelectContext(ctx, &files,
		"SELECT * FROM file_metadata WHERE project_id = $1 ORDER BY upload_date DESC",
		projectID)
	if err != nil {
		return nil, fmt.Errorf("fileMetaRepo.ListByProject: %w", err)
	}
	return files, nil
}

func (r *fileMetaRepo) Update(ctx context.Context, meta *domain.FileMeta) error {
	meta.UpdatedAt = time.Now().UTC()

	query := `UPDATE file_metadata SET
		parse_status = $1, parse_enabled = $2, parse_result = $3,
		parse_error = $4, parse_date = $5,
		sync_status = $6, sync_enabled = $7, sync_result = $8,
		sync_error = $9, sync_date = $10,
		updated_at = $11
		WHERE id = $12`

	result, err := r.db.ExecContext(ctx, query,
		meta.ParseStatus, meta.ParseEnabled, meta.ParseResult,
		meta.ParseError, meta.ParseDate,
		meta.SyncStatus, meta.SyncEnabled, meta.SyncResult,
		meta.SyncError, meta.SyncDate,
		meta.UpdatedAt, meta.ID)
	if err != nil {
		return fmt.Errorf("fileMetaRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (r *fileMetaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM file_metadata WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("fileMetaRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (r *fileMetaRepo) CountsByCategory(ctx context.Context) (map[domain.Category]int, error) {
	rows := []struct {
		Category domain.Category `db:"category"`
		Count    int             `db:"count"`
	}{}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT category, COUNT(*) AS count FROM file_metadata GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("fileMetaRepo.CountsByCategory: %w", err)
	}
	counts := make(map[domain.Category]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}
