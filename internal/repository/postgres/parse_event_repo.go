package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"resumehub/internal/domain"
	"resumehub/internal/port"
)

type parseEventRepo struct {
	db *sqlx.DB
}

// NewParseEventRepo creates a new PostgreSQL-backed ParseEventRepository.
func NewParseEventRepo(db *sqlx.DB) port.ParseEventRepository {
	return &parseEventRepo{db: db}
}

func (r *parseEventRepo) Create(ctx context.Context, event *domain.ParseEvent) error {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	query := `INSERT INTO parse_events
		(id, file_id, raw_result, mapped_result, status, error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.FileID, event.RawResult, event.MappedResult,
		event.Status, event.Error, event.CreatedAt, event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("parseEventRepo.Create: %w", err)
	}
	return nil
}

// GetLatest returns the most recently created event. The id tiebreak keeps
// ordering stable when two events share a timestamp.
func (r *parseEventRepo) GetLatest(ctx context.Context) (*domain.ParseEvent, error) {
	var event domain.ParseEvent
	err := r.db.GetContext(ctx, &event,
		"SELECT * FROM parse_events ORDER BY created_at DESC, id DESC LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("parseEventRepo.GetLatest: %w", err)
	}
	return &event, nil
}

func (r *parseEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseEvent, error) {
	var event domain.ParseEvent
	err := r.db.GetContext(ctx, &event,
		"SELECT * FROM parse_events WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("parseEventRepo.GetByID: %w", err)
	}
	return &event, nil
}

func (r *parseEventRepo) List(ctx context.Context) ([]domain.ParseEvent, error) {
	var events []domain.ParseEvent
	err := r.db.SelectContext(ctx, &events,
		"SELECT * FROM parse_events ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("parseEventRepo.List: %w", err)
	}
	return events, nil
}

func (r *parseEventRepo) UpdateMapped(ctx context.Context, id uuid.UUID, mapped json.RawMessage) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE parse_events SET mapped_result = $1, updated_at = $2 WHERE id = $3",
		mapped, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("parseEventRepo.UpdateMapped: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *parseEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM parse_events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("parseEventRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
