package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FileMeta stores metadata about an uploaded file, including the two
// independent lifecycle state machines (parse and sync).
type FileMeta struct {
	ID               uuid.UUID       `db:"id" json:"file_id"`
	OriginalFilename string          `db:"original_filename" json:"original_filename"`
	StoredFilename   string          `db:"stored_filename" json:"filename"`
	Path             string          `db:"path" json:"file_path"`
	Category         Category        `db:"category" json:"category"`
	ProjectID        *uuid.UUID      `db:"project_id" json:"project_id"`
	Size             int64           `db:"size" json:"size"`
	Mimetype         string          `db:"mimetype" json:"mimetype"`
	UploadDate       time.Time       `db:"upload_date" json:"upload_date"`
	ParseStatus      ParseStatus     `db:"parse_status" json:"parse_status"`
	ParseEnabled     bool            `db:"parse_enabled" json:"parse_enabled"`
	ParseResult      json.RawMessage `db:"parse_result" json:"parse_result"`
	ParseError       string          `db:"parse_error" json:"parse_error"`
	ParseDate        *time.Time      `db:"parse_date" json:"parse_date"`
	SyncStatus       SyncStatus      `db:"sync_status" json:"sync_status"`
	SyncEnabled      bool            `db:"sync_enabled" json:"sync_enabled"`
	SyncResult       json.RawMessage `db:"sync_result" json:"sync_result"`
	SyncError        string          `db:"sync_error" json:"sync_error"`
	SyncDate         *time.Time      `db:"sync_date" json:"sync_date"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

// Project groups uploaded files under a unique name. FileCount is derived
// from the file table on read, never maintained as a counter.
type Project struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	FileCount   int       `db:"file_count" json:"file_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ParseEvent records one invocation of the external resume parser against a
// file: the verbatim raw output, its normalized projection, and the outcome.
// Events accumulate; they are never overwritten.
type ParseEvent struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	FileID       *uuid.UUID      `db:"file_id" json:"file_id"`
	RawResult    json.RawMessage `db:"raw_result" json:"raw_result"`
	MappedResult json.RawMessage `db:"mapped_result" json:"mapped_result"`
	Status       EventStatus     `db:"status" json:"status"`
	Error        string          `db:"error" json:"error"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}
