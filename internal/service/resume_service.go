package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"resumehub/internal/domain"
	"resumehub/internal/mapper"
	"resumehub/internal/normalize"
	"resumehub/internal/port"
)

// ResumeService orchestrates parsing files through the external parser and
// serves normalized resume records back to clients.
type ResumeService interface {
	ParseFile(ctx context.Context, fileID uuid.UUID) (*domain.ParseEvent, error)
	GetLatest(ctx context.Context) (map[string]any, error)
	GetAll(ctx context.Context) ([]map[string]any, error)
	GetByID(ctx context.Context, id uuid.UUID) (map[string]any, error)
	Save(ctx context.Context, record map[string]any) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, record map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type resumeService struct {
	events port.ParseEventRepository
	files  port.FileMetaRepository
	store  port.FileStore
	parser port.ResumeParser
	mapper *mapper.Mapper
}

// NewResumeService creates a new ResumeService.
func NewResumeService(events port.ParseEventRepository, files port.FileMetaRepository, store port.FileStore, parser port.ResumeParser, m *mapper.Mapper) ResumeService {
	return &resumeService{events: events, files: files, store: store, parser: parser, mapper: m}
}

// ParseFile runs one parse invocation: mark the file processing, call the
// parser, record a parse event with the verbatim raw output, and update the
// file's parse lifecycle. Mapping runs only when the parser reported no
// error; a failed parse still produces an event, just without a mapped
// record.
func (s *resumeService) ParseFile(ctx context.Context, fileID uuid.UUID) (*domain.ParseEvent, error) {
	meta, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if !s.store.Exists(ctx, meta.Path) {
		return nil, domain.ErrFileMissingOnDisk
	}

	meta.ParseStatus = domain.ParseStatusProcessing
	if err := s.files.Update(ctx, meta); err != nil {
		return nil, err
	}

	content, err := s.readFile(ctx, meta.Path)
	if err != nil {
		s.failParse(ctx, meta, err.Error())
		return nil, err
	}

	response, err := s.parser.Parse(ctx, meta.OriginalFilename, content)
	if err != nil {
		s.failParse(ctx, meta, err.Error())
		return nil, fmt.Errorf("resumeService.ParseFile: %w", err)
	}

	rawJSON, err := json.Marshal(response)
	if err != nil {
		s.failParse(ctx, meta, err.Error())
		return nil, fmt.Errorf("resumeService.ParseFile marshal: %w", err)
	}

	event := &domain.ParseEvent{
		ID:        uuid.New(),
		FileID:    &meta.ID,
		RawResult: rawJSON,
	}

	if errMsg, failed := response["error"]; failed {
		event.Status = domain.EventStatusFailed
		event.Error = fmt.Sprintf("%v", errMsg)
	} else {
		mapped := s.mapper.MapToCustomStructure(parsePayload(response))
		mappedJSON, err := json.Marshal(mapped)
		if err != nil {
			s.failParse(ctx, meta, err.Error())
			return nil, fmt.Errorf("resumeService.ParseFile marshal mapped: %w", err)
		}
		event.Status = domain.EventStatusCompleted
		event.MappedResult = mappedJSON
	}

	if err := s.events.Create(ctx, event); err != nil {
		s.failParse(ctx, meta, err.Error())
		return nil, err
	}

	if event.Status == domain.EventStatusCompleted {
		now := event.CreatedAt
		meta.ParseStatus = domain.ParseStatusCompleted
		meta.ParseResult = rawJSON
		meta.ParseError = ""
		meta.ParseDate = &now
	} else {
		meta.ParseStatus = domain.ParseStatusFailed
		meta.ParseResult = rawJSON
		meta.ParseError = event.Error
	}
	if err := s.files.Update(ctx, meta); err != nil {
		return nil, err
	}

	log.Printf("resumeService.ParseFile: file %s parsed with status %s", meta.ID, event.Status)
	return event, nil
}

func (s *resumeService) GetLatest(ctx context.Context) (map[string]any, error) {
	event, err := s.events.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	return s.present(event)
}

func (s *resumeService) GetAll(ctx context.Context) ([]map[string]any, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]map[string]any, 0, len(events))
	for i := range events {
		record, err := s.present(&events[i])
		if err != nil {
			log.Printf("resumeService.GetAll: skipping event %s: %v", events[i].ID, err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *resumeService) GetByID(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.present(event)
}

// Save stores a caller-provided normalized record directly, without a file
// or a parser invocation behind it.
func (s *resumeService) Save(ctx context.Context, record map[string]any) (uuid.UUID, error) {
	if len(record) == 0 {
		return uuid.Nil, domain.ErrEmptyPayload
	}
	data, err := json.Marshal(record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resumeService.Save marshal: %w", err)
	}
	event := &domain.ParseEvent{
		ID:           uuid.New(),
		RawResult:    data,
		MappedResult: data,
		Status:       domain.EventStatusCompleted,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return uuid.Nil, err
	}
	return event.ID, nil
}

func (s *resumeService) Update(ctx context.Context, id uuid.UUID, record map[string]any) error {
	if len(record) == 0 {
		return domain.ErrEmptyPayload
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("resumeService.Update marshal: %w", err)
	}
	return s.events.UpdateMapped(ctx, id, data)
}

func (s *resumeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.events.Delete(ctx, id)
}

// present decodes an event's record, repairs escaped text, and injects the
// event id under "_id" so clients can address the record later. Events with
// no mapped record fall back to their raw output.
func (s *resumeService) present(event *domain.ParseEvent) (map[string]any, error) {
	data := event.MappedResult
	if len(data) == 0 {
		data = event.RawResult
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("resumeService.present: %w", err)
	}
	record = normalize.Value(record).(map[string]any)
	record["_id"] = event.ID.String()
	return record, nil
}

func (s *resumeService) failParse(ctx context.Context, meta *domain.FileMeta, errMsg string) {
	meta.ParseStatus = domain.ParseStatusFailed
	meta.ParseError = errMsg
	if err := s.files.Update(ctx, meta); err != nil {
		log.Printf("resumeService.failParse: updating file %s: %v", meta.ID, err)
	}
}

func (s *resumeService) readFile(ctx context.Context, relPath string) ([]byte, error) {
	rc, err := s.store.Open(ctx, relPath)
	if err != nil {
		return nil, fmt.Errorf("resumeService.readFile: %w", err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parsePayload extracts the resume data from the parser response. Current
// parser versions nest it under "result"; older ones return it at the top
// level.
func parsePayload(response map[string]any) map[string]any {
	if result, ok := response["result"].(map[string]any); ok {
		return result
	}
	return response
}
