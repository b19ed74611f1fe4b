package service_test

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumehub/internal/domain"
	"resumehub/internal/mapper"
	"resumehub/internal/schema"
	"resumehub/internal/service"
	"resumehub/mocks"
)

type resumeFixture struct {
	events *mocks.MockParseEventRepo
	files  *mocks.MockFileMetaRepo
	store  *mocks.MockFileStore
	parser *mocks.MockResumeParser
	svc    service.ResumeService
}

func newResumeFixture() *resumeFixture {
	f := &resumeFixture{
		events: new(mocks.MockParseEventRepo),
		files:  new(mocks.MockFileMetaRepo),
		store:  new(mocks.MockFileStore),
		parser: new(mocks.MockResumeParser),
	}
	f.svc = service.NewResumeService(f.events, f.files, f.store, f.parser, mapper.New(schema.NewRegistry()))
	return f
}

func pendingFile(id uuid.UUID) *domain.FileMeta {
	return &domain.FileMeta{
		ID:               id,
		OriginalFilename: "cv.pdf",
		StoredFilename:   id.String() + ".pdf",
		Path:             "resume/" + id.String() + ".pdf",
		Category:         domain.CategoryResume,
		ParseStatus:      domain.ParseStatusPending,
		SyncStatus:       domain.SyncStatusPending,
	}
}

func TestParseFileSuccess(t *testing.T) {
	f := newResumeFixture()
	ctx := context.Background()
	fileID := uuid.New()
	meta := pendingFile(fileID)

	f.files.On("GetByID", ctx, fileID).Return(meta, nil)
	f.store.On("Exists", ctx, meta.Path).Return(true)
	f.files.On("Update", ctx, meta).Return(nil)
	f.store.On("Open", ctx, meta.Path).Return(io.NopCloser(strings.NewReader("pdf bytes")), nil)
	f.parser.On("Parse", ctx, "cv.pdf", []byte("pdf bytes")).Return(map[string]any{
		"result": map[string]any{
			"profile": map[string]any{"name": "张三"},
		},
	}, nil)

	var saved *domain.ParseEvent
	f.events.On("Create", ctx, mock.AnythingOfType("*domain.ParseEvent")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.ParseEvent) }).
		Return(nil)

	event, err := f.svc.ParseFile(ctx, fileID)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, domain.EventStatusCompleted, event.Status)
	assert.Equal(t, fileID, *event.FileID)

	var mapped map[string]any
	require.NoError(t, json.Unmarshal(event.MappedResult, &mapped))
	assert.Equal(t, "张三", mapped["name"])

	assert.Equal(t, domain.ParseStatusCompleted, meta.ParseStatus)
	assert.Equal(t, "", meta.ParseError)
	assert.NotNil(t, meta.ParseDate)
}

func TestParseFileParserErrorSkipsMapping(t *testing.T) {
	f := newResumeFixture()
	ctx := context.Background()
	fileID := uuid.New()
	meta := pendingFile(fileID)

	f.files.On("GetByID", ctx, fileID).Return(meta, nil)
	f.store.On("Exists", ctx, meta.Path).Return(true)
	f.files.On("Update", ctx, meta).Return(nil)
	f.store.On("Open", ctx, meta.Path).Return(io.NopCloser(strings.NewReader("x")), nil)
	f.parser.On("Parse", ctx, "cv.pdf", []byte("x")).Return(map[string]any{
		"error":  "HTTP 500",
		"detail": "upstream exploded",
	}, nil)
	f.events.On("Create", ctx, mock.AnythingOfType("*domain.ParseEvent")).Return(nil)

	event, err := f.svc.ParseFile(ctx, fileID)
	require.NoError(t, err)

	assert.Equal(t, domain.EventStatusFailed, event.Status)
	assert.Equal(t, "HTTP 500", event.Error)
	assert.Empty(t, event.MappedResult)

	assert.Equal(t, domain.ParseStatusFailed, meta.ParseStatus)
	assert.Equal(t, "HTTP 500", meta.ParseError)
	assert.Nil(t, meta.ParseDate)
}

func TestParseFileMissingOnDisk(t *testing.T) {
	f := newResumeFixture()
	ctx := context.Background()
	fileID := uuid.New()
	meta := pendingFile(fileID)

	f.files.On("GetByID", ctx, fileID).Return(meta, nil)
	f.store.On("Exists", ctx, meta.Path).Return(false)

	_, err := f.svc.ParseFile(ctx, fileID)
	assert.ErrorIs(t, err, domain.ErrFileMissingOnDisk)
	f.events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestParseFileUnknownFile(t *testing.T) {
	f := newResumeFixture()
	ctx := context.Background()
	fileID := uuid.New()

	f.files.On("GetByID", ctx, fileID).Return(nil, domain.ErrFileNotFound)

	_, err := f.svc.ParseFile(ctx, fileID)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestGetLatestInjectsIDAndNormalizes(t *testing.T) {
	f := newResumeFixture()
	ctx := context.Background()
	eventID := uuid.New()

	f.events.On("GetLatest", ctx).Return(&domain.ParseEvent{
		ID:           eventID,
		MappedResult: json.RawMessage(`{"name": "\\u5f20\\u4e09"}`),
		Status:       domain.EventStatusCompleted,
	}, nil)

	record, err := f.svc.GetLatest(ctx)
	require.NoError(t, err)

	assert.Equal(t, eventID.String(), record["_id"])
	assert.Equal(t, "张三", record["name"])
}

func TestGetLatestEmptyStore(t *testing.T) {
	f := newResumeFixture()
	ctx := context.Background()

	f.events.On("GetLatest", ctx).Return(nil, domain.ErrNotFound)

	_, err := f.svc.GetLatest(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetLatestFallsBackToRawRecord(t *testing.T) {
	f := newResumeFixture()
	ctx := context.Background()
	eventID := uuid.New()

	f.events.On("GetLatest", ctx).Return(&domain.ParseEvent{
		ID:        eventID,
		RawResult: json.RawMessage(`{"error": "HTTP 500"}`),
		Status:    domain.EventStatusFailed,
	}, nil)

	record, err := f.svc.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "HTTP 500", record["error"])
	assert.Equal(t, eventID.String(), record["_id"])
}

func TestGetAllSkipsUndecodableEvents(t *testing.T) {
	f := newResumeFixture()
	ctx := context.Background()

	f.events.On("List", ctx).Return([]domain.ParseEvent{
		{ID: uuid.New(), MappedResult: json.RawMessage(`{"name": "A"}`)},
		{ID: uuid.New(), MappedResult: json.RawMessage(`not json`)},
		{ID: uuid.New(), MappedResult: json.RawMessage(`{"name": "B"}`)},
	}, nil)

	records, err := f.svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0]["name"])
	assert.Equal(t, "B", records[1]["name"])
}

func TestSaveRejectsEmptyRecord(t *testing.T) {
	f := newResumeFixture()

	_, err := f.svc.Save(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, domain.ErrEmptyPayload)
}

func TestSaveStoresRecordVerbatim(t *testing.T) {
	f := newResumeFixture()
	ctx := context.Background()

	var saved *domain.ParseEvent
	f.events.On("Create", ctx, mock.AnythingOfType("*domain.ParseEvent")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.ParseEvent) }).
		Return(nil)

	id, err := f.svc.Save(ctx, map[string]any{"name": "A"})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, saved.ID, id)
	assert.Equal(t, domain.EventStatusCompleted, saved.Status)
	assert.JSONEq(t, `{"name": "A"}`, string(saved.MappedResult))
	assert.Nil(t, saved.FileID)
}

func TestUpdateRejectsEmptyRecord(t *testing.T) {
	f := newResumeFixture()

	err := f.svc.Update(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyPayload)
}
