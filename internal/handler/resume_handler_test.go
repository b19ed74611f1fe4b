package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumehub/internal/domain"
	"resumehub/internal/handler"
	"resumehub/internal/schema"
	"resumehub/internal/xlsxexport"
	"resumehub/mocks"
)

func setupResumeRouter(svc *mocks.MockResumeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewResumeHandler(svc, xlsxexport.NewWriter(schema.NewRegistry()))
	r := gin.New()
	r.GET("/resume/latest", h.GetLatest)
	r.GET("/resume/all", h.GetAll)
	r.GET("/resume/:id", h.GetByID)
	r.GET("/resume/:id/export", h.Export)
	r.POST("/resume", h.Save)
	r.PUT("/resume/:id", h.Update)
	r.DELETE("/resume/:id", h.Delete)
	r.POST("/files/:id/parse", h.Parse)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetLatestReturnsRecord(t *testing.T) {
	svc := new(mocks.MockResumeService)
	svc.On("GetLatest", mock.Anything).Return(map[string]any{"name": "Ada"}, nil)
	r := setupResumeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resume/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Ada", data["name"])
}

func TestGetLatestEmptyStoreReturns404(t *testing.T) {
	svc := new(mocks.MockResumeService)
	svc.On("GetLatest", mock.Anything).Return(nil, domain.ErrNotFound)
	r := setupResumeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resume/latest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestGetByIDRejectsMalformedID(t *testing.T) {
	svc := new(mocks.MockResumeService)
	r := setupResumeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resume/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
	svc.AssertNotCalled(t, "GetByID")
}

func TestSaveReturnsCreatedID(t *testing.T) {
	id := uuid.New()
	svc := new(mocks.MockResumeService)
	svc.On("Save", mock.Anything, map[string]any{"name": "Ada"}).Return(id, nil)
	r := setupResumeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/resume", strings.NewReader(`{"name": "Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp.Data.(map[string]any)
	assert.Equal(t, id.String(), data["id"])
}

func TestSaveRejectsNonObjectBody(t *testing.T) {
	svc := new(mocks.MockResumeService)
	r := setupResumeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/resume", strings.NewReader(`[1, 2]`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Save")
}

func TestExportSendsWorkbook(t *testing.T) {
	id := uuid.New()
	svc := new(mocks.MockResumeService)
	svc.On("GetByID", mock.Anything, id).Return(map[string]any{"name": "Ada"}, nil)
	r := setupResumeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resume/"+id.String()+"/export", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestParseTriggersParseFile(t *testing.T) {
	id := uuid.New()
	event := &domain.ParseEvent{ID: uuid.New(), Status: domain.EventStatusCompleted}
	svc := new(mocks.MockResumeService)
	svc.On("ParseFile", mock.Anything, id).Return(event, nil)
	r := setupResumeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/files/"+id.String()+"/parse", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}
