package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/internal/handler"
	"resumehub/internal/schema"
)

func setupSchemaRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewSchemaHandler(schema.NewRegistry())
	r := gin.New()
	r.GET("/schema/groups", h.Groups)
	r.GET("/schema/groups/:key/fields", h.GroupFields)
	return r
}

func TestSchemaGroupsListsAllGroups(t *testing.T) {
	r := setupSchemaRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schema/groups", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)
	groups := resp.Data.([]any)
	assert.Len(t, groups, 10)
	first := groups[0].(map[string]any)
	assert.Equal(t, "basic_info", first["key"])
}

func TestSchemaGroupFields(t *testing.T) {
	r := setupSchemaRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schema/groups/skills/fields", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	fields := resp.Data.([]any)
	assert.Len(t, fields, 5)
}

func TestSchemaGroupFieldsUnknownGroup(t *testing.T) {
	r := setupSchemaRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schema/groups/nope/fields", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "GROUP_NOT_FOUND", resp.Error.Code)
}
