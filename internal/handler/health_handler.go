package handler

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	db      *sqlx.DB
	dataDir string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, dataDir string) *HealthHandler {
	return &HealthHandler{db: db, dataDir: dataDir}
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} APIResponse "Service healthy"
// @Failure 503 {object} APIResponse "Database unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, APIResponse{
			Success: false,
			Error:   &APIError{Code: "DB_UNREACHABLE", Message: "database connection failed"},
		})
		return
	}

	_, statErr := os.Stat(h.dataDir)

	RespondOK(c, gin.H{
		"status":                "healthy",
		"database":              "ok",
		"data_directory":        h.dataDir,
		"data_directory_exists": statErr == nil,
		"file_storage":          "local",
		"timestamp":             time.Now().UTC().Format(time.RFC3339),
	})
}
