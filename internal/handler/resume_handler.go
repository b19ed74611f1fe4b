package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resumehub/internal/service"
	"resumehub/internal/xlsxexport"
)

// ResumeHandler serves normalized resume records and parse invocations.
type ResumeHandler struct {
	resumeService service.ResumeService
	exporter      *xlsxexport.Writer
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumeService service.ResumeService, exporter *xlsxexport.Writer) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService, exporter: exporter}
}

// GetLatest handles GET /api/v1/resume/latest
// @Summary Get the most recent resume record
// @Tags resume
// @Produce json
// @Success 200 {object} APIResponse "Latest normalized record"
// @Failure 404 {object} APIResponse "No records stored yet"
// @Router /resume/latest [get]
func (h *ResumeHandler) GetLatest(c *gin.Context) {
	record, err := h.resumeService.GetLatest(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, record)
}

// GetAll handles GET /api/v1/resume/all
// @Summary List all resume records, newest first
// @Tags resume
// @Produce json
// @Success 200 {object} APIResponse "All normalized records"
// @Router /resume/all [get]
func (h *ResumeHandler) GetAll(c *gin.Context) {
	records, err := h.resumeService.GetAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, records)
}

// GetByID handles GET /api/v1/resume/:id
// @Summary Get one resume record
// @Tags resume
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} APIResponse "Normalized record"
// @Failure 404 {object} APIResponse "Record not found"
// @Router /resume/{id} [get]
func (h *ResumeHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	record, err := h.resumeService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, record)
}

// Save handles POST /api/v1/resume
// @Summary Store a resume record directly
// @Tags resume
// @Accept json
// @Produce json
// @Success 201 {object} APIResponse "Stored record id"
// @Failure 400 {object} APIResponse "Empty payload"
// @Router /resume [post]
func (h *ResumeHandler) Save(c *gin.Context) {
	var record map[string]any
	if err := c.ShouldBindJSON(&record); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		return
	}
	id, err := h.resumeService.Save(c.Request.Context(), record)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, gin.H{"id": id})
}

// Update handles PUT /api/v1/resume/:id
// @Summary Replace a resume record
// @Tags resume
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} APIResponse "Record updated"
// @Failure 404 {object} APIResponse "Record not found"
// @Router /resume/{id} [put]
func (h *ResumeHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var record map[string]any
	if err := c.ShouldBindJSON(&record); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		return
	}
	if err := h.resumeService.Update(c.Request.Context(), id, record); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": id})
}

// Delete handles DELETE /api/v1/resume/:id
// @Summary Delete a resume record
// @Tags resume
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} APIResponse "Record deleted"
// @Failure 404 {object} APIResponse "Record not found"
// @Router /resume/{id} [delete]
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.resumeService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

// Export handles GET /api/v1/resume/:id/export
// @Summary Export a resume record as xlsx
// @Tags resume
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Record ID"
// @Success 200 {file} binary "Workbook with one sheet per field group"
// @Failure 404 {object} APIResponse "Record not found"
// @Router /resume/{id}/export [get]
func (h *ResumeHandler) Export(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	record, err := h.resumeService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.exporter.Export(record)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("resume-%s.xlsx", id)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Parse handles POST /api/v1/files/:id/parse
// @Summary Parse an uploaded file through the external resume parser
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} APIResponse "Parse event outcome"
// @Failure 404 {object} APIResponse "File not found"
// @Router /files/{id}/parse [post]
func (h *ResumeHandler) Parse(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	event, err := h.resumeService.ParseFile(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, event)
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
