package handler

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resumehub/internal/domain"
	"resumehub/internal/service"
)

// FileHandler handles file upload, listing, download and lifecycle updates.
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// statusUpdateRequest is the body of the parse/sync status PUT endpoints.
// Absent fields leave the stored value unchanged.
type statusUpdateRequest struct {
	ParseStatus  *string        `json:"parse_status"`
	ParseEnabled *bool          `json:"parse_enabled"`
	ParseResult  map[string]any `json:"parse_result"`
	ParseError   *string        `json:"parse_error"`
	SyncStatus   *string        `json:"sync_status"`
	SyncEnabled  *bool          `json:"sync_enabled"`
	SyncResult   map[string]any `json:"sync_result"`
	SyncError    *string        `json:"sync_error"`
}

// UploadToCategory handles POST /api/v1/files/category/:category
// @Summary Upload a file into a category
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param category path string true "Category (resume, company, job, knowledge)"
// @Param file formData file true "File to upload"
// @Success 201 {object} APIResponse "File metadata"
// @Failure 400 {object} APIResponse "Invalid category or file type"
// @Failure 413 {object} APIResponse "File too large"
// @Router /files/category/{category} [post]
func (h *FileHandler) UploadToCategory(c *gin.Context) {
	h.upload(c, domain.Category(c.Param("category")), nil)
}

// UploadToProject handles POST /api/v1/projects/:id/files
// @Summary Upload a file into a project
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID"
// @Param file formData file true "File to upload"
// @Success 201 {object} APIResponse "File metadata"
// @Failure 404 {object} APIResponse "Project not found"
// @Router /projects/{id}/files [post]
func (h *FileHandler) UploadToProject(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	h.upload(c, domain.CategoryProject, &projectID)
}

func (h *FileHandler) upload(c *gin.Context, category domain.Category, projectID *uuid.UUID) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	mimetype := header.Header.Get("Content-Type")
	if mimetype == "" {
		mimetype = "application/octet-stream"
	} else if parsed, _, err := mime.ParseMediaType(mimetype); err == nil {
		mimetype = parsed
	}

	meta, err := h.fileService.Upload(c.Request.Context(), service.UploadFileInput{
		Category:         category,
		ProjectID:        projectID,
		OriginalFilename: header.Filename,
		Mimetype:         mimetype,
		Size:             header.Size,
		Content:          file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, meta)
}

// ListByCategory handles GET /api/v1/files/category/:category
// @Summary List files in a category
// @Tags files
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} APIResponse "File metadata list"
// @Failure 400 {object} APIResponse "Invalid category"
// @Router /files/category/{category} [get]
func (h *FileHandler) ListByCategory(c *gin.Context) {
	files, err := h.fileService.ListByCategory(c.Request.Context(), domain.Category(c.Param("category")), nil)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, files)
}

// ListByProject handles GET /api/v1/projects/:id/files
// @Summary List files in a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} APIResponse "File metadata list"
// @Failure 404 {object} APIResponse "Project not found"
// @Router /projects/{id}/files [get]
func (h *FileHandler) ListByProject(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	files, err := h.fileService.ListByCategory(c.Request.Context(), domain.CategoryProject, &projectID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, files)
}

// Download handles GET /api/v1/files/:id/download
// @Summary Download a stored file
// @Tags files
// @Produce octet-stream
// @Param id path string true "File ID"
// @Success 200 {file} binary "File content"
// @Failure 404 {object} APIResponse "File not found"
// @Router /files/{id}/download [get]
func (h *FileHandler) Download(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	meta, rc, err := h.fileService.Download(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": meta.OriginalFilename,
	}))
	c.Header("Content-Type", meta.Mimetype)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

// UpdateParseStatus handles PUT /api/v1/files/:id/parse-status
// @Summary Update a file's parse lifecycle fields
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} APIResponse "Status updated"
// @Failure 400 {object} APIResponse "Empty payload or invalid status"
// @Failure 404 {object} APIResponse "File not found"
// @Router /files/{id}/parse-status [put]
func (h *FileHandler) UpdateParseStatus(c *gin.Context) {
	h.updateStatus(c, false)
}

// UpdateSyncStatus handles PUT /api/v1/files/:id/sync-status
// @Summary Update a file's sync lifecycle fields
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} APIResponse "Status updated"
// @Failure 400 {object} APIResponse "Empty payload or invalid status"
// @Failure 404 {object} APIResponse "File not found"
// @Router /files/{id}/sync-status [put]
func (h *FileHandler) UpdateSyncStatus(c *gin.Context) {
	h.updateStatus(c, true)
}

func (h *FileHandler) updateStatus(c *gin.Context, sync bool) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		return
	}

	var input service.UpdateStatusInput
	if sync {
		if req.SyncStatus != nil {
			status := domain.SyncStatus(*req.SyncStatus)
			input.SyncStatus = &status
		}
		input.SyncEnabled = req.SyncEnabled
		input.SyncError = req.SyncError
		if req.SyncResult != nil {
			input.SyncResult = marshalResult(c, req.SyncResult)
			if input.SyncResult == nil {
				return
			}
		}
	} else {
		if req.ParseStatus != nil {
			status := domain.ParseStatus(*req.ParseStatus)
			input.ParseStatus = &status
		}
		input.ParseEnabled = req.ParseEnabled
		input.ParseError = req.ParseError
		if req.ParseResult != nil {
			input.ParseResult = marshalResult(c, req.ParseResult)
			if input.ParseResult == nil {
				return
			}
		}
	}

	if err := h.fileService.UpdateStatus(c.Request.Context(), id, input); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func marshalResult(c *gin.Context, m map[string]any) []byte {
	data, err := json.Marshal(m)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "result field is not serializable")
		return nil
	}
	return data
}

// Delete handles DELETE /api/v1/files/:id
// @Summary Delete a stored file and its metadata
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} APIResponse "File deleted"
// @Failure 404 {object} APIResponse "File not found"
// @Router /files/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.fileService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
