package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumehub/internal/service"
)

// ProjectHandler handles project CRUD endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create handles POST /api/v1/projects
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Success 201 {object} APIResponse "Created project"
// @Failure 400 {object} APIResponse "Empty name"
// @Failure 409 {object} APIResponse "Duplicate name"
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "name is required")
		return
	}
	project, err := h.projectService.Create(c.Request.Context(), service.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, project)
}

// List handles GET /api/v1/projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {object} APIResponse "Projects with live file counts"
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, projects)
}

// Get handles GET /api/v1/projects/:id
// @Summary Get one project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} APIResponse "Project"
// @Failure 404 {object} APIResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, project)
}

// Delete handles DELETE /api/v1/projects/:id
// @Summary Delete a project and all its files
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} APIResponse "Project deleted"
// @Failure 404 {object} APIResponse "Project not found"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
