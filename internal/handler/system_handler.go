package handler

import (
	"github.com/gin-gonic/gin"

	"resumehub/internal/service"
)

// SystemHandler reports storage statistics.
type SystemHandler struct {
	systemService service.SystemService
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(systemService service.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// Info handles GET /api/v1/system/info
// @Summary Get file, project and disk usage statistics
// @Tags system
// @Produce json
// @Success 200 {object} APIResponse "System statistics"
// @Router /system/info [get]
func (h *SystemHandler) Info(c *gin.Context) {
	info, err := h.systemService.Info(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, info)
}
