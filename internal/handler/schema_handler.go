package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumehub/internal/schema"
)

// SchemaHandler exposes the read-only field-group registry.
type SchemaHandler struct {
	reg *schema.Registry
}

// NewSchemaHandler creates a new SchemaHandler.
func NewSchemaHandler(reg *schema.Registry) *SchemaHandler {
	return &SchemaHandler{reg: reg}
}

// Groups handles GET /api/v1/schema/groups
// @Summary List field groups in display order
// @Tags schema
// @Produce json
// @Success 200 {object} APIResponse "Ordered field groups with display metadata"
// @Router /schema/groups [get]
func (h *SchemaHandler) Groups(c *gin.Context) {
	RespondOK(c, h.reg.Groups())
}

// GroupFields handles GET /api/v1/schema/groups/:key/fields
// @Summary List one group's field descriptors in display order
// @Tags schema
// @Produce json
// @Param key path string true "Group key"
// @Success 200 {object} APIResponse "Ordered field descriptors"
// @Failure 404 {object} APIResponse "Unknown group"
// @Router /schema/groups/{key}/fields [get]
func (h *SchemaHandler) GroupFields(c *gin.Context) {
	fields, ok := h.reg.GroupFields(c.Param("key"))
	if !ok {
		RespondError(c, http.StatusNotFound, "GROUP_NOT_FOUND", "unknown field group")
		return
	}
	RespondOK(c, fields)
}
