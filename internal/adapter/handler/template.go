package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/common"
	workspacedto "github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/workspace"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/workspace"
)

// TemplateHandler exposes meeting template CRUD endpoints
type TemplateHandler struct {
	workspace *workspace.Service
	logger    *zap.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(ws *workspace.Service, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{workspace: ws, logger: logger}
}

// Create adds a meeting template
// POST /v1/templates
func (h *TemplateHandler) Create(c echo.Context) error {
	var req workspacedto.CreateTemplateRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	template, err := h.workspace.CreateTemplate(c.Request().Context(), req.Name, req.TemplateType, req.Description, req.DefaultPrompt)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, template)
}

// Get returns a template by id
// GET /v1/templates/:id
func (h *TemplateHandler) Get(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	template, err := h.workspace.GetTemplate(c.Request().Context(), id)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, template)
}

// Update applies a partial update to a template
// PUT /v1/templates/:id
func (h *TemplateHandler) Update(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	var req workspacedto.UpdateTemplateRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	template, err := h.workspace.UpdateTemplate(c.Request().Context(), id, req.Name, req.TemplateType, req.Description, req.DefaultPrompt, req.IsActive)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, template)
}

// Delete deactivates a template
// DELETE /v1/templates/:id
func (h *TemplateHandler) Delete(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	if err := h.workspace.DeleteTemplate(c.Request().Context(), id); err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, common.SuccessResponse{Message: "Template removed"})
}

// List returns active templates
// GET /v1/templates
func (h *TemplateHandler) List(c echo.Context) error {
	templates, err := h.workspace.ListTemplates(c.Request().Context())
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, common.ListResponse{Data: templates})
}
