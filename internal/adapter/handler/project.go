package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/common"
	workspacedto "github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/workspace"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/workspace"
)

// ProjectHandler exposes project CRUD endpoints
type ProjectHandler struct {
	workspace *workspace.Service
	logger    *zap.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(ws *workspace.Service, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{workspace: ws, logger: logger}
}

// Create creates a project
// POST /v1/projects
func (h *ProjectHandler) Create(c echo.Context) error {
	var req workspacedto.CreateProjectRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	project, err := h.workspace.CreateProject(c.Request().Context(), req.Name, req.Description, req.ClientName, req.Status)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, project)
}

// Get returns a project by id
// GET /v1/projects/:id
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	project, err := h.workspace.GetProject(c.Request().Context(), id)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, project)
}

// Update applies a partial update to a project
// PUT /v1/projects/:id
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	var req workspacedto.UpdateProjectRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	project, err := h.workspace.UpdateProject(c.Request().Context(), id, req.Name, req.Description, req.ClientName, req.Status)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, project)
}

// Delete removes a project
// DELETE /v1/projects/:id
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	if err := h.workspace.DeleteProject(c.Request().Context(), id); err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, common.SuccessResponse{Message: "Project deleted"})
}

// List returns projects, newest first
// GET /v1/projects
func (h *ProjectHandler) List(c echo.Context) error {
	limit, offset := ParsePagination(c)

	projects, total, err := h.workspace.ListProjects(c.Request().Context(), limit, offset)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, common.ListResponse{
		Data: projects,
		Pagination: &common.PaginationResponse{
			Limit:      limit,
			Offset:     offset,
			TotalItems: total,
		},
	})
}
