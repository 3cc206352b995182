package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/common"
	workspacedto "github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/workspace"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/workspace"
)

// TeamMemberHandler exposes team member CRUD endpoints
type TeamMemberHandler struct {
	workspace *workspace.Service
	logger    *zap.Logger
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(ws *workspace.Service, logger *zap.Logger) *TeamMemberHandler {
	return &TeamMemberHandler{workspace: ws, logger: logger}
}

// Create adds a team member
// POST /v1/team-members
func (h *TeamMemberHandler) Create(c echo.Context) error {
	var req workspacedto.CreateTeamMemberRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	member, err := h.workspace.CreateTeamMember(c.Request().Context(), req.Name, req.Email, req.Role)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, member)
}

// Update applies a partial update to a team member
// PUT /v1/team-members/:id
func (h *TeamMemberHandler) Update(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	var req workspacedto.UpdateTeamMemberRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	member, err := h.workspace.UpdateTeamMember(c.Request().Context(), id, req.Name, req.Email, req.Role, req.IsActive)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, member)
}

// Delete deactivates a team member
// DELETE /v1/team-members/:id
func (h *TeamMemberHandler) Delete(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	if err := h.workspace.DeleteTeamMember(c.Request().Context(), id); err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, common.SuccessResponse{Message: "Team member removed"})
}

// List returns active team members
// GET /v1/team-members
func (h *TeamMemberHandler) List(c echo.Context) error {
	members, err := h.workspace.ListTeamMembers(c.Request().Context())
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, common.ListResponse{Data: members})
}
