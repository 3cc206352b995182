package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/common"
	workspacedto "github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/workspace"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/repositories"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/workspace"
)

// TaskHandler exposes task CRUD endpoints
type TaskHandler struct {
	workspace *workspace.Service
	logger    *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(ws *workspace.Service, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{workspace: ws, logger: logger}
}

// Create creates a task manually
// POST /v1/tasks
func (h *TaskHandler) Create(c echo.Context) error {
	var req workspacedto.CreateTaskRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	var projectID *uuid.UUID
	if req.ProjectID != nil {
		id, err := ParseUUIDQuery(*req.ProjectID, "project_id")
		if err != nil {
			return RespondError(c, h.logger, err)
		}
		projectID = &id
	}

	task, err := h.workspace.CreateTask(c.Request().Context(), req.Description, req.Assignee, req.Priority, projectID)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, task)
}

// Update applies a partial update to a task
// PUT /v1/tasks/:id
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	var req workspacedto.UpdateTaskRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	task, err := h.workspace.UpdateTask(c.Request().Context(), id, req.Description, req.Assignee, req.Deadline, req.Priority, req.Status)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, task)
}

// Delete removes a task
// DELETE /v1/tasks/:id
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	if err := h.workspace.DeleteTask(c.Request().Context(), id); err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, common.SuccessResponse{Message: "Task deleted"})
}

// List returns tasks with optional filters
// GET /v1/tasks
func (h *TaskHandler) List(c echo.Context) error {
	limit, offset := ParsePagination(c)

	filters := repositories.TaskFilters{
		Assignee: c.QueryParam("assignee"),
		Limit:    limit,
		Offset:   offset,
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entities.TaskStatus(raw)
		filters.Status = &status
	}
	if raw := c.QueryParam("priority"); raw != "" {
		priority := entities.TaskPriority(raw)
		filters.Priority = &priority
	}
	if raw := c.QueryParam("project_id"); raw != "" {
		id, err := ParseUUIDQuery(raw, "project_id")
		if err != nil {
			return RespondError(c, h.logger, err)
		}
		filters.ProjectID = &id
	}
	if raw := c.QueryParam("meeting_id"); raw != "" {
		id, err := ParseUUIDQuery(raw, "meeting_id")
		if err != nil {
			return RespondError(c, h.logger, err)
		}
		filters.MeetingID = &id
	}

	tasks, total, err := h.workspace.ListTasks(c.Request().Context(), filters)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, common.ListResponse{
		Data: tasks,
		Pagination: &common.PaginationResponse{
			Limit:      limit,
			Offset:     offset,
			TotalItems: total,
		},
	})
}
