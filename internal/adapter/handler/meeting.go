package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/errors"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/common"
	meetingdto "github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/meeting"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/presenter"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/repositories"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/assistant"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/meeting"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/transcription"
)

// maxUploadBytes bounds accepted file uploads (25 MB)
const maxUploadBytes = 25 << 20

// MeetingHandler exposes the transcript analysis endpoints
type MeetingHandler struct {
	meetings      *meeting.Service
	transcription *transcription.Service
	assistant     *assistant.Service
	logger        *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(
	meetings *meeting.Service,
	transcriptionSvc *transcription.Service,
	assistantSvc *assistant.Service,
	logger *zap.Logger,
) *MeetingHandler {
	return &MeetingHandler{
		meetings:      meetings,
		transcription: transcriptionSvc,
		assistant:     assistantSvc,
		logger:        logger,
	}
}

// Summarize analyzes a pasted transcript
// POST /v1/meetings/summarize
func (h *MeetingHandler) Summarize(c echo.Context) error {
	var req meetingdto.SummarizeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	input := meeting.SummarizeInput{
		Title:        req.Title,
		Transcript:   req.Transcript,
		ClientName:   req.ClientName,
		ProjectName:  req.ProjectName,
		TemplateName: req.TemplateName,
		Source:       entities.SourcePasted,
	}
	if req.TemplateID != "" {
		id, err := ParseUUIDQuery(req.TemplateID, "template_id")
		if err != nil {
			return RespondError(c, h.logger, err)
		}
		input.TemplateID = &id
	}

	out, err := h.meetings.Summarize(c.Request().Context(), input)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, h.summarizeResponse(out))
}

// Upload analyzes a transcript extracted from an uploaded file
// POST /v1/meetings/upload
func (h *MeetingHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return RespondError(c, h.logger, errors.ErrInvalidArgument("file is required"))
	}
	if fileHeader.Size > maxUploadBytes {
		return RespondError(c, h.logger, errors.ErrInvalidArgument("file exceeds the 25 MB limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return RespondError(c, h.logger, errors.ErrInternal(err))
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return RespondError(c, h.logger, errors.ErrInternal(err))
	}

	transcript, err := h.transcription.ExtractText(c.Request().Context(), fileHeader.Filename, data)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	source := entities.SourceUpload
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".mp3", ".wav", ".m4a":
		source = entities.SourceAudio
	}

	title := c.FormValue("title")
	if title == "" {
		title = strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	}

	out, err := h.meetings.Summarize(c.Request().Context(), meeting.SummarizeInput{
		Title:        title,
		Transcript:   transcript,
		ClientName:   c.FormValue("client_name"),
		ProjectName:  c.FormValue("project_name"),
		TemplateName: c.FormValue("template_name"),
		Source:       source,
	})
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, h.summarizeResponse(out))
}

// List returns stored meetings, newest first
// GET /v1/meetings
func (h *MeetingHandler) List(c echo.Context) error {
	limit, offset := ParsePagination(c)

	filters := repositories.MeetingFilters{Limit: limit, Offset: offset}
	if raw := c.QueryParam("project_id"); raw != "" {
		id, err := ParseUUIDQuery(raw, "project_id")
		if err != nil {
			return RespondError(c, h.logger, err)
		}
		filters.ProjectID = &id
	}
	if raw := c.QueryParam("source"); raw != "" {
		source := entities.MeetingSource(raw)
		filters.Source = &source
	}

	meetings, total, err := h.meetings.List(c.Request().Context(), filters)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, common.ListResponse{
		Data: presenter.ToMeetingList(meetings),
		Pagination: &common.PaginationResponse{
			Limit:      limit,
			Offset:     offset,
			TotalItems: total,
		},
	})
}

// Get returns one stored meeting with its full analysis
// GET /v1/meetings/:id
func (h *MeetingHandler) Get(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	record, err := h.meetings.Get(c.Request().Context(), id)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(record, true))
}

// Delete removes a stored meeting
// DELETE /v1/meetings/:id
func (h *MeetingHandler) Delete(c echo.Context) error {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	if err := h.meetings.Delete(c.Request().Context(), id); err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, common.SuccessResponse{Message: "Meeting deleted"})
}

// Assistant answers a question about stored meetings and tasks
// POST /v1/assistant
func (h *MeetingHandler) Assistant(c echo.Context) error {
	var req meetingdto.AssistantRequest
	if err := BindAndValidate(c, &req); err != nil {
		return RespondError(c, h.logger, err)
	}

	answer, err := h.assistant.Ask(c.Request().Context(), req.Question)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, meetingdto.AssistantResponse{Answer: answer})
}

func (h *MeetingHandler) summarizeResponse(out *meeting.SummarizeOutput) meetingdto.SummarizeResponse {
	resp := meetingdto.SummarizeResponse{
		MeetingID:    out.Meeting.ID.String(),
		Result:       out.Result,
		Tasks:        presenter.ToTaskRefs(out.Tasks),
		UsedFallback: out.Result.UsedFallback,
	}
	if out.Project != nil {
		resp.ProjectID = out.Project.ID.String()
	}
	return resp
}
