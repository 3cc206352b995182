package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/errors"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/infrastructure/export"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/meeting"
)

// ExportHandler renders stored meetings as downloadable reports
type ExportHandler struct {
	meetings *meeting.Service
	pdf      *export.PDFExporter
	excel    *export.ExcelExporter
	logger   *zap.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(meetings *meeting.Service, pdf *export.PDFExporter, excel *export.ExcelExporter, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		meetings: meetings,
		pdf:      pdf,
		excel:    excel,
		logger:   logger,
	}
}

// PDF downloads a meeting report as PDF
// GET /v1/meetings/:id/export/pdf
func (h *ExportHandler) PDF(c echo.Context) error {
	record, err := h.load(c)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	data, err := h.pdf.Export(record)
	if err != nil {
		return RespondError(c, h.logger, errors.ErrExportFailed("pdf", err))
	}

	h.attachment(c, record.ID.String()+".pdf")
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// Excel downloads a meeting report as an XLSX workbook
// GET /v1/meetings/:id/export/excel
func (h *ExportHandler) Excel(c echo.Context) error {
	record, err := h.load(c)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	data, err := h.excel.Export(record)
	if err != nil {
		return RespondError(c, h.logger, errors.ErrExportFailed("excel", err))
	}

	h.attachment(c, record.ID.String()+".xlsx")
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *ExportHandler) load(c echo.Context) (*entities.MeetingSummary, error) {
	id, err := ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	return h.meetings.Get(c.Request().Context(), id)
}

func (h *ExportHandler) attachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
