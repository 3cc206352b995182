package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// ExcelExporter renders a meeting report as an XLSX workbook
type ExcelExporter struct{}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export renders the meeting and its analysis into a workbook with an
// overview sheet and an action item sheet.
func (e *ExcelExporter) Export(meeting *entities.MeetingSummary) ([]byte, error) {
	result, err := meeting.Analysis()
	if err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const overview = "Overview"
	if err := f.SetSheetName("Sheet1", overview); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	row := 1
	setRow := func(label, value string) {
		_ = f.SetCellValue(overview, fmt.Sprintf("A%d", row), label)
		_ = f.SetCellValue(overview, fmt.Sprintf("B%d", row), value)
		row++
	}

	_ = f.SetCellStyle(overview, "A1", "B1", headerStyle)
	setRow("Meeting Report", meeting.Title)
	setRow("Date", meeting.CreatedAt.Format("2006-01-02 15:04"))
	setRow("Source", string(meeting.Source))
	setRow("Summary", result.Summary)
	setRow("Mood", result.Mood.Overall)
	if result.Mood.Justification != "" {
		setRow("Mood Justification", result.Mood.Justification)
	}
	row++

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		cell := fmt.Sprintf("A%d", row)
		_ = f.SetCellValue(overview, cell, title)
		_ = f.SetCellStyle(overview, cell, cell, headerStyle)
		row++
		for _, item := range items {
			_ = f.SetCellValue(overview, fmt.Sprintf("A%d", row), item)
			row++
		}
		row++
	}

	writeList("Participants", result.Participants)
	writeList("Key Decisions", result.KeyDecisions)
	writeList("Next Steps", result.NextSteps)

	_ = f.SetColWidth(overview, "A", "A", 24)
	_ = f.SetColWidth(overview, "B", "B", 80)

	const actions = "Action Items"
	if _, err := f.NewSheet(actions); err != nil {
		return nil, err
	}
	headers := []string{"#", "Task", "Assignee", "Assigned By", "Priority", "Deadline", "Confidence"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(actions, cell, h)
		_ = f.SetCellStyle(actions, cell, cell, headerStyle)
	}
	for i, item := range result.ActionItems {
		values := []interface{}{i + 1, item.Task, item.Assignee, item.AssignedBy, item.Priority, item.Deadline, string(item.Confidence)}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(actions, cell, v)
		}
	}
	_ = f.SetColWidth(actions, "B", "B", 60)
	_ = f.SetColWidth(actions, "C", "G", 16)

	if len(result.Remarks) > 0 {
		const remarks = "Remarks"
		if _, err := f.NewSheet(remarks); err != nil {
			return nil, err
		}
		for i, h := range []string{"Person", "Remark", "Given To"} {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(remarks, cell, h)
			_ = f.SetCellStyle(remarks, cell, cell, headerStyle)
		}
		for i, r := range result.Remarks {
			_ = f.SetCellValue(remarks, fmt.Sprintf("A%d", i+2), r.Person)
			_ = f.SetCellValue(remarks, fmt.Sprintf("B%d", i+2), r.Remark)
			_ = f.SetCellValue(remarks, fmt.Sprintf("C%d", i+2), r.GivenTo)
		}
		_ = f.SetColWidth(remarks, "B", "B", 60)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
