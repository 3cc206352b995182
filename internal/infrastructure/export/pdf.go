package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// PDFExporter renders a meeting report as a PDF document
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export renders the meeting and its analysis into a PDF report
func (e *PDFExporter) Export(meeting *entities.MeetingSummary) ([]byte, error) {
	result, err := meeting.Analysis()
	if err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Meeting Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "Meeting Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, meeting.Title, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, meeting.CreatedAt.Format("January 2, 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	e.section(pdf, "Summary")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, result.Summary, "", "L", false)
	pdf.Ln(2)

	e.section(pdf, "Meeting Mood")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, result.Mood.Overall, "", 1, "L", false, 0, "")
	if result.Mood.Justification != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 5, result.Mood.Justification, "", "L", false)
	}
	pdf.Ln(2)

	if len(result.Participants) > 0 {
		e.section(pdf, "Participants")
		pdf.SetFont("Arial", "", 11)
		for _, p := range result.Participants {
			pdf.CellFormat(0, 6, "- "+p, "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	if len(result.ActionItems) > 0 {
		e.section(pdf, "Action Items")
		for i, item := range result.ActionItems {
			pdf.SetFont("Arial", "B", 11)
			pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, item.Task), "", "L", false)
			pdf.SetFont("Arial", "", 10)
			line := fmt.Sprintf("Assignee: %s    Priority: %s", item.Assignee, item.Priority)
			if item.Deadline != "" {
				line += "    Deadline: " + item.Deadline
			}
			pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
			pdf.Ln(1)
		}
		pdf.Ln(2)
	}

	if len(result.KeyDecisions) > 0 {
		e.section(pdf, "Key Decisions")
		pdf.SetFont("Arial", "", 11)
		for _, d := range result.KeyDecisions {
			pdf.MultiCell(0, 6, "- "+d, "", "L", false)
		}
		pdf.Ln(2)
	}

	if len(result.NextSteps) > 0 {
		e.section(pdf, "Next Steps")
		pdf.SetFont("Arial", "", 11)
		for _, s := range result.NextSteps {
			pdf.MultiCell(0, 6, "- "+s, "", "L", false)
		}
		pdf.Ln(2)
	}

	if len(result.Remarks) > 0 {
		e.section(pdf, "Remarks")
		pdf.SetFont("Arial", "", 11)
		for _, r := range result.Remarks {
			pdf.MultiCell(0, 6, fmt.Sprintf("%s (to %s): %s", r.Person, r.GivenTo, r.Remark), "", "L", false)
		}
		pdf.Ln(2)
	}

	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 5, "Generated "+time.Now().Format(time.RFC1123), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
	pdf.Ln(1)
}
