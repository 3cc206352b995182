package presenter

import (
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/meeting"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// ToMeetingResponse maps a stored meeting to its API shape. includeResult
// controls whether the full analysis payload is attached, list views
// omit it to keep responses small.
func ToMeetingResponse(m *entities.MeetingSummary, includeResult bool) meeting.MeetingResponse {
	resp := meeting.MeetingResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		Source:       string(m.Source),
		UsedFallback: m.UsedFallback,
		CreatedAt:    m.CreatedAt,
	}
	if m.ProjectID != nil {
		resp.ProjectID = m.ProjectID.String()
	}
	if m.Project != nil {
		resp.ProjectName = m.Project.Name
	}
	if includeResult {
		if result, err := m.Analysis(); err == nil {
			resp.Result = result
		}
	}
	return resp
}

// ToMeetingList maps stored meetings for list views
func ToMeetingList(meetings []*entities.MeetingSummary) []meeting.MeetingResponse {
	out := make([]meeting.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m, false))
	}
	return out
}

// ToTaskRefs maps created tasks to their summary references
func ToTaskRefs(tasks []*entities.TaskAssignment) []meeting.TaskRef {
	refs := make([]meeting.TaskRef, 0, len(tasks))
	for _, t := range tasks {
		refs = append(refs, meeting.TaskRef{
			ID:          t.ID.String(),
			Description: t.Description,
			Assignee:    t.Assignee,
			Priority:    string(t.Priority),
			Deadline:    t.Deadline,
		})
	}
	return refs
}
