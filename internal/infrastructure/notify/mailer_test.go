package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/config"
)

func TestNewMailerWithoutConfig(t *testing.T) {
	assert.Nil(t, NewMailer(nil, zap.NewNop()))
	assert.Nil(t, NewMailer(&config.MailConfig{}, zap.NewNop()))
	assert.Nil(t, NewMailer(&config.MailConfig{Host: "smtp.example.com"}, zap.NewNop()))
}

func TestNilMailerSendIsNoop(t *testing.T) {
	var m *Mailer
	assert.NotPanics(t, func() {
		m.SendTaskAlert(TaskAlert{Task: "Ship the release"})
	})
}

func TestBuildBodyDefaults(t *testing.T) {
	m := NewMailer(&config.MailConfig{
		Host:       "smtp.example.com",
		Recipients: []string{"lead@example.com"},
	}, zap.NewNop())
	require.NotNil(t, m)

	body := m.buildBody(TaskAlert{
		Task:     "Finish the migration",
		Assignee: "Sarah",
		Deadline: "Friday",
		Summary:  "Sprint planning covered the migration work.",
	}, "Internal", "General")

	assert.Contains(t, body, "Client:   Internal")
	assert.Contains(t, body, "Project:  General")
	assert.Contains(t, body, "Task:     Finish the migration")
	assert.Contains(t, body, "Deadline: Friday")
	assert.Contains(t, body, "Meeting summary:")
}
