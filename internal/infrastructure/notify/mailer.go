package notify

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/config"
)

// Mailer sends email alerts when a meeting produces a high priority task.
// A nil Mailer or one without SMTP configuration drops alerts silently,
// notification is best effort and never blocks the analysis flow.
type Mailer struct {
	cfg    *config.MailConfig
	logger *zap.Logger
}

// NewMailer creates a mailer. Returns nil when SMTP is not configured.
func NewMailer(cfg *config.MailConfig, logger *zap.Logger) *Mailer {
	if cfg == nil || cfg.Host == "" || len(cfg.Recipients) == 0 {
		if logger != nil {
			logger.Info("⚠️ SMTP not configured, task alerts disabled")
		}
		return nil
	}
	return &Mailer{cfg: cfg, logger: logger}
}

// TaskAlert carries the details of a high priority assignment
type TaskAlert struct {
	ClientName  string
	ProjectName string
	Task        string
	Assignee    string
	Deadline    string
	Summary     string
}

// SendTaskAlert emails the configured recipients about a high priority
// task. Errors are logged, not returned, so a broken SMTP relay cannot
// fail a summarize request.
func (m *Mailer) SendTaskAlert(alert TaskAlert) {
	if m == nil {
		return
	}

	client := alert.ClientName
	if client == "" {
		client = "Internal"
	}
	project := alert.ProjectName
	if project == "" {
		project = "General"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.Recipients...)
	msg.SetHeader("Subject", fmt.Sprintf("HIGH PRIORITY TASK ALERT - %s | %s", client, project))
	msg.SetBody("text/plain", m.buildBody(alert, client, project))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		if m.logger != nil {
			m.logger.Error("❌ Failed to send task alert",
				zap.String("task", alert.Task),
				zap.Error(err))
		}
		return
	}

	if m.logger != nil {
		m.logger.Info("📤 High priority task alert sent",
			zap.String("assignee", alert.Assignee),
			zap.Int("recipients", len(m.cfg.Recipients)))
	}
}

func (m *Mailer) buildBody(alert TaskAlert, client, project string) string {
	var b strings.Builder
	b.WriteString("A high priority task was identified during meeting analysis.\n\n")
	fmt.Fprintf(&b, "Client:   %s\n", client)
	fmt.Fprintf(&b, "Project:  %s\n", project)
	fmt.Fprintf(&b, "Task:     %s\n", alert.Task)
	fmt.Fprintf(&b, "Assignee: %s\n", alert.Assignee)
	if alert.Deadline != "" {
		fmt.Fprintf(&b, "Deadline: %s\n", alert.Deadline)
	}
	if alert.Summary != "" {
		b.WriteString("\nMeeting summary:\n")
		b.WriteString(alert.Summary)
		b.WriteString("\n")
	}
	return b.String()
}
