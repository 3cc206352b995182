package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
)

// Seed inserts default team members and meeting templates when the
// tables are empty so a fresh deployment is immediately usable.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	var memberCount int64
	if err := db.Model(&entities.TeamMember{}).Count(&memberCount).Error; err != nil {
		return err
	}
	if memberCount == 0 {
		members := []*entities.TeamMember{
			entities.NewTeamMember("Sarah Johnson", "sarah.johnson@company.com", "Project Manager"),
			entities.NewTeamMember("Mike Chen", "mike.chen@company.com", "Senior Developer"),
			entities.NewTeamMember("Lisa Martinez", "lisa.martinez@company.com", "UX Designer"),
			entities.NewTeamMember("David Brown", "david.brown@company.com", "Business Analyst"),
			entities.NewTeamMember("Emma Wilson", "emma.wilson@company.com", "QA Engineer"),
		}
		if err := db.Create(&members).Error; err != nil {
			return err
		}
		if logger != nil {
			logger.Info("✅ Created default team members", zap.Int("count", len(members)))
		}
	}

	var templateCount int64
	if err := db.Model(&entities.MeetingTemplate{}).Count(&templateCount).Error; err != nil {
		return err
	}
	if templateCount == 0 {
		templates := []*entities.MeetingTemplate{
			entities.NewMeetingTemplate(
				"Sales Call", "sales",
				"Template for sales meetings and client calls",
				"Focus on sales objectives, client needs, objections, and next steps. Prioritize deal progression and relationship building.",
			),
			entities.NewMeetingTemplate(
				"Project Review", "project",
				"Template for project status and milestone reviews",
				"Emphasize project progress, timeline adherence, resource allocation, and risk mitigation. Focus on deliverables and deadlines.",
			),
			entities.NewMeetingTemplate(
				"Client Meeting", "client",
				"Template for client-facing meetings and presentations",
				"Highlight client satisfaction, requirements gathering, feedback collection, and service delivery. Focus on client value and expectations.",
			),
			entities.NewMeetingTemplate(
				"Internal Team", "internal",
				"Template for internal team meetings and standups",
				"Focus on team coordination, task assignments, blockers, and collaboration. Emphasize productivity and team dynamics.",
			),
		}
		if err := db.Create(&templates).Error; err != nil {
			return err
		}
		if logger != nil {
			logger.Info("✅ Created default meeting templates", zap.Int("count", len(templates)))
		}
	}

	return nil
}
