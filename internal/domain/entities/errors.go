package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidToken      = errors.New("invalid token")

	// Resource errors
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAlreadyExists = errors.New("project already exists")
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrTeamMemberNotFound   = errors.New("team member not found")
	ErrTemplateNotFound     = errors.New("template not found")

	// Input errors
	ErrEmptyTranscript    = errors.New("transcript is empty")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrTranscriptTooLarge = errors.New("transcript exceeds maximum length")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
