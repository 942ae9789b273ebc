package service

import "errors"

// Validation and lookup errors returned by the services. Handlers map them to
// HTTP status codes with errors.Is.
var (
	ErrIDRequired    = errors.New("id is required")
	ErrReaderNil     = errors.New("reader is nil")
	ErrOwnerRequired = errors.New("owner id is required")

	ErrFileNotFound     = errors.New("file not found")
	ErrContractNotFound = errors.New("contract not found")
	ErrNotAContract     = errors.New("document is not a contract")
	ErrInvalidStatus    = errors.New("invalid contract status")

	ErrUnknownNotificationType = errors.New("unknown or disabled notification type")
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrUserRequired            = errors.New("user id is required")

	ErrSweepInProgress = errors.New("expiry sweep already running")

	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrInvitationClosed   = errors.New("invitation is no longer pending")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidRole        = errors.New("invalid role")

	ErrReportNotFound = errors.New("report not found")
	ErrTitleRequired  = errors.New("title is required")
)
