package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"contractapi/internal/http/middleware"
	"contractapi/internal/messaging"
	"contractapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// dataPayload wraps successful single-resource responses.
type dataPayload struct {
	Data any `json:"data"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

type errorMapping struct {
	target error
	status int
	code   string
}

// serviceErrors maps service sentinels to responses. The sentinel text is safe to expose.
var serviceErrors = []errorMapping{
	{service.ErrIDRequired, fiber.StatusBadRequest, "ID_REQUIRED"},
	{service.ErrReaderNil, fiber.StatusBadRequest, "FILE_REQUIRED"},
	{service.ErrOwnerRequired, fiber.StatusBadRequest, "USER_REQUIRED"},
	{service.ErrUserRequired, fiber.StatusBadRequest, "USER_REQUIRED"},
	{service.ErrInvalidStatus, fiber.StatusBadRequest, "INVALID_STATUS"},
	{service.ErrUnknownNotificationType, fiber.StatusBadRequest, "INVALID_NOTIFICATION_TYPE"},
	{service.ErrEmailRequired, fiber.StatusBadRequest, "EMAIL_REQUIRED"},
	{service.ErrInvalidEmail, fiber.StatusBadRequest, "INVALID_EMAIL"},
	{service.ErrInvalidRole, fiber.StatusBadRequest, "INVALID_ROLE"},
	{service.ErrTitleRequired, fiber.StatusBadRequest, "TITLE_REQUIRED"},
	{messaging.ErrInvalidPhone, fiber.StatusBadRequest, "INVALID_PHONE"},
	{messaging.ErrMissingPhone, fiber.StatusBadRequest, "INVALID_PHONE"},
	{service.ErrFileNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrContractNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrNotificationNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrInvitationNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrReportNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrNotAContract, fiber.StatusConflict, "NOT_A_CONTRACT"},
	{service.ErrInvitationExpired, fiber.StatusConflict, "INVITATION_EXPIRED"},
	{service.ErrInvitationClosed, fiber.StatusBadRequest, "INVITATION_CLOSED"},
	{service.ErrSweepInProgress, fiber.StatusConflict, "SWEEP_IN_PROGRESS"},
}

// writeServiceError maps a service error to its response; anything unknown is a 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			return writeError(c, m.status, m.code, m.target.Error())
		}
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
