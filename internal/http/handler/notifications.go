package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"contractapi/internal/model"
	"contractapi/internal/service"
)

type settingsRequest struct {
	EmailEnabled      *bool    `json:"emailEnabled"`
	PushEnabled       *bool    `json:"pushEnabled"`
	PhoneNumber       *string  `json:"phoneNumber"`
	NotificationTypes []string `json:"notificationTypes"`
	Frequency         string   `json:"frequency"`
}

// CreateNotification godoc
// @Summary Create a notification
// @Description The type must be enabled in the registry. SMS and event fan-out are best effort.
// @Tags notifications
// @Accept json
// @Produce json
// @Param body body service.NewNotification true "Notification"
// @Success 201 {object} dataPayload
// @Failure 400 {object} errorPayload
// @Router /api/notifications [post]
func CreateNotification(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.NewNotification
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.Notify(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dataPayload{Data: res})
	}
}

// ListUserNotifications godoc
// @Summary List a user's notifications, newest first
// @Tags notifications
// @Produce json
// @Param userId path string true "User id"
// @Param unread query bool false "Only unread"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} service.NotificationListResult
// @Failure 400 {object} errorPayload
// @Router /api/users/{userId}/notifications [get]
func ListUserNotifications(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return nil
		}
		unread := false
		if v := c.Query("unread"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_UNREAD", "invalid unread flag")
			}
			unread = b
		}
		res, err := svc.ListForUser(c.UserContext(), c.Params("userId"), unread, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// UnreadCount godoc
// @Summary Count a user's unread notifications
// @Tags notifications
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} map[string]int
// @Router /api/users/{userId}/notifications/unread-count [get]
func UnreadCount(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.UnreadCount(c.UserContext(), c.Params("userId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"count": n})
	}
}

// MarkNotificationRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Param id path string true "Notification id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/notifications/{id}/read [patch]
func MarkNotificationRead(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.MarkRead(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MarkNotificationUnread godoc
// @Summary Mark a notification unread
// @Tags notifications
// @Param id path string true "Notification id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/notifications/{id}/unread [patch]
func MarkNotificationUnread(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.MarkUnread(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags notifications
// @Param id path string true "Notification id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/notifications/{id} [delete]
func DeleteNotification(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetNotificationSettings godoc
// @Summary Get a user's notification settings
// @Description Users without stored settings get the defaults.
// @Tags notifications
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} model.NotificationSettings
// @Router /api/users/{userId}/notification-settings [get]
func GetNotificationSettings(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.GetSettings(c.UserContext(), c.Params("userId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// UpdateNotificationSettings godoc
// @Summary Replace a user's notification settings
// @Description Omitted flags keep their defaults. The phone number is normalized to E.164.
// @Tags notifications
// @Accept json
// @Produce json
// @Param userId path string true "User id"
// @Param body body settingsRequest true "Settings"
// @Success 200 {object} model.NotificationSettings
// @Failure 400 {object} errorPayload
// @Router /api/users/{userId}/notification-settings [put]
func UpdateNotificationSettings(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req settingsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		st := &model.NotificationSettings{
			UserID:            c.Params("userId"),
			EmailEnabled:      true,
			PhoneNumber:       req.PhoneNumber,
			NotificationTypes: req.NotificationTypes,
			Frequency:         req.Frequency,
		}
		if req.EmailEnabled != nil {
			st.EmailEnabled = *req.EmailEnabled
		}
		if req.PushEnabled != nil {
			st.PushEnabled = *req.PushEnabled
		}
		saved, err := svc.UpsertSettings(c.UserContext(), st)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(saved)
	}
}
