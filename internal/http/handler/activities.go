package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"contractapi/internal/service"
)

// ListActivities godoc
// @Summary Recent activity feed, newest first
// @Tags activities
// @Produce json
// @Param limit query int false "Entries to return (default 10)"
// @Success 200 {object} dataPayload
// @Failure 400 {object} errorPayload
// @Router /api/activities [get]
func ListActivities(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		items, err := svc.Recent(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dataPayload{Data: items})
	}
}

// CleanupActivities godoc
// @Summary Trim the activity feed to the newest entries
// @Tags activities
// @Produce json
// @Param keep query int false "Entries to keep (default 100)"
// @Success 200 {object} map[string]int
// @Failure 400 {object} errorPayload
// @Router /api/activities/cleanup [post]
func CleanupActivities(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		keep, err := strconv.Atoi(c.Query("keep", strconv.Itoa(service.DefaultActivityRetain)))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_KEEP", "invalid keep")
		}
		n, err := svc.Cleanup(c.UserContext(), keep)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"deleted": n})
	}
}
