package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contractapi/internal/service"
)

// Identity headers set by the gateway in front of the API.
const (
	UserIDHeader   = "X-User-ID"
	UserNameHeader = "X-User-Name"
)

// pageParams reads limit and offset. Bounds are applied by the services.
// When ok is false the error response has already been written.
func pageParams(c *fiber.Ctx) (limit, offset int, ok bool) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		return 0, 0, false
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		return 0, 0, false
	}
	return limit, offset, true
}

func actorFrom(c *fiber.Ctx) service.Actor {
	return service.Actor{UserID: c.Get(UserIDHeader), UserName: c.Get(UserNameHeader)}
}

// splitList splits a comma-separated form value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// validID rejects requests whose route param is not a UUID.
func validID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := uuid.Parse(c.Params(param)); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		return c.Next()
	}
}
