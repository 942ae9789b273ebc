package handler

import (
	"github.com/gofiber/fiber/v2"

	"contractapi/internal/service"
)

// CreateInvitation godoc
// @Summary Invite an email address to an organization
// @Description The invitation email is best effort; its outcome is reported in sideEffects.
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body service.NewInvitation true "Invitation"
// @Success 201 {object} dataPayload
// @Failure 400 {object} errorPayload
// @Router /api/invitations [post]
func CreateInvitation(svc service.InvitationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.NewInvitation
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.InvitedBy == "" {
			req.InvitedBy = c.Get(UserNameHeader)
		}
		res, err := svc.Create(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dataPayload{Data: res})
	}
}

// ResendInvitation godoc
// @Summary Resend a pending invitation
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} dataPayload
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/invitations/{token}/resend [patch]
func ResendInvitation(svc service.InvitationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inv, err := svc.Resend(c.UserContext(), c.Params("token"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dataPayload{Data: inv})
	}
}

// RevokeInvitation godoc
// @Summary Revoke a pending invitation
// @Tags invitations
// @Param token path string true "Invitation token"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/invitations/{token}/revoke [patch]
func RevokeInvitation(svc service.InvitationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Revoke(c.UserContext(), c.Params("token")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AcceptInvitation godoc
// @Summary Accept an invitation and create the user
// @Tags invitations
// @Accept json
// @Produce json
// @Param token path string true "Invitation token"
// @Param body body service.AcceptInvitation true "Accepting user"
// @Success 201 {object} dataPayload
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/invitations/{token}/accept [post]
func AcceptInvitation(svc service.InvitationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.AcceptInvitation
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.UserID == "" {
			req.UserID = c.Get(UserIDHeader)
		}
		u, err := svc.Accept(c.UserContext(), c.Params("token"), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dataPayload{Data: u})
	}
}
