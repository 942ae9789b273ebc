package handler

import (
	"github.com/gofiber/fiber/v2"

	"contractapi/internal/service"
)

type assignRequest struct {
	ManagerIDs []string `json:"managerIds"`
	FileID     string   `json:"fileId"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// ListContracts godoc
// @Summary List contracts
// @Tags contracts
// @Produce json
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} service.ContractListResult
// @Failure 400 {object} errorPayload
// @Router /api/contracts [get]
func ListContracts(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return nil
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ContractStatuses godoc
// @Summary List the allowed contract statuses
// @Tags contracts
// @Produce json
// @Success 200 {object} dataPayload
// @Router /api/contracts/statuses [get]
func ContractStatuses(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		statuses, err := svc.Statuses(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dataPayload{Data: statuses})
	}
}

// GetContract godoc
// @Summary Get a contract
// @Tags contracts
// @Produce json
// @Param id path string true "Contract id"
// @Success 200 {object} model.Contract
// @Failure 404 {object} errorPayload
// @Router /api/contracts/{id} [get]
func GetContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ct, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(ct)
	}
}

// AssignContract godoc
// @Summary Assign managers to a contract
// @Description The path id is tried as a contract id first, then fileId is used to find the contract created from that file.
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param X-User-ID header string false "Acting user id"
// @Param X-User-Name header string false "Acting user name"
// @Param body body assignRequest true "Managers"
// @Success 200 {object} dataPayload
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/contracts/{id}/assign [patch]
func AssignContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req assignRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.Assign(c.UserContext(), c.Params("id"), req.ManagerIDs, req.FileID, actorFrom(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dataPayload{Data: res})
	}
}

// UpdateContractStatus godoc
// @Summary Change a contract's status
// @Description Renewing a contract notifies the owner of the source file.
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract id"
// @Param body body statusRequest true "New status"
// @Success 200 {object} dataPayload
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/contracts/{id}/status [patch]
func UpdateContractStatus(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req statusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.UpdateStatus(c.UserContext(), c.Params("id"), req.Status, actorFrom(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dataPayload{Data: res})
	}
}

// CheckExpirations godoc
// @Summary Run the expiry reminder sweep
// @Tags contracts
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 409 {object} errorPayload
// @Router /api/contracts/expirations/check [post]
func CheckExpirations(sweep service.ExpirySweep) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := sweep.Run(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"created": n})
	}
}
