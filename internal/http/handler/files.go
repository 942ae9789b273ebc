package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"contractapi/internal/metadata"
	"contractapi/internal/model"
	"contractapi/internal/service"
)

// uploadResponse is the body of a successful upload.
type uploadResponse struct {
	URL         string            `json:"url"`
	File        *model.File       `json:"file"`
	Contract    *model.Contract   `json:"contract,omitempty"`
	Revalidate  string            `json:"revalidate,omitempty"`
	SideEffects []service.Outcome `json:"sideEffects"`
}

// contractFields are the optional multipart fields that describe a contract.
var contractFields = []string{"contractName", "contractType", "expiryDate", "amount", "vendor",
	"contractNumber", "priority", "compliance", "description", "managerIds", "contractDepartment"}

// UploadFile godoc
// @Summary Upload a file
// @Description Stores the blob and file record. Files named like a contract, or sent with contract fields, also get a contract record.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Param userId formData string true "Owner user id"
// @Param accountId formData string false "Account id"
// @Param department formData string false "Uploader department"
// @Param path formData string false "Client path to revalidate"
// @Param contractName formData string false "Contract name"
// @Param contractType formData string false "Contract type label"
// @Param expiryDate formData string false "Expiry date (YYYY-MM-DD or RFC 3339)"
// @Param amount formData number false "Contract amount"
// @Param managerIds formData string false "Comma-separated manager user ids"
// @Success 201 {object} dataPayload
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/files/upload [post]
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		userID := c.FormValue("userId")
		if userID == "" {
			return writeError(c, fiber.StatusBadRequest, "USER_REQUIRED", "userId is required")
		}

		meta, ok, err := contractMetadataFromForm(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CONTRACT_METADATA", err.Error())
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		in := service.UploadInput{
			Reader:         f,
			FileName:       fh.Filename,
			ContentType:    ct,
			Size:           fh.Size,
			OwnerID:        userID,
			AccountID:      c.FormValue("accountId"),
			Department:     c.FormValue("department"),
			RevalidatePath: c.FormValue("path"),
		}
		if ok {
			in.Contract = meta
		}

		res, err := svc.Upload(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dataPayload{Data: uploadResponse{
			URL:         res.File.URL,
			File:        res.File,
			Contract:    res.Contract,
			Revalidate:  res.Revalidate,
			SideEffects: res.SideEffects,
		}})
	}
}

// contractMetadataFromForm reports ok=false when no contract field was sent.
func contractMetadataFromForm(c *fiber.Ctx) (*service.ContractMetadata, bool, error) {
	present := false
	for _, k := range contractFields {
		if c.FormValue(k) != "" {
			present = true
			break
		}
	}
	if !present {
		return nil, false, nil
	}

	meta := &service.ContractMetadata{
		ContractName:   c.FormValue("contractName"),
		ContractType:   c.FormValue("contractType"),
		Department:     optionalString(c.FormValue("contractDepartment")),
		Vendor:         optionalString(c.FormValue("vendor")),
		ContractNumber: optionalString(c.FormValue("contractNumber")),
		Priority:       c.FormValue("priority"),
		Compliance:     c.FormValue("compliance"),
		Description:    optionalString(c.FormValue("description")),
		ManagerIDs:     splitList(c.FormValue("managerIds")),
	}
	if v := c.FormValue("expiryDate"); v != "" {
		t, err := metadata.ParseExpiry(v)
		if err != nil {
			return nil, false, err
		}
		meta.ExpiryDate = &t
	}
	if v := c.FormValue("amount"); v != "" {
		a, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false, fiber.NewError(fiber.StatusBadRequest, "invalid amount")
		}
		meta.Amount = &a
	}
	return meta, true, nil
}

// ListFiles godoc
// @Summary List files
// @Tags files
// @Produce json
// @Param owner query string false "Owner or shared user id"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} service.FileListResult
// @Failure 400 {object} errorPayload
// @Router /api/files [get]
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok := pageParams(c)
		if !ok {
			return nil
		}
		res, err := svc.List(c.UserContext(), c.Query("owner"), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetFile godoc
// @Summary Get a file
// @Tags files
// @Produce json
// @Param id path string true "File id"
// @Success 200 {object} model.File
// @Failure 404 {object} errorPayload
// @Router /api/files/{id} [get]
func GetFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// DownloadFile godoc
// @Summary Presigned download URL
// @Tags files
// @Produce json
// @Param id path string true "File id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /api/files/{id}/download [get]
func DownloadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.DownloadURL(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

// DeleteFile godoc
// @Summary Delete a file
// @Tags files
// @Param id path string true "File id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/files/{id} [delete]
func DeleteFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
