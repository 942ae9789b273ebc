package handler

import (
	"github.com/gofiber/fiber/v2"

	"contractapi/internal/service"
)

// ListReports godoc
// @Summary List reports
// @Tags reports
// @Produce json
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} service.ReportListResult
// @Failure 400 {object} errorPayload
// @Router /api/reports [get]
func ListReports(svc service.ReportService) fiber.Handler {
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

// CreateReport godoc
// @Summary Create a report with an optional attachment
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param type formData string false "Report type"
// @Param description formData string false "Description"
// @Param file formData file false "Attachment"
// @Success 201 {object} dataPayload
// @Failure 400 {object} errorPayload
// @Router /api/reports [post]
func CreateReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.NewReport{
			Title:       c.FormValue("title"),
			Type:        c.FormValue("type"),
			Description: optionalString(c.FormValue("description")),
			CreatedBy:   c.Get(UserIDHeader),
		}
		if in.CreatedBy == "" {
			in.CreatedBy = c.FormValue("createdBy")
		}

		if fh, err := c.FormFile("file"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			in.Attachment = f
			in.FileName = fh.Filename
			in.ContentType = fh.Header.Get("Content-Type")
			in.Size = fh.Size
		}

		r, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dataPayload{Data: r})
	}
}

// DownloadReport godoc
// @Summary Stream a report's attachment
// @Tags reports
// @Produce octet-stream
// @Param id path string true "Report id"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /api/reports/{id}/download [get]
func DownloadReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, info, err := svc.Download(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		// fasthttp closes the stream once it has been written.
		if info.Size > 0 {
			return c.SendStream(body, int(info.Size))
		}
		return c.SendStream(body)
	}
}

// DeleteReport godoc
// @Summary Delete a report and its attachment
// @Tags reports
// @Param id path string true "Report id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/reports/{id} [delete]
func DeleteReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
