package handler

import (
	"github.com/gofiber/fiber/v2"

	"contractapi/internal/service"
)

// Services bundles everything the API routes depend on.
type Services struct {
	Files         service.FileService
	Contracts     service.ContractService
	Sweep         service.ExpirySweep
	Notifications service.NotificationService
	Activities    service.ActivityService
	Invitations   service.InvitationService
	Reports       service.ReportService
}

// RegisterRoutes attaches the health probes and the /api routes to app.
// writeLimit, when non-nil, guards every mutating route.
func RegisterRoutes(app *fiber.App, db Pinger, s Services, writeLimit fiber.Handler) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	if writeLimit == nil {
		writeLimit = func(c *fiber.Ctx) error { return c.Next() }
	}
	id := validID("id")

	api := app.Group("/api")

	files := api.Group("/files")
	files.Post("/upload", writeLimit, UploadFile(s.Files))
	files.Get("/", ListFiles(s.Files))
	files.Get("/:id", id, GetFile(s.Files))
	files.Get("/:id/download", id, DownloadFile(s.Files))
	files.Delete("/:id", id, writeLimit, DeleteFile(s.Files))

	contracts := api.Group("/contracts")
	contracts.Get("/", ListContracts(s.Contracts))
	contracts.Get("/statuses", ContractStatuses(s.Contracts))
	contracts.Post("/expirations/check", writeLimit, CheckExpirations(s.Sweep))
	contracts.Get("/:id", id, GetContract(s.Contracts))
	contracts.Patch("/:id/assign", writeLimit, AssignContract(s.Contracts))
	contracts.Patch("/:id/status", id, writeLimit, UpdateContractStatus(s.Contracts))

	notifications := api.Group("/notifications")
	notifications.Post("/", writeLimit, CreateNotification(s.Notifications))
	notifications.Patch("/:id/read", id, writeLimit, MarkNotificationRead(s.Notifications))
	notifications.Patch("/:id/unread", id, writeLimit, MarkNotificationUnread(s.Notifications))
	notifications.Delete("/:id", id, writeLimit, DeleteNotification(s.Notifications))

	users := api.Group("/users/:userId")
	users.Get("/notifications", ListUserNotifications(s.Notifications))
	users.Get("/notifications/unread-count", UnreadCount(s.Notifications))
	users.Get("/notification-settings", GetNotificationSettings(s.Notifications))
	users.Put("/notification-settings", writeLimit, UpdateNotificationSettings(s.Notifications))

	activities := api.Group("/activities")
	activities.Get("/", ListActivities(s.Activities))
	activities.Post("/cleanup", writeLimit, CleanupActivities(s.Activities))

	invitations := api.Group("/invitations")
	invitations.Post("/", writeLimit, CreateInvitation(s.Invitations))
	invitations.Patch("/:token/resend", writeLimit, ResendInvitation(s.Invitations))
	invitations.Patch("/:token/revoke", writeLimit, RevokeInvitation(s.Invitations))
	invitations.Post("/:token/accept", writeLimit, AcceptInvitation(s.Invitations))

	reports := api.Group("/reports")
	reports.Get("/", ListReports(s.Reports))
	reports.Post("/", writeLimit, CreateReport(s.Reports))
	reports.Get("/:id/download", id, DownloadReport(s.Reports))
	reports.Delete("/:id", id, writeLimit, DeleteReport(s.Reports))
}
