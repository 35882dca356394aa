package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/wellnest-hq/wellnest_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	h *handler.AppointmentHandler,
	authRequired, userOnly, therapistOnly fiber.Handler,
) {
	group := api.Group("/appointments", authRequired)

	group.Post("/", userOnly, h.Book)
	group.Get("/me", h.Schedule)
	group.Get("/me/history", userOnly, h.History)
	group.Get("/:id", h.Get)
	group.Post("/:id/approve", therapistOnly, h.Approve)
	group.Post("/:id/cancel", h.Cancel)
}
