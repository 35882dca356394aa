package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/wellnest-hq/wellnest_backend/internal/api/http/handler"
)

func (r *Router) registerTherapistRoutes(
	api fiber.Router,
	h *handler.TherapistHandler,
	av *handler.AvailabilityHandler,
	authRequired, therapistOnly fiber.Handler,
) {
	group := api.Group("/therapists")

	// Public directory. The "me" routes must be registered before ":id"
	// so Fiber does not treat "me" as an id.
	group.Get("/me", authRequired, therapistOnly, h.GetMe)
	group.Patch("/me", authRequired, therapistOnly, h.UpdateMe)
	group.Post("/me/availability", authRequired, therapistOnly, av.Add)
	group.Put("/me/availability", authRequired, therapistOnly, av.Replace)
	group.Delete("/me/availability", authRequired, therapistOnly, av.Remove)

	group.Get("/", h.List)
	group.Get("/:id", h.Get)
	group.Get("/:id/availability", av.List)
}
