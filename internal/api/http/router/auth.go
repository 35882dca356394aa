package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/wellnest-hq/wellnest_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired fiber.Handler) {
	group := api.Group("/auth")
	group.Post("/signup", h.SignupUser)
	group.Post("/signup-therapist", h.SignupTherapist)
	group.Post("/login", h.Login)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", authRequired, h.Logout)
}
