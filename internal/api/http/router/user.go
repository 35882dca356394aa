package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/wellnest-hq/wellnest_backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(api fiber.Router, h *handler.UserHandler, authRequired, userOnly fiber.Handler) {
	group := api.Group("/users", authRequired, userOnly)
	group.Get("/me", h.GetMe)
	group.Patch("/me", h.UpdateMe)
	group.Put("/me/profile-image", h.SetProfileImage)
	group.Get("/me/profile-image", h.ProfileImageURL)
	group.Get("/me/favorites", h.ListFavorites)
	group.Put("/me/favorites/:therapistId", h.AddFavorite)
	group.Delete("/me/favorites/:therapistId", h.RemoveFavorite)
}
