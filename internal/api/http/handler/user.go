package handler

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/wellnest-hq/wellnest_backend/internal/service/user"
	pasetotoken "github.com/wellnest-hq/wellnest_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /api/v1/users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.Get(c.Context(), claims.AccountID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DisplayName *string `json:"display_name"`
		Phone       *string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Context(), claims.AccountID, user.UpdateProfileRequest{
		DisplayName: body.DisplayName,
		Phone:       body.Phone,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PUT /api/v1/users/me/profile-image
// Body is the raw image, Content-Type identifies the format.
func (h *UserHandler) SetProfileImage(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	raw := c.Body()
	if len(raw) == 0 {
		return badRequest(c, "image body is required")
	}

	key, err := h.svc.SetProfileImage(c.Context(), claims.AccountID,
		c.Get("Content-Type"), bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{"key": key})
}

// GET /api/v1/users/me/profile-image
func (h *UserHandler) ProfileImageURL(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	url, err := h.svc.ProfileImageURL(c.Context(), claims.AccountID)
	if err != nil {
		return mapUserError(c, err)
	}
	if url == "" {
		return notFound(c, "no profile image")
	}

	return ok(c, fiber.Map{"url": url})
}

// GET /api/v1/users/me/favorites
func (h *UserHandler) ListFavorites(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	favs, err := h.svc.ListFavorites(c.Context(), claims.AccountID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, favs)
}

// PUT /api/v1/users/me/favorites/:therapistId
func (h *UserHandler) AddFavorite(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	therapistID, err := uuid.Parse(c.Params("therapistId"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	fav, err := h.svc.AddFavorite(c.Context(), claims.AccountID, therapistID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fav)
}

// DELETE /api/v1/users/me/favorites/:therapistId
func (h *UserHandler) RemoveFavorite(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	therapistID, err := uuid.Parse(c.Params("therapistId"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	if err := h.svc.RemoveFavorite(c.Context(), claims.AccountID, therapistID); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrTherapistNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrFavoriteNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrBadPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrBadImageType):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
