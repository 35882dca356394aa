package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/wellnest-hq/wellnest_backend/internal/service/therapist"
	pasetotoken "github.com/wellnest-hq/wellnest_backend/pkg/paseto"
)

type TherapistHandler struct {
	svc therapist.Service
}

func NewTherapistHandler(svc therapist.Service) *TherapistHandler {
	return &TherapistHandler{svc: svc}
}

// GET /api/v1/therapists
func (h *TherapistHandler) List(c fiber.Ctx) error {
	req := therapist.ListRequest{
		AcceptingOnly: c.Query("accepting") == "true",
	}

	if s := c.Query("specialization"); s != "" {
		req.Specialization = &s
	}
	if q := c.Query("q"); q != "" {
		req.Query = &q
	}
	if p, err := strconv.Atoi(c.Query("page")); err == nil {
		req.Page = p
	}
	if pp, err := strconv.Atoi(c.Query("per_page")); err == nil {
		req.PerPage = pp
	}

	list, err := h.svc.List(c.Context(), req)
	if err != nil {
		return internalError(c)
	}

	return ok(c, list)
}

// GET /api/v1/therapists/:id
func (h *TherapistHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	t, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapTherapistError(c, err)
	}

	return ok(c, t)
}

// GET /api/v1/therapists/me  (requires therapist role)
func (h *TherapistHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	t, err := h.svc.Get(c.Context(), claims.AccountID)
	if err != nil {
		return mapTherapistError(c, err)
	}

	return ok(c, t)
}

// PATCH /api/v1/therapists/me  (requires therapist role)
func (h *TherapistHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DisplayName    *string  `json:"display_name"`
		Specialization *string  `json:"specialization"`
		Bio            *string  `json:"bio"`
		Latitude       *float64 `json:"latitude"`
		Longitude      *float64 `json:"longitude"`
		IsAccepting    *bool    `json:"is_accepting"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	t, err := h.svc.UpdateProfile(c.Context(), claims.AccountID, therapist.UpdateProfileRequest{
		DisplayName:    body.DisplayName,
		Specialization: body.Specialization,
		Bio:            body.Bio,
		Latitude:       body.Latitude,
		Longitude:      body.Longitude,
		IsAccepting:    body.IsAccepting,
	})
	if err != nil {
		return mapTherapistError(c, err)
	}

	return ok(c, t)
}

func mapTherapistError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, therapist.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, therapist.ErrInvalidRating):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
