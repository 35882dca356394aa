package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/wellnest-hq/wellnest_backend/internal/service/availability"
	pasetotoken "github.com/wellnest-hq/wellnest_backend/pkg/paseto"
)

type AvailabilityHandler struct {
	svc availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// GET /api/v1/therapists/:id/availability
func (h *AvailabilityHandler) List(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	slots, err := h.svc.List(c.Context(), id)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, slots)
}

// POST /api/v1/therapists/me/availability  (requires therapist role)
func (h *AvailabilityHandler) Add(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Label string `json:"label"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	slot, err := h.svc.Add(c.Context(), claims.AccountID, body.Label)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return created(c, slot)
}

// PUT /api/v1/therapists/me/availability  (requires therapist role)
func (h *AvailabilityHandler) Replace(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Labels []string `json:"labels"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	slots, err := h.svc.Replace(c.Context(), claims.AccountID, body.Labels)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, slots)
}

// DELETE /api/v1/therapists/me/availability  (requires therapist role)
func (h *AvailabilityHandler) Remove(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	label := c.Query("label")
	if label == "" {
		return badRequest(c, "label query parameter is required")
	}

	if err := h.svc.Remove(c.Context(), claims.AccountID, label); err != nil {
		return mapAvailabilityError(c, err)
	}

	return noContent(c)
}

func mapAvailabilityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrTherapistNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrSlotNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrEmptyLabel):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrBadLabel):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrDuplicateLabel):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
