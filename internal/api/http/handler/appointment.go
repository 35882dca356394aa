package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/wellnest-hq/wellnest_backend/internal/service/appointment"
	"github.com/wellnest-hq/wellnest_backend/internal/service/booking"
	pasetotoken "github.com/wellnest-hq/wellnest_backend/pkg/paseto"
)

type AppointmentHandler struct {
	appts appointment.Service
	book  booking.Service
}

func NewAppointmentHandler(appts appointment.Service, book booking.Service) *AppointmentHandler {
	return &AppointmentHandler{appts: appts, book: book}
}

// POST /api/v1/appointments  (requires user role)
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		TherapistID string `json:"therapist_id"`
		Date        string `json:"date"`
		SlotLabel   string `json:"slot_label"`
		SessionType string `json:"session_type"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	therapistID, err := uuid.Parse(body.TherapistID)
	if err != nil {
		return badRequest(c, "invalid therapist_id")
	}

	appt, err := h.book.Book(c.Context(), booking.BookRequest{
		TherapistID: therapistID,
		UserID:      claims.AccountID,
		Date:        body.Date,
		SlotLabel:   body.SlotLabel,
		SessionType: body.SessionType,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return created(c, appt)
}

// GET /api/v1/appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.appts.Get(c.Context(), id)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	// Only the two parties on the appointment may read it
	if appt.UserID != claims.AccountID && appt.TherapistID != claims.AccountID {
		return forbidden(c)
	}

	return ok(c, appt)
}

// GET /api/v1/appointments/me
// Returns the caller's schedule, split into upcoming and past.
func (h *AppointmentHandler) Schedule(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var (
		sched appointment.Schedule
		err   error
	)
	if claims.Role == pasetotoken.RoleTherapist {
		sched, err = h.appts.ListForTherapist(c.Context(), claims.AccountID)
	} else {
		sched, err = h.appts.ListForUser(c.Context(), claims.AccountID)
	}
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, fiber.Map{
		"upcoming": sched.Upcoming,
		"past":     sched.Past,
	})
}

// GET /api/v1/appointments/me/history  (requires user role)
func (h *AppointmentHandler) History(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	appts, err := h.appts.History(c.Context(), claims.AccountID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// POST /api/v1/appointments/:id/approve  (requires therapist role)
func (h *AppointmentHandler) Approve(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.appts.Approve(c.Context(), claims.AccountID, id); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// POST /api/v1/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.appts.Cancel(c.Context(), claims.AccountID, id); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrNotOwner):
		return forbidden(c)
	case errors.Is(err, appointment.ErrInvalidTransition):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrTherapistNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrNotAccepting):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrBadDate):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrBadLabel):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrBadSessionType):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrSlotNotOffered):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}
