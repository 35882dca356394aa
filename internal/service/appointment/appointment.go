package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/wellnest-hq/wellnest_backend/internal/events"
	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	entappt "github.com/wellnest-hq/wellnest_backend/internal/repo/appointment"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/predicate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Schedule splits a party's appointments around the present moment.
// Upcoming is ordered soonest first, Past most recent first. Cancelled
// appointments never appear in Upcoming.
type Schedule struct {
	Upcoming []*repo.Appointment
	Past     []*repo.Appointment
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)

	// ListForUser and ListForTherapist read the same records through
	// the two indexed paths.
	ListForUser(ctx context.Context, userID uuid.UUID) (Schedule, error)
	ListForTherapist(ctx context.Context, therapistID uuid.UUID) (Schedule, error)

	// History returns every appointment a user ever made, newest
	// booking first regardless of session date.
	History(ctx context.Context, userID uuid.UUID) ([]*repo.Appointment, error)

	// Approve moves a pending appointment to approved. Only the
	// therapist on the appointment may approve.
	Approve(ctx context.Context, therapistID, apptID uuid.UUID) error

	// Cancel moves a pending appointment to cancelled and frees its
	// slot. Either party on the appointment may cancel.
	Cancel(ctx context.Context, actorID, apptID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db     *repo.Client
	events *events.Publisher
}

func New(db *repo.Client, events *events.Publisher) Service {
	return &appointmentService{db: db, events: events}
}

func (s *appointmentService) Get(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) ListForUser(ctx context.Context, userID uuid.UUID) (Schedule, error) {
	return s.schedule(ctx, entappt.UserID(userID))
}

func (s *appointmentService) ListForTherapist(ctx context.Context, therapistID uuid.UUID) (Schedule, error) {
	return s.schedule(ctx, entappt.TherapistID(therapistID))
}

func (s *appointmentService) History(ctx context.Context, userID uuid.UUID) ([]*repo.Appointment, error) {
	appts, err := s.db.Appointment.Query().
		Where(entappt.UserID(userID)).
		Order(entappt.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) Approve(ctx context.Context, therapistID, apptID uuid.UUID) error {
	appt, err := s.Get(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.TherapistID != therapistID {
		return ErrNotOwner
	}

	// Guarded update: only a pending appointment can be approved, so a
	// concurrent transition loses the race instead of clobbering.
	updated, err := s.db.Appointment.Update().
		Where(
			entappt.ID(apptID),
			entappt.StatusEQ(entappt.StatusPending),
		).
		SetStatus(entappt.StatusApproved).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("approve appointment: %w", err)
	}
	if updated == 0 {
		return ErrInvalidTransition
	}

	s.events.AppointmentApproved(apptID)
	return nil
}

func (s *appointmentService) Cancel(ctx context.Context, actorID, apptID uuid.UUID) error {
	appt, err := s.Get(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.TherapistID != actorID && appt.UserID != actorID {
		return ErrNotOwner
	}

	updated, err := s.db.Appointment.Update().
		Where(
			entappt.ID(apptID),
			entappt.StatusEQ(entappt.StatusPending),
		).
		SetStatus(entappt.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	if updated == 0 {
		return ErrInvalidTransition
	}

	s.events.AppointmentCancelled(apptID)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) schedule(ctx context.Context, owner predicate.Appointment) (Schedule, error) {
	now := time.Now().UTC()

	upcoming, err := s.db.Appointment.Query().
		Where(
			owner,
			entappt.StartsAtGTE(now),
			entappt.StatusNEQ(entappt.StatusCancelled),
		).
		Order(entappt.ByStartsAt()).
		All(ctx)
	if err != nil {
		return Schedule{}, fmt.Errorf("list upcoming: %w", err)
	}

	past, err := s.db.Appointment.Query().
		Where(
			owner,
			entappt.Or(
				entappt.StartsAtLT(now),
				entappt.StatusEQ(entappt.StatusCancelled),
			),
		).
		Order(entappt.ByStartsAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return Schedule{}, fmt.Errorf("list past: %w", err)
	}

	return Schedule{Upcoming: upcoming, Past: past}, nil
}
