package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wellnest-hq/wellnest_backend/internal/events"
	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	entappt "github.com/wellnest-hq/wellnest_backend/internal/repo/appointment"
	enttherapist "github.com/wellnest-hq/wellnest_backend/internal/repo/therapist"
	entuser "github.com/wellnest-hq/wellnest_backend/internal/repo/user"
	"github.com/wellnest-hq/wellnest_backend/internal/service/availability"
	"github.com/wellnest-hq/wellnest_backend/pkg/util/slotlabel"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	TherapistID uuid.UUID
	UserID      uuid.UUID
	Date        string // 2006-01-02
	SlotLabel   string // e.g. "10:00 AM - 11:00 AM"
	SessionType string // "online" | "in_person"
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Book creates a pending appointment for the given slot. The slot
	// must be offered by the therapist and free for that date. On
	// conflict the caller gets ErrSlotTaken and nothing is written.
	Book(ctx context.Context, req BookRequest) (*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bookingService struct {
	db     *repo.Client
	avail  availability.Service
	events *events.Publisher
}

func New(db *repo.Client, avail availability.Service, events *events.Publisher) Service {
	return &bookingService{db: db, avail: avail, events: events}
}

func (s *bookingService) Book(ctx context.Context, req BookRequest) (*repo.Appointment, error) {
	req.SlotLabel = strings.TrimSpace(req.SlotLabel)

	startsAt, err := slotlabel.Resolve(req.Date, req.SlotLabel)
	if err != nil {
		if errors.Is(err, slotlabel.ErrBadDate) {
			return nil, ErrBadDate
		}
		return nil, ErrBadLabel
	}

	sessionType, err := parseSessionType(req.SessionType)
	if err != nil {
		return nil, err
	}

	therapist, err := s.db.Therapist.Query().
		Where(enttherapist.ID(req.TherapistID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTherapistNotFound
		}
		return nil, fmt.Errorf("get therapist: %w", err)
	}
	if !therapist.IsAccepting {
		return nil, ErrNotAccepting
	}

	user, err := s.db.User.Query().
		Where(entuser.ID(req.UserID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	offered, err := s.avail.IsOffered(ctx, req.TherapistID, req.SlotLabel)
	if err != nil {
		return nil, fmt.Errorf("check offering: %w", err)
	}
	if !offered {
		return nil, ErrSlotNotOffered
	}

	// Fast-path conflict check. The partial unique index on
	// (therapist_id, appointment_date, slot_label) is the real guard
	// under concurrency.
	taken, err := s.db.Appointment.Query().
		Where(
			entappt.TherapistID(req.TherapistID),
			entappt.AppointmentDate(req.Date),
			entappt.SlotLabel(req.SlotLabel),
			entappt.StatusNEQ(entappt.StatusCancelled),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check conflict: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	appt, err := s.db.Appointment.Create().
		SetTherapistID(req.TherapistID).
		SetUserID(req.UserID).
		SetTherapistName(therapist.DisplayName).
		SetUserName(user.DisplayName).
		SetAppointmentDate(req.Date).
		SetSlotLabel(req.SlotLabel).
		SetStartsAt(startsAt).
		SetSessionType(sessionType).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.events.AppointmentCreated(appt.ID)
	return appt, nil
}

func parseSessionType(raw string) (entappt.SessionType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "online":
		return entappt.SessionTypeOnline, nil
	case "in_person", "in-person":
		return entappt.SessionTypeInPerson, nil
	default:
		return "", ErrBadSessionType
	}
}
