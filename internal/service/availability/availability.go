package availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	entslot "github.com/wellnest-hq/wellnest_backend/internal/repo/availabilityslot"
	enttherapist "github.com/wellnest-hq/wellnest_backend/internal/repo/therapist"
	"github.com/wellnest-hq/wellnest_backend/pkg/util/slotlabel"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// List returns the therapist's offered slot labels in insertion order.
	List(ctx context.Context, therapistID uuid.UUID) ([]*repo.AvailabilitySlot, error)

	// Add appends a slot label to the therapist's offering. Labels must
	// carry a parseable start time and be unique per therapist.
	Add(ctx context.Context, therapistID uuid.UUID, label string) (*repo.AvailabilitySlot, error)

	// Remove deletes an offered slot label. Existing bookings for the
	// label are untouched.
	Remove(ctx context.Context, therapistID uuid.UUID, label string) error

	// Replace swaps the therapist's entire offering for the given labels,
	// preserving the order given. Duplicate or empty labels are rejected
	// before anything is written.
	Replace(ctx context.Context, therapistID uuid.UUID, labels []string) ([]*repo.AvailabilitySlot, error)

	// IsOffered reports whether the therapist currently offers the label.
	IsOffered(ctx context.Context, therapistID uuid.UUID, label string) (bool, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type availabilityService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &availabilityService{db: db}
}

func (s *availabilityService) List(ctx context.Context, therapistID uuid.UUID) ([]*repo.AvailabilitySlot, error) {
	if err := s.checkTherapist(ctx, therapistID); err != nil {
		return nil, err
	}

	slots, err := s.db.AvailabilitySlot.Query().
		Where(entslot.TherapistID(therapistID)).
		Order(entslot.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return slots, nil
}

func (s *availabilityService) Add(ctx context.Context, therapistID uuid.UUID, label string) (*repo.AvailabilitySlot, error) {
	label, err := s.validateLabel(label)
	if err != nil {
		return nil, err
	}
	if err := s.checkTherapist(ctx, therapistID); err != nil {
		return nil, err
	}

	next, err := s.nextPosition(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	slot, err := s.db.AvailabilitySlot.Create().
		SetTherapistID(therapistID).
		SetLabel(label).
		SetPosition(next).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateLabel
		}
		return nil, fmt.Errorf("add availability slot: %w", err)
	}
	return slot, nil
}

func (s *availabilityService) Remove(ctx context.Context, therapistID uuid.UUID, label string) error {
	if err := s.checkTherapist(ctx, therapistID); err != nil {
		return err
	}

	deleted, err := s.db.AvailabilitySlot.Delete().
		Where(
			entslot.TherapistID(therapistID),
			entslot.LabelEQ(strings.TrimSpace(label)),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove availability slot: %w", err)
	}
	if deleted == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (s *availabilityService) Replace(ctx context.Context, therapistID uuid.UUID, labels []string) ([]*repo.AvailabilitySlot, error) {
	if err := s.checkTherapist(ctx, therapistID); err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l, err := s.validateLabel(l)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[l]; dup {
			return nil, ErrDuplicateLabel
		}
		seen[l] = struct{}{}
		cleaned = append(cleaned, l)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.AvailabilitySlot.Delete().
		Where(entslot.TherapistID(therapistID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("clear availability: %w", err)
	}

	slots := make([]*repo.AvailabilitySlot, 0, len(cleaned))
	for i, l := range cleaned {
		slot, err := tx.AvailabilitySlot.Create().
			SetTherapistID(therapistID).
			SetLabel(l).
			SetPosition(i).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("write availability: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit availability: %w", err)
	}
	return slots, nil
}

func (s *availabilityService) IsOffered(ctx context.Context, therapistID uuid.UUID, label string) (bool, error) {
	offered, err := s.db.AvailabilitySlot.Query().
		Where(
			entslot.TherapistID(therapistID),
			entslot.LabelEQ(strings.TrimSpace(label)),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}
	return offered, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *availabilityService) checkTherapist(ctx context.Context, therapistID uuid.UUID) error {
	exists, err := s.db.Therapist.Query().
		Where(enttherapist.ID(therapistID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check therapist: %w", err)
	}
	if !exists {
		return ErrTherapistNotFound
	}
	return nil
}

func (s *availabilityService) validateLabel(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", ErrEmptyLabel
	}
	// Labels are free text but must resolve to a start time so that
	// bookings made against them can be ordered chronologically.
	if _, err := slotlabel.Resolve("2000-01-01", label); err != nil {
		return "", ErrBadLabel
	}
	return label, nil
}

func (s *availabilityService) nextPosition(ctx context.Context, therapistID uuid.UUID) (int, error) {
	n, err := s.db.AvailabilitySlot.Query().
		Where(entslot.TherapistID(therapistID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count availability: %w", err)
	}
	return n, nil
}
