package therapist

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	enttherapist "github.com/wellnest-hq/wellnest_backend/internal/repo/therapist"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Specialization *string
	Query          *string // substring match on display name
	AcceptingOnly  bool
	Page           int
	PerPage        int
}

type UpdateProfileRequest struct {
	DisplayName    *string
	Specialization *string
	Bio            *string
	Latitude       *float64
	Longitude      *float64
	IsAccepting    *bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// List returns the public directory, best rated first.
	List(ctx context.Context, req ListRequest) ([]*repo.Therapist, error)
	Get(ctx context.Context, therapistID uuid.UUID) (*repo.Therapist, error)
	UpdateProfile(ctx context.Context, therapistID uuid.UUID, req UpdateProfileRequest) (*repo.Therapist, error)
	SetRating(ctx context.Context, therapistID uuid.UUID, rating float64) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type therapistService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &therapistService{db: db}
}

func (s *therapistService) List(ctx context.Context, req ListRequest) ([]*repo.Therapist, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Therapist.Query()

	if req.Specialization != nil {
		q = q.Where(enttherapist.SpecializationEqualFold(*req.Specialization))
	}
	if req.Query != nil {
		q = q.Where(enttherapist.DisplayNameContainsFold(*req.Query))
	}
	if req.AcceptingOnly {
		q = q.Where(enttherapist.IsAccepting(true))
	}

	therapists, err := q.
		Order(enttherapist.ByRating(sql.OrderDesc()), enttherapist.ByDisplayName()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list therapists: %w", err)
	}
	return therapists, nil
}

func (s *therapistService) Get(ctx context.Context, therapistID uuid.UUID) (*repo.Therapist, error) {
	th, err := s.db.Therapist.Query().
		Where(enttherapist.ID(therapistID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get therapist: %w", err)
	}
	return th, nil
}

func (s *therapistService) UpdateProfile(ctx context.Context, therapistID uuid.UUID, req UpdateProfileRequest) (*repo.Therapist, error) {
	th, err := s.Get(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Therapist.UpdateOne(th)
	if req.DisplayName != nil {
		upd = upd.SetDisplayName(*req.DisplayName)
	}
	if req.Specialization != nil {
		upd = upd.SetSpecialization(*req.Specialization)
	}
	if req.Bio != nil {
		upd = upd.SetBio(*req.Bio)
	}
	if req.Latitude != nil {
		upd = upd.SetLatitude(*req.Latitude)
	}
	if req.Longitude != nil {
		upd = upd.SetLongitude(*req.Longitude)
	}
	if req.IsAccepting != nil {
		upd = upd.SetIsAccepting(*req.IsAccepting)
	}

	th, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update therapist profile: %w", err)
	}
	return th, nil
}

func (s *therapistService) SetRating(ctx context.Context, therapistID uuid.UUID, rating float64) error {
	if rating < 0 || rating > 5 {
		return ErrInvalidRating
	}

	updated, err := s.db.Therapist.Update().
		Where(enttherapist.ID(therapistID)).
		SetRating(rating).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}
