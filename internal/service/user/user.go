package user

import (
	"context"
	"fmt"
	"io"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	entfav "github.com/wellnest-hq/wellnest_backend/internal/repo/favorite"
	enttherapist "github.com/wellnest-hq/wellnest_backend/internal/repo/therapist"
	entuser "github.com/wellnest-hq/wellnest_backend/internal/repo/user"
	"github.com/wellnest-hq/wellnest_backend/pkg/s3"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateProfileRequest struct {
	DisplayName *string
	Phone       *string // normalized to E.164 before storing
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.User, error)

	// SetProfileImage stores the image in object storage and records its
	// key on the user. Returns the stored key.
	SetProfileImage(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader, size int64) (string, error)

	// ProfileImageURL presigns a short-lived download URL for the user's
	// profile image. Empty string when the user has no image.
	ProfileImageURL(ctx context.Context, userID uuid.UUID) (string, error)

	// AddFavorite bookmarks a therapist, snapshotting their display
	// fields. Adding an existing favorite refreshes the snapshot.
	AddFavorite(ctx context.Context, userID, therapistID uuid.UUID) (*repo.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, therapistID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*repo.Favorite, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db      *repo.Client
	storage *s3.Client
}

func New(db *repo.Client, storage *s3.Client) Service {
	return &userService{db: db, storage: storage}
}

func (s *userService) Get(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)
	if req.DisplayName != nil {
		upd = upd.SetDisplayName(*req.DisplayName)
	}
	if req.Phone != nil {
		normalized, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		upd = upd.SetPhone(normalized)
	}

	u, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user profile: %w", err)
	}
	return u, nil
}

func (s *userService) SetProfileImage(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader, size int64) (string, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	ext, ok := imageExt(contentType)
	if !ok {
		return "", ErrBadImageType
	}

	key := fmt.Sprintf("users/%s/%s.%s", userID, uuid.New(), ext)
	if err := s.storage.Upload(ctx, key, contentType, body, size); err != nil {
		return "", err
	}

	old := u.ProfileImageKey
	if err := s.db.User.UpdateOne(u).
		SetProfileImageKey(key).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("record profile image: %w", err)
	}

	if old != nil && *old != "" {
		// Best effort, the new key is already recorded.
		_ = s.storage.Delete(ctx, *old)
	}
	return key, nil
}

func (s *userService) ProfileImageURL(ctx context.Context, userID uuid.UUID) (string, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.ProfileImageKey == nil || *u.ProfileImageKey == "" {
		return "", nil
	}
	return s.storage.PresignDownload(ctx, *u.ProfileImageKey)
}

// ---------------------------------------------------------------------------
// Favorites
// ---------------------------------------------------------------------------

func (s *userService) AddFavorite(ctx context.Context, userID, therapistID uuid.UUID) (*repo.Favorite, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	th, err := s.db.Therapist.Query().
		Where(enttherapist.ID(therapistID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTherapistNotFound
		}
		return nil, fmt.Errorf("get therapist: %w", err)
	}

	existing, err := s.db.Favorite.Query().
		Where(
			entfav.UserID(userID),
			entfav.TherapistID(therapistID),
		).
		Only(ctx)
	if err == nil {
		return s.db.Favorite.UpdateOne(existing).
			SetTherapistName(th.DisplayName).
			SetSpecialization(th.Specialization).
			SetRating(th.Rating).
			Save(ctx)
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get favorite: %w", err)
	}

	fav, err := s.db.Favorite.Create().
		SetUserID(userID).
		SetTherapistID(therapistID).
		SetTherapistName(th.DisplayName).
		SetSpecialization(th.Specialization).
		SetRating(th.Rating).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return fav, nil
}

func (s *userService) RemoveFavorite(ctx context.Context, userID, therapistID uuid.UUID) error {
	deleted, err := s.db.Favorite.Delete().
		Where(
			entfav.UserID(userID),
			entfav.TherapistID(therapistID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	if deleted == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *userService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*repo.Favorite, error) {
	favs, err := s.db.Favorite.Query().
		Where(entfav.UserID(userID)).
		Order(entfav.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func normalizePhone(raw string) (string, error) {
	// Region-less parse, so the caller must send +country numbers.
	num, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return "", ErrBadPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrBadPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func imageExt(contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg":
		return "jpg", true
	case "image/png":
		return "png", true
	case "image/webp":
		return "webp", true
	default:
		return "", false
	}
}
