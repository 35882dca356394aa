package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/enttest"
)

func newClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:user?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func seedUser(t *testing.T, client *repo.Client) uuid.UUID {
	t.Helper()
	u, err := client.User.Create().
		SetDisplayName("Alex Rivera").
		SetEmail(uuid.NewString() + "@example.com").
		SetPasswordHash("x").
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func seedTherapist(t *testing.T, client *repo.Client) *repo.Therapist {
	t.Helper()
	th, err := client.Therapist.Create().
		SetDisplayName("Dr. Sarah Johnson").
		SetEmail(uuid.NewString() + "@example.com").
		SetPasswordHash("x").
		SetSpecialization("Cognitive Behavioral Therapy").
		SetRating(4.5).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed therapist: %v", err)
	}
	return th
}

func TestGet(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	id := seedUser(t, client)
	u, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u.DisplayName != "Alex Rivera" {
		t.Errorf("got %q", u.DisplayName)
	}

	if _, err := svc.Get(ctx, uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("Get unknown error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()
	id := seedUser(t, client)

	name := "Alexandra Rivera"
	phone := "+1 415 555 2671"
	u, err := svc.UpdateProfile(ctx, id, UpdateProfileRequest{
		DisplayName: &name,
		Phone:       &phone,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if u.DisplayName != name {
		t.Errorf("display name not updated")
	}
	if u.Phone == nil || *u.Phone != "+14155552671" {
		t.Errorf("phone = %v, want +14155552671", u.Phone)
	}
}

func TestUpdateProfileBadPhone(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()
	id := seedUser(t, client)

	for _, phone := range []string{"not a number", "12345", "415-555-2671"} {
		p := phone
		if _, err := svc.UpdateProfile(ctx, id, UpdateProfileRequest{Phone: &p}); !errors.Is(err, ErrBadPhone) {
			t.Errorf("UpdateProfile(%q) error = %v, want ErrBadPhone", phone, err)
		}
	}
}

func TestFavorites(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	userID := seedUser(t, client)
	th := seedTherapist(t, client)

	fav, err := svc.AddFavorite(ctx, userID, th.ID)
	if err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if fav.TherapistName != th.DisplayName || fav.Rating != th.Rating {
		t.Errorf("snapshot wrong: %+v", fav)
	}

	favs, err := svc.ListFavorites(ctx, userID)
	if err != nil {
		t.Fatalf("ListFavorites: %v", err)
	}
	if len(favs) != 1 {
		t.Fatalf("got %d favorites, want 1", len(favs))
	}

	if err := svc.RemoveFavorite(ctx, userID, th.ID); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	if err := svc.RemoveFavorite(ctx, userID, th.ID); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("second RemoveFavorite error = %v, want ErrFavoriteNotFound", err)
	}
}

func TestAddFavoriteRefreshesSnapshot(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	userID := seedUser(t, client)
	th := seedTherapist(t, client)

	if _, err := svc.AddFavorite(ctx, userID, th.ID); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}

	if err := client.Therapist.UpdateOne(th).
		SetRating(4.9).
		Exec(ctx); err != nil {
		t.Fatalf("update therapist: %v", err)
	}

	fav, err := svc.AddFavorite(ctx, userID, th.ID)
	if err != nil {
		t.Fatalf("re-AddFavorite: %v", err)
	}
	if fav.Rating != 4.9 {
		t.Errorf("snapshot rating = %v, want 4.9", fav.Rating)
	}

	favs, _ := svc.ListFavorites(ctx, userID)
	if len(favs) != 1 {
		t.Fatalf("got %d favorites after re-add, want 1", len(favs))
	}
}

func TestAddFavoriteUnknownTherapist(t *testing.T) {
	client := newClient(t)
	svc := New(client, nil)
	ctx := context.Background()
	userID := seedUser(t, client)

	if _, err := svc.AddFavorite(ctx, userID, uuid.New()); !errors.Is(err, ErrTherapistNotFound) {
		t.Fatalf("AddFavorite error = %v, want ErrTherapistNotFound", err)
	}
}
