package therapist

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
	client := enttest.Open(t, "sqlite3", "file:therapist?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func seed(t *testing.T, client *repo.Client, name, specialization string, rating float64, accepting bool) uuid.UUID {
	t.Helper()
	th, err := client.Therapist.Create().
		SetDisplayName(name).
		SetEmail(uuid.NewString() + "@example.com").
		SetPasswordHash("x").
		SetSpecialization(specialization).
		SetRating(rating).
		SetIsAccepting(accepting).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed therapist: %v", err)
	}
	return th.ID
}

func TestListOrderAndFilter(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	seed(t, client, "Dr. Emily Chen", "Anxiety", 4.9, true)
	seed(t, client, "Dr. Sarah Johnson", "Cognitive Behavioral Therapy", 4.5, true)
	seed(t, client, "Dr. Omar Haddad", "Anxiety", 4.2, false)

	all, err := svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d therapists, want 3", len(all))
	}
	if all[0].DisplayName != "Dr. Emily Chen" {
		t.Errorf("best rated first, got %q", all[0].DisplayName)
	}

	spec := "anxiety"
	filtered, err := svc.List(ctx, ListRequest{Specialization: &spec})
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("got %d anxiety therapists, want 2", len(filtered))
	}

	accepting, err := svc.List(ctx, ListRequest{Specialization: &spec, AcceptingOnly: true})
	if err != nil {
		t.Fatalf("List accepting: %v", err)
	}
	if len(accepting) != 1 || accepting[0].DisplayName != "Dr. Emily Chen" {
		t.Fatalf("accepting filter wrong: %+v", accepting)
	}

	q := "sarah"
	byName, err := svc.List(ctx, ListRequest{Query: &q})
	if err != nil {
		t.Fatalf("List by name: %v", err)
	}
	if len(byName) != 1 || byName[0].DisplayName != "Dr. Sarah Johnson" {
		t.Fatalf("name search wrong: %+v", byName)
	}
}

func TestGet(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	id := seed(t, client, "Dr. Sarah Johnson", "CBT", 4.5, true)

	th, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if th.DisplayName != "Dr. Sarah Johnson" {
		t.Errorf("got %q", th.DisplayName)
	}

	if _, err := svc.Get(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get unknown error = %v, want ErrNotFound", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	id := seed(t, client, "Dr. Sarah Johnson", "CBT", 4.5, true)

	bio := "15 years of practice focused on anxiety and burnout."
	accepting := false
	th, err := svc.UpdateProfile(ctx, id, UpdateProfileRequest{
		Bio:         &bio,
		IsAccepting: &accepting,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if th.Bio == nil || *th.Bio != bio {
		t.Errorf("bio not updated")
	}
	if th.IsAccepting {
		t.Errorf("is_accepting not updated")
	}
	// Untouched fields keep their values.
	if th.Specialization != "CBT" {
		t.Errorf("specialization changed unexpectedly")
	}
}

func TestSetRating(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()

	id := seed(t, client, "Dr. Sarah Johnson", "CBT", 0, true)

	if err := svc.SetRating(ctx, id, 4.8); err != nil {
		t.Fatalf("SetRating: %v", err)
	}
	th, _ := svc.Get(ctx, id)
	if th.Rating != 4.8 {
		t.Errorf("rating = %v, want 4.8", th.Rating)
	}

	if err := svc.SetRating(ctx, id, 5.5); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("SetRating out of range error = %v, want ErrInvalidRating", err)
	}
	if err := svc.SetRating(ctx, uuid.New(), 4.0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetRating unknown error = %v, want ErrNotFound", err)
	}
}
