package availability

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
	client := enttest.Open(t, "sqlite3", "file:availability?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func newTherapist(t *testing.T, client *repo.Client) uuid.UUID {
	t.Helper()
	th, err := client.Therapist.Create().
		SetDisplayName("Dr. Sarah Johnson").
		SetEmail(uuid.NewString() + "@example.com").
		SetPasswordHash("x").
		SetSpecialization("Cognitive Behavioral Therapy").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create therapist: %v", err)
	}
	return th.ID
}

func TestAddAndList(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	thID := newTherapist(t, client)

	labels := []string{
		"9:00 AM - 10:00 AM",
		"10:00 AM - 11:00 AM",
		"2:00 PM - 3:00 PM",
	}
	for _, l := range labels {
		if _, err := svc.Add(ctx, thID, l); err != nil {
			t.Fatalf("Add(%q): %v", l, err)
		}
	}

	slots, err := svc.List(ctx, thID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(slots) != len(labels) {
		t.Fatalf("got %d slots, want %d", len(slots), len(labels))
	}
	for i, slot := range slots {
		if slot.Label != labels[i] {
			t.Errorf("slot[%d] = %q, want %q", i, slot.Label, labels[i])
		}
	}
}

func TestAddValidation(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	thID := newTherapist(t, client)

	tests := []struct {
		name    string
		label   string
		wantErr error
	}{
		{"empty", "", ErrEmptyLabel},
		{"whitespace only", "   ", ErrEmptyLabel},
		{"no clock time", "morning session", ErrBadLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, thID, tt.label)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add(%q) error = %v, want %v", tt.label, err, tt.wantErr)
			}
		})
	}
}

func TestAddDuplicate(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	thID := newTherapist(t, client)

	if _, err := svc.Add(ctx, thID, "10:00 AM - 11:00 AM"); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if _, err := svc.Add(ctx, thID, "10:00 AM - 11:00 AM"); !errors.Is(err, ErrDuplicateLabel) {
		t.Fatalf("second Add error = %v, want ErrDuplicateLabel", err)
	}

	// Another therapist may offer the same label.
	otherID := newTherapist(t, client)
	if _, err := svc.Add(ctx, otherID, "10:00 AM - 11:00 AM"); err != nil {
		t.Fatalf("other therapist Add: %v", err)
	}
}

func TestAddUnknownTherapist(t *testing.T) {
	client := newClient(t)
	svc := New(client)

	_, err := svc.Add(context.Background(), uuid.New(), "10:00 AM - 11:00 AM")
	if !errors.Is(err, ErrTherapistNotFound) {
		t.Fatalf("error = %v, want ErrTherapistNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	thID := newTherapist(t, client)

	if _, err := svc.Add(ctx, thID, "10:00 AM - 11:00 AM"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Remove(ctx, thID, "10:00 AM - 11:00 AM"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := svc.Remove(ctx, thID, "10:00 AM - 11:00 AM"); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("second Remove error = %v, want ErrSlotNotFound", err)
	}

	slots, err := svc.List(ctx, thID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %d slots after removal, want 0", len(slots))
	}
}

func TestReplace(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	thID := newTherapist(t, client)

	if _, err := svc.Add(ctx, thID, "8:00 AM - 9:00 AM"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	replacement := []string{"1:00 PM - 2:00 PM", "3:00 PM - 4:00 PM"}
	slots, err := svc.Replace(ctx, thID, replacement)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}

	listed, err := svc.List(ctx, thID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 2 || listed[0].Label != replacement[0] || listed[1].Label != replacement[1] {
		t.Fatalf("replaced list mismatch: %+v", listed)
	}
}

func TestReplaceRejectsDuplicates(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	thID := newTherapist(t, client)

	if _, err := svc.Add(ctx, thID, "8:00 AM - 9:00 AM"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	_, err := svc.Replace(ctx, thID, []string{"1:00 PM - 2:00 PM", "1:00 PM - 2:00 PM"})
	if !errors.Is(err, ErrDuplicateLabel) {
		t.Fatalf("Replace error = %v, want ErrDuplicateLabel", err)
	}

	// The original offering must be intact after the rejected replace.
	listed, err := svc.List(ctx, thID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 || listed[0].Label != "8:00 AM - 9:00 AM" {
		t.Fatalf("offering changed after failed replace: %+v", listed)
	}
}

func TestIsOffered(t *testing.T) {
	client := newClient(t)
	svc := New(client)
	ctx := context.Background()
	thID := newTherapist(t, client)

	if _, err := svc.Add(ctx, thID, "10:00 AM - 11:00 AM"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	offered, err := svc.IsOffered(ctx, thID, "10:00 AM - 11:00 AM")
	if err != nil {
		t.Fatalf("IsOffered: %v", err)
	}
	if !offered {
		t.Error("IsOffered = false, want true")
	}

	offered, err = svc.IsOffered(ctx, thID, "11:00 AM - 12:00 PM")
	if err != nil {
		t.Fatalf("IsOffered: %v", err)
	}
	if offered {
		t.Error("IsOffered = true, want false")
	}
}
