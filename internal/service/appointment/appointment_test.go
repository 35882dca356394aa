package appointment

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/wellnest-hq/wellnest_backend/internal/events"
	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	entappt "github.com/wellnest-hq/wellnest_backend/internal/repo/appointment"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/enttest"
)

type fixture struct {
	client      *repo.Client
	svc         Service
	therapistID uuid.UUID
	userID      uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:appointment?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	pub := events.NewPublisher(nil, slog.Default())
	return &fixture{
		client:      client,
		svc:         New(client, pub),
		therapistID: uuid.New(),
		userID:      uuid.New(),
	}
}

func (f *fixture) create(t *testing.T, startsAt time.Time, status entappt.Status) *repo.Appointment {
	t.Helper()
	appt, err := f.client.Appointment.Create().
		SetTherapistID(f.therapistID).
		SetUserID(f.userID).
		SetTherapistName("Dr. Sarah Johnson").
		SetUserName("Alex Rivera").
		SetAppointmentDate(startsAt.Format("2006-01-02")).
		SetSlotLabel(startsAt.Format("3:04 PM") + " - " + startsAt.Add(time.Hour).Format("3:04 PM")).
		SetStartsAt(startsAt).
		SetSessionType(entappt.SessionTypeOnline).
		SetStatus(status).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return appt
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.create(t, time.Now().Add(24*time.Hour), entappt.StatusPending)

	got, err := f.svc.Get(ctx, appt.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != appt.ID {
		t.Errorf("got id %s, want %s", got.ID, appt.ID)
	}

	if _, err := f.svc.Get(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get unknown error = %v, want ErrNotFound", err)
	}
}

func TestScheduleSplit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()

	nextWeek := f.create(t, now.Add(7*24*time.Hour), entappt.StatusApproved)
	tomorrow := f.create(t, now.Add(24*time.Hour), entappt.StatusPending)
	lastWeek := f.create(t, now.Add(-7*24*time.Hour), entappt.StatusApproved)
	yesterday := f.create(t, now.Add(-24*time.Hour), entappt.StatusApproved)
	cancelledFuture := f.create(t, now.Add(48*time.Hour), entappt.StatusCancelled)

	sched, err := f.svc.ListForUser(ctx, f.userID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}

	// Upcoming is soonest first and excludes the cancelled booking.
	if len(sched.Upcoming) != 2 {
		t.Fatalf("upcoming = %d, want 2", len(sched.Upcoming))
	}
	if sched.Upcoming[0].ID != tomorrow.ID || sched.Upcoming[1].ID != nextWeek.ID {
		t.Errorf("upcoming order wrong: %v then %v", sched.Upcoming[0].ID, sched.Upcoming[1].ID)
	}

	// Past is most recent first and includes the cancelled future one.
	if len(sched.Past) != 3 {
		t.Fatalf("past = %d, want 3", len(sched.Past))
	}
	if sched.Past[0].ID != cancelledFuture.ID ||
		sched.Past[1].ID != yesterday.ID ||
		sched.Past[2].ID != lastWeek.ID {
		t.Errorf("past order wrong")
	}

	// The therapist-side view reads the same records.
	thSched, err := f.svc.ListForTherapist(ctx, f.therapistID)
	if err != nil {
		t.Fatalf("ListForTherapist: %v", err)
	}
	if len(thSched.Upcoming) != 2 || len(thSched.Past) != 3 {
		t.Errorf("therapist schedule = %d/%d, want 2/3",
			len(thSched.Upcoming), len(thSched.Past))
	}
}

func TestHistoryOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Booked first but for a later session date.
	first := f.create(t, now.Add(30*24*time.Hour), entappt.StatusPending)
	time.Sleep(10 * time.Millisecond)
	second := f.create(t, now.Add(24*time.Hour), entappt.StatusPending)

	hist, err := f.svc.History(ctx, f.userID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("history = %d, want 2", len(hist))
	}
	// Newest booking first, regardless of session date.
	if hist[0].ID != second.ID || hist[1].ID != first.ID {
		t.Errorf("history order wrong")
	}
}

func TestApprove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.create(t, time.Now().Add(24*time.Hour), entappt.StatusPending)

	if err := f.svc.Approve(ctx, f.therapistID, appt.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	got, err := f.svc.Get(ctx, appt.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != entappt.StatusApproved {
		t.Errorf("status = %s, want approved", got.Status)
	}

	// Approved is terminal.
	if err := f.svc.Approve(ctx, f.therapistID, appt.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Approve error = %v, want ErrInvalidTransition", err)
	}
	if err := f.svc.Cancel(ctx, f.therapistID, appt.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Cancel after approve error = %v, want ErrInvalidTransition", err)
	}
}

func TestApproveOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.create(t, time.Now().Add(24*time.Hour), entappt.StatusPending)

	if err := f.svc.Approve(ctx, uuid.New(), appt.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("Approve by stranger error = %v, want ErrNotOwner", err)
	}
	if err := f.svc.Approve(ctx, f.therapistID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Approve unknown error = %v, want ErrNotFound", err)
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// The user on the appointment may cancel.
	appt := f.create(t, time.Now().Add(24*time.Hour), entappt.StatusPending)
	if err := f.svc.Cancel(ctx, f.userID, appt.ID); err != nil {
		t.Fatalf("Cancel by user: %v", err)
	}
	got, _ := f.svc.Get(ctx, appt.ID)
	if got.Status != entappt.StatusCancelled {
		t.Errorf("status = %s, want cancelled", got.Status)
	}

	// So may the therapist.
	appt2 := f.create(t, time.Now().Add(48*time.Hour), entappt.StatusPending)
	if err := f.svc.Cancel(ctx, f.therapistID, appt2.ID); err != nil {
		t.Fatalf("Cancel by therapist: %v", err)
	}

	// A stranger may not.
	appt3 := f.create(t, time.Now().Add(72*time.Hour), entappt.StatusPending)
	if err := f.svc.Cancel(ctx, uuid.New(), appt3.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("Cancel by stranger error = %v, want ErrNotOwner", err)
	}

	// Cancelled is terminal.
	if err := f.svc.Cancel(ctx, f.userID, appt.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Cancel error = %v, want ErrInvalidTransition", err)
	}
	if err := f.svc.Approve(ctx, f.therapistID, appt.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Approve after cancel error = %v, want ErrInvalidTransition", err)
	}
}
