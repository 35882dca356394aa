package booking

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/wellnest-hq/wellnest_backend/internal/events"
	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	entappt "github.com/wellnest-hq/wellnest_backend/internal/repo/appointment"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/enttest"
	"github.com/wellnest-hq/wellnest_backend/internal/repo/hook"
	"github.com/wellnest-hq/wellnest_backend/internal/service/appointment"
	"github.com/wellnest-hq/wellnest_backend/internal/service/availability"
	"github.com/wellnest-hq/wellnest_backend/pkg/util/slotlabel"
)

type fixture struct {
	client      *repo.Client
	svc         Service
	therapistID uuid.UUID
	userID      uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:booking?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()

	th, err := client.Therapist.Create().
		SetDisplayName("Dr. Sarah Johnson").
		SetEmail(uuid.NewString() + "@example.com").
		SetPasswordHash("x").
		SetSpecialization("Cognitive Behavioral Therapy").
		Save(ctx)
	if err != nil {
		t.Fatalf("create therapist: %v", err)
	}

	u, err := client.User.Create().
		SetDisplayName("Alex Rivera").
		SetEmail(uuid.NewString() + "@example.com").
		SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := client.AvailabilitySlot.Create().
		SetTherapistID(th.ID).
		SetLabel("10:00 AM - 11:00 AM").
		SetPosition(0).
		Save(ctx); err != nil {
		t.Fatalf("create slot: %v", err)
	}

	pub := events.NewPublisher(nil, slog.Default())
	return &fixture{
		client:      client,
		svc:         New(client, availability.New(client), pub),
		therapistID: th.ID,
		userID:      u.ID,
	}
}

func (f *fixture) request() BookRequest {
	return BookRequest{
		TherapistID: f.therapistID,
		UserID:      f.userID,
		Date:        "2026-09-14",
		SlotLabel:   "10:00 AM - 11:00 AM",
		SessionType: "online",
	}
}

func TestBook(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt, err := f.svc.Book(ctx, f.request())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if appt.Status != entappt.StatusPending {
		t.Errorf("status = %s, want pending", appt.Status)
	}
	if appt.TherapistName != "Dr. Sarah Johnson" {
		t.Errorf("therapist name snapshot = %q", appt.TherapistName)
	}
	if appt.UserName != "Alex Rivera" {
		t.Errorf("user name snapshot = %q", appt.UserName)
	}
	if appt.StartsAt.Hour() != 10 {
		t.Errorf("starts_at hour = %d, want 10", appt.StartsAt.Hour())
	}
	if appt.SessionType != entappt.SessionTypeOnline {
		t.Errorf("session type = %s, want online", appt.SessionType)
	}
}

func TestBookConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Book(ctx, f.request()); err != nil {
		t.Fatalf("first Book: %v", err)
	}
	if _, err := f.svc.Book(ctx, f.request()); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("second Book error = %v, want ErrSlotTaken", err)
	}

	// Same slot on a different date is fine.
	req := f.request()
	req.Date = "2026-09-15"
	if _, err := f.svc.Book(ctx, req); err != nil {
		t.Fatalf("different date Book: %v", err)
	}
}

func TestBookConflictUnderRace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Slip a competing appointment in after Book's conflict check has
	// passed, so the insert itself lands on the unique index.
	var raced bool
	f.client.Appointment.Use(func(next repo.Mutator) repo.Mutator {
		return hook.AppointmentFunc(func(ctx context.Context, m *repo.AppointmentMutation) (repo.Value, error) {
			if !raced && m.Op().Is(repo.OpCreate) {
				raced = true
				startsAt, err := slotlabel.Resolve("2026-09-14", "10:00 AM - 11:00 AM")
				if err != nil {
					t.Fatalf("resolve label: %v", err)
				}
				if _, err := f.client.Appointment.Create().
					SetTherapistID(f.therapistID).
					SetUserID(f.userID).
					SetTherapistName("Dr. Sarah Johnson").
					SetUserName("Alex Rivera").
					SetAppointmentDate("2026-09-14").
					SetSlotLabel("10:00 AM - 11:00 AM").
					SetStartsAt(startsAt).
					SetSessionType(entappt.SessionTypeOnline).
					Save(ctx); err != nil {
					t.Fatalf("competing create: %v", err)
				}
			}
			return next.Mutate(ctx, m)
		})
	})

	if _, err := f.svc.Book(ctx, f.request()); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("Book error = %v, want ErrSlotTaken", err)
	}
}

func TestBookAfterCancelFreesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt, err := f.svc.Book(ctx, f.request())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if err := f.client.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		Exec(ctx); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := f.svc.Book(ctx, f.request()); err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}
}

func TestBookValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*BookRequest)
		wantErr error
	}{
		{"bad date", func(r *BookRequest) { r.Date = "14/09/2026" }, ErrBadDate},
		{"label not offered", func(r *BookRequest) { r.SlotLabel = "11:00 AM - 12:00 PM" }, ErrSlotNotOffered},
		{"unparseable label", func(r *BookRequest) { r.SlotLabel = "sometime" }, ErrBadLabel},
		{"bad session type", func(r *BookRequest) { r.SessionType = "via pigeon" }, ErrBadSessionType},
		{"unknown therapist", func(r *BookRequest) { r.TherapistID = uuid.New() }, ErrTherapistNotFound},
		{"unknown user", func(r *BookRequest) { r.UserID = uuid.New() }, ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request()
			tt.mutate(&req)
			_, err := f.svc.Book(ctx, req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Book error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBookSessionTypeAliases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := f.request()
	req.SessionType = "In-Person"
	appt, err := f.svc.Book(ctx, req)
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if appt.SessionType != entappt.SessionTypeInPerson {
		t.Errorf("session type = %s, want in_person", appt.SessionType)
	}
}

func TestBookApproveLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booked, err := f.svc.Book(ctx, f.request())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	ledger := appointment.New(f.client, events.NewPublisher(nil, slog.Default()))

	// The single record is visible from both parties' schedules.
	userSched, err := ledger.ListForUser(ctx, f.userID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	thSched, err := ledger.ListForTherapist(ctx, f.therapistID)
	if err != nil {
		t.Fatalf("ListForTherapist: %v", err)
	}
	if len(userSched.Upcoming) != 1 || userSched.Upcoming[0].ID != booked.ID {
		t.Fatalf("user upcoming = %v, want the booked appointment", userSched.Upcoming)
	}
	if len(thSched.Upcoming) != 1 || thSched.Upcoming[0].ID != booked.ID {
		t.Fatalf("therapist upcoming = %v, want the booked appointment", thSched.Upcoming)
	}

	if err := ledger.Approve(ctx, f.therapistID, booked.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	got, err := ledger.Get(ctx, booked.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != entappt.StatusApproved {
		t.Errorf("status = %s, want approved", got.Status)
	}

	// Approved is terminal; a second transition must fail.
	if err := ledger.Cancel(ctx, f.userID, booked.ID); !errors.Is(err, appointment.ErrInvalidTransition) {
		t.Fatalf("Cancel after approve error = %v, want ErrInvalidTransition", err)
	}
}

func TestBookNotAccepting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.client.Therapist.Update().
		SetIsAccepting(false).
		Exec(ctx); err != nil {
		t.Fatalf("update therapist: %v", err)
	}

	if _, err := f.svc.Book(ctx, f.request()); !errors.Is(err, ErrNotAccepting) {
		t.Fatalf("Book error = %v, want ErrNotAccepting", err)
	}
}
