package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/wellnest-hq/wellnest_backend/internal/repo"
	entappt "github.com/wellnest-hq/wellnest_backend/internal/repo/appointment"
	enttherapist "github.com/wellnest-hq/wellnest_backend/internal/repo/therapist"
	entuser "github.com/wellnest-hq/wellnest_backend/internal/repo/user"
	"github.com/wellnest-hq/wellnest_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn
	DB    *repo.Client
	Email *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startEmailWorker(p.NC, p.DB, p.Email)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// email_worker
// ---------------------------------------------------------------------------

func startEmailWorker(nc *nats.Conn, db *repo.Client, mail *email.Client) {
	// New booking: tell the therapist a request is waiting
	_, err := nc.Subscribe("wellnest.appointment.created.*", func(msg *nats.Msg) {
		appt, therapist, _, ok := loadParties(db, msg.Data)
		if !ok {
			return
		}

		data := emailData(appt)
		data.RecipientName = therapist.DisplayName
		data.RecipientEmail = therapist.Email

		sendMail(mail, email.BuildBookingRequestedEmail(data), "booking requested")
	})
	if err != nil {
		slog.Error("email_worker: subscribe appointment.created failed", "err", err)
	}

	// Approval: confirm to the user
	_, err = nc.Subscribe("wellnest.appointment.approved.*", func(msg *nats.Msg) {
		appt, _, user, ok := loadParties(db, msg.Data)
		if !ok {
			return
		}

		data := emailData(appt)
		data.RecipientName = user.DisplayName
		data.RecipientEmail = user.Email

		sendMail(mail, email.BuildBookingApprovedEmail(data), "booking approved")
	})
	if err != nil {
		slog.Error("email_worker: subscribe appointment.approved failed", "err", err)
	}

	// Cancellation: both parties hear about it
	_, err = nc.Subscribe("wellnest.appointment.cancelled.*", func(msg *nats.Msg) {
		appt, therapist, user, ok := loadParties(db, msg.Data)
		if !ok {
			return
		}

		userData := emailData(appt)
		userData.RecipientName = user.DisplayName
		userData.RecipientEmail = user.Email
		sendMail(mail, email.BuildBookingCancelledEmail(userData), "booking cancelled")

		therapistData := emailData(appt)
		therapistData.RecipientName = therapist.DisplayName
		therapistData.RecipientEmail = therapist.Email
		sendMail(mail, email.BuildBookingCancelledEmail(therapistData), "booking cancelled")
	})
	if err != nil {
		slog.Error("email_worker: subscribe appointment.cancelled failed", "err", err)
	}

	slog.Info("email_worker: started")
}

// loadParties resolves the appointment in the message body plus both accounts.
func loadParties(db *repo.Client, body []byte) (*repo.Appointment, *repo.Therapist, *repo.User, bool) {
	apptIDStr := strings.TrimSpace(string(body))
	apptID, err := uuid.Parse(apptIDStr)
	if err != nil {
		return nil, nil, nil, false
	}

	ctx := context.Background()

	appt, err := db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		slog.Warn("email_worker: appointment not found", "id", apptIDStr, "err", err)
		return nil, nil, nil, false
	}

	therapist, err := db.Therapist.Query().
		Where(enttherapist.ID(appt.TherapistID)).
		Only(ctx)
	if err != nil {
		slog.Warn("email_worker: therapist not found", "id", appt.TherapistID, "err", err)
		return nil, nil, nil, false
	}

	user, err := db.User.Query().
		Where(entuser.ID(appt.UserID)).
		Only(ctx)
	if err != nil {
		slog.Warn("email_worker: user not found", "id", appt.UserID, "err", err)
		return nil, nil, nil, false
	}

	return appt, therapist, user, true
}

func emailData(appt *repo.Appointment) email.AppointmentEmailData {
	return email.AppointmentEmailData{
		TherapistName: appt.TherapistName,
		UserName:      appt.UserName,
		Date:          appt.AppointmentDate,
		SlotLabel:     appt.SlotLabel,
		SessionType:   string(appt.SessionType),
	}
}

func sendMail(mail *email.Client, msg email.Message, kind string) {
	if err := mail.Send(context.Background(), msg); err != nil {
		var disabled email.ErrDisabled
		if errors.As(err, &disabled) {
			slog.Debug("email_worker: email disabled, skipping", "kind", kind)
			return
		}
		slog.Warn("email_worker: send failed", "kind", kind, "err", err)
	}
}
