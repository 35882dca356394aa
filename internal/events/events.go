// Package events publishes domain events over NATS.
//
// Subjects follow wellnest.appointment.<event>.<appointment-id> and the
// message body is the appointment id, so subscribers re-read current
// state from the database instead of trusting a possibly stale payload.
package events

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	SubjectAppointmentCreated   = "wellnest.appointment.created"
	SubjectAppointmentApproved  = "wellnest.appointment.approved"
	SubjectAppointmentCancelled = "wellnest.appointment.cancelled"
)

// Publisher emits appointment lifecycle events. A nil *nats.Conn is
// accepted and turns every publish into a no-op, which keeps the
// services testable without a broker.
type Publisher struct {
	nc     *nats.Conn
	logger *slog.Logger
}

func NewPublisher(nc *nats.Conn, logger *slog.Logger) *Publisher {
	return &Publisher{nc: nc, logger: logger}
}

func (p *Publisher) AppointmentCreated(id uuid.UUID) {
	p.publish(SubjectAppointmentCreated, id)
}

func (p *Publisher) AppointmentApproved(id uuid.UUID) {
	p.publish(SubjectAppointmentApproved, id)
}

func (p *Publisher) AppointmentCancelled(id uuid.UUID) {
	p.publish(SubjectAppointmentCancelled, id)
}

func (p *Publisher) publish(subject string, id uuid.UUID) {
	if p == nil || p.nc == nil {
		return
	}
	full := fmt.Sprintf("%s.%s", subject, id)
	if err := p.nc.Publish(full, []byte(id.String())); err != nil {
		p.logger.Error("publish event failed",
			slog.String("subject", full),
			slog.String("error", err.Error()),
		)
	}
}
