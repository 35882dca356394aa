package email

import (
	"strings"
	"testing"
)

func testData() AppointmentEmailData {
	return AppointmentEmailData{
		RecipientName:  "Dana",
		RecipientEmail: "dana@example.com",
		TherapistName:  "Dr. Lee",
		UserName:       "Sam",
		Date:           "2026-09-14",
		SlotLabel:      "10:00 AM - 11:00 AM",
		SessionType:    "online",
	}
}

func TestBuildBookingRequestedEmail(t *testing.T) {
	msg := BuildBookingRequestedEmail(testData())

	if len(msg.To) != 1 || msg.To[0] != "dana@example.com" {
		t.Fatalf("To = %v, want recipient email", msg.To)
	}
	if !strings.Contains(msg.Subject, "2026-09-14") {
		t.Errorf("subject %q should carry the date", msg.Subject)
	}
	for _, want := range []string{"Sam", "10:00 AM - 11:00 AM", "online"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestBuildBookingApprovedEmailNamesTherapist(t *testing.T) {
	msg := BuildBookingApprovedEmail(testData())

	if !strings.Contains(msg.TextBody, "Dr. Lee") {
		t.Errorf("approved email should name the therapist, got %q", msg.TextBody)
	}
}

func TestTemplateDefaults(t *testing.T) {
	d := AppointmentEmailData{RecipientEmail: "x@example.com", Date: "2026-01-01"}
	msg := BuildBookingCancelledEmail(d)

	if !strings.Contains(msg.TextBody, "Hi there,") {
		t.Errorf("empty recipient name should fall back to a greeting, got %q", msg.TextBody)
	}
	if !strings.Contains(msg.TextBody, "Well Nest") {
		t.Errorf("empty app name should fall back to Well Nest")
	}
}
