package email

import (
	"fmt"
)

// AppointmentEmailData carries everything the appointment templates render.
type AppointmentEmailData struct {
	RecipientName  string
	RecipientEmail string
	TherapistName  string
	UserName       string
	Date           string // e.g. "2026-09-14"
	SlotLabel      string // e.g. "10:00 AM - 11:00 AM"
	SessionType    string // e.g. "online"
	AppName        string
}

func (d AppointmentEmailData) appName() string {
	if d.AppName == "" {
		return "Well Nest"
	}
	return d.AppName
}

func (d AppointmentEmailData) recipient() string {
	if d.RecipientName == "" {
		return "there"
	}
	return d.RecipientName
}

// BuildBookingRequestedEmail notifies a therapist that a new booking is
// waiting for their approval.
func BuildBookingRequestedEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("New booking request for %s", data.Date)

	textBody := fmt.Sprintf(`Hi %s,

%s requested a %s session with you.

Date: %s
Time: %s

Open the app to approve or decline this request.

Thanks,
The %s Team`,
		data.recipient(), data.UserName, data.SessionType, data.Date, data.SlotLabel, data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p><strong>%s</strong> requested a %s session with you.</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        <strong>Date:</strong> %s<br>
        <strong>Time:</strong> %s
    </p>
    <p>Open the app to approve or decline this request.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.recipient(), data.UserName, data.SessionType, data.Date, data.SlotLabel, data.appName())

	return Message{
		To:       []string{data.RecipientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildBookingApprovedEmail confirms to a user that their booking was approved.
func BuildBookingApprovedEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Your appointment on %s is confirmed", data.Date)

	textBody := fmt.Sprintf(`Hi %s,

Your %s session with %s is confirmed.

Date: %s
Time: %s

See you then!

Thanks,
The %s Team`,
		data.recipient(), data.SessionType, data.TherapistName, data.Date, data.SlotLabel, data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Your %s session with <strong>%s</strong> is confirmed.</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        <strong>Date:</strong> %s<br>
        <strong>Time:</strong> %s
    </p>
    <p>See you then!</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.recipient(), data.SessionType, data.TherapistName, data.Date, data.SlotLabel, data.appName())

	return Message{
		To:       []string{data.RecipientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildBookingCancelledEmail tells a party that the appointment was cancelled.
func BuildBookingCancelledEmail(data AppointmentEmailData) Message {
	subject := fmt.Sprintf("Appointment on %s was cancelled", data.Date)

	textBody := fmt.Sprintf(`Hi %s,

The %s session on %s at %s was cancelled.

The time slot is available again, you can book a new appointment any time.

Thanks,
The %s Team`,
		data.recipient(), data.SessionType, data.Date, data.SlotLabel, data.appName())

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #ef4444;">Hi %s,</h2>
    <p>The %s session on <strong>%s</strong> at <strong>%s</strong> was cancelled.</p>
    <p>The time slot is available again, you can book a new appointment any time.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.recipient(), data.SessionType, data.Date, data.SlotLabel, data.appName())

	return Message{
		To:       []string{data.RecipientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
