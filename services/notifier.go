// services/notifier.go
package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"

	"marquise-backend/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Sender is the mail transport capability the notifier hands rendered
// messages to.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMSSender is the optional text-message channel used for reminders when
// a booking carries a phone number.
type SMSSender interface {
	Send(to, body string) error
}

// Notifier renders named templates and dispatches them. Transport
// failures come back as *SendError; callers decide whether that is
// fatal.
type Notifier struct {
	mail Sender
	sms  SMSSender
}

func NewNotifier(mail Sender, sms SMSSender) *Notifier {
	return &Notifier{mail: mail, sms: sms}
}

type emailData struct {
	Name    string
	Service string
	Date    string
	Time    string
}

func renderEmail(name string, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (n *Notifier) SendConfirmation(b *models.Booking) error {
	body, err := renderEmail("booking_confirmation.html", emailData{
		Name:    b.Name,
		Service: b.Service,
		Date:    b.Date,
		Time:    b.Time,
	})
	if err != nil {
		return &SendError{Channel: "email", Recipient: b.Email, Err: err}
	}
	if err := n.mail.Send(b.Email, "Booking Confirmation - Marquise's Services", body); err != nil {
		return &SendError{Channel: "email", Recipient: b.Email, Err: err}
	}
	return nil
}

func (n *Notifier) SendReminder(job *models.FollowUpJob) error {
	body, err := renderEmail("booking_reminder.html", emailData{
		Name:    job.Name,
		Service: job.Service,
		Date:    job.Date,
		Time:    job.Time,
	})
	if err != nil {
		return &SendError{Channel: "email", Recipient: job.Email, Err: err}
	}
	if err := n.mail.Send(job.Email, "Booking Reminder - Marquise's Services", body); err != nil {
		return &SendError{Channel: "email", Recipient: job.Email, Err: err}
	}

	// SMS is a secondary channel; a failure there never fails the job.
	if n.sms != nil && job.Phone != "" {
		sms := fmt.Sprintf("Reminder: your %s booking is tomorrow, %s at %s. - Marquise's Services",
			job.Service, job.Date, job.Time)
		if err := n.sms.Send(job.Phone, sms); err != nil {
			log.Printf("Failed to send reminder SMS to %s: %v", job.Phone, err)
		}
	}
	return nil
}

func (n *Notifier) SendFeedbackRequest(job *models.FollowUpJob) error {
	body, err := renderEmail("feedback_request.html", emailData{
		Name:    job.Name,
		Service: job.Service,
		Date:    job.Date,
		Time:    job.Time,
	})
	if err != nil {
		return &SendError{Channel: "email", Recipient: job.Email, Err: err}
	}
	if err := n.mail.Send(job.Email, "How did we do? - Marquise's Services", body); err != nil {
		return &SendError{Channel: "email", Recipient: job.Email, Err: err}
	}
	return nil
}
