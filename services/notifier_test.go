package services

import (
	"errors"
	"strings"
	"testing"

	"marquise-backend/models"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailSender struct {
	sent []sentMail
	err  error
}

func (f *fakeMailSender) Send(to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

type fakeSMSSender struct {
	sent []string
	err  error
}

func (f *fakeSMSSender) Send(to, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+": "+body)
	return nil
}

func TestSendConfirmationRendersBookingFields(t *testing.T) {
	mail := &fakeMailSender{}
	n := NewNotifier(mail, nil)

	err := n.SendConfirmation(&models.Booking{
		Name:    "Ada",
		Email:   "a@b.com",
		Service: "Cleaning",
		Date:    "2024-06-01",
		Time:    "10:00",
	})
	if err != nil {
		t.Fatalf("SendConfirmation failed: %v", err)
	}

	if len(mail.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(mail.sent))
	}
	m := mail.sent[0]
	if m.To != "a@b.com" {
		t.Errorf("wrong recipient: %s", m.To)
	}
	if m.Subject != "Booking Confirmation - Marquise's Services" {
		t.Errorf("wrong subject: %s", m.Subject)
	}
	for _, want := range []string{"Ada", "Cleaning", "2024-06-01", "10:00"} {
		if !strings.Contains(m.Body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestSendConfirmationTransportFailure(t *testing.T) {
	mail := &fakeMailSender{err: errors.New("connection refused")}
	n := NewNotifier(mail, nil)

	err := n.SendConfirmation(&models.Booking{Name: "Ada", Email: "a@b.com", Service: "Cleaning"})

	var serr *SendError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SendError, got %v", err)
	}
	if serr.Channel != "email" || serr.Recipient != "a@b.com" {
		t.Errorf("SendError misses transport detail: %+v", serr)
	}
}

func TestSendReminderUsesSMSAsSecondaryChannel(t *testing.T) {
	mail := &fakeMailSender{}
	sms := &fakeSMSSender{}
	n := NewNotifier(mail, sms)

	job := &models.FollowUpJob{
		Name:    "Ada",
		Email:   "a@b.com",
		Phone:   "+15551234567",
		Service: "Moving",
		Date:    "2024-06-01",
		Time:    "09:00",
	}

	if err := n.SendReminder(job); err != nil {
		t.Fatalf("SendReminder failed: %v", err)
	}
	if len(mail.sent) != 1 {
		t.Errorf("expected reminder email, got %d", len(mail.sent))
	}
	if len(sms.sent) != 1 {
		t.Errorf("expected reminder SMS when a phone is present, got %d", len(sms.sent))
	}

	// SMS failure never fails the reminder.
	sms.err = errors.New("twilio 429")
	if err := n.SendReminder(job); err != nil {
		t.Errorf("SMS failure should not fail the reminder, got %v", err)
	}

	// No phone, no SMS attempt.
	sms.err = nil
	sms.sent = nil
	job.Phone = ""
	if err := n.SendReminder(job); err != nil {
		t.Fatalf("SendReminder failed: %v", err)
	}
	if len(sms.sent) != 0 {
		t.Error("no SMS should be attempted without a phone number")
	}
}

func TestSendFeedbackRequest(t *testing.T) {
	mail := &fakeMailSender{}
	n := NewNotifier(mail, nil)

	job := &models.FollowUpJob{Name: "Ada", Email: "a@b.com", Service: "Cleaning", Date: "2024-06-01"}
	if err := n.SendFeedbackRequest(job); err != nil {
		t.Fatalf("SendFeedbackRequest failed: %v", err)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(mail.sent))
	}
	if !strings.Contains(mail.sent[0].Subject, "How did we do") {
		t.Errorf("unexpected subject: %s", mail.sent[0].Subject)
	}
	if !strings.Contains(mail.sent[0].Body, "Cleaning") {
		t.Error("feedback body should mention the service")
	}
}
