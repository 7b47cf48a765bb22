// services/followup_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"marquise-backend/models"
	"marquise-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type FollowUpStore interface {
	Create(job *models.FollowUpJob) error
	Due(now time.Time) ([]models.FollowUpJob, error)
	MarkSent(id uuid.UUID, at time.Time) (bool, error)
}

type FollowUpSender interface {
	SendReminder(job *models.FollowUpJob) error
	SendFeedbackRequest(job *models.FollowUpJob) error
}

// FollowUpService schedules and delivers the two one-shot notifications
// tied to every booking: a reminder the day before the service date and
// a feedback request the day after. Jobs live in the database and are
// claimed by a polling worker, so a restart loses nothing and a job
// whose fire time has already passed goes out on the next poll.
type FollowUpService struct {
	jobs   FollowUpStore
	sender FollowUpSender
	cron   *cron.Cron
	now    func() time.Time
}

func NewFollowUpService(jobs FollowUpStore, sender FollowUpSender) *FollowUpService {
	return &FollowUpService{
		jobs:   jobs,
		sender: sender,
		now:    time.Now,
	}
}

// ScheduleFollowUps registers the reminder and feedback jobs for a
// booking. Fire times are offsets of the calendar date only; the
// booking's time field is carried along for the message text but plays
// no part in when the jobs fire.
func (s *FollowUpService) ScheduleFollowUps(b *models.Booking) error {
	day, err := utils.ParseBookingDate(b.Date)
	if err != nil {
		return fmt.Errorf("cannot schedule follow-ups for booking %s: %w", b.ID, err)
	}

	jobs := []models.FollowUpJob{
		{
			BookingID: b.ID,
			Kind:      models.FollowUpKindReminder,
			Email:     b.Email,
			Phone:     b.Phone,
			Name:      b.Name,
			Service:   b.Service,
			Date:      b.Date,
			Time:      b.Time,
			FireAt:    day.AddDate(0, 0, -1),
		},
		{
			BookingID: b.ID,
			Kind:      models.FollowUpKindFeedback,
			Email:     b.Email,
			Name:      b.Name,
			Service:   b.Service,
			Date:      b.Date,
			Time:      b.Time,
			FireAt:    day.AddDate(0, 0, 1),
		},
	}

	for i := range jobs {
		if err := s.jobs.Create(&jobs[i]); err != nil {
			return fmt.Errorf("cannot schedule %s job for booking %s: %w", jobs[i].Kind, b.ID, err)
		}
	}
	return nil
}

// StartScheduler begins polling for due jobs. It also runs one delivery
// pass immediately to catch up on anything that came due while the
// process was down.
func (s *FollowUpService) StartScheduler() {
	c := cron.New()

	c.AddFunc("@every 1m", s.DeliverDue)

	s.DeliverDue()

	c.Start()
	s.cron = c
	log.Println("Follow-up scheduler started")
}

func (s *FollowUpService) StopScheduler() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// DeliverDue sends every unsent job whose fire time has passed. A failed
// send is left unsent and retried on the next poll; a successful send is
// marked exactly once.
func (s *FollowUpService) DeliverDue() {
	due, err := s.jobs.Due(s.now())
	if err != nil {
		log.Printf("Failed to fetch due follow-up jobs: %v", err)
		return
	}

	for _, job := range due {
		var sendErr error
		switch job.Kind {
		case models.FollowUpKindReminder:
			sendErr = s.sender.SendReminder(&job)
		case models.FollowUpKindFeedback:
			sendErr = s.sender.SendFeedbackRequest(&job)
		default:
			log.Printf("Skipping follow-up job %s with unknown kind %q", job.ID, job.Kind)
			continue
		}

		if sendErr != nil {
			log.Printf("Failed to deliver %s follow-up %s to %s: %v", job.Kind, job.ID, job.Email, sendErr)
			continue
		}

		marked, err := s.jobs.MarkSent(job.ID, s.now())
		if err != nil {
			log.Printf("Failed to mark follow-up %s as sent: %v", job.ID, err)
		} else if !marked {
			log.Printf("Follow-up %s was already marked sent", job.ID)
		}
	}
}
