// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"

	"marquise-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// Points awarded to a registered user for every booking they create.
	LoyaltyAwardPerBooking = 100

	// Hard limit the availability check counts against.
	MaxBookingsPerServicePerDay = 3
)

const (
	EmailStatusSent            = "sent"
	EmailStatusDeferredFailure = "deferred-failure"
)

type BookingStore interface {
	Create(b *models.Booking) error
	CountForServiceDate(service, date string) (int64, error)
	CreateWithDailyCap(b *models.Booking, cap int) (bool, error)
}

type CatalogStore interface {
	ByName(name string) (*models.Service, error)
}

type IdentityStore interface {
	ByID(id uuid.UUID) (*models.User, error)
}

type LoyaltyLedger interface {
	AddPoints(userID uuid.UUID, amount int) (*models.LoyaltyPoints, error)
}

type ConfirmationSender interface {
	SendConfirmation(b *models.Booking) error
}

type FollowUpScheduler interface {
	ScheduleFollowUps(b *models.Booking) error
}

type BookingInput struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Date    string
	Time    string
	UserID  *uuid.UUID
}

type BookingResult struct {
	Booking        *models.Booking
	BookingCreated bool
	EmailStatus    string
	Message        string
}

// BookingService coordinates the whole booking flow: validation, the
// booking row, the loyalty award, the confirmation email and the two
// follow-up jobs. The booking row is the source of truth; everything
// after the insert is best-effort.
type BookingService struct {
	bookings  BookingStore
	catalog   CatalogStore
	identity  IdentityStore
	loyalty   LoyaltyLedger
	notifier  ConfirmationSender
	followups FollowUpScheduler

	enforceCapacity bool
}

func NewBookingService(
	bookings BookingStore,
	catalog CatalogStore,
	identity IdentityStore,
	loyalty LoyaltyLedger,
	notifier ConfirmationSender,
	followups FollowUpScheduler,
	enforceCapacity bool,
) *BookingService {
	return &BookingService{
		bookings:        bookings,
		catalog:         catalog,
		identity:        identity,
		loyalty:         loyalty,
		notifier:        notifier,
		followups:       followups,
		enforceCapacity: enforceCapacity,
	}
}

func (s *BookingService) Create(in BookingInput) (*BookingResult, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Service == "" {
		missing = append(missing, "service")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	if in.Time == "" {
		missing = append(missing, "time")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	svc, err := s.catalog.ByName(in.Service)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, in.Service)
		}
		return nil, err
	}

	var user *models.User
	if in.UserID != nil {
		user, err = s.identity.ByID(*in.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUserNotFound, in.UserID)
			}
			return nil, err
		}
	}

	booking := &models.Booking{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Service: svc.Name,
		Date:    in.Date,
		Time:    in.Time,
		Status:  models.BookingStatusPending,
		UserID:  in.UserID,
	}

	if s.enforceCapacity {
		created, err := s.bookings.CreateWithDailyCap(booking, MaxBookingsPerServicePerDay)
		if err != nil {
			return nil, err
		}
		if !created {
			return nil, fmt.Errorf("%w for %s on %s", ErrNoCapacity, svc.Name, in.Date)
		}
	} else {
		if err := s.bookings.Create(booking); err != nil {
			return nil, err
		}
	}

	// The booking is committed from here on. The loyalty award, the
	// confirmation email and the follow-up jobs must not undo it.
	if user != nil {
		if _, err := s.loyalty.AddPoints(user.ID, LoyaltyAwardPerBooking); err != nil {
			log.Printf("Failed to award loyalty points to user %s: %v", user.ID, err)
		}
	}

	emailStatus := EmailStatusSent
	message := "Booking confirmed! A confirmation email has been sent."
	if err := s.notifier.SendConfirmation(booking); err != nil {
		log.Printf("Failed to send confirmation for booking %s: %v", booking.ID, err)
		emailStatus = EmailStatusDeferredFailure
		message = "Booking confirmed! We could not send the confirmation email right now; please contact support if it does not arrive."
	}

	if err := s.followups.ScheduleFollowUps(booking); err != nil {
		log.Printf("Failed to schedule follow-ups for booking %s: %v", booking.ID, err)
	}

	return &BookingResult{
		Booking:        booking,
		BookingCreated: true,
		EmailStatus:    emailStatus,
		Message:        message,
	}, nil
}

// CheckAvailability reports whether a service still has slots on a date.
// The count and any later insert are separate statements, so this is
// advisory: two concurrent callers can both see a free slot. Only the
// capacity-enforcing create path closes that race.
func (s *BookingService) CheckAvailability(service, date string) (bool, error) {
	if _, err := s.catalog.ByName(service); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: %s", ErrServiceNotFound, service)
		}
		return false, err
	}

	count, err := s.bookings.CountForServiceDate(service, date)
	if err != nil {
		return false, err
	}
	return count < MaxBookingsPerServicePerDay, nil
}

// Estimate returns the cost of a service for a number of hours.
func (s *BookingService) Estimate(service string, hours int) (float64, error) {
	if hours <= 0 {
		return 0, &ValidationError{Fields: []string{"hours"}}
	}
	svc, err := s.catalog.ByName(service)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: %s", ErrServiceNotFound, service)
		}
		return 0, err
	}
	return float64(hours) * svc.PricePerHour, nil
}
