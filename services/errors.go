package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrUserNotFound    = errors.New("user not found")

	// Returned by the capacity-enforcing create path when the day is full.
	ErrNoCapacity = errors.New("no available slots")
)

// ValidationError reports required booking fields that were missing from
// a request. Nothing is persisted when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// SendError wraps a notification transport failure. The booking
// orchestrator downgrades it to a non-fatal status; other callers may
// treat it as they see fit.
type SendError struct {
	Channel   string
	Recipient string
	Err       error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("%s send to %s failed: %v", e.Channel, e.Recipient, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}
