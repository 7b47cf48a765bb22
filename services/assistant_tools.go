// services/assistant_tools.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"marquise-backend/models"
)

type toolDef struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

var assistantTools = []toolDef{
	{
		Type: "function",
		Function: toolFunction{
			Name:        "check_availability",
			Description: "Check whether a service has open slots on a date.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"service": map[string]interface{}{"type": "string", "description": "Service name, e.g. Cleaning"},
					"date":    map[string]interface{}{"type": "string", "description": "Date in YYYY-MM-DD format"},
				},
				"required": []string{"service", "date"},
			},
		},
	},
	{
		Type: "function",
		Function: toolFunction{
			Name:        "calculate_estimate",
			Description: "Estimate the cost of a service for a number of hours.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"service": map[string]interface{}{"type": "string"},
					"hours":   map[string]interface{}{"type": "integer", "minimum": 1},
				},
				"required": []string{"service", "hours"},
			},
		},
	},
	{
		Type: "function",
		Function: toolFunction{
			Name:        "book_service",
			Description: "Create a booking for a service on a date and time.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"service": map[string]interface{}{"type": "string"},
					"name":    map[string]interface{}{"type": "string", "description": "Customer's full name"},
					"email":   map[string]interface{}{"type": "string"},
					"date":    map[string]interface{}{"type": "string", "description": "Date in YYYY-MM-DD format"},
					"time":    map[string]interface{}{"type": "string", "description": "Time of day, e.g. 10:00"},
				},
				"required": []string{"service", "name", "email", "date", "time"},
			},
		},
	},
	{
		Type: "function",
		Function: toolFunction{
			Name:        "send_confirmation_email",
			Description: "Send a booking confirmation email to a customer.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name":    map[string]interface{}{"type": "string"},
					"email":   map[string]interface{}{"type": "string"},
					"service": map[string]interface{}{"type": "string"},
					"date":    map[string]interface{}{"type": "string"},
					"time":    map[string]interface{}{"type": "string"},
				},
				"required": []string{"name", "email", "service", "date", "time"},
			},
		},
	},
}

type checkAvailabilityArgs struct {
	Service string `json:"service"`
	Date    string `json:"date"`
}

type calculateEstimateArgs struct {
	Service string `json:"service"`
	Hours   int    `json:"hours"`
}

type bookServiceArgs struct {
	Service string `json:"service"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

type sendConfirmationArgs struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// dispatchTool executes one tool call and returns the text handed back
// to the model. Every supported operation is matched explicitly; an
// unknown name is reported to the model rather than dropped.
func (a *Assistant) dispatchTool(tc toolCall) string {
	switch tc.Function.Name {
	case "check_availability":
		var args checkAvailabilityArgs
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return "Invalid arguments for check_availability."
		}
		available, err := a.bookings.CheckAvailability(args.Service, args.Date)
		if err != nil {
			if errors.Is(err, ErrServiceNotFound) {
				return fmt.Sprintf("Service %s not found.", args.Service)
			}
			return "Could not check availability right now."
		}
		if available {
			return fmt.Sprintf("Available slots for %s on %s.", args.Service, args.Date)
		}
		return fmt.Sprintf("No available slots for %s on %s.", args.Service, args.Date)

	case "calculate_estimate":
		var args calculateEstimateArgs
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return "Invalid arguments for calculate_estimate."
		}
		cost, err := a.bookings.Estimate(args.Service, args.Hours)
		if err != nil {
			if errors.Is(err, ErrServiceNotFound) {
				return fmt.Sprintf("Service %s not found.", args.Service)
			}
			var verr *ValidationError
			if errors.As(err, &verr) {
				return "Hours must be a positive number."
			}
			return "Could not calculate an estimate right now."
		}
		return fmt.Sprintf("The estimated cost for %d hours of %s is $%.2f.", args.Hours, args.Service, cost)

	case "book_service":
		var args bookServiceArgs
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return "Invalid arguments for book_service."
		}
		result, err := a.bookings.Create(BookingInput{
			Name:    args.Name,
			Email:   args.Email,
			Service: args.Service,
			Date:    args.Date,
			Time:    args.Time,
		})
		if err != nil {
			if errors.Is(err, ErrServiceNotFound) {
				return fmt.Sprintf("Service %s not found.", args.Service)
			}
			if errors.Is(err, ErrNoCapacity) {
				return fmt.Sprintf("No available slots for %s on %s.", args.Service, args.Date)
			}
			var verr *ValidationError
			if errors.As(err, &verr) {
				return "The booking could not be created: " + verr.Error() + "."
			}
			return "Sorry, the booking could not be created right now."
		}
		return fmt.Sprintf("Booking created for %s on %s at %s. %s",
			args.Service, args.Date, args.Time, result.Message)

	case "send_confirmation_email":
		var args sendConfirmationArgs
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return "Invalid arguments for send_confirmation_email."
		}
		err := a.notifier.SendConfirmation(&models.Booking{
			Name:    args.Name,
			Email:   args.Email,
			Service: args.Service,
			Date:    args.Date,
			Time:    args.Time,
		})
		if err != nil {
			return fmt.Sprintf("Failed to send confirmation email to %s. Please contact support.", args.Email)
		}
		return fmt.Sprintf("Confirmation email sent to %s.", args.Email)

	default:
		return fmt.Sprintf("Unknown tool: %s.", tc.Function.Name)
	}
}
