package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// The booking service must satisfy the assistant's toolset contract.
var _ BookingToolset = (*BookingService)(nil)

type fakeToolset struct {
	available   bool
	availErr    error
	estimate    float64
	estimateErr error
	created     []BookingInput
	createErr   error
}

func (f *fakeToolset) CheckAvailability(service, date string) (bool, error) {
	return f.available, f.availErr
}

func (f *fakeToolset) Estimate(service string, hours int) (float64, error) {
	return f.estimate, f.estimateErr
}

func (f *fakeToolset) Create(in BookingInput) (*BookingResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	return &BookingResult{
		BookingCreated: true,
		EmailStatus:    EmailStatusSent,
		Message:        "Booking confirmed! A confirmation email has been sent.",
	}, nil
}

func newToolCall(name, args string) toolCall {
	tc := toolCall{ID: "call_1", Type: "function"}
	tc.Function.Name = name
	tc.Function.Arguments = args
	return tc
}

func testAssistant(tools BookingToolset, notifier ConfirmationSender) *Assistant {
	return &Assistant{
		client:   http.DefaultClient,
		model:    "gpt-4o-mini",
		baseURL:  "http://invalid.test",
		bookings: tools,
		notifier: notifier,
	}
}

func TestDispatchCheckAvailability(t *testing.T) {
	tools := &fakeToolset{available: true}
	a := testAssistant(tools, &fakeConfirmationSender{})

	got := a.dispatchTool(newToolCall("check_availability", `{"service":"Cleaning","date":"2024-06-01"}`))
	if got != "Available slots for Cleaning on 2024-06-01." {
		t.Errorf("unexpected reply: %q", got)
	}

	tools.available = false
	got = a.dispatchTool(newToolCall("check_availability", `{"service":"Cleaning","date":"2024-06-01"}`))
	if got != "No available slots for Cleaning on 2024-06-01." {
		t.Errorf("unexpected reply: %q", got)
	}

	tools.availErr = fmt.Errorf("%w: Gardening", ErrServiceNotFound)
	got = a.dispatchTool(newToolCall("check_availability", `{"service":"Gardening","date":"2024-06-01"}`))
	if got != "Service Gardening not found." {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestDispatchCalculateEstimate(t *testing.T) {
	a := testAssistant(&fakeToolset{estimate: 150.0}, &fakeConfirmationSender{})

	got := a.dispatchTool(newToolCall("calculate_estimate", `{"service":"Moving","hours":3}`))
	if got != "The estimated cost for 3 hours of Moving is $150.00." {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestDispatchBookService(t *testing.T) {
	tools := &fakeToolset{}
	a := testAssistant(tools, &fakeConfirmationSender{})

	got := a.dispatchTool(newToolCall("book_service",
		`{"service":"Cleaning","name":"Ada","email":"a@b.com","date":"2024-06-01","time":"10:00"}`))
	if !strings.Contains(got, "Booking created for Cleaning on 2024-06-01 at 10:00.") {
		t.Errorf("unexpected reply: %q", got)
	}
	if len(tools.created) != 1 {
		t.Fatalf("expected one booking, got %d", len(tools.created))
	}
	in := tools.created[0]
	if in.Name != "Ada" || in.Email != "a@b.com" || in.Service != "Cleaning" {
		t.Errorf("booking input not mapped from arguments: %+v", in)
	}
	if in.UserID != nil {
		t.Error("assistant bookings are guest bookings")
	}

	tools.createErr = &ValidationError{Fields: []string{"email"}}
	got = a.dispatchTool(newToolCall("book_service", `{"service":"Cleaning"}`))
	if !strings.Contains(got, "missing required fields") {
		t.Errorf("validation failure should be reported to the model, got %q", got)
	}
}

func TestDispatchSendConfirmationEmail(t *testing.T) {
	sender := &fakeConfirmationSender{}
	a := testAssistant(&fakeToolset{}, sender)

	got := a.dispatchTool(newToolCall("send_confirmation_email",
		`{"name":"Ada","email":"a@b.com","service":"Cleaning","date":"2024-06-01","time":"10:00"}`))
	if got != "Confirmation email sent to a@b.com." {
		t.Errorf("unexpected reply: %q", got)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one send, got %d", len(sender.sent))
	}

	sender.err = errors.New("smtp down")
	got = a.dispatchTool(newToolCall("send_confirmation_email",
		`{"name":"Ada","email":"a@b.com","service":"Cleaning","date":"2024-06-01","time":"10:00"}`))
	if got != "Failed to send confirmation email to a@b.com. Please contact support." {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestDispatchRejectsMalformedArgsAndUnknownTools(t *testing.T) {
	a := testAssistant(&fakeToolset{}, &fakeConfirmationSender{})

	if got := a.dispatchTool(newToolCall("book_service", `{broken`)); !strings.Contains(got, "Invalid arguments") {
		t.Errorf("unexpected reply: %q", got)
	}
	if got := a.dispatchTool(newToolCall("cancel_booking", `{}`)); got != "Unknown tool: cancel_booking." {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestChatRunsToolLoop(t *testing.T) {
	tools := &fakeToolset{available: true}

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if calls == 1 {
			// Ask for a tool first.
			fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"","tool_calls":[{"id":"call_1","type":"function","function":{"name":"check_availability","arguments":"{\"service\":\"Cleaning\",\"date\":\"2024-06-01\"}"}}]}}]}`)
			return
		}

		// Second round must include the tool result.
		last := req.Messages[len(req.Messages)-1]
		if last.Role != "tool" || !strings.Contains(last.Content, "Available slots") {
			t.Errorf("tool result not fed back to the model: %+v", last)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"Cleaning is available on 2024-06-01. Shall I book it?"}}]}`)
	}))
	defer server.Close()

	a := testAssistant(tools, &fakeConfirmationSender{})
	a.baseURL = server.URL

	reply, err := a.Chat(context.Background(), "Is cleaning free on June 1st?", []ChatTurn{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello! How can I assist you today?"},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if reply != "Cleaning is available on 2024-06-01. Shall I book it?" {
		t.Errorf("unexpected reply: %q", reply)
	}
	if calls != 2 {
		t.Errorf("expected two completion calls, got %d", calls)
	}
}

func TestChatSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Incorrect API key provided"}}`)
	}))
	defer server.Close()

	a := testAssistant(&fakeToolset{}, &fakeConfirmationSender{})
	a.baseURL = server.URL

	if _, err := a.Chat(context.Background(), "hello", nil); err == nil {
		t.Fatal("expected an error from the API")
	}
}
