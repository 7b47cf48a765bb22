// services/assistant.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"marquise-backend/config"
)

const systemPrompt = `You are the assistant for Marquise's Services, a company specializing in moving, cleaning, and handyman jobs. You act in one of two roles depending on what the user needs:

1. General agent: answer questions about the company and its services.
   - Operating hours: Monday to Saturday, 8 AM to 6 PM.
   - Email: marquisew@gmail.com.
   - Pricing: services start at $50 per hour; use the calculate_estimate tool for exact quotes.
   - Moving includes packing, loading, transporting, and unloading, with special handling for fragile items on request.
   - Cleaning covers residential and commercial jobs; eco-friendly products are available on demand.
   - Handyman services cover repairs, installations, plumbing, electrical work, and carpentry.

2. Booking specialist: guide the user through booking a service.
   - Collect the service, the user's name and email, the date (YYYY-MM-DD) and the time.
   - Use check_availability before booking a date.
   - Use book_service to create the booking once the user confirms the details.
   - Offer to send a confirmation email afterwards.

Always greet the user, keep replies concise and friendly, and ask a clarifying question when details are missing. Thank the user for considering Marquise's Services.`

// How many rounds of tool calls a single chat message may trigger.
const maxToolRounds = 5

// ChatTurn is one prior message in the conversation, as submitted by the
// client.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BookingToolset is the subset of booking operations the assistant may
// invoke on the user's behalf.
type BookingToolset interface {
	CheckAvailability(service, date string) (bool, error)
	Estimate(service string, hours int) (float64, error)
	Create(in BookingInput) (*BookingResult, error)
}

// Assistant talks to an OpenAI-compatible chat-completions API and
// bridges the model's tool calls into the booking service.
type Assistant struct {
	client   *http.Client
	apiKey   string
	model    string
	baseURL  string
	bookings BookingToolset
	notifier ConfirmationSender
}

func NewAssistant(cfg config.AssistantConfig, bookings BookingToolset, notifier ConfirmationSender) *Assistant {
	return &Assistant{
		client:   &http.Client{Timeout: 60 * time.Second},
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		bookings: bookings,
		notifier: notifier,
	}
}

type chatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []toolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

type toolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Tools    []toolDef     `json:"tools,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat answers one user message, running any tool calls the model asks
// for and feeding their results back until the model produces text.
func (a *Assistant) Chat(ctx context.Context, message string, history []ChatTurn) (string, error) {
	messages := []chatMessage{{Role: "system", Content: systemPrompt}}
	for _, turn := range history {
		if turn.Role != "user" && turn.Role != "assistant" {
			continue
		}
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: message})

	for round := 0; round < maxToolRounds; round++ {
		reply, err := a.complete(ctx, messages)
		if err != nil {
			return "", err
		}

		if len(reply.ToolCalls) == 0 {
			return strings.TrimSpace(reply.Content), nil
		}

		messages = append(messages, *reply)
		for _, tc := range reply.ToolCalls {
			messages = append(messages, chatMessage{
				Role:       "tool",
				ToolCallID: tc.ID,
				Content:    a.dispatchTool(tc),
			})
		}
	}

	return "", errors.New("assistant exceeded tool call limit without a final reply")
}

func (a *Assistant) complete(ctx context.Context, messages []chatMessage) (*chatMessage, error) {
	body, err := json.Marshal(chatRequest{
		Model:    a.model,
		Messages: messages,
		Tools:    assistantTools,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("assistant response decode failed: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("assistant API error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assistant API returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("assistant API returned no choices")
	}
	return &parsed.Choices[0].Message, nil
}
