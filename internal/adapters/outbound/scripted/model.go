// Package scripted is a keyword driven stand-in for a hosted model. It answers
// in the generateContent layout so the whole conversation loop can run locally
// without credentials.
package scripted

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
)

// Provider is the provider name reported by the model.
const Provider = "scripted"

// defaultRestaurantID is used when a request does not name a restaurant.
const defaultRestaurantID = 1

var phonePattern = regexp.MustCompile(`\b\d{10}\b`)

// Model implements domain.ModelEndpoint with fixed rules.
type Model struct {
	timeProvider domain.CurrentTimeProvider
}

// New creates a new scripted Model.
func New(timeProvider domain.CurrentTimeProvider) Model {
	return Model{timeProvider: timeProvider}
}

// Complete implements domain.ModelEndpoint.
func (m Model) Complete(ctx context.Context, req domain.ModelRequest) domain.RawModelResponse {
	_, span := telemetry.Start(ctx)
	defer span.End()

	var reply part
	if msg, ok := lastUserMessage(req.History); ok {
		reply = m.respond(strings.ToLower(msg), req.History)
	} else {
		reply = textPart(fallbackReply)
	}

	body, err := json.Marshal(generateContent{
		Candidates: []candidate{{Content: content{Role: "model", Parts: []part{reply}}}},
	})
	telemetry.RecordErrorAndStatus(span, err)
	return domain.RawModelResponse{Provider: Provider, Body: body, Err: err}
}

const (
	identityReply = "I'm Samvaad, your AI assistant for GoodFoods restaurants. I'm here to help you with restaurant reservations and dining information!"
	greetingReply = "Hello! I'm Samvaad, your AI assistant for GoodFoods restaurants. I can help you find restaurants, check availability, and make bookings. How can I assist you today?"
	bookingPrompt = "Great! I'd be happy to help you book a table. Could you please provide:\n1. Number of people\n2. Date (e.g., tonight, tomorrow, Friday)\n3. Time (e.g., 7:00 PM, 8:00 PM)\n4. Your name and phone number"
	fallbackReply = "I'm here to help you with restaurant reservations at GoodFoods. You can ask me to find restaurants, check availability, or make bookings. What would you like to do?"
)

func (m Model) respond(msg string, history []domain.ConversationTurn) part {
	switch {
	case containsAny(msg, "your name", "what are you", "who are you", "what's your name"):
		return textPart(identityReply)

	case containsAny(msg, "menu", "specials", "dishes", "food", "chef", "recommendation"):
		return functionPart(domain.ToolName_GetMenuSpecials, map[string]any{})

	case containsAny(msg, "check", "available", "availability", "slot", "time") &&
		containsAny(msg, "people", "person", "guest"):
		if args, ok := m.slotArgs(msg, true); ok {
			args["restaurant_id"] = defaultRestaurantID
			return functionPart(domain.ToolName_CheckAvailability, args)
		}
	}

	switch {
	case containsAny(msg, "find", "search", "restaurant", "location", "cuisine", "south", "north", "chinese", "italian", "nearest"):
		return functionPart(domain.ToolName_FindRestaurants, searchArgs(msg))

	case containsAny(msg, "book", "reservation", "table") || (strings.Contains(msg, "yes") && len(history) > 1):
		return m.booking(msg, history)

	case containsAny(msg, "hi", "hello"):
		return textPart(greetingReply)
	}
	return textPart(fallbackReply)
}

// booking collects the booking details from one message and asks for whatever is missing.
func (m Model) booking(msg string, history []domain.ConversationTurn) part {
	if len(history) > 1 && recentlyMentionedRestaurant(history) {
		return textPart(bookingPrompt)
	}

	args, _ := m.slotArgs(msg, false)
	phone := phonePattern.FindString(msg)
	name := extractName(msg)

	var missing []string
	for _, key := range []string{"party_size", "date", "time"} {
		if _, ok := args[key]; !ok {
			missing = append(missing, map[string]string{
				"party_size": "number of people",
				"date":       "date",
				"time":       "time",
			}[key])
		}
	}
	if len(missing) > 0 {
		return textPart(fmt.Sprintf("Could you please provide: %s?", strings.Join(missing, ", ")))
	}

	if name == "" {
		missing = append(missing, "your name")
	}
	if phone == "" {
		missing = append(missing, "your phone number")
	}
	if len(missing) > 0 {
		return textPart(fmt.Sprintf(
			"Great! I have your booking details for %d people on %s at %s. I just need: %s.",
			args["party_size"], args["date"], args["time"], strings.Join(missing, ", "),
		))
	}

	args["restaurant_id"] = defaultRestaurantID
	args["user_name"] = name
	args["phone_number"] = phone
	return functionPart(domain.ToolName_CreateBooking, args)
}

// slotArgs extracts party size, date and time and reports whether all three were found.
func (m Model) slotArgs(msg string, availability bool) (map[string]any, bool) {
	args := map[string]any{}
	if size, ok := extractPartySize(msg); ok {
		args["party_size"] = size
	}
	if date, ok := m.extractDate(msg, availability); ok {
		args["date"] = date
	}
	if t, ok := extractTime(msg); ok {
		args["time"] = t
	}
	return args, len(args) == 3
}

func extractPartySize(msg string) (int, bool) {
	for _, c := range []struct {
		digit, word string
		size        int
	}{
		{"2", "two", 2},
		{"4", "four", 4},
		{"6", "six", 6},
		{"8", "eight", 8},
	} {
		if strings.Contains(msg, c.digit) || strings.Contains(msg, c.word) {
			return c.size, true
		}
	}
	return 0, false
}

func extractTime(msg string) (string, bool) {
	for _, c := range []struct {
		digit, word, clock string
	}{
		{"7", "seven", "19:00"},
		{"8", "eight", "20:00"},
		{"9", "nine", "21:00"},
		{"6", "six", "18:00"},
	} {
		if strings.Contains(msg, c.digit) || strings.Contains(msg, c.word) {
			return c.clock, true
		}
	}
	return "", false
}

// extractDate resolves today, tonight, tomorrow and, for bookings, the coming Friday.
func (m Model) extractDate(msg string, availability bool) (string, bool) {
	now := m.timeProvider.Now()
	switch {
	case strings.Contains(msg, "tomorrow"):
		return now.AddDate(0, 0, 1).Format(time.DateOnly), true
	case !availability && strings.Contains(msg, "friday"):
		days := (int(time.Friday) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return now.AddDate(0, 0, days).Format(time.DateOnly), true
	case strings.Contains(msg, "today"), availability && strings.Contains(msg, "tonight"):
		return now.Format(time.DateOnly), true
	}
	return "", false
}

func extractName(msg string) string {
	for _, marker := range []string{"my name is", "i am"} {
		idx := strings.Index(msg, marker)
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(msg[idx+len(marker):])
		if name, _, _ := strings.Cut(rest, " "); name != "" {
			return strings.Trim(name, ",.")
		}
	}
	return ""
}

func searchArgs(msg string) map[string]any {
	args := map[string]any{}
	for _, c := range []struct{ keyword, location string }{
		{"koramangala", "Koramangala"},
		{"indiranagar", "Indiranagar"},
		{"jayanagar", "Jayanagar"},
		{"whitefield", "Whitefield"},
		{"electronic", "Electronic City"},
		{"hsr", "HSR Layout"},
	} {
		if strings.Contains(msg, c.keyword) {
			args["location"] = c.location
			break
		}
	}
	for _, c := range []struct{ keyword, cuisine string }{
		{"italian", "Italian"},
		{"chinese", "Chinese"},
		{"north", "North Indian"},
		{"south", "South Indian"},
		{"continental", "Continental"},
		{"multi-cuisine", "Multi-cuisine"},
		{"multi cuisine", "Multi-cuisine"},
	} {
		if strings.Contains(msg, c.keyword) {
			args["cuisine"] = c.cuisine
			break
		}
	}
	return args
}

func recentlyMentionedRestaurant(history []domain.ConversationTurn) bool {
	start := max(len(history)-3, 0)
	for _, turn := range history[start : len(history)-1] {
		if strings.Contains(strings.ToLower(turn.Content), "restaurant") {
			return true
		}
	}
	return false
}

func lastUserMessage(history []domain.ConversationTurn) (string, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.ChatRole_User {
			return history[i].Content, true
		}
	}
	return "", false
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

type generateContent struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text         string        `json:"text,omitempty"`
	FunctionCall *functionCall `json:"functionCall,omitempty"`
}

// functionCall carries its arguments as a JSON encoded string.
type functionCall struct {
	Name string `json:"name"`
	Args string `json:"args"`
}

func textPart(text string) part {
	return part{Text: text}
}

func functionPart(name domain.ToolName, args map[string]any) part {
	b, _ := json.Marshal(args)
	return part{FunctionCall: &functionCall{Name: string(name), Args: string(b)}}
}
