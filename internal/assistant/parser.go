package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/tidwall/gjson"
)

const invalidResponseFormat = "Invalid response format from LLM"

// ResponseParser normalizes the response shapes of the supported model providers
// into a domain.ParsedResponse.
type ResponseParser struct{}

// NewResponseParser creates a new ResponseParser.
func NewResponseParser() ResponseParser {
	return ResponseParser{}
}

// Parse classifies a raw model response. It never panics and never returns an error:
// every problem is reported through the error variant.
func (p ResponseParser) Parse(raw domain.RawModelResponse) (parsed domain.ParsedResponse) {
	defer func() {
		if r := recover(); r != nil {
			parsed = domain.NewErrorResponse(fmt.Sprintf("Failed to parse response: %v", r))
		}
	}()

	if raw.Err != nil {
		return domain.NewErrorResponse(raw.Err.Error())
	}

	shape, ok := detectShape(raw.Body)
	if !ok {
		return domain.NewErrorResponse(invalidResponseFormat)
	}
	return shape.normalize()
}

// responseShape is one of the provider payload layouts the parser understands.
type responseShape interface {
	normalize() domain.ParsedResponse
}

// detectShape inspects the body and decodes it into the matching shape.
func detectShape(body []byte) (responseShape, bool) {
	if len(bytes.TrimSpace(body)) == 0 || !gjson.ValidBytes(body) {
		return nil, false
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, false
	}

	if errField := root.Get("error"); errField.Exists() && errField.Type != gjson.Null {
		return providerErrorShape{message: providerErrorMessage(errField)}, true
	}

	var shapes []responseShape
	if root.Get("choices.0.message").IsObject() {
		var s chatCompletionShape
		if err := json.Unmarshal(body, &s); err == nil {
			shapes = append(shapes, s)
		}
	}
	if root.Get("candidates.0.content.parts").IsArray() {
		var s generateContentShape
		if err := json.Unmarshal(body, &s); err == nil {
			shapes = append(shapes, s)
		}
	}
	if len(shapes) == 0 {
		return nil, false
	}
	return firstMatch(shapes), true
}

// firstMatch tries the shapes in order and keeps the first one producing a non-error result.
type firstMatch []responseShape

func (f firstMatch) normalize() domain.ParsedResponse {
	result := domain.NewErrorResponse(invalidResponseFormat)
	for _, s := range f {
		result = s.normalize()
		if result.Kind != domain.ParsedResponseKind_Error || result.Error != invalidResponseFormat {
			return result
		}
	}
	return result
}

func providerErrorMessage(errField gjson.Result) string {
	if msg := errField.Get("message"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	if errField.Type == gjson.String && errField.String() != "" {
		return errField.String()
	}
	return errField.Raw
}

type providerErrorShape struct {
	message string
}

func (s providerErrorShape) normalize() domain.ParsedResponse {
	return domain.NewErrorResponse(s.message)
}

// chatCompletionShape is the OpenAI compatible /chat/completions payload.
type chatCompletionShape struct {
	Choices []struct {
		Message struct {
			Content   json.RawMessage `json:"content"`
			ToolCalls []struct {
				ID       string `json:"id"`
				Function struct {
					Name      string          `json:"name"`
					Arguments json.RawMessage `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

func (s chatCompletionShape) normalize() domain.ParsedResponse {
	if len(s.Choices) == 0 {
		return domain.NewErrorResponse(invalidResponseFormat)
	}
	msg := s.Choices[0].Message

	if len(msg.ToolCalls) > 0 {
		calls := make([]domain.ToolCallRequest, 0, len(msg.ToolCalls))
		for _, tc := range msg.ToolCalls {
			args, err := decodeArguments(tc.Function.Arguments)
			if err != nil {
				return invalidArguments(tc.Function.Name, err)
			}
			calls = append(calls, domain.ToolCallRequest{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: args,
			})
		}
		return domain.NewToolCallResponse(calls)
	}

	if text := contentText(msg.Content); text != "" {
		return parseText(text)
	}
	return domain.NewErrorResponse(invalidResponseFormat)
}

// contentText accepts both a plain string and an array of text parts.
func contentText(raw json.RawMessage) string {
	content := gjson.ParseBytes(raw)
	switch {
	case content.Type == gjson.String:
		return content.String()
	case content.IsArray():
		var sb strings.Builder
		for _, part := range content.Array() {
			sb.WriteString(part.Get("text").String())
		}
		return sb.String()
	}
	return ""
}

// generateContentShape is the Gemini generateContent payload.
type generateContentShape struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text         *string `json:"text"`
				Thought      bool    `json:"thought"`
				FunctionCall *struct {
					ID   string          `json:"id"`
					Name string          `json:"name"`
					Args json.RawMessage `json:"args"`
				} `json:"functionCall"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s generateContentShape) normalize() domain.ParsedResponse {
	if len(s.Candidates) == 0 {
		return domain.NewErrorResponse(invalidResponseFormat)
	}

	var (
		calls []domain.ToolCallRequest
		text  strings.Builder
	)
	for _, part := range s.Candidates[0].Content.Parts {
		if fc := part.FunctionCall; fc != nil {
			args, err := decodeArguments(fc.Args)
			if err != nil {
				return invalidArguments(fc.Name, err)
			}
			calls = append(calls, domain.ToolCallRequest{ID: fc.ID, Name: fc.Name, Arguments: args})
			continue
		}
		if part.Text != nil && !part.Thought {
			text.WriteString(*part.Text)
		}
	}

	if len(calls) > 0 {
		return domain.NewToolCallResponse(calls)
	}
	if text.Len() > 0 {
		return parseText(text.String())
	}
	return domain.NewErrorResponse(invalidResponseFormat)
}

// textToolCalls is the shape of tool calls a model writes as JSON text
// instead of using the structured channel.
type textToolCalls struct {
	ToolCalls []struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	} `json:"tool_calls"`
}

// parseText re-parses text that encodes tool calls before treating it as a reply.
func parseText(text string) domain.ParsedResponse {
	candidate := stripCodeFence(text)
	if !gjson.Valid(candidate) || !gjson.Get(candidate, "tool_calls").IsArray() {
		return domain.NewTextResponse(text)
	}

	var ttc textToolCalls
	if err := json.Unmarshal([]byte(candidate), &ttc); err != nil || len(ttc.ToolCalls) == 0 {
		return domain.NewTextResponse(text)
	}

	calls := make([]domain.ToolCallRequest, 0, len(ttc.ToolCalls))
	for _, tc := range ttc.ToolCalls {
		if tc.Name == "" {
			return domain.NewTextResponse(text)
		}
		args, err := decodeArguments(tc.Arguments)
		if err != nil {
			return invalidArguments(tc.Name, err)
		}
		calls = append(calls, domain.ToolCallRequest{Name: tc.Name, Arguments: args})
	}
	return domain.NewToolCallResponse(calls)
}

func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// decodeArguments accepts a JSON object or a JSON string holding an object.
// Missing and null arguments decode to an empty map.
func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	value := gjson.ParseBytes(raw)
	if len(bytes.TrimSpace(raw)) == 0 || value.Type == gjson.Null {
		return map[string]any{}, nil
	}

	payload := []byte(value.Raw)
	if value.Type == gjson.String {
		str := strings.TrimSpace(value.String())
		if str == "" {
			return map[string]any{}, nil
		}
		payload = []byte(str)
	}

	if !gjson.ValidBytes(payload) || !gjson.ParseBytes(payload).IsObject() {
		return nil, fmt.Errorf("arguments must be a JSON object")
	}

	args := map[string]any{}
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	if err := decoder.Decode(&args); err != nil {
		return nil, err
	}
	return args, nil
}

func invalidArguments(tool string, err error) domain.ParsedResponse {
	return domain.NewErrorResponse(fmt.Sprintf("Invalid arguments for tool %s: %v", tool, err))
}
