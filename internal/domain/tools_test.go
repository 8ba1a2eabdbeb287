package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseToolName(t *testing.T) {
	for _, name := range ToolNames() {
		got, ok := ParseToolName(string(name))
		assert.True(t, ok)
		assert.Equal(t, name, got)
	}

	_, ok := ParseToolName("delete_restaurant")
	assert.False(t, ok)
	_, ok = ParseToolName("Find_Restaurants")
	assert.False(t, ok)
}

func TestToolDescriptor_JSONSchema(t *testing.T) {
	minSize, maxSize := 1, 10
	d := ToolDescriptor{
		Name:        ToolName_CheckAvailability,
		Description: "Check availability",
		Parameters: ToolParameters{
			Type: "object",
			Properties: map[string]ToolParameter{
				"party_size": {Type: "integer", Description: "Guests", Minimum: &minSize, Maximum: &maxSize},
				"dietary":    {Type: "string", Enum: []string{"none", "vegan"}},
			},
			Required: []string{"party_size"},
		},
	}

	assert.Equal(t, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"party_size": map[string]any{"type": "integer", "description": "Guests", "minimum": 1, "maximum": 10},
			"dietary":    map[string]any{"type": "string", "enum": []string{"none", "vegan"}},
		},
		"required": []string{"party_size"},
	}, d.JSONSchema())
}

func TestToolDescriptor_JSONSchemaDefaults(t *testing.T) {
	schema := ToolDescriptor{Name: ToolName_FindRestaurants}.JSONSchema()
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{}, schema["required"])
	assert.Equal(t, map[string]any{}, schema["properties"])
}

func TestToolCallRequest_ArgumentsJSON(t *testing.T) {
	assert.Equal(t, "{}", ToolCallRequest{Name: "find_restaurants"}.ArgumentsJSON())
	assert.JSONEq(t,
		`{"location":"Bandra","party_size":4}`,
		ToolCallRequest{Arguments: map[string]any{"location": "Bandra", "party_size": 4}}.ArgumentsJSON(),
	)
}

func TestToolFailure_Error(t *testing.T) {
	var err error = ToolFailure{Tool: "cancel_booking", Message: "boom"}
	assert.EqualError(t, err, "boom")
}

func TestParsedResponseConstructors(t *testing.T) {
	calls := []ToolCallRequest{{Name: "find_restaurants"}, {Name: "get_menu_specials"}}
	r := NewToolCallResponse(calls)
	calls[0].Name = "changed"
	assert.Equal(t, ParsedResponseKind_ToolCall, r.Kind)
	assert.Equal(t, "find_restaurants", r.ToolCalls[0].Name)
	assert.Equal(t, "get_menu_specials", r.ToolCalls[1].Name)

	assert.Equal(t, ParsedResponse{Kind: ParsedResponseKind_Text, Text: "hello"}, NewTextResponse("hello"))
	assert.Equal(t, ParsedResponse{Kind: ParsedResponseKind_Error, Error: "bad"}, NewErrorResponse("bad"))
}
