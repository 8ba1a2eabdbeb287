package tools

import (
	"context"
	"fmt"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
)

// GetMenuSpecialsTool lists the chef specials, optionally by diet and restaurant.
type GetMenuSpecialsTool struct {
	lister usecases.ListMenuSpecials
}

// NewGetMenuSpecialsTool creates a new instance of GetMenuSpecialsTool.
func NewGetMenuSpecialsTool(lister usecases.ListMenuSpecials) GetMenuSpecialsTool {
	return GetMenuSpecialsTool{lister: lister}
}

// StatusMessage returns a status message about the tool execution.
func (t GetMenuSpecialsTool) StatusMessage() string {
	return "🍽️ Fetching menu specials..."
}

// Descriptor returns the tool descriptor for GetMenuSpecialsTool.
func (t GetMenuSpecialsTool) Descriptor() domain.ToolDescriptor {
	preferences := domain.DietaryPreferences()
	enum := make([]string, 0, len(preferences))
	for _, p := range preferences {
		enum = append(enum, string(p))
	}

	return domain.ToolDescriptor{
		Name:        domain.ToolName_GetMenuSpecials,
		Description: "Get the current menu specials, optionally filtered by dietary preference and restaurant.",
		Parameters: domain.ToolParameters{
			Type: "object",
			Properties: map[string]domain.ToolParameter{
				"dietary_preference": {
					Type:        "string",
					Description: "Dietary preference. Use none for all specials.",
					Enum:        enum,
				},
				"restaurant_id": {
					Type:        "integer",
					Description: "Optional restaurant id.",
				},
			},
		},
	}
}

// Execute executes GetMenuSpecialsTool.
func (t GetMenuSpecialsTool) Execute(ctx context.Context, call domain.ToolCallRequest, _ []domain.ConversationTurn) (domain.ToolResult, error) {
	params := struct {
		DietaryPreference string   `json:"dietary_preference"`
		RestaurantID      *flexInt `json:"restaurant_id"`
	}{}
	if err := unmarshalToolInput(call.ArgumentsJSON(), &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	specials, err := t.lister.Query(ctx, domain.MenuSpecialFilter{
		Dietary:      domain.DietaryPreference(params.DietaryPreference),
		RestaurantID: intPtr(params.RestaurantID),
	})
	if err != nil {
		return nil, err
	}
	return domain.MenuSpecials(specials), nil
}
