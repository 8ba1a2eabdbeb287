package tools

import (
	"context"
	"fmt"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
)

// FindRestaurantsTool searches GoodFoods locations by area and cuisine.
type FindRestaurantsTool struct {
	finder usecases.FindRestaurants
}

// NewFindRestaurantsTool creates a new instance of FindRestaurantsTool.
func NewFindRestaurantsTool(finder usecases.FindRestaurants) FindRestaurantsTool {
	return FindRestaurantsTool{finder: finder}
}

// StatusMessage returns a status message about the tool execution.
func (t FindRestaurantsTool) StatusMessage() string {
	return "🔍 Searching restaurants..."
}

// Descriptor returns the tool descriptor for FindRestaurantsTool.
func (t FindRestaurantsTool) Descriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        domain.ToolName_FindRestaurants,
		Description: "Find GoodFoods restaurants by location and/or cuisine. Both criteria are optional; omit them to list every restaurant.",
		Parameters: domain.ToolParameters{
			Type: "object",
			Properties: map[string]domain.ToolParameter{
				"location": {
					Type:        "string",
					Description: "Area or neighborhood, e.g. Koramangala, Indiranagar.",
				},
				"cuisine": {
					Type:        "string",
					Description: "Cuisine type, e.g. North Indian, Italian, Chinese.",
				},
			},
		},
	}
}

// Execute executes FindRestaurantsTool.
func (t FindRestaurantsTool) Execute(ctx context.Context, call domain.ToolCallRequest, _ []domain.ConversationTurn) (domain.ToolResult, error) {
	params := struct {
		Location string `json:"location"`
		Cuisine  string `json:"cuisine"`
	}{}
	if err := unmarshalToolInput(call.ArgumentsJSON(), &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	restaurants, err := t.finder.Query(ctx, domain.RestaurantFilter{
		Location: params.Location,
		Cuisine:  params.Cuisine,
	})
	if err != nil {
		return nil, err
	}

	matches := make(domain.RestaurantMatches, 0, len(restaurants))
	for _, r := range restaurants {
		matches = append(matches, r.ToMatch())
	}
	return matches, nil
}
