package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMockTool(t *testing.T, name domain.ToolName) *domain.MockTool {
	tool := domain.NewMockTool(t)
	tool.EXPECT().Descriptor().Return(domain.ToolDescriptor{Name: name}).Maybe()
	return tool
}

func TestToolRegistry_Descriptors(t *testing.T) {
	// registered out of order on purpose
	registry := NewToolRegistry(nil,
		newMockTool(t, domain.ToolName_GetMenuSpecials),
		newMockTool(t, domain.ToolName_FindRestaurants),
		newMockTool(t, domain.ToolName_CancelBooking),
	)

	got := registry.Descriptors()
	names := make([]domain.ToolName, 0, len(got))
	for _, d := range got {
		names = append(names, d.Name)
	}
	assert.Equal(t, []domain.ToolName{
		domain.ToolName_FindRestaurants,
		domain.ToolName_CancelBooking,
		domain.ToolName_GetMenuSpecials,
	}, names)
}

func TestToolRegistry_Dispatch(t *testing.T) {
	history := []domain.ConversationTurn{{Role: domain.ChatRole_User, Content: "hi"}}

	tests := map[string]struct {
		call            domain.ToolCallRequest
		setExpectations func(tool *domain.MockTool)
		expected        domain.ToolResult
	}{
		"success": {
			call: domain.ToolCallRequest{Name: "find_restaurants", Arguments: map[string]any{"location": "Bandra"}},
			setExpectations: func(tool *domain.MockTool) {
				tool.EXPECT().Execute(mock.Anything, mock.Anything, history).Return(domain.RestaurantMatches{{ID: 1}}, nil)
			},
			expected: domain.RestaurantMatches{{ID: 1}},
		},
		"unknown-tool": {
			call:     domain.ToolCallRequest{Name: "order_pizza"},
			expected: domain.ToolFailure{Tool: "order_pizza", Message: "Tool 'order_pizza' not found."},
		},
		"known-name-not-registered": {
			call:     domain.ToolCallRequest{Name: "create_booking"},
			expected: domain.ToolFailure{Tool: "create_booking", Message: "Tool 'create_booking' not found."},
		},
		"execution-error": {
			call: domain.ToolCallRequest{Name: "find_restaurants"},
			setExpectations: func(tool *domain.MockTool) {
				tool.EXPECT().Execute(mock.Anything, mock.Anything, history).Return(nil, errors.New("database error"))
			},
			expected: domain.ToolFailure{Tool: "find_restaurants", Message: "Error executing tool find_restaurants: database error"},
		},
		"nil-result": {
			call: domain.ToolCallRequest{Name: "find_restaurants"},
			setExpectations: func(tool *domain.MockTool) {
				tool.EXPECT().Execute(mock.Anything, mock.Anything, history).Return(nil, nil)
			},
			expected: domain.ToolFailure{Tool: "find_restaurants", Message: "Error executing tool find_restaurants: no result"},
		},
		"panic-is-recovered": {
			call: domain.ToolCallRequest{Name: "find_restaurants"},
			setExpectations: func(tool *domain.MockTool) {
				tool.EXPECT().Execute(mock.Anything, mock.Anything, history).
					RunAndReturn(func(context.Context, domain.ToolCallRequest, []domain.ConversationTurn) (domain.ToolResult, error) {
						panic("index out of range")
					})
			},
			expected: domain.ToolFailure{Tool: "find_restaurants", Message: "Error executing tool find_restaurants: index out of range"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tool := newMockTool(t, domain.ToolName_FindRestaurants)
			if tt.setExpectations != nil {
				tt.setExpectations(tool)
			}

			registry := NewToolRegistry(nil, tool)
			got := registry.Dispatch(context.Background(), tt.call, history)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToolRegistry_DispatchAll(t *testing.T) {
	find := newMockTool(t, domain.ToolName_FindRestaurants)
	specials := newMockTool(t, domain.ToolName_GetMenuSpecials)

	var order []string
	find.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.ToolCallRequest, []domain.ConversationTurn) (domain.ToolResult, error) {
			order = append(order, "find_restaurants")
			return nil, errors.New("database error")
		})
	specials.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.ToolCallRequest, []domain.ConversationTurn) (domain.ToolResult, error) {
			order = append(order, "get_menu_specials")
			return domain.MenuSpecials{}, nil
		})

	registry := NewToolRegistry(nil, find, specials)
	got := registry.DispatchAll(context.Background(), []domain.ToolCallRequest{
		{Name: "find_restaurants"},
		{Name: "unknown"},
		{Name: "get_menu_specials"},
	}, nil)

	assert.Equal(t, []string{"find_restaurants", "get_menu_specials"}, order)
	assert.Equal(t, []domain.ToolResult{
		domain.ToolFailure{Tool: "find_restaurants", Message: "Error executing tool find_restaurants: database error"},
		domain.ToolFailure{Tool: "unknown", Message: "Tool 'unknown' not found."},
		domain.MenuSpecials{},
	}, got)
}

func TestToolRegistry_StatusMessage(t *testing.T) {
	tool := newMockTool(t, domain.ToolName_FindRestaurants)
	tool.EXPECT().StatusMessage().Return("🔍 Searching restaurants...")
	registry := NewToolRegistry(nil, tool)

	assert.Equal(t, "🔍 Searching restaurants...", registry.StatusMessage("find_restaurants"))
	assert.Equal(t, defaultStatusMessage, registry.StatusMessage("unknown"))
}

func TestInitToolRegistry_Initialize(t *testing.T) {
	i := InitToolRegistry{}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	dispatcher, err := depend.Resolve[domain.ToolDispatcher]()
	assert.NoError(t, err)
	assert.Len(t, dispatcher.Descriptors(), len(domain.ToolNames()))
}

func TestInitResponseHandling_Initialize(t *testing.T) {
	ctx, err := InitResponseHandling{}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	parser, err := depend.Resolve[domain.ResponseParser]()
	assert.NoError(t, err)
	assert.NotNil(t, parser)

	formatter, err := depend.Resolve[domain.ResultFormatter]()
	assert.NoError(t, err)
	assert.NotNil(t, formatter)
}
