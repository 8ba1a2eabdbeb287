package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/goodfoods/samvaad/internal/adapters/outbound/sessions"
	"github.com/goodfoods/samvaad/internal/assistant/tools"
	"github.com/goodfoods/samvaad/internal/common"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/usecases"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const findKoramangalaBody = `{"choices":[{"message":{"tool_calls":[
	{"id":"call_1","type":"function","function":{"name":"find_restaurants","arguments":"{\"location\":\"Koramangala\"}"}}
]}}]}`

type conversationFixture struct {
	store    *sessions.MemoryStore
	locks    *common.KeyedMutex
	endpoint *domain.MockModelEndpoint
	chat     usecases.ChatImpl
	reset    usecases.ResetSessionImpl
}

// newConversationFixture wires the chat use case with the real parser,
// registry and formatter. Only the model and the restaurant query are faked.
func newConversationFixture(t *testing.T) conversationFixture {
	logger := zerolog.Nop()

	timeProvider := domain.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)).Maybe()

	finder := usecases.NewMockFindRestaurants(t)
	finder.EXPECT().
		Query(mock.Anything, domain.RestaurantFilter{Location: "Koramangala"}).
		Return([]domain.Restaurant{{
			ID:          1,
			Name:        "GoodFoods Koramangala",
			Address:     "Koramangala 4th Block",
			CuisineType: "North Indian",
		}}, nil).
		Maybe()

	f := conversationFixture{
		store:    sessions.NewMemoryStore(10, time.Hour),
		locks:    &common.KeyedMutex{},
		endpoint: domain.NewMockModelEndpoint(t),
	}
	f.chat = usecases.NewChatImpl(
		f.store,
		f.endpoint,
		domain.ModelEndpointInfo{Provider: "modelrunner", Model: "ai/qwen3"},
		NewResponseParser(),
		NewToolRegistry(&logger, tools.NewFindRestaurantsTool(finder)),
		NewFormatter(),
		timeProvider,
		f.locks,
		&logger,
		time.Second,
	)
	f.reset = usecases.NewResetSessionImpl(f.store, f.locks)
	return f
}

func TestChat_FindRestaurantsTurn(t *testing.T) {
	f := newConversationFixture(t)
	f.endpoint.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(domain.RawModelResponse{Provider: "modelrunner", Body: []byte(findKoramangalaBody)})

	out, err := f.chat.Execute(context.Background(), usecases.ChatInput{
		SessionID: "session-1",
		Message:   "Find restaurants in Koramangala",
	})
	require.NoError(t, err)

	expectedReply := "I found GoodFoods Koramangala in Koramangala 4th Block. They serve North Indian cuisine. Would you like to book a table there?"
	assert.Equal(t, expectedReply, out.Reply)
	assert.Equal(t, []domain.ConversationTurn{
		{Role: domain.ChatRole_User, Content: "Find restaurants in Koramangala"},
		{Role: domain.ChatRole_Assistant, Content: expectedReply},
	}, out.History)

	stored, found, err := f.store.GetSession(context.Background(), "session-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, out.History, stored.History)
	assert.Equal(t, domain.AgentState_Idle, stored.State)
}

func TestChat_ResetTwiceLeavesEmptyHistory(t *testing.T) {
	f := newConversationFixture(t)
	f.endpoint.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(domain.RawModelResponse{Provider: "modelrunner", Body: []byte(findKoramangalaBody)})

	_, err := f.chat.Execute(context.Background(), usecases.ChatInput{
		SessionID: "session-1",
		Message:   "Find restaurants in Koramangala",
	})
	require.NoError(t, err)

	for range 2 {
		require.NoError(t, f.reset.Execute(context.Background(), "session-1"))

		stored, found, err := f.store.GetSession(context.Background(), "session-1")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, stored.History)
	}

	out, err := f.chat.Execute(context.Background(), usecases.ChatInput{
		SessionID: "session-1",
		Message:   "Find restaurants in Koramangala",
	})
	require.NoError(t, err)
	assert.Len(t, out.History, 2)
}

func TestChat_ResetDuringTurnClearsHistory(t *testing.T) {
	f := newConversationFixture(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.endpoint.EXPECT().Complete(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req domain.ModelRequest) domain.RawModelResponse {
			close(entered)
			<-release
			return domain.RawModelResponse{Provider: "modelrunner", Body: []byte(`{"choices":[{"message":{"content":"hi"}}]}`)}
		})

	turnDone := make(chan error, 1)
	go func() {
		_, err := f.chat.Execute(context.Background(), usecases.ChatInput{SessionID: "s1", Message: "hello"})
		turnDone <- err
	}()
	<-entered

	resetDone := make(chan error, 1)
	go func() {
		resetDone <- f.reset.Execute(context.Background(), "s1")
	}()

	select {
	case <-resetDone:
		t.Fatal("reset completed while the turn was in progress")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-turnDone)
	require.NoError(t, <-resetDone)

	stored, found, err := f.store.GetSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, stored.History)
}
