package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/goodfoods/samvaad/internal/usecases"
)

func (api SamvaadServer) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	in := usecases.ChatInput{
		Message: req.Message,
		History: fromConversationTurns(req.ConversationHistory),
	}
	if req.SessionID != nil {
		in.SessionID = strings.TrimSpace(*req.SessionID)
	}

	out, err := api.ChatUseCase.Execute(r.Context(), in)
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ChatResp{
		Response:            out.Reply,
		SessionID:           out.SessionID,
		ConversationHistory: toConversationTurns(out.History),
	})
}

func (api SamvaadServer) ResetAgent(w http.ResponseWriter, r *http.Request) {
	var req ResetAgentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		respondBadRequest(w, "session_id is required")
		return
	}

	if err := api.ResetSessionUseCase.Execute(r.Context(), sessionID); err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ResetAgentResp{
		Message:   "Conversation reset successfully",
		SessionID: sessionID,
	})
}

func (api SamvaadServer) GetAgentStatus(w http.ResponseWriter, r *http.Request) {
	var params GetAgentStatusParams
	if err := bindQueryParam(r, "session_id", false, &params.SessionID); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	status, err := api.GetAgentStatusUseCase.Query(r.Context(), params.SessionID)
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toAgentStatus(status))
}
