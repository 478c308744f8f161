package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/moneypilot/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/usecases"
)

// ListAgents returns the agent catalogue.
func (api MoneyPilotServer) ListAgents(w http.ResponseWriter, r *http.Request) {
	resp := gen.AgentListResp{Agents: []gen.AgentResp{}}
	for _, p := range api.RunAgentUseCase.Agents() {
		resp.Agents = append(resp.Agents, gen.AgentResp{
			Name:        p.Name,
			Description: p.Description,
			Tools:       p.Tools,
			MaxSteps:    p.MaxSteps,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// RunAgent runs the catalogue agent named in the path. With stream set the
// answer is sent as server-sent events.
func (api MoneyPilotServer) RunAgent(w http.ResponseWriter, r *http.Request, name string) {
	req := gen.RunAgentJSONRequestBody{}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	runReq := usecases.RunAgentRequest{
		Agent:  name,
		Prompt: req.Prompt,
	}
	if req.Context != nil {
		runReq.Context = *req.Context
	}
	if req.Parameters != nil {
		runReq.Parameters = *req.Parameters
	}

	if req.Stream == nil || !*req.Stream {
		output, err := api.RunAgentUseCase.Execute(r.Context(), runReq)
		if err != nil {
			api.Logger.ErrorContext(r.Context(), "RunAgent: error running agent", "agent", runReq.Agent, "error", err)
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, gen.RunAgentResp{Agent: runReq.Agent, Output: output})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondErrorResp(w, gen.ErrorResp{Code: gen.INTERNALERROR, Detail: "streaming not supported"})
		return
	}

	headersSent := false
	send := func(eventType string, data any) error {
		dataBytes, err := json.Marshal(data)
		if err != nil {
			return err
		}
		if !headersSent {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Header().Set("Cache-Control", "no-cache")
			w.Header().Set("Connection", "keep-alive")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			headersSent = true
		}
		if _, err := fmt.Fprintf(w, "event: %s\n", eventType); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", string(dataBytes)); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	err := api.RunAgentUseCase.Stream(r.Context(), runReq, func(delta string) error {
		return send("delta", map[string]string{"text": delta})
	})
	if err != nil {
		api.Logger.ErrorContext(r.Context(), "RunAgent: error during streaming", "agent", runReq.Agent, "error", err)
		if !headersSent {
			respondError(w, err)
			return
		}
		_ = send("error", streamErrorResp(err))
		return
	}
	_ = send("done", map[string]string{"agent": runReq.Agent})
}

// AskAssistant answers a question through the assistant workflow.
func (api MoneyPilotServer) AskAssistant(w http.ResponseWriter, r *http.Request) {
	req := gen.AskAssistantJSONRequestBody{}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	userID := ""
	if req.UserId != nil {
		userID = *req.UserId
	}
	state, err := api.AskAssistantUseCase.Execute(r.Context(), req.Question, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	if state.Failed() {
		respondErrorResp(w, gen.ErrorResp{Code: gen.BADGATEWAY, Detail: state.Error})
		return
	}
	respondJSON(w, http.StatusOK, gen.AskAssistantResp{
		RequestId: state.RequestID,
		Agent:     state.Agent,
		Answer:    state.Answer,
	})
}

// streamErrorResp is the payload of the error event. Only agent failures
// expose their message once the stream has started.
func streamErrorResp(err error) gen.ErrorResp {
	var agentErr *domain.AgentErr
	if errors.As(err, &agentErr) {
		return gen.ErrorResp{Code: gen.BADGATEWAY, Detail: agentErr.Message()}
	}
	return gen.ErrorResp{Code: gen.INTERNALERROR, Detail: INTERNAL_ERROR_DETAIL}
}
