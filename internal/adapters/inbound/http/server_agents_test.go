package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/moneypilot/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/moneypilot/internal/common"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/usecases"
	"github.com/cleitonmarx/moneypilot/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMoneyPilotServer_ListAgents(t *testing.T) {
	server, m := newTestServer(t)
	m.runAgent.EXPECT().Agents().Return([]usecases.AgentPrompt{
		{Name: "assistant", Description: "General help", Tools: []string{"calculator"}, MaxSteps: 5},
		{Name: "date_resolver", Description: "Dates", Tools: []string{"parse_date"}, MaxSteps: 4},
	})

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/agents", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp gen.AgentListResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, gen.AgentListResp{Agents: []gen.AgentResp{
		{Name: "assistant", Description: "General help", Tools: []string{"calculator"}, MaxSteps: 5},
		{Name: "date_resolver", Description: "Dates", Tools: []string{"parse_date"}, MaxSteps: 4},
	}}, resp)
}

func TestMoneyPilotServer_RunAgent(t *testing.T) {
	tests := map[string]struct {
		agent          string
		requestBody    []byte
		setupMocks     func(*usecases.MockRunAgent)
		expectedStatus int
		expectedBody   *gen.RunAgentResp
		expectedDetail string
		expectedEvents []string
	}{
		"success": {
			agent: "assistant",
			requestBody: serializeJSON(t, gen.RunAgentJSONRequestBody{
				Prompt:     "How much is 2+2?",
				Parameters: &map[string]string{"currency": "BRL"},
			}),
			setupMocks: func(m *usecases.MockRunAgent) {
				m.EXPECT().
					Execute(mock.Anything, usecases.RunAgentRequest{
						Agent:      "assistant",
						Prompt:     "How much is 2+2?",
						Parameters: map[string]string{"currency": "BRL"},
					}).
					Return("4", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.RunAgentResp{Agent: "assistant", Output: "4"},
		},
		"agent-not-found": {
			agent:       "trader",
			requestBody: serializeJSON(t, gen.RunAgentJSONRequestBody{Prompt: "buy"}),
			setupMocks: func(m *usecases.MockRunAgent) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return("", domain.NewNotFoundErr("agent 'trader' not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedDetail: "agent 'trader' not found",
		},
		"agent-failure": {
			agent:       "assistant",
			requestBody: serializeJSON(t, gen.RunAgentJSONRequestBody{Prompt: "hi"}),
			setupMocks: func(m *usecases.MockRunAgent) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return("", domain.NewAgentErr("Agent execution failed: boom", nil, errors.New("boom")))
			},
			expectedStatus: http.StatusBadGateway,
			expectedDetail: "Agent execution failed: boom",
		},
		"invalid-body": {
			agent:          "assistant",
			requestBody:    []byte(`{"prompt":`),
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "invalid request body: unexpected EOF",
		},
		"stream": {
			agent:       "assistant",
			requestBody: serializeJSON(t, gen.RunAgentJSONRequestBody{Prompt: "hi", Stream: common.Ptr(true)}),
			setupMocks: func(m *usecases.MockRunAgent) {
				m.EXPECT().
					Stream(mock.Anything, mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, _ usecases.RunAgentRequest, onChunk domain.StreamDeltaCallback) error {
						if err := onChunk("Hel"); err != nil {
							return err
						}
						return onChunk("lo")
					})
			},
			expectedStatus: http.StatusOK,
			expectedEvents: []string{
				"event: delta\ndata: {\"text\":\"Hel\"}\n\n",
				"event: delta\ndata: {\"text\":\"lo\"}\n\n",
				"event: done\ndata: {\"agent\":\"assistant\"}\n\n",
			},
		},
		"stream-fails-before-first-chunk": {
			agent:       "trader",
			requestBody: serializeJSON(t, gen.RunAgentJSONRequestBody{Prompt: "hi", Stream: common.Ptr(true)}),
			setupMocks: func(m *usecases.MockRunAgent) {
				m.EXPECT().
					Stream(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.NewNotFoundErr("agent 'trader' not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedDetail: "agent 'trader' not found",
		},
		"stream-fails-after-chunk": {
			agent:       "assistant",
			requestBody: serializeJSON(t, gen.RunAgentJSONRequestBody{Prompt: "hi", Stream: common.Ptr(true)}),
			setupMocks: func(m *usecases.MockRunAgent) {
				m.EXPECT().
					Stream(mock.Anything, mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, _ usecases.RunAgentRequest, onChunk domain.StreamDeltaCallback) error {
						_ = onChunk("partial")
						return domain.NewAgentErr("Agent streaming failed: boom", nil, errors.New("boom"))
					})
			},
			expectedStatus: http.StatusOK,
			expectedEvents: []string{
				"event: delta\ndata: {\"text\":\"partial\"}\n\n",
				"event: error\ndata: {\"code\":\"BAD_GATEWAY\",\"detail\":\"Agent streaming failed: boom\"}\n\n",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, m := newTestServer(t)
			if tt.setupMocks != nil {
				tt.setupMocks(m.runAgent)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/agents/"+tt.agent+"/run", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var resp gen.RunAgentResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, w))
			}
			if tt.expectedEvents != nil {
				assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
				for _, event := range tt.expectedEvents {
					assert.Contains(t, w.Body.String(), event)
				}
			}
		})
	}
}

func TestMoneyPilotServer_AskAssistant(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*usecases.MockAskAssistant)
		expectedStatus int
		expectedBody   *gen.AskAssistantResp
		expectedDetail string
	}{
		"success": {
			requestBody: serializeJSON(t, gen.AskAssistantJSONRequestBody{Question: "What day is today?", UserId: common.Ptr("u1")}),
			setupMocks: func(m *usecases.MockAskAssistant) {
				m.EXPECT().
					Execute(mock.Anything, "What day is today?", "u1").
					Return(usecases.AssistantState{
						BaseState: workflow.BaseState{RequestID: "req-1"},
						Agent:     "date_resolver",
						Answer:    "Sunday",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.AskAssistantResp{RequestId: "req-1", Agent: "date_resolver", Answer: "Sunday"},
		},
		"empty-answer": {
			requestBody: serializeJSON(t, gen.AskAssistantJSONRequestBody{Question: "?"}),
			setupMocks: func(m *usecases.MockAskAssistant) {
				m.EXPECT().
					Execute(mock.Anything, "?", "").
					Return(usecases.AssistantState{
						BaseState: workflow.BaseState{Error: "agent returned an empty answer"},
					}, nil)
			},
			expectedStatus: http.StatusBadGateway,
			expectedDetail: "agent returned an empty answer",
		},
		"blank-question": {
			requestBody: serializeJSON(t, gen.AskAssistantJSONRequestBody{Question: " "}),
			setupMocks: func(m *usecases.MockAskAssistant) {
				m.EXPECT().
					Execute(mock.Anything, " ", "").
					Return(usecases.AssistantState{}, domain.NewValidationErr("question cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "question cannot be empty",
		},
		"workflow-failure": {
			requestBody: serializeJSON(t, gen.AskAssistantJSONRequestBody{Question: "hi"}),
			setupMocks: func(m *usecases.MockAskAssistant) {
				m.EXPECT().
					Execute(mock.Anything, "hi", "").
					Return(usecases.AssistantState{}, domain.NewWorkflowErr("Workflow execution failed: boom", nil, errors.New("boom")))
			},
			expectedStatus: http.StatusBadGateway,
			expectedDetail: "Workflow execution failed: boom",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, m := newTestServer(t)
			tt.setupMocks(m.ask)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/ask", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var resp gen.AskAssistantResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, w))
			}
		})
	}
}
