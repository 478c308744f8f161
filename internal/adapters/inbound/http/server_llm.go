package http

import (
	"net/http"

	"github.com/cleitonmarx/moneypilot/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/usecases"
)

var chatRoles = map[string]domain.ChatRole{
	"system":    domain.ChatRole_System,
	"user":      domain.ChatRole_User,
	"assistant": domain.ChatRole_Assistant,
}

// QueryLLM sends a conversation to the model.
func (api MoneyPilotServer) QueryLLM(w http.ResponseWriter, r *http.Request) {
	req := gen.QueryLLMJSONRequestBody{}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	messages, err := toDomainMessages(req.Messages)
	if err != nil {
		respondError(w, err)
		return
	}

	jsonResponse := req.JsonResponse != nil && *req.JsonResponse

	var opts []usecases.QueryOption
	if req.ToolNames != nil {
		opts = append(opts, usecases.WithTools(*req.ToolNames...))
	}
	if jsonResponse {
		opts = append(opts, usecases.WithJSONResponse())
	}
	if req.MaxTokens != nil {
		opts = append(opts, usecases.WithMaxTokens(*req.MaxTokens))
	}
	if req.Temperature != nil {
		opts = append(opts, usecases.WithTemperature(*req.Temperature))
	}
	if req.TopP != nil {
		opts = append(opts, usecases.WithTopP(*req.TopP))
	}

	res, err := api.LLMService.Query(r.Context(), messages, opts...)
	if err != nil {
		api.Logger.ErrorContext(r.Context(), "QueryLLM: error querying model", "error", err)
		respondError(w, err)
		return
	}

	resp := gen.QueryLLMResp{
		RequestId: res.RequestID,
		Usage: gen.UsageResp{
			PromptTokens:     res.Usage.PromptTokens,
			CompletionTokens: res.Usage.CompletionTokens,
			TotalTokens:      res.Usage.TotalTokens,
		},
	}
	if jsonResponse {
		data := res.JSON
		resp.Data = &data
	} else {
		text := res.Message.Text()
		resp.Message = &text
	}
	respondJSON(w, http.StatusOK, resp)
}

// ListTools returns the sorted names of the registered tools.
func (api MoneyPilotServer) ListTools(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, gen.ToolListResp{Tools: api.ToolRegistry.ToolNames()})
}

func toDomainMessages(reqs []gen.MessageReq) ([]domain.Message, error) {
	if len(reqs) == 0 {
		return nil, domain.NewValidationErr("messages cannot be empty")
	}
	messages := make([]domain.Message, 0, len(reqs))
	for _, m := range reqs {
		role, ok := chatRoles[m.Role]
		if !ok {
			return nil, domain.NewValidationErr("invalid message role: " + m.Role)
		}
		messages = append(messages, domain.NewMessage(role, m.Content))
	}
	return messages, nil
}
