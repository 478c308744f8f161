package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cleitonmarx/moneypilot/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/moneypilot/internal/domain"
)

const INTERNAL_ERROR_DETAIL = "Internal server error"

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondErrorResp(w http.ResponseWriter, err gen.ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Code {
	case gen.BADREQUEST:
		statusCode = http.StatusBadRequest
	case gen.NOTFOUND:
		statusCode = http.StatusNotFound
	case gen.BADGATEWAY:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, err)
}

// toErrorResp maps domain errors to error codes. Caller mistakes are
// BAD_REQUEST or NOT_FOUND and failures of the LLM backend are BAD_GATEWAY.
func toErrorResp(err error) gen.ErrorResp {
	var (
		validationErr  *domain.ValidationErr
		unknownToolErr *domain.UnknownToolErr
		notFoundErr    *domain.NotFoundErr
		queryErr       *domain.LLMQueryErr
		agentErr       *domain.AgentErr
		workflowErr    *domain.WorkflowErr
		upstreamErr    *domain.UpstreamErr
		transientErr   *domain.TransientErr
	)

	switch {
	case errors.As(err, &validationErr):
		return gen.ErrorResp{Code: gen.BADREQUEST, Detail: validationErr.Error()}
	case errors.As(err, &unknownToolErr):
		return gen.ErrorResp{Code: gen.BADREQUEST, Detail: unknownToolErr.Error()}
	case errors.As(err, &notFoundErr):
		return gen.ErrorResp{Code: gen.NOTFOUND, Detail: notFoundErr.Error()}
	case errors.As(err, &queryErr):
		return gen.ErrorResp{Code: gen.BADGATEWAY, Detail: queryErr.Message()}
	case errors.As(err, &agentErr):
		return gen.ErrorResp{Code: gen.BADGATEWAY, Detail: agentErr.Message()}
	case errors.As(err, &workflowErr):
		return gen.ErrorResp{Code: gen.BADGATEWAY, Detail: workflowErr.Message()}
	case errors.As(err, &upstreamErr), errors.As(err, &transientErr):
		return gen.ErrorResp{Code: gen.BADGATEWAY, Detail: err.Error()}
	default:
		return gen.ErrorResp{Code: gen.INTERNALERROR, Detail: INTERNAL_ERROR_DETAIL}
	}
}

func respondError(w http.ResponseWriter, err error) {
	respondErrorResp(w, toErrorResp(err))
}

// respondParamError answers requests whose parameters the generated router could not bind.
func respondParamError(w http.ResponseWriter, _ *http.Request, err error) {
	respondErrorResp(w, gen.ErrorResp{Code: gen.BADREQUEST, Detail: err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationErr("invalid request body: " + err.Error())
	}
	return nil
}
