package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"pokecalc-service/internal/app/battle"
	"pokecalc-service/internal/domain/pokemon"
	"pokecalc-service/internal/http/middleware"
	"pokecalc-service/internal/http/requestutil"
	"pokecalc-service/internal/logging"
	"pokecalc-service/internal/providers"
)

const maxBodyBytes = 1 << 20

// Error codes returned in the body alongside the message.
const (
	codeInvalidRequest   = "invalid_request"
	codeNotFound         = "not_found"
	codeDataUnavailable  = "data_unavailable"
	codeMethodNotAllowed = "method_not_allowed"
	codeNotReady         = "not_ready"
	codeInternal         = "internal"
)

type errorBody struct {
	Error       string   `json:"error"`
	Code        string   `json:"code"`
	RequestID   string   `json:"requestId,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger *slog.Logger) {
	writeErrorBody(w, r, status, errorBody{Error: message, Code: code}, logger)
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body errorBody, logger *slog.Logger) {
	body.RequestID = middleware.RequestIDFromContext(r.Context())
	if body.RequestID == "" {
		body.RequestID = r.Header.Get(requestutil.HeaderRequestID)
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps engine and provider failures onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if nf, ok := providers.AsNotFoundError(err); ok {
		writeErrorBody(w, r, http.StatusNotFound, errorBody{
			Error:       err.Error(),
			Code:        codeNotFound,
			Suggestions: nf.Suggestions,
		}, logger)
		return
	}

	switch {
	case errors.Is(err, battle.ErrInvalidRequest), pokemon.IsValidationError(err):
		writeError(w, r, http.StatusBadRequest, codeInvalidRequest, err.Error(), logger)
	case errors.Is(err, pokemon.ErrDataUnavailable):
		logging.Warn(logger, "upstream data unavailable", slog.Any("error", err))
		writeError(w, r, http.StatusBadGateway, codeDataUnavailable, "species data unavailable", logger)
	default:
		logging.Error(logger, "request failed", err)
		writeError(w, r, http.StatusInternalServerError, codeInternal, "internal error", logger)
	}
}

// decodeBody reads a bounded JSON body into dest, rejecting unknown fields and trailing data.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("%w: %v", battle.ErrInvalidRequest, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after body", battle.ErrInvalidRequest)
	}
	return nil
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
