package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"pokecalc-service/internal/app/battle"
	"pokecalc-service/internal/logging"
	"pokecalc-service/internal/warmer"
)

// Handler wires HTTP routes to the battle service.
type Handler struct {
	svc      *battle.Service
	logger   *slog.Logger
	statusFn func() warmer.Status
}

// NewHandler constructs a Handler. A nil statusFn reports ready unconditionally.
func NewHandler(svc *battle.Service, logger *slog.Logger, statusFn func() warmer.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case strings.HasPrefix(r.URL.Path, "/species/"):
		h.Species(w, r)
	case r.URL.Path == "/types/effectiveness":
		h.Effectiveness(w, r)
	case r.URL.Path == "/damage":
		h.Damage(w, r)
	case r.URL.Path == "/matchup":
		h.Matchup(w, r)
	case r.URL.Path == "/recommend":
		h.Recommend(w, r)
	case r.URL.Path == "/simulate":
		h.Simulate(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, codeNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allow(w, r, nethttp.MethodGet) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, codeNotReady, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the species cache has been warmed.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allow(w, r, nethttp.MethodGet) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{
			"status": "ready",
			"warmed": status.Warmed,
			"missed": status.Missed,
		}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, codeNotReady, msg, h.logger)
}

// Species returns one species record: GET /species/{name}.
func (h *Handler) Species(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allow(w, r, nethttp.MethodGet) {
		return
	}
	raw := strings.TrimPrefix(r.URL.Path, "/species/")
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" || strings.Contains(name, "/") {
		writeError(w, r, nethttp.StatusBadRequest, codeInvalidRequest, "invalid species name", h.logger)
		return
	}

	species, err := h.svc.Species(r.Context(), name)
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served species", slog.String(logging.FieldSpecies, species.Name))
	writeJSON(w, nethttp.StatusOK, species, h.logger)
}

// Effectiveness returns a type chart lookup: GET /types/effectiveness?attack=fire&defend=grass,steel.
func (h *Handler) Effectiveness(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allow(w, r, nethttp.MethodGet) {
		return
	}
	q := r.URL.Query()
	var defend []string
	for _, part := range strings.Split(q.Get("defend"), ",") {
		if part = strings.TrimSpace(part); part != "" {
			defend = append(defend, part)
		}
	}
	res, err := h.svc.Effectiveness(q.Get("attack"), defend)
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// Damage runs one damage calculation: POST /damage.
func (h *Handler) Damage(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req battle.DamageRequest
	serve(h, w, r, &req, func(ctx context.Context) (any, error) {
		return h.svc.Damage(ctx, req)
	})
}

// Matchup scores two rosters: POST /matchup.
func (h *Handler) Matchup(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req battle.RosterRequest
	serve(h, w, r, &req, func(ctx context.Context) (any, error) {
		return h.svc.Matchup(ctx, req)
	})
}

// Recommend ranks sub-teams: POST /recommend.
func (h *Handler) Recommend(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req battle.RosterRequest
	serve(h, w, r, &req, func(ctx context.Context) (any, error) {
		return h.svc.Recommend(ctx, req)
	})
}

// Simulate runs a one-on-one judgment: POST /simulate.
func (h *Handler) Simulate(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req battle.SimulateRequest
	serve(h, w, r, &req, func(ctx context.Context) (any, error) {
		return h.svc.Simulate(ctx, req)
	})
}

// serve decodes a POST body into req, runs fn and writes its result.
func serve[T any](h *Handler, w nethttp.ResponseWriter, r *nethttp.Request, req *T, fn func(context.Context) (any, error)) {
	if !h.allow(w, r, nethttp.MethodPost) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if err := decodeBody(w, r, req); err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	out, err := fn(r.Context())
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

func (h *Handler) allow(w nethttp.ResponseWriter, r *nethttp.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, nethttp.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed", h.logger)
	return false
}
