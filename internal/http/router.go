package http

import (
	nethttp "net/http"

	"pokecalc-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/species/", h.Species)
	mux.HandleFunc("/types/effectiveness", h.Effectiveness)
	mux.HandleFunc("/damage", h.Damage)
	mux.HandleFunc("/matchup", h.Matchup)
	mux.HandleFunc("/recommend", h.Recommend)
	mux.HandleFunc("/simulate", h.Simulate)
	return mux
}
