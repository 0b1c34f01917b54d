package api

import (
	"context"
	"net/http"
	"time"

	"ecotokens/config"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter builds the rewards API router with logging and request-id
// middleware applied to every route
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, LoggerMiddleware)

	r.HandleFunc("/earn-tokens", h.EarnTokens).Methods(http.MethodPost)
	r.HandleFunc("/get-tokens", h.GetTokens).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard", h.Leaderboard).Methods(http.MethodGet)
	r.HandleFunc("/achievements", h.Achievements).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	return r
}

// NewServer wraps the router in CORS handling and returns a configured
// HTTP server ready to listen
func NewServer(cfg *config.Config, h *Handler) *http.Server {
	corsHandler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", userIDHeader},
	}).Handler(NewRouter(h))

	return &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Shutdown gracefully stops the server, waiting for in-flight requests
func Shutdown(ctx context.Context, srv *http.Server) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
