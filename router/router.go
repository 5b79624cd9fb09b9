// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/agent-dispatch/cliparse"
	"github.com/danielhkuo/agent-dispatch/handlers"
	"github.com/danielhkuo/agent-dispatch/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	agentHandler := handlers.NewAgentHandler(db, cfg)
	listHandler := handlers.NewListHandler(db, cfg)

	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(db, cfg.TokenSalt, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication (public)
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))

	// Agent management (admin only)
	mux.HandleFunc("POST /agents", admin(agentHandler.CreateAgent))
	mux.HandleFunc("GET /agents", admin(agentHandler.GetAgents))

	// List distribution (admin only)
	mux.HandleFunc("POST /lists/upload", admin(listHandler.Upload))
	mux.HandleFunc("GET /lists", admin(listHandler.GetLists))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("agent-dispatch API v1"))
	})

	return mux
}
