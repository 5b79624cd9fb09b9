// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/agent-dispatch/auth"
	"github.com/danielhkuo/agent-dispatch/cliparse"
	"github.com/danielhkuo/agent-dispatch/middleware"
	"github.com/danielhkuo/agent-dispatch/models"
)

type AgentHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAgentHandler(db *sql.DB, cfg cliparse.Config) *AgentHandler {
	return &AgentHandler{db: db, cfg: cfg}
}

// CreateAgent handles POST /agents
func (h *AgentHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAgentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create agent")
		return
	}

	agent := models.Agent{
		ID:     auth.NewID(),
		Name:   req.Name,
		Email:  req.Email,
		Mobile: req.Mobile,
	}

	_, err = h.db.Exec(`
		INSERT INTO users (id, name, email, mobile, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, agent.ID, agent.Name, agent.Email, agent.Mobile, hash, models.RoleAgent, time.Now())

	if err != nil {
		slog.Error("failed to insert agent", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email already registered")
		return
	}

	slog.Info("agent created", "agent_id", agent.ID, "email", agent.Email)

	middleware.JSONResponse(w, http.StatusCreated, agent)
}

// GetAgents handles GET /agents
func (h *AgentHandler) GetAgents(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, email, mobile
		FROM users
		WHERE role = $1
		ORDER BY created_at, id
	`, models.RoleAgent)

	if err != nil {
		slog.Error("failed to query agents", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	agents := []models.Agent{}
	for rows.Next() {
		var a models.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Mobile); err != nil {
			slog.Error("failed to scan agent", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		agents = append(agents, a)
	}

	middleware.JSONResponse(w, http.StatusOK, agents)
}
