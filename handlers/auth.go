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

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Register handles POST /auth/register
// Creates an admin account and returns a session token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
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
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	user := models.User{
		ID:        auth.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	}

	_, err = h.db.Exec(`
		INSERT INTO users (id, name, email, mobile, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Name, user.Email, user.Mobile, hash, user.Role, user.CreatedAt)

	if err != nil {
		slog.Error("failed to insert admin", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email already registered")
		return
	}

	slog.Info("admin registered", "user_id", user.ID, "email", user.Email)

	middleware.JSONResponse(w, http.StatusCreated, models.LoginResponse{
		Token: auth.GenerateToken(user.ID, h.cfg.TokenSalt),
		User:  user,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	var user models.User
	var hash string
	err := h.db.QueryRow(`
		SELECT id, name, email, mobile, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`, req.Email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Mobile, &hash, &user.Role, &user.CreatedAt,
	)

	// Same response for unknown email and wrong password
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(hash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "role", user.Role)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token: auth.GenerateToken(user.ID, h.cfg.TokenSalt),
		User:  user,
	})
}
