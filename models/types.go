// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// User role constants
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// Request types

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAgentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UploadResponse summarizes one distribution run.
type UploadResponse struct {
	Message          string      `json:"message"`
	DistributedLists []ListEntry `json:"distributedLists"`
	TotalItems       int         `json:"totalItems"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Agent is the read-only directory view of an agent user.
type Agent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// Contact is one normalized row from an uploaded file. A Contact exists
// only if both FirstName and Phone survived normalization non-empty.
type Contact struct {
	FirstName string `json:"firstName"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// ListEntry is a persisted assignment of one contact to one agent.
type ListEntry struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	Phone      string    `json:"phone"`
	Notes      string    `json:"notes"`
	AssignedTo string    `json:"assignedTo"`
	UploadedBy string    `json:"uploadedBy"`
	UploadDate time.Time `json:"uploadDate"`
}

// ListEntryWithAgent joins a ListEntry with agent display fields for the
// read view.
type ListEntryWithAgent struct {
	ListEntry
	AgentName  string `json:"agentName"`
	AgentEmail string `json:"agentEmail"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
