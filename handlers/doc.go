// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the agent-dispatch API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: admin registration and login
  - AgentHandler: agent account management
  - ListHandler: list upload/distribution and the read view

Handlers are created via constructor functions that accept *sql.DB and Config:

	listHandler := handlers.NewListHandler(db, cfg)

# Auth Flow

	POST /auth/register → Register (creates admin, returns token)
	POST /auth/login    → Login (returns token + user)

Tokens go in the Authorization header as "Bearer <token>". Everything
below is admin-gated via middleware.RequireAdmin.

# Agent Management

	POST /agents → CreateAgent (role is always 'agent')
	GET  /agents → GetAgents

# List Distribution

	POST /lists/upload → Upload (multipart, field "file")
	GET  /lists        → GetLists (entries joined with agent name/email)

Upload buffers the file, then hands it to dispatch.Service: parse
(text/csv as CSV, anything else as a workbook), normalize, spread
round-robin over up to MaxAgents agents, persist as one batch. Input
problems (no file, unparseable payload, zero valid rows, zero agents)
come back as 400 with a stable message; storage failures as 500.
*/
package handlers
