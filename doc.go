// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the agent-dispatch API server.

Agent-dispatch is the backend of a small admin panel: admins upload a
contact list (CSV or Excel) and the service spreads its rows round-robin
across a pool of agent accounts.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... TOKEN_SALT=... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..." -token-salt "..."

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string
  - TOKEN_SALT (-token-salt): secret for session token HMAC

Optional settings:

  - PORT (-p): server port (default: 8080)
  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - MAX_AGENTS (-max-agents): distribution cap (default: 5)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, agents, lists)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, admin gate, CORS, JSON helpers
  - models: request/response and domain types
  - auth: password hashing and session tokens
  - fileparse: CSV/workbook parsing into records
  - dispatch: normalization, round-robin distribution, orchestration
  - store: SQL implementations of dispatch's collaborator interfaces
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
