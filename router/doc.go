// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires routes to handlers using Go 1.22+ method routing.

	mux := router.NewRouter(db, cfg)

Public routes: /health, /, /auth/register, /auth/login. Everything under
/agents and /lists goes through RequireAdmin. All routes are wrapped
with request logging.
*/
package router
