// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

	mux.HandleFunc("GET /lists", middleware.WithLogging(handler.GetLists))

Logs method, path, and duration via slog.

# Admin Gate

	middleware.RequireAdmin(db, cfg.TokenSalt, handler.Upload)

Expects "Authorization: Bearer <token>", validates the HMAC signature,
loads the user, and rejects anyone whose role is not admin. Handlers
behind the gate read the caller with middleware.AdminID(r) — they never
consult the Authorization header themselves.

# JSON Helpers

JSONResponse, ErrorResponse, and ParseJSONBody keep handler bodies
short. ErrorResponse always produces {"error": message}.

# CORS

The CORS wrapper reflects the request origin and answers preflights,
for the admin-panel frontend served from a different host.
*/
package middleware
