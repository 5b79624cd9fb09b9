// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token utilities.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

CheckPassword returns ErrInvalidCredentials on mismatch so handlers can
surface the same message for unknown email and wrong password.

# Session Tokens

Tokens use HMAC-SHA256 to create deterministic, verifiable credentials:

	token := auth.GenerateToken(userID, salt)
	userID, err := auth.ValidateToken(token, salt)

The token is "userID.signature" with a URL-safe base64 signature, no
padding. Since it's deterministic, validation needs no token table — the
middleware recovers the user ID from the token itself and only hits the
database to confirm the role.

# ID Generation

UUIDs for database records:

	id := auth.NewID()
*/
package auth
