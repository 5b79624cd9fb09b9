// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema.

# Tables

  - users: admin and agent accounts (role-checked), unique email
  - lists: distributed contact entries, each referencing the agent it was
    assigned to and the admin who uploaded it

CreateSchema is idempotent (CREATE TABLE IF NOT EXISTS) and is called once
at startup:

	if err := db.CreateSchema(conn); err != nil { ... }

The DDL sticks to the common subset of PostgreSQL and SQLite so either
driver works unchanged.
*/
package db
