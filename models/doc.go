// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared across
the agent-dispatch API.

# Domain Types

  - User: admin or agent account; password hash never serialized
  - Agent: directory view of an agent (id, name, email, mobile)
  - Contact: one normalized row from an uploaded contact list
  - ListEntry: a contact assigned to an agent and persisted
  - ListEntryWithAgent: ListEntry joined with agent display fields

# JSON Conventions

Field names mirror the upload file's canonical headers (firstName, phone,
notes) so that what an admin uploads is what the API returns.

Error responses always take the shape:

	{ "error": "No valid records found" }
*/
package models
