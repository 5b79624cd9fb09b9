// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dispatch implements the list-distribution pipeline: normalize
parsed records, assign them round-robin across agents, and persist the
batch.

# Pipeline

	svc := dispatch.NewService(directory, saver, cfg.MaxAgents, auth.NewID)
	summary, err := svc.Upload(ctx, fileBytes, mimeType, adminID)

Upload steps: parse (fileparse) → Normalize → Distribute → SaveBatch.
Each step either produces the full batch or fails the upload; nothing is
partially distributed.

# Normalization

Column names are resolved through ordered fallback chains
(firstName → FirstName, and likewise for phone and notes); unmatched
fields default to empty. A row survives only if first name and phone are
both non-empty — no phone-format validation beyond that, by policy.
Numeric phone cells from spreadsheets are coerced back to full decimal
strings.

# Distribution

Contact i goes to agent i mod M. The assignment has no memory: every
upload restarts at the first agent, so per-agent counts within one batch
differ by at most one, but fairness is not cumulative across uploads.

# Errors

ErrNoFile, ErrNoValidRecords, and ErrNoAgents are user-correctable and
map to 400 responses. Directory and saver failures are wrapped and map
to 500.

# External Collaborators

AgentDirectory and ListSaver are interfaces; the SQL implementations
live in the store package, and tests substitute in-memory fakes.
*/
package dispatch
