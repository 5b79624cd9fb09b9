// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the SQL-backed implementations of the dispatch
package's collaborator interfaces.

	s := store.New(db)
	svc := dispatch.NewService(s, s, cfg.MaxAgents, auth.NewID)

SaveBatch wraps the whole batch in one transaction so a failed upload
never leaves a partial distribution behind. ListAgents orders by
creation time, which is the order distribution observes.
*/
package store
