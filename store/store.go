// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/agent-dispatch/models"
)

// SQL implements dispatch.AgentDirectory and dispatch.ListSaver over
// *sql.DB. The DDL and queries work against both postgres and sqlite.
type SQL struct {
	db *sql.DB
}

func New(db *sql.DB) *SQL {
	return &SQL{db: db}
}

// ListAgents returns up to limit agent accounts in creation order.
func (s *SQL) ListAgents(ctx context.Context, limit int) ([]models.Agent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, mobile
		FROM users
		WHERE role = $1
		ORDER BY created_at, id
		LIMIT $2
	`, models.RoleAgent, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}
	defer rows.Close()

	agents := []models.Agent{}
	for rows.Next() {
		var a models.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Mobile); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

// SaveBatch writes all entries inside one transaction. Either every entry
// lands or none does.
func (s *SQL) SaveBatch(ctx context.Context, entries []models.ListEntry) ([]models.ListEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO lists (id, first_name, phone, notes, assigned_to, uploaded_by, upload_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, e.ID, e.FirstName, e.Phone, e.Notes, e.AssignedTo, e.UploadedBy, e.UploadDate)
		if err != nil {
			return nil, fmt.Errorf("failed to insert list entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}

	return entries, nil
}

// ListEntries returns all persisted entries joined with agent display
// fields, newest upload first.
func (s *SQL) ListEntries(ctx context.Context) ([]models.ListEntryWithAgent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.id, l.first_name, l.phone, l.notes, l.assigned_to,
		       l.uploaded_by, l.upload_date, u.name, u.email
		FROM lists l
		JOIN users u ON u.id = l.assigned_to
		ORDER BY l.upload_date DESC, l.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	entries := []models.ListEntryWithAgent{}
	for rows.Next() {
		var e models.ListEntryWithAgent
		err := rows.Scan(
			&e.ID, &e.FirstName, &e.Phone, &e.Notes, &e.AssignedTo,
			&e.UploadedBy, &e.UploadDate, &e.AgentName, &e.AgentEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
