// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/agent-dispatch/fileparse"
	"github.com/danielhkuo/agent-dispatch/models"
)

var (
	// ErrNoFile means the request carried no file part.
	ErrNoFile = errors.New("no file uploaded")
	// ErrNoValidRecords means parsing worked but no row survived
	// normalization.
	ErrNoValidRecords = errors.New("no valid records found")
	// ErrNoAgents means the directory returned zero agents to assign to.
	ErrNoAgents = errors.New("no agents available")
)

// AgentDirectory is the external source of assignable agents. Order is
// whatever the directory returns; the service does not re-sort.
type AgentDirectory interface {
	ListAgents(ctx context.Context, limit int) ([]models.Agent, error)
}

// ListSaver persists one distribution batch. Implementations must be
// all-or-nothing: a failed save leaves no partial batch behind.
type ListSaver interface {
	SaveBatch(ctx context.Context, entries []models.ListEntry) ([]models.ListEntry, error)
}

// Service drives the upload pipeline: parse, normalize, distribute,
// persist.
type Service struct {
	directory AgentDirectory
	saver     ListSaver
	maxAgents int
	now       func() time.Time
	newID     func() string
}

func NewService(directory AgentDirectory, saver ListSaver, maxAgents int, newID func() string) *Service {
	return &Service{
		directory: directory,
		saver:     saver,
		maxAgents: maxAgents,
		now:       time.Now,
		newID:     newID,
	}
}

// Upload runs one file through the whole pipeline on behalf of the given
// admin. The returned summary carries the saved entries, so callers see
// generated IDs and timestamps.
func (s *Service) Upload(ctx context.Context, data []byte, declaredType, uploadedBy string) (*models.UploadResponse, error) {
	if len(data) == 0 {
		return nil, ErrNoFile
	}

	records, err := fileparse.Parse(data, declaredType)
	if err != nil {
		return nil, err
	}

	contacts := Normalize(records)
	if len(contacts) == 0 {
		return nil, ErrNoValidRecords
	}

	agents, err := s.directory.ListAgents(ctx, s.maxAgents)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	assignments, err := Distribute(contacts, agents)
	if err != nil {
		return nil, err
	}

	uploadDate := s.now()
	entries := make([]models.ListEntry, 0, len(assignments))
	for _, a := range assignments {
		entries = append(entries, models.ListEntry{
			ID:         s.newID(),
			FirstName:  a.Contact.FirstName,
			Phone:      a.Contact.Phone,
			Notes:      a.Contact.Notes,
			AssignedTo: a.AgentID,
			UploadedBy: uploadedBy,
			UploadDate: uploadDate,
		})
	}

	saved, err := s.saver.SaveBatch(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to save batch: %w", err)
	}

	slog.Info("list distributed",
		"total_items", len(saved),
		"agents", len(agents),
		"uploaded_by", uploadedBy,
	)

	return &models.UploadResponse{
		Message:          fmt.Sprintf("Distributed %d items to %d agents", len(saved), len(agents)),
		DistributedLists: saved,
		TotalItems:       len(saved),
	}, nil
}
