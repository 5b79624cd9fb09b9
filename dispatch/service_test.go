// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/danielhkuo/agent-dispatch/models"
)

type fakeDirectory struct {
	agents   []models.Agent
	err      error
	gotLimit int
	calls    int
}

func (d *fakeDirectory) ListAgents(ctx context.Context, limit int) ([]models.Agent, error) {
	d.calls++
	d.gotLimit = limit
	return d.agents, d.err
}

type fakeSaver struct {
	err   error
	saved []models.ListEntry
	calls int
}

func (s *fakeSaver) SaveBatch(ctx context.Context, entries []models.ListEntry) ([]models.ListEntry, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	s.saved = entries
	return entries, nil
}

func newTestService(dir *fakeDirectory, saver *fakeSaver) *Service {
	n := 0
	svc := NewService(dir, saver, 5, func() string {
		n++
		return fmt.Sprintf("entry-%d", n)
	})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestUploadDistributesCSV(t *testing.T) {
	dir := &fakeDirectory{agents: makeAgents("A", "B")}
	saver := &fakeSaver{}
	svc := newTestService(dir, saver)

	csv := "firstName,phone,notes\nAlice,1234567890,\nBob,2223334444,\n"
	resp, err := svc.Upload(context.Background(), []byte(csv), "text/csv", "admin-1")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if resp.TotalItems != 2 {
		t.Errorf("Expected totalItems 2, got %d", resp.TotalItems)
	}
	if resp.Message != "Distributed 2 items to 2 agents" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
	if len(resp.DistributedLists) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(resp.DistributedLists))
	}
	if resp.DistributedLists[0].FirstName != "Alice" || resp.DistributedLists[0].AssignedTo != "A" {
		t.Errorf("Expected Alice assigned to A, got %+v", resp.DistributedLists[0])
	}
	if resp.DistributedLists[1].FirstName != "Bob" || resp.DistributedLists[1].AssignedTo != "B" {
		t.Errorf("Expected Bob assigned to B, got %+v", resp.DistributedLists[1])
	}
	if dir.gotLimit != 5 {
		t.Errorf("Expected directory queried with limit 5, got %d", dir.gotLimit)
	}
}

func TestUploadEntryRoundTrip(t *testing.T) {
	// Building an entry from a contact preserves its fields unchanged and
	// adds exactly the assignment metadata.
	dir := &fakeDirectory{agents: makeAgents("A")}
	saver := &fakeSaver{}
	svc := newTestService(dir, saver)

	csv := "firstName,phone,notes\nAlice,1234567890,call after 5\n"
	resp, err := svc.Upload(context.Background(), []byte(csv), "text/csv", "admin-1")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	entry := resp.DistributedLists[0]
	if entry.FirstName != "Alice" || entry.Phone != "1234567890" || entry.Notes != "call after 5" {
		t.Errorf("Contact fields changed: %+v", entry)
	}
	if entry.AssignedTo != "A" {
		t.Errorf("Expected assignedTo A, got %s", entry.AssignedTo)
	}
	if entry.UploadedBy != "admin-1" {
		t.Errorf("Expected uploadedBy admin-1, got %s", entry.UploadedBy)
	}
	if entry.ID == "" || entry.UploadDate.IsZero() {
		t.Errorf("Expected generated ID and upload date: %+v", entry)
	}
}

func TestUploadMixedCaseHeaders(t *testing.T) {
	dir := &fakeDirectory{agents: makeAgents("A")}
	saver := &fakeSaver{}
	svc := newTestService(dir, saver)

	csv := "FirstName,Phone,Notes\nAlice,1234567890,VIP\n"
	resp, err := svc.Upload(context.Background(), []byte(csv), "text/csv", "admin-1")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if resp.TotalItems != 1 {
		t.Errorf("Capitalized headers should still normalize, got %d items", resp.TotalItems)
	}
}

func TestUploadDropsRowsMissingPhone(t *testing.T) {
	dir := &fakeDirectory{agents: makeAgents("A")}
	saver := &fakeSaver{}
	svc := newTestService(dir, saver)

	csv := "firstName,phone\nAlice,1234567890\nNoPhone,\n"
	resp, err := svc.Upload(context.Background(), []byte(csv), "text/csv", "admin-1")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if resp.TotalItems != 1 {
		t.Errorf("Expected 1 item after dropping phoneless row, got %d", resp.TotalItems)
	}
}

func TestUploadNoFile(t *testing.T) {
	dir := &fakeDirectory{agents: makeAgents("A")}
	saver := &fakeSaver{}
	svc := newTestService(dir, saver)

	for _, data := range [][]byte{nil, {}} {
		if _, err := svc.Upload(context.Background(), data, "text/csv", "admin-1"); err != ErrNoFile {
			t.Errorf("Expected ErrNoFile, got %v", err)
		}
	}
	if dir.calls != 0 || saver.calls != 0 {
		t.Error("No collaborator should be called without a file")
	}
}

func TestUploadNoValidRecords(t *testing.T) {
	dir := &fakeDirectory{agents: makeAgents("A")}
	saver := &fakeSaver{}
	svc := newTestService(dir, saver)

	csv := "firstName,phone\nNoPhone,\n,5551234567\n"
	if _, err := svc.Upload(context.Background(), []byte(csv), "text/csv", "admin-1"); err != ErrNoValidRecords {
		t.Errorf("Expected ErrNoValidRecords, got %v", err)
	}
	if saver.calls != 0 {
		t.Error("Saver must not be called when no rows are valid")
	}
}

func TestUploadNoAgents(t *testing.T) {
	dir := &fakeDirectory{}
	saver := &fakeSaver{}
	svc := newTestService(dir, saver)

	csv := "firstName,phone\nAlice,1234567890\n"
	if _, err := svc.Upload(context.Background(), []byte(csv), "text/csv", "admin-1"); !errors.Is(err, ErrNoAgents) {
		t.Errorf("Expected ErrNoAgents, got %v", err)
	}
	if saver.calls != 0 {
		t.Error("Saver must not be called when no agents exist")
	}
}

func TestUploadSaverFailure(t *testing.T) {
	dir := &fakeDirectory{agents: makeAgents("A")}
	saver := &fakeSaver{err: errors.New("connection reset")}
	svc := newTestService(dir, saver)

	csv := "firstName,phone\nAlice,1234567890\n"
	_, err := svc.Upload(context.Background(), []byte(csv), "text/csv", "admin-1")
	if err == nil {
		t.Fatal("Expected saver failure to fail the upload")
	}
	if errors.Is(err, ErrNoValidRecords) || errors.Is(err, ErrNoAgents) {
		t.Errorf("Saver failure misclassified: %v", err)
	}
}

func TestUploadDirectoryFailure(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("directory down")}
	saver := &fakeSaver{}
	svc := newTestService(dir, saver)

	csv := "firstName,phone\nAlice,1234567890\n"
	if _, err := svc.Upload(context.Background(), []byte(csv), "text/csv", "admin-1"); err == nil {
		t.Fatal("Expected directory failure to fail the upload")
	}
	if saver.calls != 0 {
		t.Error("Saver must not be called when the directory fails")
	}
}
