// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/agent-dispatch/middleware"
	"github.com/danielhkuo/agent-dispatch/models"
	"github.com/danielhkuo/agent-dispatch/testutil"
)

// setupUpload builds the admin-gated upload handler exactly as the
// router wires it, plus an admin token to call it with.
func setupUpload(t *testing.T, db *sql.DB) (upload http.HandlerFunc, token string) {
	t.Helper()

	cfg := testutil.GetTestConfig()
	handler := NewListHandler(db, cfg)
	_, token = testutil.CreateTestAdmin(t, db, cfg, "admin@example.com")
	return middleware.RequireAdmin(db, cfg.TokenSalt, handler.Upload), token
}

// createAgents inserts n agents spaced a second apart so directory order
// is deterministic, and returns their IDs in that order.
func createAgents(t *testing.T, db *sql.DB, n int) []string {
	t.Helper()

	base := time.Now()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = testutil.CreateTestAgent(t, db,
			fmt.Sprintf("Agent %d", i),
			fmt.Sprintf("agent%d@example.com", i),
			base.Add(time.Duration(i)*time.Second),
		)
	}
	return ids
}

func TestUploadRoundRobinCSV(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	upload, token := setupUpload(t, db)
	agents := createAgents(t, db, 2)

	csv := "firstName,phone,notes\nAlice,1234567890,\nBob,2223334444,\n"
	req := testutil.MakeUploadRequest(t, "/lists/upload", []byte(csv), "text/csv", token)
	w := httptest.NewRecorder()
	upload(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.UploadResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalItems != 2 {
		t.Errorf("Expected totalItems 2, got %d", resp.TotalItems)
	}
	if resp.Message != "Distributed 2 items to 2 agents" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
	if len(resp.DistributedLists) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(resp.DistributedLists))
	}
	if resp.DistributedLists[0].FirstName != "Alice" || resp.DistributedLists[0].AssignedTo != agents[0] {
		t.Errorf("Expected Alice assigned to the first agent: %+v", resp.DistributedLists[0])
	}
	if resp.DistributedLists[1].FirstName != "Bob" || resp.DistributedLists[1].AssignedTo != agents[1] {
		t.Errorf("Expected Bob assigned to the second agent: %+v", resp.DistributedLists[1])
	}

	// Batch actually persisted
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM lists").Scan(&count); err != nil {
		t.Fatalf("Failed to count lists: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 persisted entries, got %d", count)
	}
}

func TestUploadSevenRowsThreeAgents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	upload, token := setupUpload(t, db)
	agents := createAgents(t, db, 3)

	var sb strings.Builder
	sb.WriteString("firstName,phone\n")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(&sb, "Contact%d,555000%04d\n", i, i)
	}

	req := testutil.MakeUploadRequest(t, "/lists/upload", []byte(sb.String()), "text/csv", token)
	w := httptest.NewRecorder()
	upload(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.UploadResponse
	testutil.AssertJSON(t, w, &resp)

	expected := []string{agents[0], agents[1], agents[2], agents[0], agents[1], agents[2], agents[0]}
	counts := map[string]int{}
	for i, entry := range resp.DistributedLists {
		if entry.AssignedTo != expected[i] {
			t.Errorf("Row %d assigned to wrong agent", i)
		}
		counts[entry.AssignedTo]++
	}
	if counts[agents[0]] != 3 || counts[agents[1]] != 2 || counts[agents[2]] != 2 {
		t.Errorf("Unexpected per-agent counts: %v", counts)
	}
}

func TestUploadCapsAgents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	upload, token := setupUpload(t, db)
	agents := createAgents(t, db, 7)

	var sb strings.Builder
	sb.WriteString("firstName,phone\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&sb, "Contact%d,555000%04d\n", i, i)
	}

	req := testutil.MakeUploadRequest(t, "/lists/upload", []byte(sb.String()), "text/csv", token)
	w := httptest.NewRecorder()
	upload(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.UploadResponse
	testutil.AssertJSON(t, w, &resp)

	// Only the first MaxAgents agents participate
	if resp.Message != "Distributed 10 items to 5 agents" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
	for _, entry := range resp.DistributedLists {
		if entry.AssignedTo == agents[5] || entry.AssignedTo == agents[6] {
			t.Errorf("Agent beyond the cap received an assignment: %s", entry.AssignedTo)
		}
	}
}

func TestUploadWorkbook(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	upload, token := setupUpload(t, db)
	createAgents(t, db, 2)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"FirstName", "Phone", "Notes"}
	row := []interface{}{"Alice", 1234567890, "from xlsx"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("Failed to set header: %v", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &row); err != nil {
		t.Fatalf("Failed to set row: %v", err)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	f.Close()

	req := testutil.MakeUploadRequest(t, "/lists/upload", buf.Bytes(),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", token)
	w := httptest.NewRecorder()
	upload(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.UploadResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.TotalItems != 1 {
		t.Fatalf("Expected 1 item, got %d", resp.TotalItems)
	}
	if resp.DistributedLists[0].Phone != "1234567890" {
		t.Errorf("Numeric phone cell mangled: %q", resp.DistributedLists[0].Phone)
	}
}

func TestUploadNoValidRecords(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	upload, token := setupUpload(t, db)
	createAgents(t, db, 2)

	csv := "firstName,phone\nNoPhone,\n,5551234567\n"
	req := testutil.MakeUploadRequest(t, "/lists/upload", []byte(csv), "text/csv", token)
	w := httptest.NewRecorder()
	upload(w, req)

	testutil.AssertStatus(t, w, 400)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "No valid records found" {
		t.Errorf("Unexpected error message: %q", resp.Error)
	}

	// Nothing persisted
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM lists").Scan(&count); err != nil {
		t.Fatalf("Failed to count lists: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no persisted entries, got %d", count)
	}
}

func TestUploadNoAgents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	upload, token := setupUpload(t, db)

	csv := "firstName,phone\nAlice,1234567890\n"
	req := testutil.MakeUploadRequest(t, "/lists/upload", []byte(csv), "text/csv", token)
	w := httptest.NewRecorder()
	upload(w, req)

	testutil.AssertStatus(t, w, 400)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "No agents available" {
		t.Errorf("Unexpected error message: %q", resp.Error)
	}
}

func TestUploadMissingFile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	upload, token := setupUpload(t, db)
	createAgents(t, db, 1)

	// Multipart body without a "file" field
	req := httptest.NewRequest("POST", "/lists/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=empty")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	upload(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestUploadInvalidWorkbook(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	upload, token := setupUpload(t, db)
	createAgents(t, db, 1)

	req := testutil.MakeUploadRequest(t, "/lists/upload", []byte("not a workbook"), "application/octet-stream", token)
	w := httptest.NewRecorder()
	upload(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestUploadRequiresAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	upload, _ := setupUpload(t, db)
	createAgents(t, db, 1)

	csv := "firstName,phone\nAlice,1234567890\n"
	req := testutil.MakeUploadRequest(t, "/lists/upload", []byte(csv), "text/csv", "")
	w := httptest.NewRecorder()
	upload(w, req)

	testutil.AssertStatus(t, w, 401)
}

func TestGetLists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewListHandler(db, cfg)
	upload, token := setupUpload(t, db)
	createAgents(t, db, 2)

	csv := "firstName,phone,notes\nAlice,1234567890,VIP\nBob,2223334444,\n"
	req := testutil.MakeUploadRequest(t, "/lists/upload", []byte(csv), "text/csv", token)
	w := httptest.NewRecorder()
	upload(w, req)
	testutil.AssertStatus(t, w, 200)

	w = httptest.NewRecorder()
	handler.GetLists(w, testutil.MakeRequest("GET", "/lists", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var entries []models.ListEntryWithAgent
	testutil.AssertJSON(t, w, &entries)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.AgentName == "" || e.AgentEmail == "" {
			t.Errorf("Entry missing agent display fields: %+v", e)
		}
	}
}
