package application

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"baskettracker/internal/models"
	"baskettracker/internal/repository"

	"github.com/xuri/excelize/v2"
)

type fakeAI struct {
	text    string
	err     error
	players []models.Player
	calls   int
}

func (f *fakeAI) GenerateReport(_ context.Context, players []models.Player, _ models.MatchInfo) (string, error) {
	f.calls++
	f.players = players
	return f.text, f.err
}

type fakeSheets struct {
	created     int
	permissions []string
	public      bool
	cleared     string
	values      [][]interface{}
}

func (f *fakeSheets) CreateSpreadsheet(title string) (string, string, error) {
	f.created++
	return "sheet-1", "https://docs.google.com/spreadsheets/d/sheet-1", nil
}

func (f *fakeSheets) AddPermission(_, email, role string) error {
	f.permissions = append(f.permissions, email+":"+role)
	return nil
}

func (f *fakeSheets) MakePublic(string) error {
	f.public = true
	return nil
}

func (f *fakeSheets) ClearRange(_, rangeStr string) error {
	f.cleared = rangeStr
	return nil
}

func (f *fakeSheets) UpdateValues(_, _ string, values [][]interface{}) error {
	f.values = values
	return nil
}

func sessionWithStats(t *testing.T) *SessionServiceImpl {
	t.Helper()
	s := newTestSession(repository.NewSnapshotMemory())
	leo := mustAdd(t, s, "Léo", "23")
	mustAdd(t, s, "Lucas", "8")
	s.StartMatch()
	mustDispatch(t, s, leo.ID, models.Add3PT, false)
	mustDispatch(t, s, leo.ID, models.AddREB, false)
	return s
}

func TestNarrative(t *testing.T) {
	ctx := context.Background()

	t.Run("no provider", func(t *testing.T) {
		r := NewReportServiceImpl(sessionWithStats(t), nil, nil, "", "", nopLogger{})
		if got := r.Narrative(ctx); got != msgMissingAPIKey {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("no active players", func(t *testing.T) {
		s := newTestSession(repository.NewSnapshotMemory())
		mustAdd(t, s, "Léo", "23")
		ai := &fakeAI{text: "bravo"}
		r := NewReportServiceImpl(s, ai, nil, "", "", nopLogger{})
		if got := r.Narrative(ctx); got != msgNotEnoughStats {
			t.Fatalf("unexpected message %q", got)
		}
		if ai.calls != 0 {
			t.Fatalf("provider must not be called without stats")
		}
	})

	t.Run("only active players are sent", func(t *testing.T) {
		ai := &fakeAI{text: "Belle victoire."}
		r := NewReportServiceImpl(sessionWithStats(t), ai, nil, "", "", nopLogger{})
		if got := r.Narrative(ctx); got != "Belle victoire." {
			t.Fatalf("unexpected narrative %q", got)
		}
		if len(ai.players) != 1 || ai.players[0].Name != "Léo" {
			t.Fatalf("expected only Léo, got %+v", ai.players)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		ai := &fakeAI{err: errors.New("quota exceeded")}
		r := NewReportServiceImpl(sessionWithStats(t), ai, nil, "", "", nopLogger{})
		if got := r.Narrative(ctx); got != msgCoachOffline {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("blank answer", func(t *testing.T) {
		ai := &fakeAI{text: "  \n"}
		r := NewReportServiceImpl(sessionWithStats(t), ai, nil, "", "", nopLogger{})
		if got := r.Narrative(ctx); got != msgEmptyReport {
			t.Fatalf("unexpected message %q", got)
		}
	})
}

func TestExcelBoxScore(t *testing.T) {
	r := NewReportServiceImpl(sessionWithStats(t), nil, nil, "", "", nopLogger{})

	data, err := r.ExcelBoxScore()
	if err != nil {
		t.Fatalf("excel export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != excelSheetName || sheets[1] != excelInfoSheet {
		t.Fatalf("unexpected sheets %v", sheets)
	}

	rows, err := f.GetRows(excelSheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header, 2 players and total, got %d rows", len(rows))
	}
	if rows[1][1] != "Léo" || rows[1][2] != "3" || rows[1][9] != "1" {
		t.Fatalf("unexpected player row %v", rows[1])
	}
	if rows[1][11] != "14:30:05" {
		t.Fatalf("unexpected last action cell %q", rows[1][11])
	}
	if rows[3][1] != "Total" || rows[3][2] != "3" || rows[3][3] != "1" {
		t.Fatalf("unexpected total row %v", rows[3])
	}

	score, _ := f.GetCellValue(excelInfoSheet, "B7")
	if score != "3 - 0" {
		t.Fatalf("unexpected score cell %q", score)
	}
}

func TestWriteRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	tests := []struct {
		name    string
		sheet   string
		wantErr bool
	}{
		{"existing sheet", "Sheet1", false},
		{"missing sheet", "Nope", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := writeRows(f, tt.sheet, [][]interface{}{{"Nom", "Pts"}, {"Léo", 3}})
			if (err != nil) != tt.wantErr {
				t.Fatalf("writeRows(%q) error = %v, wantErr %v", tt.sheet, err, tt.wantErr)
			}
		})
	}

	got, _ := f.GetCellValue("Sheet1", "B2")
	if got != "3" {
		t.Fatalf("unexpected cell B2 %q", got)
	}
}

func TestSyncToGoogleSheet(t *testing.T) {
	client := &fakeSheets{}
	r := NewReportServiceImpl(sessionWithStats(t), nil, client, "", "coach@example.com", nopLogger{})

	url, err := r.SyncToGoogleSheet()
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !strings.HasSuffix(url, "/sheet-1") {
		t.Fatalf("unexpected url %q", url)
	}
	if client.created != 1 || !client.public || len(client.permissions) != 1 || client.permissions[0] != "coach@example.com:writer" {
		t.Fatalf("spreadsheet not set up: %+v", client)
	}
	if client.cleared != defaultClearRange || len(client.values) != 4 {
		t.Fatalf("unexpected write: cleared %q, %d rows", client.cleared, len(client.values))
	}

	if _, err := r.SyncToGoogleSheet(); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if client.created != 1 {
		t.Fatalf("spreadsheet must be reused, created %d", client.created)
	}
}

func TestSyncWithoutClient(t *testing.T) {
	r := NewReportServiceImpl(sessionWithStats(t), nil, nil, "", "", nopLogger{})
	if _, err := r.SyncToGoogleSheet(); err == nil {
		t.Fatalf("expected error without sheets client")
	}
}

type countingFlusher struct {
	calls chan struct{}
}

func (c *countingFlusher) Flush() error {
	select {
	case c.calls <- struct{}{}:
	default:
	}
	return nil
}

func TestAutosaveWorkerFlushes(t *testing.T) {
	f := &countingFlusher{calls: make(chan struct{}, 8)}
	w := NewAutosaveWorker(f, 10*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-f.calls:
	case <-time.After(time.Second):
		t.Fatalf("worker never flushed")
	}

	w.Stop()
	w.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("worker did not stop")
	}
	cancel()
}
