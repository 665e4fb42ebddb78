package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"baskettracker/internal/models"
	"baskettracker/pkg/sheets"

	"github.com/xuri/excelize/v2"
)

type sessionReader interface {
	Session() models.MatchSession
}

type ReportServiceImpl struct {
	session      sessionReader
	ai           AIProvider
	sheetsClient sheets.Client
	ownerEmail   string
	logger       Logger

	mu            sync.Mutex
	spreadsheetID string
}

func NewReportServiceImpl(session sessionReader, ai AIProvider, sheetsClient sheets.Client, spreadsheetID, ownerEmail string, logger Logger) *ReportServiceImpl {
	return &ReportServiceImpl{
		session:       session,
		ai:            ai,
		sheetsClient:  sheetsClient,
		spreadsheetID: spreadsheetID,
		ownerEmail:    ownerEmail,
		logger:        logger,
	}
}

func (s *ReportServiceImpl) BoxScore() string {
	return renderBoxScore(s.session.Session())
}

// Narrative asks the coach assistant for a match write-up. It always returns
// something printable; failures come back as a user-facing message.
func (s *ReportServiceImpl) Narrative(ctx context.Context) string {
	if s.ai == nil {
		return msgMissingAPIKey
	}

	session := s.session.Session()
	var active []models.Player
	for _, p := range session.Players {
		if p.Active() {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return msgNotEnoughStats
	}

	text, err := s.ai.GenerateReport(ctx, active, session.MatchInfo)
	if err != nil {
		s.logger.Error("error generating report: %v", err)
		return msgCoachOffline
	}
	if strings.TrimSpace(text) == "" {
		return msgEmptyReport
	}
	return text
}

func (s *ReportServiceImpl) ExcelBoxScore() ([]byte, error) {
	session := s.session.Session()

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(excelSheetName); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(excelInfoSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := writeRows(f, excelSheetName, boxScoreRows(session)); err != nil {
		return nil, err
	}

	info := session.MatchInfo.Effective()
	infoRows := [][]interface{}{
		{"Équipe", info.TeamName},
		{"Adversaire", info.Opponent},
		{"Compétition", info.Championship},
		{"Date", info.Date},
		{"Heure", info.Time},
		{"Lieu", info.Location},
		{"Score", fmt.Sprintf("%d - %d", session.TotalPoints(), session.OpponentScore)},
		{"Quart-temps", session.Quarter},
	}
	if err := writeRows(f, excelInfoSheet, infoRows); err != nil {
		return nil, err
	}

	widths := []struct {
		sheet, from, to string
		width           float64
	}{
		{excelSheetName, "A", "A", 6},
		{excelSheetName, "B", "B", 20},
		{excelSheetName, "C", "L", 10},
		{excelInfoSheet, "A", "B", 24},
	}
	for _, w := range widths {
		if err := f.SetColWidth(w.sheet, w.from, w.to, w.width); err != nil {
			return nil, fmt.Errorf("failed to size columns %s:%s on %s: %w", w.from, w.to, w.sheet, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to address cell (%d,%d): %w", c+1, r+1, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// SyncToGoogleSheet pushes the box score to the configured spreadsheet,
// creating and sharing one on first use.
func (s *ReportServiceImpl) SyncToGoogleSheet() (string, error) {
	if s.sheetsClient == nil {
		return "", fmt.Errorf("google sheets service is not configured")
	}

	id, err := s.ensureSpreadsheet()
	if err != nil {
		return "", err
	}

	if err := s.sheetsClient.ClearRange(id, defaultClearRange); err != nil {
		s.logger.Error("failed to clear sheet: %v", err)
	}
	if err := s.sheetsClient.UpdateValues(id, defaultStartCell, boxScoreRows(s.session.Session())); err != nil {
		return "", fmt.Errorf("failed to update stats: %w", err)
	}

	return fmt.Sprintf(spreadsheetURLFmt, id), nil
}

func (s *ReportServiceImpl) ensureSpreadsheet() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spreadsheetID != "" {
		return s.spreadsheetID, nil
	}

	id, _, err := s.sheetsClient.CreateSpreadsheet(defaultSheetTitle)
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}
	if s.ownerEmail != "" {
		if err := s.sheetsClient.AddPermission(id, s.ownerEmail, "writer"); err != nil {
			return "", fmt.Errorf("failed to add owner permission: %w", err)
		}
	}
	if err := s.sheetsClient.MakePublic(id); err != nil {
		return "", fmt.Errorf("failed to make spreadsheet public: %w", err)
	}

	s.spreadsheetID = id
	s.logger.Info("created spreadsheet %s", id)
	return id, nil
}

func boxScoreRows(session models.MatchSession) [][]interface{} {
	rows := [][]interface{}{
		{"#", "Joueur", "PTS", "REB", "AST", "INT", "CTR", "LF R", "LF T", "3PTS", "MIN", "Dernière action"},
	}
	for _, p := range session.Players {
		st := p.Stats
		rows = append(rows, []interface{}{
			p.Number, p.Name, st.Points, st.Rebounds, st.Assists, st.Steals, st.Blocks,
			st.FreeThrowsMade, st.FreeThrowsAttempted, st.ThreePointersMade, st.MinutesPlayed,
			FormatLastAction(p),
		})
	}
	t := teamTotals(session.Players)
	rows = append(rows, []interface{}{
		"", "Total", t.Points, t.Rebounds, t.Assists, t.Steals, t.Blocks,
		t.FreeThrowsMade, t.FreeThrowsAttempted, t.ThreePointersMade, t.MinutesPlayed, "",
	})
	return rows
}
