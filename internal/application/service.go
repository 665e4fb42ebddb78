package application

import (
	"context"
	"time"

	"baskettracker/internal/feedback"
	"baskettracker/internal/models"
	"baskettracker/internal/repository"
	"baskettracker/pkg/sheets"
)

type AIProvider interface {
	GenerateReport(ctx context.Context, players []models.Player, info models.MatchInfo) (string, error)
}

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

type SessionService interface {
	Restore() bool
	Session() models.MatchSession
	Player(id string) (models.Player, bool)
	FindPlayer(query string) (models.Player, bool)

	StartMatch()
	UpdateMatchInfo(info models.MatchInfo) error
	QuickFill() error
	AddPlayer(name, number string) (models.Player, error)
	RemovePlayer(id string) error

	ApplyAction(playerID string, action models.ActionKind, magnitude int) (models.Player, error)
	Dispatch(playerID string, action models.ActionKind, subtract bool) (models.Player, error)
	Feedback() (feedback.Feedback, bool)
	DismissFeedback()

	IncrementOpponent() int
	DecrementOpponent() int
	AdvanceQuarter() int

	ResetStats()
	FullReset()
	ImportSession(text string) error
	ExportSession() (string, error)
	Flush() error
}

type ReportService interface {
	BoxScore() string
	Narrative(ctx context.Context) string
	ExcelBoxScore() ([]byte, error)
	SyncToGoogleSheet() (string, error)
}

type Options struct {
	SnapshotKey    string
	FeedbackWindow time.Duration
	SpreadsheetID  string
	OwnerEmail     string
}

type Service struct {
	Session SessionService
	Report  ReportService
}

func NewService(store repository.Snapshot, opts Options, ai AIProvider, sheetsClient sheets.Client, logger Logger) *Service {
	session := NewSessionServiceImpl(store, opts.SnapshotKey, feedback.NewChannel(opts.FeedbackWindow), logger)
	return &Service{
		Session: session,
		Report:  NewReportServiceImpl(session, ai, sheetsClient, opts.SpreadsheetID, opts.OwnerEmail, logger),
	}
}
