package application

import (
	"context"
	"time"
)

type flusher interface {
	Flush() error
}

// AutosaveWorker periodically retries snapshot writes that failed inline.
type AutosaveWorker struct {
	session  flusher
	interval time.Duration
	logger   Logger
	done     chan struct{}
}

func NewAutosaveWorker(session flusher, interval time.Duration, logger Logger) *AutosaveWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &AutosaveWorker{
		session:  session,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (w *AutosaveWorker) Name() string { return "autosave" }

func (w *AutosaveWorker) Init() error { return nil }

func (w *AutosaveWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.flush()
			return
		case <-w.done:
			return
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *AutosaveWorker) Stop() {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
}

func (w *AutosaveWorker) flush() {
	if err := w.session.Flush(); err != nil {
		w.logger.Debug("autosave retry failed: %v", err)
	}
}
