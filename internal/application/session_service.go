package application

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"baskettracker/internal/feedback"
	"baskettracker/internal/models"
	"baskettracker/internal/reducer"
	"baskettracker/internal/repository"
	"baskettracker/internal/roster"
	"baskettracker/internal/scoreboard"
	"baskettracker/internal/snapshot"
)

// SessionServiceImpl owns the live match. Every exported method runs under
// one lock, so each transition completes before the next one starts.
type SessionServiceImpl struct {
	mu         sync.Mutex
	roster     *roster.Roster
	board      *scoreboard.Scoreboard
	info       models.MatchInfo
	hasStarted bool
	dirty      bool
	// staleSnapshot is set while a reset's delete has not reached the store.
	staleSnapshot bool

	feedback *feedback.Channel
	store    repository.Snapshot
	key      string
	now      func() time.Time
	logger   Logger
}

func NewSessionServiceImpl(store repository.Snapshot, key string, fb *feedback.Channel, logger Logger) *SessionServiceImpl {
	if key == "" {
		key = defaultSnapshotKey
	}
	if fb == nil {
		fb = feedback.NewChannel(feedback.DefaultWindow)
	}
	return &SessionServiceImpl{
		roster:   roster.New(),
		board:    scoreboard.New(),
		info:     models.NewMatchInfo(time.Now()),
		feedback: fb,
		store:    store,
		key:      key,
		now:      time.Now,
		logger:   logger,
	}
}

// Restore loads the last snapshot, if any. A missing or unreadable snapshot
// leaves the fresh session in place.
func (s *SessionServiceImpl) Restore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load(s.key)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return false
	}
	if err != nil {
		s.logger.Warn("snapshot load failed, starting fresh: %v", err)
		return false
	}

	patch, err := snapshot.Decode(data)
	if err != nil {
		s.logger.Warn("ignoring corrupt snapshot: %v", err)
		return false
	}

	s.applyPatchLocked(patch)
	if patch.HasStarted != nil {
		s.hasStarted = *patch.HasStarted
	}
	s.logger.Info("restored session with %d players (started=%v)", s.roster.Len(), s.hasStarted)
	return true
}

func (s *SessionServiceImpl) Session() models.MatchSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionLocked()
}

func (s *SessionServiceImpl) Player(id string) (models.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Get(id)
}

func (s *SessionServiceImpl) FindPlayer(query string) (models.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Find(query)
}

func (s *SessionServiceImpl) StartMatch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hasStarted = true
	s.persistLocked()
}

func (s *SessionServiceImpl) UpdateMatchInfo(info models.MatchInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasStarted {
		return models.ErrMatchStarted
	}
	s.info = info
	s.persistLocked()
	return nil
}

// QuickFill appends the demo roster and match details used to try the app.
func (s *SessionServiceImpl) QuickFill() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasStarted {
		return models.ErrMatchStarted
	}
	for _, p := range demoRoster {
		if _, err := s.roster.Add(p.name, p.number); err != nil {
			return err
		}
	}
	info := demoMatchInfo
	info.Date = s.now().Format("2006-01-02")
	s.info = info
	s.persistLocked()
	return nil
}

func (s *SessionServiceImpl) AddPlayer(name, number string) (models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.roster.Add(name, number)
	if err != nil {
		return models.Player{}, err
	}
	s.persistLocked()
	return p, nil
}

// RemovePlayer is only allowed while the roster is being set up.
func (s *SessionServiceImpl) RemovePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasStarted {
		return models.ErrMatchStarted
	}
	s.roster.Remove(id)
	s.persistLocked()
	return nil
}

// ApplyAction runs one event against the target player. An empty or unknown
// target leaves the session untouched.
func (s *SessionServiceImpl) ApplyAction(playerID string, action models.ActionKind, magnitude int) (models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.roster.Get(playerID)
	if !ok {
		return models.Player{}, models.ErrPlayerNotFound
	}

	next, err := reducer.Apply(p.Stats, action, magnitude)
	if err != nil {
		return p, err
	}

	s.feedback.Set(feedback.Feedback{PlayerID: p.ID, Action: action, Magnitude: magnitude})

	ts := s.now().UnixMilli()
	p.Stats = next
	p.LastUpdated = &ts
	s.roster.Update(p)
	s.persistLocked()

	return p, nil
}

func (s *SessionServiceImpl) Dispatch(playerID string, action models.ActionKind, subtract bool) (models.Player, error) {
	if !action.Valid() {
		return models.Player{}, fmt.Errorf("%w: %q", models.ErrInvalidActionKind, action)
	}
	return s.ApplyAction(playerID, action, action.Magnitude(subtract))
}

func (s *SessionServiceImpl) Feedback() (feedback.Feedback, bool) {
	return s.feedback.Current()
}

func (s *SessionServiceImpl) DismissFeedback() {
	s.feedback.Dismiss()
}

func (s *SessionServiceImpl) IncrementOpponent() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	score := s.board.IncrementOpponent()
	s.persistLocked()
	return score
}

func (s *SessionServiceImpl) DecrementOpponent() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	score := s.board.DecrementOpponent()
	s.persistLocked()
	return score
}

func (s *SessionServiceImpl) AdvanceQuarter() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.board.AdvanceQuarter()
	s.persistLocked()
	return q
}

// ResetStats zeroes every player and the scoreboard but keeps the roster
// and match details.
func (s *SessionServiceImpl) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.ResetStats()
	s.board.Reset()
	s.feedback.Dismiss()
	s.persistLocked()
}

// FullReset wipes the session back to an empty setup and drops the snapshot.
func (s *SessionServiceImpl) FullReset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.Clear()
	s.board.Reset()
	s.info = models.NewMatchInfo(s.now())
	s.hasStarted = false
	s.feedback.Dismiss()
	s.dirty = false

	s.dropSnapshotLocked()
}

// ImportSession replaces the whole session with the one found in text. On
// failure nothing changes.
func (s *SessionServiceImpl) ImportSession(text string) error {
	patch, err := snapshot.Import(text)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyPatchLocked(patch)
	s.hasStarted = true
	s.feedback.Dismiss()
	s.persistLocked()
	s.logger.Info("imported session with %d players", s.roster.Len())
	return nil
}

func (s *SessionServiceImpl) ExportSession() (string, error) {
	s.mu.Lock()
	session := s.sessionLocked()
	s.mu.Unlock()

	return snapshot.Export(session)
}

// Flush retries a snapshot write or delete that failed earlier.
func (s *SessionServiceImpl) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.staleSnapshot {
		if err := s.dropSnapshotLocked(); err != nil {
			return err
		}
	}
	if !s.dirty {
		return nil
	}
	return s.persistLocked()
}

func (s *SessionServiceImpl) applyPatchLocked(patch snapshot.Patch) {
	s.roster.Replace(patch.Players)

	score, quarter := s.board.OpponentScore(), s.board.Quarter()
	if patch.OpponentScore != nil {
		score = *patch.OpponentScore
	}
	if patch.Quarter != nil {
		quarter = *patch.Quarter
	}
	s.board.Restore(score, quarter)

	if patch.MatchInfo != nil {
		s.info = *patch.MatchInfo
	}
}

func (s *SessionServiceImpl) sessionLocked() models.MatchSession {
	return models.MatchSession{
		Players:       s.roster.Players(),
		HasStarted:    s.hasStarted,
		OpponentScore: s.board.OpponentScore(),
		Quarter:       s.board.Quarter(),
		MatchInfo:     s.info,
	}
}

// persistLocked writes the snapshot. Failures are logged and left for the
// autosave worker to retry; they never fail the mutation itself.
func (s *SessionServiceImpl) persistLocked() error {
	session := s.sessionLocked()
	if !session.ShouldPersist() {
		s.dirty = false
		return nil
	}

	data, err := snapshot.Encode(session)
	if err == nil {
		err = s.store.Save(s.key, data)
	}
	if err != nil {
		s.dirty = true
		s.logger.Warn("%v: %v", models.ErrStorageUnavailable, err)
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	s.dirty = false
	s.staleSnapshot = false
	return nil
}

// dropSnapshotLocked removes the stored snapshot. Until that succeeds the
// old match would come back on restart, so Flush keeps retrying it.
func (s *SessionServiceImpl) dropSnapshotLocked() error {
	if err := s.store.Delete(s.key); err != nil {
		s.staleSnapshot = true
		s.logger.Warn("%v: %v", models.ErrStorageUnavailable, err)
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	s.staleSnapshot = false
	return nil
}
