package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"baskettracker/internal/feedback"
	"baskettracker/internal/models"

	"github.com/go-chi/chi/v5"
)

const (
	maxBodySize   = 1 << 20
	reportTimeout = 60 * time.Second

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type sessionResponse struct {
	models.MatchSession
	TotalPoints int                `json:"totalPoints"`
	Feedback    *feedback.Feedback `json:"feedback"`
}

type addPlayerRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// actionRequest carries either a subtract flag or an explicit signed magnitude.
type actionRequest struct {
	PlayerID        string            `json:"playerId"`
	ActionKind      models.ActionKind `json:"actionKind"`
	Subtract        bool              `json:"subtract"`
	SignedMagnitude *int              `json:"signedMagnitude,omitempty"`
}

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "baskettracker",
	})
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.sessionView())
}

func (s *Server) StartMatch(w http.ResponseWriter, r *http.Request) {
	s.services.Session.StartMatch()
	s.respondJSON(w, http.StatusOK, s.sessionView())
}

func (s *Server) UpdateMatchInfo(w http.ResponseWriter, r *http.Request) {
	var info models.MatchInfo
	if err := decodeBody(r, &info); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid match info", err)
		return
	}

	if err := s.services.Session.UpdateMatchInfo(info); err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, s.sessionView())
}

func (s *Server) QuickFill(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Session.QuickFill(); err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, s.sessionView())
}

func (s *Server) ResetStats(w http.ResponseWriter, r *http.Request) {
	s.services.Session.ResetStats()
	s.respondJSON(w, http.StatusOK, s.sessionView())
}

func (s *Server) FullReset(w http.ResponseWriter, r *http.Request) {
	s.services.Session.FullReset()
	s.respondJSON(w, http.StatusOK, s.sessionView())
}

func (s *Server) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid player", err)
		return
	}

	p, err := s.services.Session.AddPlayer(req.Name, req.Number)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, p)
}

func (s *Server) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.services.Session.Player(id); !ok {
		s.respondSessionError(w, models.ErrPlayerNotFound)
		return
	}

	if err := s.services.Session.RemovePlayer(id); err != nil {
		s.respondSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ApplyAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid action", err)
		return
	}

	var (
		p   models.Player
		err error
	)
	if req.SignedMagnitude != nil {
		p, err = s.services.Session.ApplyAction(req.PlayerID, req.ActionKind, *req.SignedMagnitude)
	} else {
		p, err = s.services.Session.Dispatch(req.PlayerID, req.ActionKind, req.Subtract)
	}
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, p)
}

func (s *Server) GetFeedback(w http.ResponseWriter, r *http.Request) {
	var fb *feedback.Feedback
	if cur, ok := s.services.Session.Feedback(); ok {
		fb = &cur
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"feedback": fb})
}

func (s *Server) DismissFeedback(w http.ResponseWriter, r *http.Request) {
	s.services.Session.DismissFeedback()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) Opponent(w http.ResponseWriter, r *http.Request) {
	var score int
	switch chi.URLParam(r, "op") {
	case "inc":
		score = s.services.Session.IncrementOpponent()
	case "dec":
		score = s.services.Session.DecrementOpponent()
	default:
		s.respondError(w, http.StatusBadRequest, "op must be inc or dec", nil)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]int{"opponentScore": score})
}

func (s *Server) NextQuarter(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]int{"quarter": s.services.Session.AdvanceQuarter()})
}

func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	text, err := s.services.Session.ExportSession()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "export failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, text)
}

func (s *Server) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read body", err)
		return
	}

	if err := s.services.Session.ImportSession(string(body)); err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, s.sessionView())
}

func (s *Server) BoxScore(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, s.services.Report.BoxScore())
}

func (s *Server) Narrative(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), reportTimeout)
	defer cancel()

	s.respondJSON(w, http.StatusOK, map[string]string{"report": s.services.Report.Narrative(ctx)})
}

func (s *Server) ExcelReport(w http.ResponseWriter, r *http.Request) {
	data, err := s.services.Report.ExcelBoxScore()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "excel export failed", err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="feuille-de-match.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) SyncSheet(w http.ResponseWriter, r *http.Request) {
	url, err := s.services.Report.SyncToGoogleSheet()
	if err != nil {
		s.respondError(w, http.StatusBadGateway, "sheet sync failed", err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (s *Server) sessionView() sessionResponse {
	session := s.services.Session.Session()
	resp := sessionResponse{MatchSession: session, TotalPoints: session.TotalPoints()}
	if fb, ok := s.services.Session.Feedback(); ok {
		resp.Feedback = &fb
	}
	return resp
}

func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v)
}
