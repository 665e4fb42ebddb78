package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"baskettracker/internal/application"
	"baskettracker/internal/models"
	"baskettracker/internal/repository"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

func newTestServer(t *testing.T) (*httptest.Server, *application.Service) {
	t.Helper()
	services := application.NewService(repository.NewSnapshotMemory(), application.Options{}, nil, nil, nopLogger{})
	srv := httptest.NewServer(NewServer("", []string{"http://localhost:3000"}, services, nopLogger{}).Router())
	t.Cleanup(srv.Close)
	return srv, services
}

func doRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestActionFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	api := srv.URL + "/api/v1"

	resp := doRequest(t, http.MethodPost, api+"/players", `{"name":"Leo","number":"23"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var leo models.Player
	decode(t, resp, &leo)

	resp = doRequest(t, http.MethodPost, api+"/actions", `{"playerId":"`+leo.ID+`","actionKind":"ADD_3PT"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp = doRequest(t, http.MethodPost, api+"/actions", `{"playerId":"`+leo.ID+`","actionKind":"ADD_3PT","subtract":true}`)
	var p models.Player
	decode(t, resp, &p)
	if p.Stats.Points != 0 || p.Stats.ThreePointersMade != 0 {
		t.Fatalf("expected correction to cancel the basket, got %+v", p.Stats)
	}

	resp = doRequest(t, http.MethodPost, api+"/actions", `{"playerId":"`+leo.ID+`","actionKind":"ADD_2PT","signedMagnitude":2}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp = doRequest(t, http.MethodGet, api+"/session", "")
	var view struct {
		Players     []models.Player `json:"players"`
		TotalPoints int             `json:"totalPoints"`
		Quarter     int             `json:"quarter"`
		Feedback    *struct {
			PlayerID  string `json:"playerId"`
			Magnitude int    `json:"signedMagnitude"`
		} `json:"feedback"`
	}
	decode(t, resp, &view)
	if view.TotalPoints != 2 || view.Quarter != 1 || len(view.Players) != 1 {
		t.Fatalf("unexpected session view %+v", view)
	}
	if view.Feedback == nil || view.Feedback.PlayerID != leo.ID || view.Feedback.Magnitude != 2 {
		t.Fatalf("expected live feedback, got %+v", view.Feedback)
	}
}

func TestActionErrors(t *testing.T) {
	srv, services := newTestServer(t)
	api := srv.URL + "/api/v1"
	leo, _ := services.Session.AddPlayer("Leo", "23")

	tests := []struct {
		name string
		body string
		code int
	}{
		{"unknown player", `{"playerId":"ghost","actionKind":"ADD_2PT"}`, http.StatusNotFound},
		{"no target", `{"actionKind":"ADD_2PT"}`, http.StatusNotFound},
		{"unknown kind", `{"playerId":"` + leo.ID + `","actionKind":"ADD_DUNK"}`, http.StatusBadRequest},
		{"bad magnitude", `{"playerId":"` + leo.ID + `","actionKind":"ADD_2PT","signedMagnitude":5}`, http.StatusBadRequest},
		{"bad json", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, http.MethodPost, api+"/actions", tt.body)
			if resp.StatusCode != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, resp.StatusCode)
			}
		})
	}

	if p, _ := services.Session.Player(leo.ID); !p.Stats.IsZero() {
		t.Fatalf("rejected actions changed stats: %+v", p.Stats)
	}
}

func TestRemovePlayerAfterKickoff(t *testing.T) {
	srv, services := newTestServer(t)
	api := srv.URL + "/api/v1"
	leo, _ := services.Session.AddPlayer("Leo", "23")

	doRequest(t, http.MethodPost, api+"/start", "")

	resp := doRequest(t, http.MethodDelete, api+"/players/"+leo.ID, "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}

	resp = doRequest(t, http.MethodDelete, api+"/players/ghost", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestScoreboardEndpoints(t *testing.T) {
	srv, services := newTestServer(t)
	api := srv.URL + "/api/v1"

	doRequest(t, http.MethodPost, api+"/opponent/inc", "")
	resp := doRequest(t, http.MethodPost, api+"/opponent/inc", "")
	var score map[string]int
	decode(t, resp, &score)
	if score["opponentScore"] != 2 {
		t.Fatalf("expected 2, got %v", score)
	}

	if resp := doRequest(t, http.MethodPost, api+"/opponent/double", ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	resp = doRequest(t, http.MethodPost, api+"/quarter/next", "")
	var q map[string]int
	decode(t, resp, &q)
	if q["quarter"] != 2 {
		t.Fatalf("expected quarter 2, got %v", q)
	}

	if got := services.Session.Session(); got.OpponentScore != 2 || got.Quarter != 2 {
		t.Fatalf("unexpected scoreboard %d/%d", got.OpponentScore, got.Quarter)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src, srcServices := newTestServer(t)
	leo, _ := srcServices.Session.AddPlayer("Léo", "23")
	srcServices.Session.Dispatch(leo.ID, models.AddAST, false)

	resp := doRequest(t, http.MethodGet, src.URL+"/api/v1/export", "")
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		t.Fatalf("read export: %v", err)
	}

	dst, dstServices := newTestServer(t)
	resp = doRequest(t, http.MethodPost, dst.URL+"/api/v1/import", buf.String())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	got := dstServices.Session.Session()
	if len(got.Players) != 1 || got.Players[0].Stats.Assists != 1 || !got.HasStarted {
		t.Fatalf("unexpected imported session %+v", got)
	}

	resp = doRequest(t, http.MethodPost, dst.URL+"/api/v1/import", "pas un export")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestExcelReport(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/report.xlsx", "")
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != xlsxContentType {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
}

func TestNarrativeWithoutProvider(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/report", "")
	var body map[string]string
	decode(t, resp, &body)
	if !strings.Contains(body["report"], "Clé API manquante") {
		t.Fatalf("unexpected report %q", body["report"])
	}
}

