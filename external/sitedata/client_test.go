package sitedata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/league-site/internal/domain/match"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_DecodesEndpointDocuments(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/data/standings.json": `[{"pos":1,"team_name":"Los Dardos","played":3,"wins":2,"losses":1,"gf":12,"ga":7,"gd":5,"points":7}]`,
		"/data/recent.json":    `[{"jornada_id":2,"date":"2024-03-05","home_name":"A","away_name":"B","status":"completed","home_score":3,"away_score":1,"winner_one_player":1,"no_show_team_id":null}]`,
		"/data/jornadas.json":  `[{"jornada":{"id":1,"number":1,"date":"2024-01-15"},"matches":[{"id":4,"status":"scheduled","home_score":null,"away_score":null,"no_show_team_id":null,"home_name":"A","away_name":"B"}]}]`,
	})

	client, err := NewClient(ClientConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	ctx := context.Background()

	standings, err := client.Standings(ctx)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(standings) != 1 || standings[0].TeamName != "Los Dardos" || standings[0].GoalDifference != 5 {
		t.Fatalf("unexpected standings: %+v", standings)
	}

	recent, err := client.Recent(ctx)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].ScoreText("vs") != "3 - 1" || !bool(recent[0].WinnerOnePlayer) {
		t.Fatalf("unexpected recent: %+v", recent)
	}

	jornadas, err := client.Jornadas(ctx)
	if err != nil {
		t.Fatalf("jornadas: %v", err)
	}
	if len(jornadas) != 1 || jornadas[0].Jornada.Number != 1 || len(jornadas[0].Matches) != 1 {
		t.Fatalf("unexpected jornadas: %+v", jornadas)
	}
	if jornadas[0].Matches[0].Status != match.StatusScheduled {
		t.Fatalf("unexpected match status: %q", jornadas[0].Matches[0].Status)
	}
}

func TestClient_NonSuccessStatusIsFetchError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	client, err := NewClient(ClientConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Upcoming(context.Background())
	fetchErr, ok := AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %T %v", err, err)
	}
	if fetchErr.Status != http.StatusNotFound || fetchErr.Path != "data/upcoming.json" {
		t.Fatalf("unexpected fetch error fields: %+v", fetchErr)
	}
	if got := err.Error(); got != "No se pudo cargar data/upcoming.json: 404" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestClient_InvalidJSONIsFetchError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{"/data/matches.json": `{not json`})
	client, err := NewClient(ClientConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Matches(context.Background())
	fetchErr, ok := AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.Status != 0 || fetchErr.Err == nil {
		t.Fatalf("expected decode failure without status, got %+v", fetchErr)
	}
}

func TestClient_ReadsFromDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := `[{"jornada_number":1,"date":"2024-01-15","home_name":"A","away_name":"B","status":"scheduled"}]`
	if err := os.WriteFile(filepath.Join(dir, "data", "matches.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	client, err := NewClient(ClientConfig{Dir: dir})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	matches, err := client.Matches(context.Background())
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if len(matches) != 1 || matches[0].JornadaNumber != 1 {
		t.Fatalf("unexpected matches: %+v", matches)
	}

	_, err = client.Standings(context.Background())
	fetchErr, ok := AsFetchError(err)
	if !ok || fetchErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404 FetchError for missing file, got %v", err)
	}
}

func TestNewClient_RequiresSource(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Fatalf("expected error without base url or directory")
	}
}

func TestClient_BundledSampleData(t *testing.T) {
	t.Parallel()

	client, err := NewClient(ClientConfig{Dir: filepath.Join("..", "..", "public")})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	ctx := context.Background()

	standings, err := client.Standings(ctx)
	if err != nil || len(standings) == 0 {
		t.Fatalf("standings: %v (%d rows)", err, len(standings))
	}
	recent, err := client.Recent(ctx)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	for _, m := range recent {
		if m.Status != match.StatusCompleted {
			t.Fatalf("expected completed matches in recent, got %q", m.Status)
		}
	}
	entries, err := client.Jornadas(ctx)
	if err != nil {
		t.Fatalf("jornadas: %v", err)
	}
	last := entries[len(entries)-1]
	if last.Jornada.Date != "" || len(last.Matches) != 0 {
		t.Fatalf("expected an undated empty round last, got %+v", last)
	}
	if _, err := client.Upcoming(ctx); err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if _, err := client.Matches(ctx); err != nil {
		t.Fatalf("matches: %v", err)
	}
}
