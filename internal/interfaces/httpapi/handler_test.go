package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/league-site/external/sitedata"
	"github.com/riskibarqy/league-site/internal/domain/match"
	"github.com/riskibarqy/league-site/internal/domain/standing"
	publicdatamock "github.com/riskibarqy/league-site/internal/mocks/domain/publicdata"
	"github.com/riskibarqy/league-site/internal/platform/logging"
	"github.com/riskibarqy/league-site/internal/render"
	"github.com/riskibarqy/league-site/internal/site"
	"github.com/riskibarqy/league-site/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(t *testing.T, repo *publicdatamock.Repository) http.Handler {
	t.Helper()
	logger := logging.NewNop()
	svc := usecase.NewPageService(repo, render.NewRenderer(nil), "", logger)
	handler := NewHandler(site.NewRenderer(svc, false), logger)
	return NewRouter(handler, logger, []string{"*"})
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, publicdatamock.NewRepository(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", rec.Body.String())
	}
}

func TestRouter_LandingPage(t *testing.T) {
	repo := publicdatamock.NewRepository(t)
	repo.On("Standings", mock.Anything).Return([]standing.Row{{Position: 1, TeamName: "Los Dardos", Points: 9}}, nil).Once()
	repo.On("Upcoming", mock.Anything).Return([]match.Match{{JornadaID: 4, JornadaNumber: 4, HomeName: "Los Dardos", AwayName: "La Diana", Status: match.StatusScheduled}}, nil).Once()
	repo.On("Recent", mock.Anything).Return([]match.Match{}, nil).Once()

	router := newTestRouter(t, repo)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("unexpected Content-Type: %q", got)
	}
	body := rec.Body.String()
	for _, want := range []string{"<strong>9</strong>", "Jornada 4", render.EmptyRecentMessage} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in landing page", want)
		}
	}
}

func TestRouter_DegradedPageIsStillHTML(t *testing.T) {
	repo := publicdatamock.NewRepository(t)
	repo.On("Matches", mock.Anything).Return(nil, &sitedata.FetchError{Path: "data/matches.json", Status: 500}).Once()

	router := newTestRouter(t, repo)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/partidos.html", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No se pudo cargar data/matches.json: 500") {
		t.Fatalf("expected error alert in page body")
	}
}

func TestRouter_UnknownPage(t *testing.T) {
	router := newTestRouter(t, publicdatamock.NewRepository(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_Stylesheet(t *testing.T) {
	router := newTestRouter(t, publicdatamock.NewRepository(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/css; charset=utf-8" {
		t.Fatalf("unexpected Content-Type: %q", got)
	}
}

func TestRouter_RejectsPost(t *testing.T) {
	router := newTestRouter(t, publicdatamock.NewRepository(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jornadas", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}
