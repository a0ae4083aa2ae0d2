package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-site/internal/domain/match"
	"github.com/riskibarqy/league-site/internal/domain/publicdata"
	"github.com/riskibarqy/league-site/internal/domain/standing"
	"github.com/riskibarqy/league-site/internal/platform/logging"
	"github.com/riskibarqy/league-site/internal/render"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/net/html"
)

const DefaultStandaloneMessage = "Esta versión publicada es solo de lectura. Para registrar resultados usa la aplicación de gestión de la liga."

// PageService holds the page entry points. Each one fetches its documents,
// renders them into the given targets and, on any failure, replaces its
// error target with an alert instead. The returned error is the failure that
// was rendered; it is informational and the page is already complete.
type PageService struct {
	repo     publicdata.Repository
	renderer *render.Renderer
	notice   string
	logger   *logging.Logger
}

func NewPageService(repo publicdata.Repository, renderer *render.Renderer, notice string, logger *logging.Logger) *PageService {
	if renderer == nil {
		renderer = render.NewRenderer(nil)
	}
	if notice == "" {
		notice = DefaultStandaloneMessage
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PageService{
		repo:     repo,
		renderer: renderer,
		notice:   notice,
		logger:   logger,
	}
}

// RenderLandingPage loads standings, upcoming and recent concurrently. The
// first failure cancels the others and nothing but the alert is rendered.
func (s *PageService) RenderLandingPage(ctx context.Context, targets LandingTargets) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.RenderLandingPage")
	defer span.End()

	var (
		standings []standing.Row
		upcoming  []match.Match
		recent    []match.Match
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.repo.Standings(ctx)
		standings = rows
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.repo.Upcoming(ctx)
		upcoming = rows
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.repo.Recent(ctx)
		recent = rows
		return err
	})
	if err := p.Wait(); err != nil {
		return s.fail(ctx, "landing", targets.Main, err)
	}

	if err := s.renderer.Standings(targets.Standings, standings); err != nil {
		return s.fail(ctx, "landing", targets.Main, err)
	}
	if err := s.renderer.Upcoming(targets.Upcoming, upcoming); err != nil {
		return s.fail(ctx, "landing", targets.Main, err)
	}
	if err := s.renderer.Recent(targets.Recent, recent); err != nil {
		return s.fail(ctx, "landing", targets.Main, err)
	}
	return nil
}

func (s *PageService) RenderStandingsPage(ctx context.Context, targets StandingsTargets) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.RenderStandingsPage")
	defer span.End()

	standings, err := s.repo.Standings(ctx)
	if err == nil {
		err = s.renderer.Standings(targets.Standings, standings)
	}
	if err != nil {
		return s.fail(ctx, "standings", targets.Main, err)
	}
	return nil
}

// RenderJornadasPage reports failures inside the rounds container itself.
func (s *PageService) RenderJornadasPage(ctx context.Context, targets JornadasTargets) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.RenderJornadasPage")
	defer span.End()

	jornadas, err := s.repo.Jornadas(ctx)
	if err == nil {
		err = s.renderer.Jornadas(targets.Jornadas, jornadas)
	}
	if err != nil {
		return s.fail(ctx, "jornadas", targets.Jornadas, err)
	}
	return nil
}

func (s *PageService) RenderMatchesPage(ctx context.Context, targets MatchesTargets) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PageService.RenderMatchesPage")
	defer span.End()

	matches, err := s.repo.Matches(ctx)
	if err == nil {
		err = s.renderer.Matches(targets.Matches, matches)
	}
	if err != nil {
		return s.fail(ctx, "matches", targets.Main, err)
	}
	return nil
}

// RenderStandaloneMessage writes the read-only notice when the page has a
// container for it and does nothing otherwise.
func (s *PageService) RenderStandaloneMessage(targets NoticeTargets) {
	s.renderer.Notice(targets.Notice, s.notice)
}

func (s *PageService) fail(ctx context.Context, page string, target *html.Node, err error) error {
	if target == nil {
		err = crerr.WithSecondaryError(err, crerr.Wrapf(render.ErrMissingTarget, "%s page error target", page))
	}
	s.renderer.Error(target, err)
	s.logger.WarnContext(ctx, "page rendered with error", "page", page, "error", err)

	_, span := startUsecaseSpan(ctx, "usecase.PageService.fail", attribute.String("page", page))
	span.RecordError(err)
	span.End()
	return err
}
