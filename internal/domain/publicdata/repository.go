package publicdata

import (
	"context"

	"github.com/riskibarqy/league-site/internal/domain/jornada"
	"github.com/riskibarqy/league-site/internal/domain/match"
	"github.com/riskibarqy/league-site/internal/domain/standing"
)

const (
	PathStandings = "data/standings.json"
	PathUpcoming  = "data/upcoming.json"
	PathRecent    = "data/recent.json"
	PathJornadas  = "data/jornadas.json"
	PathMatches   = "data/matches.json"
)

// Repository reads the pre-generated public documents of the league site.
type Repository interface {
	Standings(ctx context.Context) ([]standing.Row, error)
	Upcoming(ctx context.Context) ([]match.Match, error)
	Recent(ctx context.Context) ([]match.Match, error)
	Jornadas(ctx context.Context) ([]jornada.Entry, error)
	Matches(ctx context.Context) ([]match.Match, error)
}
