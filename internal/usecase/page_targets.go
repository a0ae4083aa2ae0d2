package usecase

import (
	"github.com/riskibarqy/league-site/internal/platform/dom"
	"golang.org/x/net/html"
)

// Element ids the page shells expose to the renderers.
const (
	IDStandingsTable    = "standings-table"
	IDUpcoming          = "upcoming"
	IDRecent            = "recent"
	IDJornadas          = "jornadas"
	IDMatchesTable      = "matches-table"
	IDStandaloneMessage = "standalone-message"
)

type LandingTargets struct {
	Standings *html.Node
	Upcoming  *html.Node
	Recent    *html.Node
	Main      *html.Node
}

type StandingsTargets struct {
	Standings *html.Node
	Main      *html.Node
}

type JornadasTargets struct {
	Jornadas *html.Node
}

type MatchesTargets struct {
	Matches *html.Node
	Main    *html.Node
}

// NoticeTargets.Notice is optional.
type NoticeTargets struct {
	Notice *html.Node
}

func LandingTargetsFrom(doc *dom.Document) LandingTargets {
	return LandingTargets{
		Standings: doc.ByID(IDStandingsTable),
		Upcoming:  doc.ByID(IDUpcoming),
		Recent:    doc.ByID(IDRecent),
		Main:      doc.Main(),
	}
}

func StandingsTargetsFrom(doc *dom.Document) StandingsTargets {
	return StandingsTargets{
		Standings: doc.ByID(IDStandingsTable),
		Main:      doc.Main(),
	}
}

func JornadasTargetsFrom(doc *dom.Document) JornadasTargets {
	return JornadasTargets{Jornadas: doc.ByID(IDJornadas)}
}

func MatchesTargetsFrom(doc *dom.Document) MatchesTargets {
	return MatchesTargets{
		Matches: doc.ByID(IDMatchesTable),
		Main:    doc.Main(),
	}
}

func NoticeTargetsFrom(doc *dom.Document) NoticeTargets {
	return NoticeTargets{Notice: doc.ByID(IDStandaloneMessage)}
}
