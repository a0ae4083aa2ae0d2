// Package render turns published league records into HTML nodes.
//
// Every renderer follows the same contract: clear the target, then rebuild
// all of its children from the input slice, in input order.
package render

import (
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-site/internal/domain/jornada"
	"github.com/riskibarqy/league-site/internal/domain/match"
	"github.com/riskibarqy/league-site/internal/domain/standing"
	"github.com/riskibarqy/league-site/internal/platform/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	EmptyUpcomingMessage = "No hay próximos partidos."
	EmptyRecentMessage   = "Sin resultados aún."
	EmptyJornadasMessage = "No hay jornadas registradas todavía."
	EmptyRoundMessage    = "Sin partidos programados."
	PendingLabel         = "Pendiente"
	VersusLabel          = "vs"
	NoShowBadge          = "(incomparecencia)"
	OnePlayerBadge       = "(victoria con 1 jugador)"
	NoShowTag            = "Incomparecencia"
	OnePlayerTag         = "1 jugador"
	NoTagsLabel          = "-"
	ErrorPrefix          = "Ups."
	UnknownErrorMessage  = "error desconocido"
)

var (
	ErrMissingTarget = crerr.New("render target is missing")
	ErrMissingBody   = crerr.New("table has no tbody")
)

var spaceBetween = []string{"class", "flex", "style", "justify-content: space-between"}

type Renderer struct {
	location *time.Location
}

// NewRenderer returns a renderer that shows timestamps in loc (UTC when nil).
func NewRenderer(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{location: loc}
}

func (r *Renderer) Standings(table *html.Node, rows []standing.Row) error {
	tbody, err := tableBody(table)
	if err != nil {
		return crerr.Wrap(err, "render standings")
	}

	dom.Clear(tbody)
	for _, row := range rows {
		dom.Append(tbody, dom.El(atom.Tr, nil,
			cell(strconv.Itoa(row.Position)),
			cell(row.TeamName),
			cell(strconv.Itoa(row.Played)),
			cell(strconv.Itoa(row.Wins)),
			cell(strconv.Itoa(row.Losses)),
			cell(strconv.Itoa(row.GoalsFor)),
			cell(strconv.Itoa(row.GoalsAgainst)),
			cell(row.SignedGoalDifference()),
			dom.El(atom.Td, nil, dom.El(atom.Strong, nil, dom.Text(strconv.Itoa(row.Points)))),
		))
	}
	return nil
}

func (r *Renderer) Upcoming(container *html.Node, matches []match.Match) error {
	if container == nil {
		return crerr.Wrap(ErrMissingTarget, "render upcoming")
	}
	if len(matches) == 0 {
		dom.Replace(container, smallNote(EmptyUpcomingMessage))
		return nil
	}

	blocks := make([]*html.Node, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, r.matchBlock(m, VersusLabel, nil))
	}
	dom.Replace(container, separated(blocks)...)
	return nil
}

func (r *Renderer) Recent(container *html.Node, matches []match.Match) error {
	if container == nil {
		return crerr.Wrap(ErrMissingTarget, "render recent")
	}
	if len(matches) == 0 {
		dom.Replace(container, smallNote(EmptyRecentMessage))
		return nil
	}

	blocks := make([]*html.Node, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, r.matchBlock(m, m.ScoreText(VersusLabel), resultBadges(m)))
	}
	dom.Replace(container, separated(blocks)...)
	return nil
}

func (r *Renderer) Jornadas(container *html.Node, entries []jornada.Entry) error {
	if container == nil {
		return crerr.Wrap(ErrMissingTarget, "render jornadas")
	}
	if len(entries) == 0 {
		dom.Replace(container, smallNote(EmptyJornadasMessage))
		return nil
	}

	dom.Clear(container)
	for _, entry := range entries {
		section := dom.El(atom.Section, dom.Class("card"),
			dom.El(atom.Div, spaceBetween,
				dom.El(atom.H2, nil, dom.Text(jornadaLabel(int64(entry.Jornada.Number)))),
				smallNote(r.FormatDate(entry.Jornada.Date)),
			),
		)
		if len(entry.Matches) == 0 {
			dom.Append(section, smallNote(EmptyRoundMessage))
		} else {
			dom.Append(section, roundTable(entry.Matches))
		}
		dom.Append(container, section)
	}
	return nil
}

func (r *Renderer) Matches(table *html.Node, matches []match.Match) error {
	tbody, err := tableBody(table)
	if err != nil {
		return crerr.Wrap(err, "render matches")
	}

	dom.Clear(tbody)
	for _, m := range matches {
		dom.Append(tbody, dom.El(atom.Tr, nil,
			cell(strconv.Itoa(m.JornadaNumber)),
			cell(r.FormatDate(m.Date)),
			cell(m.HomeName),
			cell(m.AwayName),
			cell(m.ScoreText(PendingLabel)),
			cell(matchTags(m)),
		))
	}
	return nil
}

// Error replaces target with a danger alert carrying err's message.
func (r *Renderer) Error(target *html.Node, err error) {
	if target == nil {
		return
	}
	message := UnknownErrorMessage
	if err != nil {
		message = err.Error()
	}
	dom.Replace(target, dom.El(atom.Div, dom.Class("alert danger"),
		dom.El(atom.Strong, nil, dom.Text(ErrorPrefix)),
		dom.Text(" "+message),
	))
}

// Notice replaces target with an informational alert. A nil target is a no-op.
func (r *Renderer) Notice(target *html.Node, message string) {
	if target == nil {
		return
	}
	dom.Replace(target, dom.El(atom.Div, dom.Class("alert info"), dom.Text(message)))
}

func (r *Renderer) matchBlock(m match.Match, middle string, badges []*html.Node) *html.Node {
	teams := dom.El(atom.Div, nil,
		dom.El(atom.Span, dom.Class("badge"), dom.Text(jornadaLabel(m.JornadaID))),
		dom.Text(" "),
		dom.El(atom.Strong, nil, dom.Text(m.HomeName)),
		dom.Text(" "+middle+" "),
		dom.El(atom.Strong, nil, dom.Text(m.AwayName)),
	)
	for _, badge := range badges {
		dom.Append(teams, dom.Text(" "), badge)
	}
	return dom.El(atom.Div, spaceBetween, teams, smallNote(r.FormatDate(m.Date)))
}

func roundTable(matches []match.Match) *html.Node {
	headRow := dom.El(atom.Tr, nil)
	for _, title := range []string{"#", "Local", "Visitante", "Estado", "Resultado"} {
		dom.Append(headRow, dom.El(atom.Th, nil, dom.Text(title)))
	}

	tbody := dom.El(atom.Tbody, nil)
	for _, m := range matches {
		dom.Append(tbody, dom.El(atom.Tr, nil,
			cell(strconv.FormatInt(m.ID, 10)),
			cell(m.HomeName),
			cell(m.AwayName),
			cell(m.StatusLabel()),
			cell(m.ScoreText(PendingLabel)),
		))
	}

	return dom.El(atom.Table, dom.Class("table"), dom.El(atom.Thead, nil, headRow), tbody)
}

func resultBadges(m match.Match) []*html.Node {
	var out []*html.Node
	if m.HasNoShow() {
		out = append(out, dom.El(atom.Span, dom.Class("small"), dom.Text(NoShowBadge)))
	}
	if m.WinnerOnePlayer {
		out = append(out, dom.El(atom.Span, dom.Class("small"), dom.Text(OnePlayerBadge)))
	}
	return out
}

func matchTags(m match.Match) string {
	tags := make([]string, 0, 2)
	if m.HasNoShow() {
		tags = append(tags, NoShowTag)
	}
	if m.WinnerOnePlayer {
		tags = append(tags, OnePlayerTag)
	}
	if len(tags) == 0 {
		return NoTagsLabel
	}
	return strings.Join(tags, ", ")
}

// separated interleaves <hr> between blocks, with none after the last one.
func separated(blocks []*html.Node) []*html.Node {
	out := make([]*html.Node, 0, len(blocks)*2)
	for i, block := range blocks {
		if i > 0 {
			out = append(out, dom.El(atom.Hr, nil))
		}
		out = append(out, block)
	}
	return out
}

func tableBody(table *html.Node) (*html.Node, error) {
	if table == nil {
		return nil, ErrMissingTarget
	}
	tbody := dom.FindTag(table, atom.Tbody)
	if tbody == nil {
		return nil, ErrMissingBody
	}
	return tbody, nil
}

func jornadaLabel(number int64) string {
	return "Jornada " + strconv.FormatInt(number, 10)
}

func cell(text string) *html.Node {
	return dom.El(atom.Td, nil, dom.Text(text))
}

func smallNote(text string) *html.Node {
	return dom.El(atom.Div, dom.Class("small"), dom.Text(text))
}
