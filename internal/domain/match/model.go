package match

import (
	"bytes"
	"strconv"
	"strings"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
)

// Match is a published fixture. Which fields are populated depends on the
// endpoint it came from: upcoming rows carry no scores, jornada rows carry
// no date, the flat list inlines the jornada number.
type Match struct {
	ID              int64  `json:"id"`
	JornadaID       int64  `json:"jornada_id"`
	JornadaNumber   int    `json:"jornada_number"`
	HomeName        string `json:"home_name"`
	AwayName        string `json:"away_name"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	HomeScore       *int   `json:"home_score"`
	AwayScore       *int   `json:"away_score"`
	NoShowTeamID    *int64 `json:"no_show_team_id"`
	WinnerOnePlayer Flag   `json:"winner_one_player"`
}

func (m Match) IsCompleted() bool {
	return strings.TrimSpace(m.Status) == StatusCompleted
}

// HasNoShow reports whether a team failed to appear. A zero id counts as absent.
func (m Match) HasNoShow() bool {
	return m.NoShowTeamID != nil && *m.NoShowTeamID != 0
}

// ShowsScore is true only for completed matches that were actually played.
func (m Match) ShowsScore() bool {
	return m.IsCompleted() && !m.HasNoShow()
}

// ScoreText returns "home - away" when the score is displayable, fallback otherwise.
func (m Match) ScoreText(fallback string) string {
	if !m.ShowsScore() {
		return fallback
	}
	return scoreValue(m.HomeScore) + " - " + scoreValue(m.AwayScore)
}

// StatusLabel is the Spanish label used in round tables.
func (m Match) StatusLabel() string {
	if m.IsCompleted() {
		return "Completado"
	}
	return "Programado"
}

func scoreValue(v *int) string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(*v)
}

// Flag decodes booleans that upstream may publish as true/false, 0/1 or null.
type Flag bool

func (f *Flag) UnmarshalJSON(raw []byte) error {
	value := string(bytes.Trim(bytes.TrimSpace(raw), `"`))
	switch strings.ToLower(value) {
	case "", "null", "0", "false":
		*f = false
	default:
		*f = true
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatBool(bool(f))), nil
}
