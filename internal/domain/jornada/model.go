package jornada

import "github.com/riskibarqy/league-site/internal/domain/match"

// Jornada is one scheduling round of the league.
type Jornada struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Date   string `json:"date"`
}

// Entry is a round together with the matches scheduled in it, in display order.
type Entry struct {
	Jornada Jornada       `json:"jornada"`
	Matches []match.Match `json:"matches"`
}
