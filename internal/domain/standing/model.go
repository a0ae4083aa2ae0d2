package standing

import "strconv"

// Row is one already-ranked line of the league table.
type Row struct {
	Position       int    `json:"pos"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"gf"`
	GoalsAgainst   int    `json:"ga"`
	GoalDifference int    `json:"gd"`
	Points         int    `json:"points"`
}

// SignedGoalDifference renders gd with an explicit "+" when it is not negative.
func (r Row) SignedGoalDifference() string {
	if r.GoalDifference >= 0 {
		return "+" + strconv.Itoa(r.GoalDifference)
	}
	return strconv.Itoa(r.GoalDifference)
}
