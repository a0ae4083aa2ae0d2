package match

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func intPtr(v int) *int {
	return &v
}

func idPtr(v int64) *int64 {
	return &v
}

func TestScoreText_CompletedWithoutNoShow(t *testing.T) {
	t.Parallel()

	m := Match{Status: StatusCompleted, HomeScore: intPtr(3), AwayScore: intPtr(1)}
	if got := m.ScoreText("vs"); got != "3 - 1" {
		t.Fatalf("unexpected score text: %q", got)
	}
}

func TestScoreText_NoShowSuppressesScore(t *testing.T) {
	t.Parallel()

	m := Match{Status: StatusCompleted, HomeScore: intPtr(3), AwayScore: intPtr(0), NoShowTeamID: idPtr(7)}
	if got := m.ScoreText("vs"); got != "vs" {
		t.Fatalf("expected fallback for no-show, got %q", got)
	}
	if !m.HasNoShow() {
		t.Fatalf("expected HasNoShow=true")
	}
}

func TestScoreText_ScheduledUsesFallback(t *testing.T) {
	t.Parallel()

	m := Match{Status: StatusScheduled}
	if got := m.ScoreText("Pendiente"); got != "Pendiente" {
		t.Fatalf("unexpected score text: %q", got)
	}
	if got := m.StatusLabel(); got != "Programado" {
		t.Fatalf("unexpected status label: %q", got)
	}
}

func TestHasNoShow_ZeroIDIsAbsent(t *testing.T) {
	t.Parallel()

	m := Match{Status: StatusCompleted, NoShowTeamID: idPtr(0), HomeScore: intPtr(2), AwayScore: intPtr(1)}
	if m.HasNoShow() {
		t.Fatalf("expected zero no-show id to be treated as absent")
	}
	if got := m.ScoreText("vs"); got != "2 - 1" {
		t.Fatalf("unexpected score text: %q", got)
	}
}

func TestFlag_DecodesIntegersAndBooleans(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		`{"winner_one_player": 1}`:     true,
		`{"winner_one_player": 0}`:     false,
		`{"winner_one_player": true}`:  true,
		`{"winner_one_player": false}`: false,
		`{"winner_one_player": null}`:  false,
		`{}`:                           false,
	}
	for raw, want := range cases {
		var m Match
		if err := sonic.Unmarshal([]byte(raw), &m); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if bool(m.WinnerOnePlayer) != want {
			t.Fatalf("payload %s: expected %t, got %t", raw, want, bool(m.WinnerOnePlayer))
		}
	}
}
