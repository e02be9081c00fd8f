package competency

import "testing"

func TestLevelOrdinal_LFormat(t *testing.T) {
	if got := LevelOrdinal("L3"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := LevelOrdinal("l5"); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := LevelOrdinal(" L2 "); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestLevelOrdinal_NamedTiers(t *testing.T) {
	cases := map[string]int{
		"Beginner":     1,
		"intermediate": 2,
		"ADVANCED":     3,
		"Expert":       4,
	}
	for token, want := range cases {
		if got := LevelOrdinal(token); got != want {
			t.Fatalf("token %q: expected %d, got %d", token, want, got)
		}
	}
}

func TestLevelOrdinal_Unknown(t *testing.T) {
	for _, token := range []string{"", "Master", "Lx", "L-1", "  "} {
		if got := LevelOrdinal(token); got != 0 {
			t.Fatalf("token %q: expected 0, got %d", token, got)
		}
	}
}

func TestProgress(t *testing.T) {
	if got := Progress("L2", "L4"); got != 50 {
		t.Fatalf("L2/L4: expected 50, got %d", got)
	}
	if got := Progress("Advanced", "Expert"); got != 75 {
		t.Fatalf("Advanced/Expert: expected 75, got %d", got)
	}
}

func TestProgress_ClampsAbove100(t *testing.T) {
	if got := Progress("L5", "L2"); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestProgress_ZeroTargetIsZero(t *testing.T) {
	if got := Progress("L3", ""); got != 0 {
		t.Fatalf("empty target: expected 0, got %d", got)
	}
	if got := Progress("L3", "nonsense"); got != 0 {
		t.Fatalf("unknown target: expected 0, got %d", got)
	}
}

func TestStatusFromLevels(t *testing.T) {
	if got := StatusFromLevels("L4", "L2"); got != StatusMet {
		t.Fatalf("expected Met, got %s", got)
	}
	if got := StatusFromLevels("L1", "L3"); got != StatusGap {
		t.Fatalf("expected Gap, got %s", got)
	}
	if got := StatusFromLevels("Beginner", "Expert"); got != StatusGap {
		t.Fatalf("expected Gap, got %s", got)
	}
	if got := StatusFromLevels("Expert", "Expert"); got != StatusMet {
		t.Fatalf("expected Met, got %s", got)
	}
}

func TestStatusFromLevels_L0CurrentIsGapNotError(t *testing.T) {
	if got := StatusFromLevels("L0", "L2"); got != StatusGap {
		t.Fatalf("expected Gap, got %s", got)
	}
}

func TestStatusFromLevels_UnparseableIsError(t *testing.T) {
	if got := StatusFromLevels("", "L2"); got != StatusError {
		t.Fatalf("empty current: expected Error, got %s", got)
	}
	if got := StatusFromLevels("L2", "Wizard"); got != StatusError {
		t.Fatalf("unknown target: expected Error, got %s", got)
	}
}
