package progression

import (
	"testing"
)

func TestLevelFromXP_Boundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{50, 1},
		{100, 1},
		{399, 1},
		{400, 2},
		{899, 2},
		{900, 3},
		{250000, 50},
		{9999999, 50},
	}
	for _, c := range cases {
		if got := LevelFromXP(c.xp); got != c.want {
			t.Errorf("LevelFromXP(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestLevelFromXP_NonDecreasingAndBounded(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 300000; xp += 137 {
		level := LevelFromXP(xp)
		if level < prev {
			t.Fatalf("level decreased: xp=%d level=%d prev=%d", xp, level, prev)
		}
		if level < 1 || level > MaxLevel {
			t.Fatalf("level out of bounds: xp=%d level=%d", xp, level)
		}
		prev = level
	}
}

func TestNextLevelXP_RoundTrip(t *testing.T) {
	for level := 1; level <= MaxLevel-1; level++ {
		threshold := NextLevelXP(level)
		if got := LevelFromXP(threshold); got != level+1 {
			t.Errorf("LevelFromXP(NextLevelXP(%d)) = %d, want %d", level, got, level+1)
		}
	}
	if NextLevelXP(MaxLevel) != 0 {
		t.Errorf("NextLevelXP at cap should be 0, got %d", NextLevelXP(MaxLevel))
	}
}

func TestProgressToNextLevel_Clamped(t *testing.T) {
	for _, xp := range []int{0, 99, 100, 250, 399, 400, 10000, 250000} {
		pct := ProgressToNextLevel(xp)
		if pct < 0 || pct > 100 {
			t.Errorf("ProgressToNextLevel(%d) = %f out of [0,100]", xp, pct)
		}
	}
	if pct := ProgressToNextLevel(250000); pct != 100 {
		t.Errorf("progress at level cap should be 100, got %f", pct)
	}
}
