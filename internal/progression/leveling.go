package progression

import (
	"math"
)

const (
	// BaseXPPerLevel is the quadratic scaling base of the level curve
	BaseXPPerLevel = 100
	// MaxLevel caps progression
	MaxLevel = 50
	// MaxSkillAllocation caps points spent on a single skill
	MaxSkillAllocation = 5
)

// LevelFromXP maps experience points onto a level.
// Formula: floor(sqrt(xp / base)), floored at 1 and capped at MaxLevel,
// so level 2 starts at 400 XP, level 3 at 900 XP, and so on.
func LevelFromXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := int(math.Floor(math.Sqrt(float64(xp) / float64(BaseXPPerLevel))))
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// NextLevelXP returns the XP threshold at which the next level begins,
// or 0 when the agent is already at the cap.
func NextLevelXP(level int) int {
	if level >= MaxLevel {
		return 0
	}
	if level < 1 {
		level = 1
	}
	return (level + 1) * (level + 1) * BaseXPPerLevel
}

// levelFloorXP is the XP threshold where the given level begins
func levelFloorXP(level int) int {
	if level < 1 {
		level = 1
	}
	return level * level * BaseXPPerLevel
}

// ProgressToNextLevel returns the percentage [0,100] of the way from the
// current level threshold to the next one.
func ProgressToNextLevel(xp int) float64 {
	level := LevelFromXP(xp)
	if level >= MaxLevel {
		return 100
	}
	floor := levelFloorXP(level)
	ceil := NextLevelXP(level)
	span := ceil - floor
	if span <= 0 {
		return 100
	}
	pct := float64(xp-floor) / float64(span) * 100.0
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
