package progression

import (
	"fmt"
	"time"
)

// UnlockAchievements inserts a batch of achievements into the progress
// record, credits their XP, then recomputes the level once for the whole
// batch. A level increase credits one skill point per level gained.
// Already-unlocked entries in the batch are skipped, never re-awarded.
func UnlockAchievements(p Progress, achievements []Achievement, now time.Time) UnlockResult {
	// Progress is a value type but its maps are shared; copy before mutating
	unlockedAt := make(map[string]time.Time, len(p.Achievements)+len(achievements))
	for k, v := range p.Achievements {
		unlockedAt[k] = v
	}
	p.Achievements = unlockedAt
	if p.AllocatedSkills == nil {
		p.AllocatedSkills = map[string]int{}
	}

	oldLevel := LevelFromXP(p.ExperiencePoints)
	xpGained := 0
	var unlocked []string

	for _, a := range achievements {
		if _, exists := p.Achievements[a.ID]; exists {
			continue
		}
		p.Achievements[a.ID] = now
		p.ExperiencePoints += a.XPReward
		xpGained += a.XPReward
		unlocked = append(unlocked, a.ID)
	}

	newLevel := LevelFromXP(p.ExperiencePoints)
	if newLevel > oldLevel {
		p.SkillPoints += newLevel - oldLevel
	}
	p.Level = newLevel
	p.NextLevelXP = NextLevelXP(newLevel)

	return UnlockResult{
		Progress:  p,
		LeveledUp: newLevel > oldLevel,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		XPGained:  xpGained,
		Unlocked:  unlocked,
	}
}

// AllocateSkillPoints spends skill points on a named skill. The input
// progress is returned unchanged alongside an error when the allocation
// is invalid (not enough points, or the per-skill cap would be exceeded).
func AllocateSkillPoints(p Progress, skill string, points int) (Progress, error) {
	if skill == "" {
		return p, fmt.Errorf("skill name required")
	}
	if points <= 0 {
		return p, fmt.Errorf("points must be positive, got %d", points)
	}
	if points > p.SkillPoints {
		return p, fmt.Errorf("insufficient skill points: have %d, want %d", p.SkillPoints, points)
	}
	current := 0
	if p.AllocatedSkills != nil {
		current = p.AllocatedSkills[skill]
	}
	if current+points > MaxSkillAllocation {
		return p, fmt.Errorf("skill %q allocation would exceed cap of %d", skill, MaxSkillAllocation)
	}

	// Progress is a value type but its maps are shared; copy before mutating
	allocated := make(map[string]int, len(p.AllocatedSkills)+1)
	for k, v := range p.AllocatedSkills {
		allocated[k] = v
	}
	allocated[skill] = current + points

	p.AllocatedSkills = allocated
	p.SkillPoints -= points
	return p, nil
}
