package progression

import (
	"testing"
	"time"
)

func TestCheckAchievements_FirstWords(t *testing.T) {
	s := Snapshot{ConversationCount: 1, Level: 1}
	p := NewProgress()

	newly := CheckAchievements(s, p)
	found := false
	for _, a := range newly {
		if a.ID == "first_words" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected first_words among newly satisfied achievements, got %v", newly)
	}
}

func TestCheckAchievements_SkipsUnlocked(t *testing.T) {
	s := Snapshot{ConversationCount: 1, Level: 1}
	p := NewProgress()
	p.Achievements["first_words"] = time.Now()

	for _, a := range CheckAchievements(s, p) {
		if a.ID == "first_words" {
			t.Fatal("first_words should not be reported again once unlocked")
		}
	}
}

func TestCheckAchievements_CombinationPredicates(t *testing.T) {
	s := Snapshot{ScienceTopics: 50, ArtTopics: 50, PhilosophyTopics: 50, RelationshipsFormed: 3, Level: 10}
	p := NewProgress()

	got := map[string]bool{}
	for _, a := range CheckAchievements(s, p) {
		got[a.ID] = true
	}
	for _, id := range []string{"renaissance_soul", "philosopher", "social_butterfly"} {
		if !got[id] {
			t.Errorf("expected %s to be satisfied, satisfied set: %v", id, got)
		}
	}
}

func TestUnlockAchievements_FirstWordsScenario(t *testing.T) {
	p := NewProgress()
	a, ok := CatalogEntry("first_words")
	if !ok {
		t.Fatal("first_words missing from catalog")
	}

	res := UnlockAchievements(p, []Achievement{a}, time.Now())
	if res.XPGained != 10 {
		t.Errorf("expected 10 XP gained, got %d", res.XPGained)
	}
	if res.Progress.ExperiencePoints != 10 {
		t.Errorf("expected 10 total XP, got %d", res.Progress.ExperiencePoints)
	}
	if _, ok := res.Progress.Achievements["first_words"]; !ok {
		t.Error("first_words not recorded in achievements map")
	}
	if res.LeveledUp {
		t.Error("10 XP should not level up a fresh agent")
	}
}

func TestUnlockAchievements_Monotonic(t *testing.T) {
	p := NewProgress()
	p.ExperiencePoints = 350
	p.Level = LevelFromXP(350)
	p.Achievements["first_words"] = time.Now()

	var batch []Achievement
	for _, id := range []string{"chatterbox", "curious_mind", "knowledge_seeker", "renaissance_soul"} {
		a, ok := CatalogEntry(id)
		if !ok {
			t.Fatalf("%s missing from catalog", id)
		}
		batch = append(batch, a)
	}

	res := UnlockAchievements(p, batch, time.Now())
	if res.Progress.ExperiencePoints < p.ExperiencePoints {
		t.Error("experience points decreased")
	}
	if res.Progress.Level < p.Level {
		t.Error("level decreased")
	}
	if res.Progress.SkillPoints < p.SkillPoints {
		t.Error("skill points decreased")
	}
	if _, ok := res.Progress.Achievements["first_words"]; !ok {
		t.Error("existing achievement key was removed")
	}
	// 350 + 25 + 50 + 50 + 500 = 975 -> level 3, up from level 1
	if !res.LeveledUp || res.NewLevel != 3 || res.OldLevel != 1 {
		t.Errorf("expected level up 1 -> 3, got %d -> %d (leveledUp=%v)", res.OldLevel, res.NewLevel, res.LeveledUp)
	}
	if res.Progress.SkillPoints != 2 {
		t.Errorf("expected 2 skill points for 2 levels gained, got %d", res.Progress.SkillPoints)
	}
}

func TestUnlockAchievements_BatchLevelsOnce(t *testing.T) {
	p := NewProgress()
	a1, _ := CatalogEntry("renaissance_soul")
	a2, _ := CatalogEntry("ascended")

	res := UnlockAchievements(p, []Achievement{a1, a2}, time.Now())
	// 500 + 1000 = 1500 XP -> level 3
	if res.NewLevel != 3 {
		t.Errorf("expected level 3 after batch, got %d", res.NewLevel)
	}
	if res.Progress.NextLevelXP != NextLevelXP(3) {
		t.Errorf("next level XP not recomputed, got %d", res.Progress.NextLevelXP)
	}
}

func TestUnlockAchievements_DoesNotMutateInput(t *testing.T) {
	p := NewProgress()
	p.Achievements["first_words"] = time.Now()
	a, _ := CatalogEntry("chatterbox")

	res := UnlockAchievements(p, []Achievement{a}, time.Now())
	if _, ok := res.Progress.Achievements["chatterbox"]; !ok {
		t.Fatal("chatterbox not recorded in result")
	}
	if _, ok := p.Achievements["chatterbox"]; ok {
		t.Error("input achievements map was mutated")
	}
	if len(p.Achievements) != 1 {
		t.Errorf("input achievements map changed size: %d", len(p.Achievements))
	}
	if p.ExperiencePoints != 0 {
		t.Errorf("input XP changed: %d", p.ExperiencePoints)
	}
}

func TestAllocateSkillPoints(t *testing.T) {
	p := NewProgress()
	p.SkillPoints = 4

	p2, err := AllocateSkillPoints(p, "empathy", 3)
	if err != nil {
		t.Fatalf("valid allocation failed: %v", err)
	}
	if p2.SkillPoints != 1 || p2.AllocatedSkills["empathy"] != 3 {
		t.Errorf("allocation not applied: %+v", p2)
	}

	// Insufficient points: state unchanged
	if p3, err := AllocateSkillPoints(p2, "curiosity", 2); err == nil {
		t.Error("expected error for insufficient points")
	} else if p3.SkillPoints != p2.SkillPoints || p3.AllocatedSkills["curiosity"] != 0 {
		t.Error("rejected allocation mutated state")
	}

	// Per-skill cap: 3 already allocated, cap is 5
	p2.SkillPoints = 10
	if _, err := AllocateSkillPoints(p2, "empathy", 3); err == nil {
		t.Error("expected error when exceeding per-skill cap")
	}
	if p2.AllocatedSkills["empathy"] != 3 {
		t.Error("rejected allocation mutated the skill map")
	}
}

func TestRequirement_UnknownCombinationIsFalse(t *testing.T) {
	r := Requirement{Kind: RequirementCombination, Combination: "does_not_exist"}
	if r.Satisfied(Snapshot{Level: 50}) {
		t.Error("unknown combination id must evaluate to false")
	}
}
