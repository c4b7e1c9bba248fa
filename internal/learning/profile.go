package learning

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	strengthThreshold = 0.7
	weaknessThreshold = 0.4
	recentWindow      = 7 * 24 * time.Hour
	adaptationMinObs  = 3
	neutralBaseline   = 0.5
)

// DeriveAdaptations turns accumulated patterns into recorded behavioral
// changes. A pattern type qualifies once it has at least three
// observations; the impact score is its mean effectiveness relative to
// the neutral baseline.
func DeriveAdaptations(agentID string, patterns []Pattern, now time.Time) []Adaptation {
	type agg struct {
		total float64
		count int
		obs   int
	}
	byType := map[PatternType]*agg{}
	for _, p := range patterns {
		a := byType[p.Type]
		if a == nil {
			a = &agg{}
			byType[p.Type] = a
		}
		a.total += p.Effectiveness
		a.count++
		a.obs += p.Observations
	}

	var adaptations []Adaptation
	for _, pt := range PatternTypes() {
		a := byType[pt]
		if a == nil || a.obs < adaptationMinObs {
			continue
		}
		mean := a.total / float64(a.count)
		impact := mean - neutralBaseline
		adaptations = append(adaptations, Adaptation{
			ID:            uuid.New().String(),
			AgentID:       agentID,
			Type:          pt,
			Before:        fmt.Sprintf("No established %s habits", describeType(pt)),
			After:         fmt.Sprintf("Leans into %s during conversations", describeType(pt)),
			Impact:        impact,
			AffectedAreas: []string{string(pt)},
			Revertible:    true,
			Active:        true,
			CreatedAt:     now,
		})
	}
	return adaptations
}

func describeType(pt PatternType) string {
	switch pt {
	case PatternTopicInterest:
		return "topic curiosity"
	case PatternCommunicationStyle:
		return "polite phrasing"
	case PatternEmotionalResponse:
		return "emotional expression"
	case PatternProblemSolving:
		return "structured problem solving"
	case PatternMemoryRetention:
		return "conversational recall"
	case PatternRelationshipBuilding:
		return "relationship building"
	}
	return string(pt)
}

// CreateLearningProfile aggregates patterns and adaptations into the
// capability/strengths/weaknesses profile. Creativity blends a fixed
// 0.5 baseline with the agent's creativity trait.
func CreateLearningProfile(agentID string, creativityTrait float64, patterns []Pattern, adaptations []Adaptation, now time.Time) Profile {
	caps := Capabilities{
		Creativity: (neutralBaseline + clamp01(creativityTrait)) / 2,
	}

	if len(patterns) > 0 {
		recent := 0
		multiObserved := 0
		withRelated := 0
		for _, p := range patterns {
			if now.Sub(p.LastObserved) <= recentWindow {
				recent++
			}
			if p.Observations > 1 {
				multiObserved++
			}
			if len(p.RelatedPatterns) > 0 {
				withRelated++
			}
		}
		n := float64(len(patterns))
		caps.LearningSpeed = float64(recent) / n
		caps.Retention = float64(multiObserved) / n
		caps.Transferability = float64(withRelated) / n
	}

	active := 0
	positive := 0
	for _, a := range adaptations {
		if !a.Active {
			continue
		}
		active++
		if a.Impact > 0 {
			positive++
		}
	}
	if active > 0 {
		caps.Adaptability = float64(positive) / float64(active)
	}

	// Effectiveness means per type decide strengths and weaknesses;
	// types never observed stay out of both lists.
	sums := map[PatternType]float64{}
	counts := map[PatternType]int{}
	for _, p := range patterns {
		sums[p.Type] += p.Effectiveness
		counts[p.Type]++
	}
	var strengths, weaknesses []PatternType
	for _, pt := range PatternTypes() {
		c := counts[pt]
		if c == 0 {
			continue
		}
		mean := sums[pt] / float64(c)
		if mean >= strengthThreshold {
			strengths = append(strengths, pt)
		} else if mean < weaknessThreshold {
			weaknesses = append(weaknesses, pt)
		}
	}

	return Profile{
		AgentID:           agentID,
		Capabilities:      caps,
		PreferredStrategy: preferredStrategy(patterns),
		Strengths:         strengths,
		Weaknesses:        weaknesses,
		GeneratedAt:       now,
	}
}

// preferredStrategy tallies the inferred strategy of every example
// context and returns the plurality winner.
func preferredStrategy(patterns []Pattern) Strategy {
	tally := map[Strategy]int{}
	for _, p := range patterns {
		for _, ex := range p.Examples {
			tally[DetectStrategy(ex.Input+" "+ex.Output)]++
		}
	}

	best := StrategyExploration
	bestCount := 0
	for _, strat := range []Strategy{
		StrategyExploration, StrategyExploitation, StrategyImitation,
		StrategyExperimentation, StrategyReflection,
	} {
		if tally[strat] > bestCount {
			best = strat
			bestCount = tally[strat]
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
