package learning

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Effectiveness derived from the conversation outcome
const (
	effectivenessPositive = 0.7
	effectivenessNegative = 0.3
	effectivenessNeutral  = 0.5
)

const maxExamplesPerDetection = 2
const exampleSnippetLen = 120

// classifyOutcome counts positive vs negative indicator occurrences
// across all messages. Positive wins only when it exceeds negative by
// more than one, and vice versa; everything else is neutral.
func classifyOutcome(transcript string) Outcome {
	pos := 0
	for _, kw := range positiveKeywords {
		pos += strings.Count(transcript, kw)
	}
	neg := 0
	for _, kw := range negativeKeywords {
		neg += strings.Count(transcript, kw)
	}
	switch {
	case pos > neg+1:
		return OutcomePositive
	case neg > pos+1:
		return OutcomeNegative
	default:
		return OutcomeNeutral
	}
}

func snippet(s string) string {
	if len(s) > exampleSnippetLen {
		return s[:exampleSnippetLen]
	}
	return s
}

// collectExamples picks messages containing a trigger keyword and pairs
// each with the reply that follows it.
func collectExamples(messages []Message, triggers []string) []Example {
	var examples []Example
	for i, m := range messages {
		if len(examples) >= maxExamplesPerDetection {
			break
		}
		lower := strings.ToLower(m.Content)
		matched := false
		for _, trig := range triggers {
			if strings.Contains(lower, trig) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		ex := Example{Input: snippet(m.Content)}
		if i+1 < len(messages) {
			ex.Output = snippet(messages[i+1].Content)
		}
		examples = append(examples, ex)
	}
	return examples
}

// DetectPatternsFromConversation classifies one transcript into pattern
// observations. It is stateless and pure: the keyword tables are never
// modified at runtime. An empty transcript yields no patterns.
func DetectPatternsFromConversation(messages []Message, agentID string, now time.Time) []Pattern {
	if len(messages) == 0 {
		return nil
	}

	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(strings.ToLower(m.Content))
		sb.WriteString("\n")
	}
	transcript := sb.String()

	outcome := classifyOutcome(transcript)
	effectiveness := effectivenessNeutral
	switch outcome {
	case OutcomePositive:
		effectiveness = effectivenessPositive
	case OutcomeNegative:
		effectiveness = effectivenessNegative
	}

	var patterns []Pattern
	for _, pt := range PatternTypes() {
		keywords := patternKeywords[pt]
		var triggers []string
		for _, kw := range keywords {
			if strings.Contains(transcript, kw) {
				triggers = append(triggers, kw)
			}
		}
		if len(triggers) == 0 {
			continue
		}

		frequency := float64(len(triggers)) / float64(len(keywords))
		confidence := float64(len(triggers)) * 0.2
		if confidence > 0.9 {
			confidence = 0.9
		}

		patterns = append(patterns, Pattern{
			ID:            uuid.New().String(),
			AgentID:       agentID,
			Type:          pt,
			Triggers:      triggers,
			Outcome:       outcome,
			Frequency:     frequency,
			Effectiveness: effectiveness,
			Confidence:    confidence,
			Examples:      collectExamples(messages, triggers),
			FirstObserved: now,
			LastObserved:  now,
			Observations:  1,
		})
	}
	return patterns
}

// DetectStrategy scores a text span against the strategy tables and
// returns the highest scorer. Ties and no-match both default to
// exploration.
func DetectStrategy(text string) Strategy {
	lower := strings.ToLower(text)

	best := StrategyExploration
	bestScore := 0
	tied := false
	for _, strat := range []Strategy{
		StrategyExploration, StrategyExploitation, StrategyImitation,
		StrategyExperimentation, StrategyReflection,
	} {
		score := 0
		for _, kw := range strategyKeywords[strat] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = strat
			bestScore = score
			tied = false
		} else if score == bestScore && score > 0 && strat != best {
			tied = true
		}
	}
	if bestScore == 0 || tied {
		return StrategyExploration
	}
	return best
}
