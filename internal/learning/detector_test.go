package learning

import (
	"testing"
	"time"
)

func transcript(contents ...string) []Message {
	now := time.Now()
	msgs := make([]Message, 0, len(contents))
	for i, c := range contents {
		role := "user"
		if i%2 == 1 {
			role = "agent"
		}
		msgs = append(msgs, Message{Content: c, Role: role, Timestamp: now.Add(time.Duration(i) * time.Minute)})
	}
	return msgs
}

func TestDetectPatterns_SummarizeThankYou(t *testing.T) {
	msgs := transcript(
		"Could you summarize our discussion?",
		"Here is a summary of the main points.",
		"Thank you, that was helpful!",
	)

	patterns := DetectPatternsFromConversation(msgs, "agent-1", time.Now())

	byType := map[PatternType]Pattern{}
	for _, p := range patterns {
		byType[p.Type] = p
	}
	ti, ok := byType[PatternTopicInterest]
	if !ok {
		t.Fatal("expected a TOPIC_INTEREST pattern for 'summarize'")
	}
	cs, ok := byType[PatternCommunicationStyle]
	if !ok {
		t.Fatal("expected a COMMUNICATION_STYLE pattern for 'thank you'")
	}
	if ti.Outcome != OutcomePositive || cs.Outcome != OutcomePositive {
		t.Errorf("expected positive outcome, got %s / %s", ti.Outcome, cs.Outcome)
	}
	if ti.Effectiveness != 0.7 {
		t.Errorf("positive outcome should yield effectiveness 0.7, got %f", ti.Effectiveness)
	}
}

func TestDetectPatterns_EmptyAndNeutral(t *testing.T) {
	if got := DetectPatternsFromConversation(nil, "agent-1", time.Now()); got != nil {
		t.Errorf("empty transcript should yield no patterns, got %v", got)
	}

	msgs := transcript("Let's work through this problem step by step.")
	patterns := DetectPatternsFromConversation(msgs, "agent-1", time.Now())
	var ps *Pattern
	for i := range patterns {
		if patterns[i].Type == PatternProblemSolving {
			ps = &patterns[i]
		}
	}
	if ps == nil {
		t.Fatal("expected a PROBLEM_SOLVING pattern")
	}
	if ps.Outcome != OutcomeNeutral || ps.Effectiveness != 0.5 {
		t.Errorf("expected neutral outcome with 0.5 effectiveness, got %s / %f", ps.Outcome, ps.Effectiveness)
	}
	if len(ps.Triggers) < 2 {
		t.Errorf("expected at least 2 triggers (problem, work through, step by step), got %v", ps.Triggers)
	}
}

func TestDetectPatterns_BoundsAndExamples(t *testing.T) {
	msgs := transcript(
		"I feel happy and excited, I love this, I'm proud and a bit worried and sad and afraid and angry.",
		"That is a lot of feelings at once.",
	)
	patterns := DetectPatternsFromConversation(msgs, "agent-1", time.Now())
	for _, p := range patterns {
		if p.Frequency < 0 || p.Frequency > 1 {
			t.Errorf("frequency out of range: %f", p.Frequency)
		}
		if p.Confidence > 0.9 {
			t.Errorf("confidence must cap at 0.9, got %f", p.Confidence)
		}
		if p.Observations != 1 {
			t.Errorf("fresh detection must have 1 observation, got %d", p.Observations)
		}
		if len(p.Examples) == 0 {
			t.Errorf("expected example snippets for %s", p.Type)
		}
	}
}

func TestDetectStrategy(t *testing.T) {
	cases := []struct {
		text string
		want Strategy
	}{
		{"let's explore and discover something new, I wonder what if", StrategyExploration},
		{"run the experiment, test the hypothesis and measure twice to compare", StrategyExperimentation},
		{"looking back I realize what I learned that day, time to reflect", StrategyReflection},
		{"", StrategyExploration},
		{"nothing matches here at all", StrategyExploration},
	}
	for _, c := range cases {
		if got := DetectStrategy(c.text); got != c.want {
			t.Errorf("DetectStrategy(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}

func TestMergePattern(t *testing.T) {
	now := time.Now()
	existing := Pattern{
		Type: PatternTopicInterest, Frequency: 0.4, Effectiveness: 0.7,
		Confidence: 0.4, Observations: 3,
		Triggers:      []string{"what is"},
		FirstObserved: now.Add(-48 * time.Hour), LastObserved: now.Add(-24 * time.Hour),
		Examples: []Example{{Input: "a"}},
	}
	incoming := Pattern{
		Type: PatternTopicInterest, Frequency: 0.2, Effectiveness: 0.3,
		Confidence: 0.2, Observations: 1, Outcome: OutcomeNegative,
		Triggers:     []string{"what is", "explain"},
		LastObserved: now,
		Examples:     []Example{{Input: "b"}},
	}

	merged := MergePattern(existing, incoming)
	if merged.Observations != 4 {
		t.Errorf("expected 4 observations, got %d", merged.Observations)
	}
	// (0.7*3 + 0.3) / 4 = 0.6
	if merged.Effectiveness < 0.59 || merged.Effectiveness > 0.61 {
		t.Errorf("expected averaged effectiveness 0.6, got %f", merged.Effectiveness)
	}
	if merged.Confidence <= existing.Confidence {
		t.Errorf("confidence should grow with observations, got %f", merged.Confidence)
	}
	if merged.Confidence > 0.95 {
		t.Errorf("confidence must stay below ceiling, got %f", merged.Confidence)
	}
	if merged.LastObserved != now {
		t.Error("last observed not updated")
	}
	if len(merged.Triggers) != 2 {
		t.Errorf("expected trigger union of 2, got %v", merged.Triggers)
	}
	if merged.FirstObserved != existing.FirstObserved {
		t.Error("first observed must not change on merge")
	}
}
