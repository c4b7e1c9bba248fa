package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"go-progression/internal/learning"
)

const (
	maxSuggestedCategories = 3
	maxFocusAreas          = 3
	milestoneWarningDays   = 7
	highConfidenceCutoff   = 0.75
)

var fallbackOpportunity = "Maintain current learning momentum"
var fallbackRisk = "No significant risks identified"

// GenerateFuturePlan synthesizes the time-boxed plan for one agent from
// its goals, emotional snapshot and recent events. The plan is built
// fresh on every call.
func GenerateFuturePlan(agentID string, goals []Goal, emotional EmotionalState, events []Event, horizon Horizon, now time.Time) FuturePlan {
	window := HorizonWindow(horizon)
	validUntil := now.Add(window)

	var active []Goal
	for _, g := range goals {
		if g.Status == GoalActive {
			active = append(active, g)
		}
	}

	var trajectories []Trajectory
	for _, g := range active {
		trajectories = append(trajectories, AnalyzeGoalTrajectory(g, now))
	}

	predictions := append(PredictEmotionalTrends(emotional, now), PredictSkillGrowth(active, now)...)
	// Predictions beyond the validity window do not belong in this plan
	var inWindow []Prediction
	for _, p := range predictions {
		if !p.PredictedDate.After(validUntil) {
			inWindow = append(inWindow, p)
		}
	}

	insights := buildInsights(trajectories, inWindow, active, now)
	summary := buildSummary(trajectories, insights)

	return FuturePlan{
		ID:             uuid.New().String(),
		AgentID:        agentID,
		Horizon:        horizon,
		GeneratedAt:    now,
		ValidUntil:     validUntil,
		Trajectories:   trajectories,
		SuggestedGoals: suggestGoals(active, events),
		Predictions:    inWindow,
		Schedule:       buildSchedule(trajectories, now),
		Insights:       insights,
		Summary:        summary,
	}
}

// suggestGoals proposes goals for uncovered categories plus one derived
// from the most frequent recent topic.
func suggestGoals(active []Goal, events []Event) []SuggestedGoal {
	covered := map[learning.PatternType]bool{}
	for _, g := range active {
		covered[g.Category] = true
	}

	var suggestions []SuggestedGoal
	for _, pt := range learning.PatternTypes() {
		if covered[pt] {
			continue
		}
		suggestions = append(suggestions, SuggestedGoal{
			Title:       categoryGoalTitle(pt),
			Category:    pt,
			Reason:      "no active goal covers this area",
			TargetValue: 10,
		})
		if len(suggestions) >= maxSuggestedCategories {
			break
		}
	}

	if topic := topTopic(events); topic != "" {
		suggestions = append(suggestions, SuggestedGoal{
			Title:       fmt.Sprintf("Deepen knowledge of %s", topic),
			Category:    learning.PatternTopicInterest,
			Reason:      fmt.Sprintf("%s came up repeatedly in recent activity", topic),
			TargetValue: 10,
		})
	}
	return suggestions
}

func categoryGoalTitle(pt learning.PatternType) string {
	switch pt {
	case learning.PatternTopicInterest:
		return "Explore three unfamiliar topics"
	case learning.PatternCommunicationStyle:
		return "Practice clearer conversational phrasing"
	case learning.PatternEmotionalResponse:
		return "Name emotions as they come up"
	case learning.PatternProblemSolving:
		return "Work through one problem end to end"
	case learning.PatternMemoryRetention:
		return "Reference past conversations more often"
	case learning.PatternRelationshipBuilding:
		return "Strengthen an existing relationship"
	}
	return "Broaden learning activity"
}

// topTopic returns the most frequent event topic, breaking ties by
// first appearance.
func topTopic(events []Event) string {
	counts := map[string]int{}
	var order []string
	for _, e := range events {
		if e.Topic == "" {
			continue
		}
		if counts[e.Topic] == 0 {
			order = append(order, e.Topic)
		}
		counts[e.Topic]++
	}
	best, bestCount := "", 1 // require at least two mentions
	for _, topic := range order {
		if counts[topic] > bestCount {
			best, bestCount = topic, counts[topic]
		}
	}
	return best
}

// buildSchedule generates one recurring focus session per struggling
// goal plus a single recurring reflection slot.
func buildSchedule(trajectories []Trajectory, now time.Time) []ScheduledActivity {
	var schedule []ScheduledActivity
	for _, tr := range trajectories {
		if tr.Status != TrajectoryAtRisk && tr.Status != TrajectoryBehind {
			continue
		}
		schedule = append(schedule, ScheduledActivity{
			ID:         uuid.New().String(),
			Title:      fmt.Sprintf("Focus session: %s", tr.GoalTitle),
			Kind:       ActivityFocusSession,
			Recurrence: "daily",
			GoalID:     tr.GoalID,
			StartAt:    now.Add(24 * time.Hour),
		})
	}
	schedule = append(schedule, ScheduledActivity{
		ID:         uuid.New().String(),
		Title:      "Evening reflection",
		Kind:       ActivityReflection,
		Recurrence: "daily",
		StartAt:    now.Add(12 * time.Hour),
	})
	return schedule
}

func buildInsights(trajectories []Trajectory, predictions []Prediction, goals []Goal, now time.Time) []Insight {
	var insights []Insight

	for _, tr := range trajectories {
		switch tr.Status {
		case TrajectoryBehind:
			insights = append(insights, Insight{
				Kind:       InsightWarning,
				Title:      fmt.Sprintf("%s is falling behind", tr.GoalTitle),
				Detail:     fmt.Sprintf("velocity %.2f%%/day vs %.2f%%/day required", tr.ProgressVelocity, tr.RequiredVelocity),
				Priority:   5,
				Actionable: true,
			})
		case TrajectoryAtRisk:
			insights = append(insights, Insight{
				Kind:       InsightWarning,
				Title:      fmt.Sprintf("%s is at risk", tr.GoalTitle),
				Detail:     fmt.Sprintf("velocity %.2f%%/day vs %.2f%%/day required", tr.ProgressVelocity, tr.RequiredVelocity),
				Priority:   4,
				Actionable: true,
			})
		case TrajectoryAhead:
			insights = append(insights, Insight{
				Kind:       InsightOpportunity,
				Title:      fmt.Sprintf("%s is ahead of schedule", tr.GoalTitle),
				Detail:     fmt.Sprintf("%d days ahead; consider a stretch milestone", tr.DaysAhead),
				Priority:   3,
				Actionable: true,
			})
		}
	}

	for _, p := range predictions {
		if p.ConfidenceScore >= highConfidenceCutoff {
			insights = append(insights, Insight{
				Kind:       InsightInformation,
				Title:      p.Description,
				Detail:     fmt.Sprintf("confidence %.0f%%", p.ConfidenceScore*100),
				Priority:   3,
				Actionable: false,
			})
		}
	}

	// Milestones coming due within a week that have not been hit yet
	for _, g := range goals {
		for _, m := range g.Milestones {
			if m.Achieved || m.TargetDate == nil {
				continue
			}
			days := daysBetween(now, *m.TargetDate)
			if days >= 0 && days <= milestoneWarningDays {
				insights = append(insights, Insight{
					Kind:       InsightWarning,
					Title:      fmt.Sprintf("Milestone %q due soon", m.Title),
					Detail:     fmt.Sprintf("due in %.0f days (goal: %s)", days, g.Title),
					Priority:   4,
					Actionable: true,
				})
			}
		}
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority > insights[j].Priority
	})
	return insights
}

func buildSummary(trajectories []Trajectory, insights []Insight) PlanSummary {
	positives, negatives := 0, 0
	for _, in := range insights {
		switch in.Kind {
		case InsightOpportunity:
			positives++
		case InsightWarning:
			negatives++
		}
	}

	outlook := OutlookNeutral
	if positives > 2*negatives && positives > 0 {
		outlook = OutlookPositive
	} else if negatives > positives {
		outlook = OutlookConcerning
	}

	var focus []string
	seen := map[string]bool{}
	for _, tr := range trajectories {
		if len(focus) >= maxFocusAreas {
			break
		}
		if (tr.Status == TrajectoryAtRisk || tr.Status == TrajectoryBehind) && !seen[tr.GoalTitle] {
			focus = append(focus, tr.GoalTitle)
			seen[tr.GoalTitle] = true
		}
	}
	for _, in := range insights {
		if len(focus) >= maxFocusAreas {
			break
		}
		if in.Actionable && !seen[in.Title] {
			focus = append(focus, in.Title)
			seen[in.Title] = true
		}
	}

	opportunity := fallbackOpportunity
	risk := fallbackRisk
	for _, in := range insights {
		if in.Kind == InsightOpportunity {
			opportunity = in.Title
			break
		}
	}
	for _, in := range insights {
		if in.Kind == InsightWarning {
			risk = in.Title
			break
		}
	}

	return PlanSummary{
		Outlook:            outlook,
		KeyFocusAreas:      focus,
		BiggestOpportunity: opportunity,
		BiggestRisk:        risk,
	}
}
