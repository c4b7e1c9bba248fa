package planning

import (
	"time"
)

const (
	defaultDeadlineDays = 30
	zeroVelocityCapDays = 365
	aheadFactor         = 1.2
	behindFactor        = 0.5
	atRiskFactor        = 0.8
)

func daysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24
}

// AnalyzeGoalTrajectory projects a goal's completion from its progress
// history. Goals without a target date are measured against a default
// 30-day window. Every division is guarded, so the function is total.
func AnalyzeGoalTrajectory(g Goal, now time.Time) Trajectory {
	daysSinceStart := daysBetween(g.CreatedAt, now)
	if daysSinceStart < 1 {
		daysSinceStart = 1
	}
	velocity := g.ProgressPercentage / daysSinceStart

	remaining := 100 - g.ProgressPercentage
	if remaining < 0 {
		remaining = 0
	}

	daysRemaining := float64(defaultDeadlineDays)
	if g.TargetDate != nil {
		daysRemaining = daysBetween(now, *g.TargetDate)
	}
	if daysRemaining < 1 {
		daysRemaining = 1
	}
	required := remaining / daysRemaining

	var status TrajectoryStatus
	switch {
	case velocity >= aheadFactor*required:
		status = TrajectoryAhead
	case velocity < behindFactor*required:
		status = TrajectoryBehind
	case velocity < atRiskFactor*required:
		status = TrajectoryAtRisk
	default:
		status = TrajectoryOnTrack
	}

	// Days ahead/behind scale with the velocity gap over the remaining window
	daysAhead, daysBehind := 0, 0
	if required > 0 {
		ratio := velocity / required
		if ratio >= 1 {
			daysAhead = int((ratio - 1) * daysRemaining)
		} else {
			daysBehind = int((1 - ratio) * daysRemaining)
		}
	}

	var projected time.Time
	if velocity <= 0 {
		projected = now.AddDate(0, 0, zeroVelocityCapDays)
	} else {
		projected = now.Add(time.Duration(remaining / velocity * 24 * float64(time.Hour)))
	}

	var risks []RiskFactor
	if velocity < 0.5 {
		risks = append(risks, RiskFactor{
			Description: "low progress velocity",
			Severity:    SeverityHigh,
			Mitigation:  "Schedule shorter, more frequent practice sessions",
		})
	}
	if daysRemaining < 7 && remaining > 30 {
		risks = append(risks, RiskFactor{
			Description: "tight deadline",
			Severity:    SeverityMedium,
			Mitigation:  "Reduce scope or move the target date out",
		})
	}

	return Trajectory{
		GoalID:              g.ID,
		GoalTitle:           g.Title,
		Status:              status,
		ProgressVelocity:    velocity,
		RequiredVelocity:    required,
		DaysAhead:           daysAhead,
		DaysBehind:          daysBehind,
		ProjectedCompletion: projected,
		RiskFactors:         risks,
		Recommendations:     recommendationsFor(status),
	}
}

// recommendationsFor returns the template guidance for a status
func recommendationsFor(status TrajectoryStatus) []string {
	switch status {
	case TrajectoryAhead:
		return []string{
			"Pace is strong; consider raising the target or adding a stretch milestone",
		}
	case TrajectoryOnTrack:
		return []string{
			"Keep the current routine; review progress again in a few days",
		}
	case TrajectoryAtRisk:
		return []string{
			"Add one focused session this week to get back on pace",
			"Break the next milestone into smaller steps",
		}
	case TrajectoryBehind:
		return []string{
			"Re-plan the remaining milestones against the time left",
			"Consider moving the target date or narrowing the goal",
		}
	}
	return nil
}
