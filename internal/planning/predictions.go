package planning

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	volatilityThreshold    = 0.7
	positiveRatioThreshold = 0.6
)

// timeframeFor buckets a predicted date by its distance from now
func timeframeFor(now, predicted time.Time) Timeframe {
	days := daysBetween(now, predicted)
	switch {
	case days <= 1:
		return TimeframeNextDay
	case days <= 7:
		return TimeframeNextWeek
	case days <= 30:
		return TimeframeNextMonth
	default:
		return TimeframeNextQuarter
	}
}

// moodVolatility is the population standard deviation of the mood
// intensity vector. An empty vector has zero volatility.
func moodVolatility(intensities map[string]float64) float64 {
	if len(intensities) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range intensities {
		mean += v
	}
	mean /= float64(len(intensities))

	variance := 0.0
	for _, v := range intensities {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(intensities))
	return math.Sqrt(variance)
}

// PredictEmotionalTrends derives emotional predictions from the current
// mood vector and recent emotion events.
func PredictEmotionalTrends(state EmotionalState, now time.Time) []Prediction {
	var predictions []Prediction

	volatility := moodVolatility(state.MoodIntensities)
	if volatility > volatilityThreshold {
		predictions = append(predictions, Prediction{
			ID:              uuid.New().String(),
			Type:            PredictionEmotional,
			Description:     "Mood fluctuation expected over the coming days",
			PredictedDate:   now.Add(48 * time.Hour),
			Timeframe:       TimeframeNextWeek,
			Confidence:      ConfidenceMedium,
			ConfidenceScore: 0.6,
			Basis:           []string{fmt.Sprintf("mood volatility %.2f exceeds %.2f", volatility, volatilityThreshold)},
			Assumptions:     []string{"no major external events intervene"},
			Outcomes: []PredictedOutcome{
				{Description: "Mood swings continue", Probability: 0.4, Impact: "negative"},
				{Description: "Mood stabilizes on its own", Probability: 0.35, Impact: "positive"},
				{Description: "Fluctuation intensifies", Probability: 0.25, Impact: "negative"},
			},
		})
	}

	if len(state.RecentEvents) > 0 {
		positive := 0
		for _, e := range state.RecentEvents {
			if e.Positive {
				positive++
			}
		}
		ratio := float64(positive) / float64(len(state.RecentEvents))
		if ratio > positiveRatioThreshold {
			predictions = append(predictions, Prediction{
				ID:              uuid.New().String(),
				Type:            PredictionEmotional,
				Description:     "Positive emotional trajectory likely to continue",
				PredictedDate:   now.AddDate(0, 0, 7),
				Timeframe:       TimeframeNextWeek,
				Confidence:      ConfidenceHigh,
				ConfidenceScore: 0.8,
				Basis:           []string{fmt.Sprintf("%.0f%% of recent emotional events were positive", ratio*100)},
				Assumptions:     []string{"interaction frequency stays roughly constant"},
				Outcomes: []PredictedOutcome{
					{Description: "Sustained positive mood", Probability: 0.6, Impact: "positive"},
					{Description: "Mood returns to baseline", Probability: 0.3, Impact: "neutral"},
					{Description: "Unexpected downturn", Probability: 0.1, Impact: "negative"},
				},
			})
		}
	}

	return predictions
}

// PredictSkillGrowth extrapolates a completion prediction for each
// active goal, with confidence keyed to the observed velocity.
func PredictSkillGrowth(goals []Goal, now time.Time) []Prediction {
	var predictions []Prediction
	for _, g := range goals {
		if g.Status != GoalActive {
			continue
		}

		daysSinceStart := daysBetween(g.CreatedAt, now)
		if daysSinceStart < 1 {
			daysSinceStart = 1
		}
		velocity := g.ProgressPercentage / daysSinceStart
		remaining := 100 - g.ProgressPercentage
		if remaining < 0 {
			remaining = 0
		}

		var predicted time.Time
		if velocity <= 0 {
			predicted = now.AddDate(0, 0, zeroVelocityCapDays)
		} else {
			predicted = now.Add(time.Duration(remaining / velocity * 24 * float64(time.Hour)))
		}

		label, score := ConfidenceLow, 0.35
		switch {
		case velocity > 2:
			label, score = ConfidenceHigh, 0.8
		case velocity > 0.5:
			label, score = ConfidenceMedium, 0.6
		}

		predictions = append(predictions, Prediction{
			ID:              uuid.New().String(),
			Type:            PredictionSkill,
			Description:     fmt.Sprintf("Goal %q projected to complete around %s", g.Title, predicted.Format("2006-01-02")),
			PredictedDate:   predicted,
			Timeframe:       timeframeFor(now, predicted),
			Confidence:      label,
			ConfidenceScore: score,
			Basis:           []string{fmt.Sprintf("current velocity %.2f%%/day over %.0f days", velocity, daysSinceStart)},
			Assumptions:     []string{"progress velocity remains stable"},
			Outcomes: []PredictedOutcome{
				{Description: "Completes by the projected date", Probability: 0.5, Impact: "positive"},
				{Description: "Completes late", Probability: 0.3, Impact: "neutral"},
				{Description: "Progress stalls", Probability: 0.2, Impact: "negative"},
			},
		})
	}
	return predictions
}
