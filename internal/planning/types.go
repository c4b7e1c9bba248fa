package planning

import (
	"time"

	"go-progression/internal/learning"
)

// GoalStatus is the lifecycle state of a learning goal
type GoalStatus string

const (
	GoalActive    GoalStatus = "ACTIVE"
	GoalCompleted GoalStatus = "COMPLETED"
	GoalPaused    GoalStatus = "PAUSED"
)

// Milestone is one step of a goal's ordered milestone list
type Milestone struct {
	Title       string     `json:"title"`
	TargetValue float64    `json:"target_value"`
	Achieved    bool       `json:"achieved"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
}

// Goal is the engine's view of an agent-authored learning goal
type Goal struct {
	ID                 string               `json:"id"`
	AgentID            string               `json:"agent_id"`
	Title              string               `json:"title"`
	Description        string               `json:"description"`
	Category           learning.PatternType `json:"category"`
	CurrentValue       float64              `json:"current_value"`
	TargetValue        float64              `json:"target_value"`
	ProgressPercentage float64              `json:"progress_percentage"`
	Milestones         []Milestone          `json:"milestones"`
	Status             GoalStatus           `json:"status"`
	TargetDate         *time.Time           `json:"target_date,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
}

// TrajectoryStatus classifies how a goal is tracking against its deadline
type TrajectoryStatus string

const (
	TrajectoryAhead   TrajectoryStatus = "AHEAD"
	TrajectoryOnTrack TrajectoryStatus = "ON_TRACK"
	TrajectoryAtRisk  TrajectoryStatus = "AT_RISK"
	TrajectoryBehind  TrajectoryStatus = "BEHIND"
)

// Severity grades a risk factor
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// RiskFactor is one identified threat to goal completion
type RiskFactor struct {
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Mitigation  string   `json:"mitigation"`
}

// Trajectory is the derived projection for one goal. It is recomputed
// on demand and never stored.
type Trajectory struct {
	GoalID              string           `json:"goal_id"`
	GoalTitle           string           `json:"goal_title"`
	Status              TrajectoryStatus `json:"status"`
	ProgressVelocity    float64          `json:"progress_velocity"` // percent per day
	RequiredVelocity    float64          `json:"required_velocity"`
	DaysAhead           int              `json:"days_ahead"`
	DaysBehind          int              `json:"days_behind"`
	ProjectedCompletion time.Time        `json:"projected_completion"`
	RiskFactors         []RiskFactor     `json:"risk_factors"`
	Recommendations     []string         `json:"recommendations"`
}

// PredictionType categorizes a future prediction
type PredictionType string

const (
	PredictionEmotional PredictionType = "EMOTIONAL_STATE"
	PredictionSkill     PredictionType = "SKILL_COMPLETION"
)

// ConfidenceLabel is the coarse confidence bucket of a prediction
type ConfidenceLabel string

const (
	ConfidenceLow    ConfidenceLabel = "LOW"
	ConfidenceMedium ConfidenceLabel = "MEDIUM"
	ConfidenceHigh   ConfidenceLabel = "HIGH"
)

// Timeframe buckets how far out a prediction points
type Timeframe string

const (
	TimeframeNextDay     Timeframe = "NEXT_DAY"
	TimeframeNextWeek    Timeframe = "NEXT_WEEK"
	TimeframeNextMonth   Timeframe = "NEXT_MONTH"
	TimeframeNextQuarter Timeframe = "NEXT_QUARTER"
)

// PredictedOutcome is one weighted branch of a prediction. Probabilities
// across a prediction's outcomes should sum to at most 1; this is not
// strictly validated.
type PredictedOutcome struct {
	Description string  `json:"description"`
	Probability float64 `json:"probability"`
	Impact      string  `json:"impact"` // positive, negative, neutral
}

// Prediction is a probabilistic statement about future agent state
type Prediction struct {
	ID              string             `json:"id"`
	Type            PredictionType     `json:"type"`
	Description     string             `json:"description"`
	PredictedDate   time.Time          `json:"predicted_date"`
	Timeframe       Timeframe          `json:"timeframe"`
	Confidence      ConfidenceLabel    `json:"confidence"`
	ConfidenceScore float64            `json:"confidence_score"`
	Basis           []string           `json:"basis"`
	Assumptions     []string           `json:"assumptions"`
	Outcomes        []PredictedOutcome `json:"outcomes"`
}

// EmotionEvent is one recent emotional observation from the chat layer
type EmotionEvent struct {
	Description string    `json:"description"`
	Positive    bool      `json:"positive"`
	Timestamp   time.Time `json:"timestamp"`
}

// EmotionalState is the snapshot the chat collaborator supplies for
// prediction generation.
type EmotionalState struct {
	MoodIntensities map[string]float64 `json:"mood_intensities"` // mood name -> intensity [0,1]
	RecentEvents    []EmotionEvent     `json:"recent_events"`
}

// Event is a recent activity datapoint used for goal suggestions
type Event struct {
	Topic     string    `json:"topic"`
	Positive  bool      `json:"positive"`
	Timestamp time.Time `json:"timestamp"`
}

// Horizon bounds a future plan's validity window
type Horizon string

const (
	HorizonImmediate  Horizon = "immediate"
	HorizonShortTerm  Horizon = "short_term"
	HorizonMediumTerm Horizon = "medium_term"
	HorizonLongTerm   Horizon = "long_term"
)

// HorizonWindow returns the validity window for a horizon. Unknown
// horizons fall back to short term.
func HorizonWindow(h Horizon) time.Duration {
	switch h {
	case HorizonImmediate:
		return 24 * time.Hour
	case HorizonShortTerm:
		return 7 * 24 * time.Hour
	case HorizonMediumTerm:
		return 30 * 24 * time.Hour
	case HorizonLongTerm:
		return 90 * 24 * time.Hour
	}
	return 7 * 24 * time.Hour
}

// SuggestedGoal is a proposed new learning goal
type SuggestedGoal struct {
	Title       string               `json:"title"`
	Category    learning.PatternType `json:"category"`
	Reason      string               `json:"reason"`
	TargetValue float64              `json:"target_value"`
}

// ActivityKind labels a scheduled activity
type ActivityKind string

const (
	ActivityFocusSession ActivityKind = "FOCUS_SESSION"
	ActivityReflection   ActivityKind = "REFLECTION"
)

// ScheduledActivity is one entry of the generated activity schedule
type ScheduledActivity struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Kind       ActivityKind `json:"kind"`
	Recurrence string       `json:"recurrence"`
	GoalID     string       `json:"goal_id,omitempty"`
	StartAt    time.Time    `json:"start_at"`
}

// InsightKind labels a ranked insight
type InsightKind string

const (
	InsightWarning     InsightKind = "WARNING"
	InsightOpportunity InsightKind = "OPPORTUNITY"
	InsightInformation InsightKind = "INFORMATION"
)

// Insight is one ranked observation surfaced by the plan
type Insight struct {
	Kind       InsightKind `json:"kind"`
	Title      string      `json:"title"`
	Detail     string      `json:"detail"`
	Priority   int         `json:"priority"` // higher ranks first
	Actionable bool        `json:"actionable"`
}

// Outlook classifies the overall tone of a plan summary
type Outlook string

const (
	OutlookPositive   Outlook = "POSITIVE"
	OutlookNeutral    Outlook = "NEUTRAL"
	OutlookConcerning Outlook = "CONCERNING"
)

// PlanSummary condenses a plan into its headline signals
type PlanSummary struct {
	Outlook            Outlook  `json:"outlook"`
	KeyFocusAreas      []string `json:"key_focus_areas"`
	BiggestOpportunity string   `json:"biggest_opportunity"`
	BiggestRisk        string   `json:"biggest_risk"`
}

// FuturePlan is the synthesized artifact for one time horizon. It is
// regenerated fresh on every request and never persisted incrementally.
type FuturePlan struct {
	ID             string              `json:"id"`
	AgentID        string              `json:"agent_id"`
	Horizon        Horizon             `json:"horizon"`
	GeneratedAt    time.Time           `json:"generated_at"`
	ValidUntil     time.Time           `json:"valid_until"`
	Trajectories   []Trajectory        `json:"trajectories"`
	SuggestedGoals []SuggestedGoal     `json:"suggested_goals"`
	Predictions    []Prediction        `json:"predictions"`
	Schedule       []ScheduledActivity `json:"schedule"`
	Insights       []Insight           `json:"insights"`
	Summary        PlanSummary         `json:"summary"`
}
