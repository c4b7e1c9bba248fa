package learning

import (
	"time"
)

// PatternType is one of the six behavioral categories the detector
// classifies conversations into.
type PatternType string

const (
	PatternTopicInterest        PatternType = "TOPIC_INTEREST"
	PatternCommunicationStyle   PatternType = "COMMUNICATION_STYLE"
	PatternEmotionalResponse    PatternType = "EMOTIONAL_RESPONSE"
	PatternProblemSolving       PatternType = "PROBLEM_SOLVING"
	PatternMemoryRetention      PatternType = "MEMORY_RETENTION"
	PatternRelationshipBuilding PatternType = "RELATIONSHIP_BUILDING"
)

// PatternTypes lists all categories in a stable order
func PatternTypes() []PatternType {
	return []PatternType{
		PatternTopicInterest,
		PatternCommunicationStyle,
		PatternEmotionalResponse,
		PatternProblemSolving,
		PatternMemoryRetention,
		PatternRelationshipBuilding,
	}
}

// Outcome classifies the overall sentiment of a conversation
type Outcome string

const (
	OutcomePositive Outcome = "POSITIVE"
	OutcomeNegative Outcome = "NEGATIVE"
	OutcomeNeutral  Outcome = "NEUTRAL"
)

// Strategy is an inferred learning strategy
type Strategy string

const (
	StrategyExploration     Strategy = "EXPLORATION"
	StrategyExploitation    Strategy = "EXPLOITATION"
	StrategyImitation       Strategy = "IMITATION"
	StrategyExperimentation Strategy = "EXPERIMENTATION"
	StrategyReflection      Strategy = "REFLECTION"
)

// Message is one entry of a conversation transcript
type Message struct {
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

// Example is an input/output snippet supporting a pattern observation
type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Pattern is one classified behavioral observation. Frequency,
// effectiveness and confidence all live in [0,1].
type Pattern struct {
	ID              string      `json:"id"`
	AgentID         string      `json:"agent_id"`
	Type            PatternType `json:"type"`
	Triggers        []string    `json:"triggers"`
	Outcome         Outcome     `json:"outcome"`
	Frequency       float64     `json:"frequency"`
	Effectiveness   float64     `json:"effectiveness"`
	Confidence      float64     `json:"confidence"`
	Examples        []Example   `json:"examples"`
	RelatedPatterns []string    `json:"related_patterns,omitempty"`
	FirstObserved   time.Time   `json:"first_observed"`
	LastObserved    time.Time   `json:"last_observed"`
	Observations    int         `json:"observations"`
}

// Adaptation records a behavioral change derived from a batch of
// patterns. Impact is the mean pattern effectiveness minus the neutral
// baseline of 0.5, so it is negative for counterproductive habits.
type Adaptation struct {
	ID            string      `json:"id"`
	AgentID       string      `json:"agent_id"`
	Type          PatternType `json:"type"`
	Before        string      `json:"before"`
	After         string      `json:"after"`
	Impact        float64     `json:"impact"`
	AffectedAreas []string    `json:"affected_areas"`
	Revertible    bool        `json:"revertible"`
	Active        bool        `json:"active"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Capabilities are the aggregated learning capability scores, all in [0,1]
type Capabilities struct {
	LearningSpeed   float64 `json:"learning_speed"`
	Retention       float64 `json:"retention"`
	Transferability float64 `json:"transferability"`
	Adaptability    float64 `json:"adaptability"`
	Creativity      float64 `json:"creativity"`
}

// Profile is the aggregated learning profile of one agent
type Profile struct {
	AgentID           string        `json:"agent_id"`
	Capabilities      Capabilities  `json:"capabilities"`
	PreferredStrategy Strategy      `json:"preferred_strategy"`
	Strengths         []PatternType `json:"strengths"`
	Weaknesses        []PatternType `json:"weaknesses"`
	GeneratedAt       time.Time     `json:"generated_at"`
}
