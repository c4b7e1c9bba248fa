package agent

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"go-progression/internal/progression"
)

// Agent is a chat agent whose progression this server tracks. The chat
// and content-generation layers live elsewhere; this record only carries
// what the engine needs.
type Agent struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Name       string    `gorm:"size:64;not null" json:"name"`
	Persona    string    `json:"persona"`
	Creativity float64   `gorm:"default:0.5" json:"creativity"` // trait in [0,1], feeds the learning profile
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Stats holds the cumulative counters for one agent. All counters are
// monotonic except ConsecutiveDays, which resets after a gap of more
// than one day.
type Stats struct {
	AgentID             string         `gorm:"primaryKey;size:36" json:"agent_id"`
	ConversationCount   int            `json:"conversation_count"`
	TotalMessages       int            `json:"total_messages"`
	Topics              datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"topics"`
	VocabularySize      int            `json:"vocabulary_size"`
	QuestionsAsked      int            `json:"questions_asked"`
	EmotionsRecognized  int            `json:"emotions_recognized"`
	RelationshipsFormed int            `json:"relationships_formed"`
	DreamCount          int            `json:"dream_count"`
	CreativeWorkCount   int            `json:"creative_work_count"`
	JournalEntryCount   int            `json:"journal_entry_count"`
	ScienceTopics       int            `json:"science_topics"`
	ArtTopics           int            `json:"art_topics"`
	PhilosophyTopics    int            `json:"philosophy_topics"`
	HelpfulResponses    int            `json:"helpful_responses"`
	LongestConversation int            `json:"longest_conversation"`
	ConsecutiveDays     int            `json:"consecutive_days"`
	LastActiveDate      string         `gorm:"size:10" json:"last_active_date"` // YYYY-MM-DD
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// NewStats returns a zeroed stats row for a fresh agent
func NewStats(agentID string) *Stats {
	return &Stats{
		AgentID: agentID,
		Topics:  datatypes.JSON([]byte("[]")),
	}
}

// TopicList decodes the stored topic set. A broken column decodes to an
// empty list rather than failing.
func (s *Stats) TopicList() []string {
	var topics []string
	if len(s.Topics) > 0 {
		_ = json.Unmarshal(s.Topics, &topics)
	}
	return topics
}

// SetTopics replaces the stored topic set
func (s *Stats) SetTopics(topics []string) {
	raw, err := json.Marshal(topics)
	if err != nil {
		return
	}
	s.Topics = datatypes.JSON(raw)
}

// Snapshot builds the read-only view the achievement evaluator consumes
func (s *Stats) Snapshot(level int) progression.Snapshot {
	return progression.Snapshot{
		ConversationCount:   s.ConversationCount,
		TotalMessages:       s.TotalMessages,
		UniqueTopics:        len(s.TopicList()),
		VocabularySize:      s.VocabularySize,
		QuestionsAsked:      s.QuestionsAsked,
		EmotionsRecognized:  s.EmotionsRecognized,
		RelationshipsFormed: s.RelationshipsFormed,
		DreamCount:          s.DreamCount,
		CreativeWorkCount:   s.CreativeWorkCount,
		JournalEntryCount:   s.JournalEntryCount,
		ScienceTopics:       s.ScienceTopics,
		ArtTopics:           s.ArtTopics,
		PhilosophyTopics:    s.PhilosophyTopics,
		HelpfulResponses:    s.HelpfulResponses,
		LongestConversation: s.LongestConversation,
		ConsecutiveDays:     s.ConsecutiveDays,
		Level:               level,
	}
}

// Progress is the stored progression row for one agent. Achievements
// and AllocatedSkills live in jsonb; the engine works on the decoded
// progression.Progress value.
type Progress struct {
	AgentID          string         `gorm:"primaryKey;size:36" json:"agent_id"`
	Level            int            `gorm:"default:1" json:"level"`
	ExperiencePoints int            `json:"experience_points"`
	SkillPoints      int            `json:"skill_points"`
	Achievements     datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"achievements"`
	AllocatedSkills  datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"allocated_skills"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// NewProgress returns the stored form of a fresh progression record
func NewProgress(agentID string) *Progress {
	p := &Progress{AgentID: agentID}
	p.ApplyEngine(progression.NewProgress())
	return p
}

// ToEngine decodes the row into the engine's value type
func (p *Progress) ToEngine() progression.Progress {
	achievements := map[string]time.Time{}
	if len(p.Achievements) > 0 {
		_ = json.Unmarshal(p.Achievements, &achievements)
	}
	skills := map[string]int{}
	if len(p.AllocatedSkills) > 0 {
		_ = json.Unmarshal(p.AllocatedSkills, &skills)
	}
	level := p.Level
	if level < 1 {
		level = 1
	}
	return progression.Progress{
		Level:            level,
		ExperiencePoints: p.ExperiencePoints,
		NextLevelXP:      progression.NextLevelXP(level),
		SkillPoints:      p.SkillPoints,
		Achievements:     achievements,
		AllocatedSkills:  skills,
	}
}

// ApplyEngine writes an engine value back onto the row
func (p *Progress) ApplyEngine(ep progression.Progress) {
	p.Level = ep.Level
	p.ExperiencePoints = ep.ExperiencePoints
	p.SkillPoints = ep.SkillPoints
	if raw, err := json.Marshal(ep.Achievements); err == nil {
		p.Achievements = datatypes.JSON(raw)
	}
	if raw, err := json.Marshal(ep.AllocatedSkills); err == nil {
		p.AllocatedSkills = datatypes.JSON(raw)
	}
}
