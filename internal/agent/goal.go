package agent

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"go-progression/internal/learning"
	"go-progression/internal/planning"
)

// LearningGoal is the stored form of an agent-authored objective.
// Milestones live in jsonb; the planning engine works on the decoded
// planning.Goal value.
type LearningGoal struct {
	ID                 string         `gorm:"primaryKey;size:36" json:"id"`
	AgentID            string         `gorm:"size:36;index;not null" json:"agent_id"`
	Title              string         `gorm:"size:128;not null" json:"title"`
	Description        string         `json:"description"`
	Category           string         `gorm:"size:32" json:"category"`
	CurrentValue       float64        `json:"current_value"`
	TargetValue        float64        `json:"target_value"`
	ProgressPercentage float64        `json:"progress_percentage"`
	Milestones         datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"milestones"`
	Status             string         `gorm:"size:16;default:'ACTIVE'" json:"status"`
	TargetDate         *time.Time     `json:"target_date,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// MilestoneList decodes the stored milestones
func (g *LearningGoal) MilestoneList() []planning.Milestone {
	var milestones []planning.Milestone
	if len(g.Milestones) > 0 {
		_ = json.Unmarshal(g.Milestones, &milestones)
	}
	return milestones
}

// SetMilestones replaces the stored milestone list
func (g *LearningGoal) SetMilestones(milestones []planning.Milestone) {
	raw, err := json.Marshal(milestones)
	if err != nil {
		return
	}
	g.Milestones = datatypes.JSON(raw)
}

// ToPlanning decodes the row into the planning engine's value type
func (g *LearningGoal) ToPlanning() planning.Goal {
	return planning.Goal{
		ID:                 g.ID,
		AgentID:            g.AgentID,
		Title:              g.Title,
		Description:        g.Description,
		Category:           learning.PatternType(g.Category),
		CurrentValue:       g.CurrentValue,
		TargetValue:        g.TargetValue,
		ProgressPercentage: g.ProgressPercentage,
		Milestones:         g.MilestoneList(),
		Status:             planning.GoalStatus(g.Status),
		TargetDate:         g.TargetDate,
		CreatedAt:          g.CreatedAt,
	}
}
