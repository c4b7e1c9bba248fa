package agent

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the persistence layer around the engine. Handlers read
// a full snapshot, hand it to the pure engine functions, and write back
// only the rows that changed.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Snapshot bundles everything the engine needs about one agent
type SnapshotRecord struct {
	Agent    Agent
	Stats    Stats
	Progress Progress
	Goals    []LearningGoal
}

// CreateAgent stores a new agent with zeroed stats and fresh progress
func (r *Repository) CreateAgent(name, persona string, creativity float64) (*Agent, error) {
	if name == "" {
		return nil, errors.New("agent name required")
	}
	if creativity <= 0 {
		creativity = 0.5
	}
	a := Agent{
		ID:         uuid.New().String(),
		Name:       name,
		Persona:    persona,
		Creativity: creativity,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		if err := tx.Create(NewStats(a.ID)).Error; err != nil {
			return err
		}
		return tx.Create(NewProgress(a.ID)).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return &a, nil
}

// GetAgent loads the agent row only
func (r *Repository) GetAgent(id string) (*Agent, error) {
	var a Agent
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("agent %s: %w", id, err)
	}
	return &a, nil
}

// ListAgents returns all agents
func (r *Repository) ListAgents() ([]Agent, error) {
	var agents []Agent
	if err := r.db.Order("created_at").Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

// LoadSnapshot reads the full agent record. Missing stats or progress
// rows are replaced with defaults rather than failing, so the engine
// stays total over partially-written agents.
func (r *Repository) LoadSnapshot(agentID string) (*SnapshotRecord, error) {
	var rec SnapshotRecord
	if err := r.db.First(&rec.Agent, "id = ?", agentID).Error; err != nil {
		return nil, fmt.Errorf("agent %s: %w", agentID, err)
	}
	if err := r.db.First(&rec.Stats, "agent_id = ?", agentID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		rec.Stats = *NewStats(agentID)
	}
	if err := r.db.First(&rec.Progress, "agent_id = ?", agentID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		rec.Progress = *NewProgress(agentID)
	}
	if err := r.db.Where("agent_id = ?", agentID).Order("created_at").Find(&rec.Goals).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// SaveStats writes the stats row back (partial update: stats only)
func (r *Repository) SaveStats(s *Stats) error {
	return r.db.Save(s).Error
}

// SaveProgress writes the progress row back (partial update: progress only)
func (r *Repository) SaveProgress(p *Progress) error {
	return r.db.Save(p).Error
}

// CreateGoal stores a new learning goal
func (r *Repository) CreateGoal(g *LearningGoal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Status == "" {
		g.Status = "ACTIVE"
	}
	if len(g.Milestones) == 0 {
		g.Milestones = []byte("[]")
	}
	return r.db.Create(g).Error
}

// GetGoal loads one goal, scoped to its agent
func (r *Repository) GetGoal(agentID, goalID string) (*LearningGoal, error) {
	var g LearningGoal
	if err := r.db.First(&g, "id = ? AND agent_id = ?", goalID, agentID).Error; err != nil {
		return nil, fmt.Errorf("goal %s: %w", goalID, err)
	}
	return &g, nil
}

// ListGoals returns all goals for one agent
func (r *Repository) ListGoals(agentID string) ([]LearningGoal, error) {
	var goals []LearningGoal
	if err := r.db.Where("agent_id = ?", agentID).Order("created_at").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}
