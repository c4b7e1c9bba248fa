package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-progression/internal/agent"
	"go-progression/internal/db"
	"go-progression/internal/planning"
)

type CreateGoalRequest struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Category     string               `json:"category"`
	CurrentValue float64              `json:"current_value"`
	TargetValue  float64              `json:"target_value"`
	TargetDate   *time.Time           `json:"target_date,omitempty"`
	Milestones   []planning.Milestone `json:"milestones,omitempty"`
}

// POST /agents/:id/goals
func CreateGoalHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID := c.Param("id")
		var req CreateGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Goal title required"}})
			return
		}
		if req.TargetValue <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Target value must be positive"}})
			return
		}

		repo := agent.NewRepository(db.DB)
		if _, err := repo.GetAgent(agentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Agent not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}

		g := agent.LearningGoal{
			AgentID:      agentID,
			Title:        req.Title,
			Description:  req.Description,
			Category:     req.Category,
			CurrentValue: req.CurrentValue,
			TargetValue:  req.TargetValue,
			TargetDate:   req.TargetDate,
		}
		g.ProgressPercentage = req.CurrentValue / req.TargetValue * 100
		g.SetMilestones(req.Milestones)
		if err := repo.CreateGoal(&g); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to create goal"}})
			return
		}
		c.JSON(http.StatusCreated, g)
	}
}

// GET /agents/:id/goals
func ListGoalsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		repo := agent.NewRepository(db.DB)
		goals, err := repo.ListGoals(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"goals": goals})
	}
}

// GET /agents/:id/goals/:goalId/trajectory
// The trajectory is recomputed on demand and never stored.
func TrajectoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		repo := agent.NewRepository(db.DB)
		g, err := repo.GetGoal(c.Param("id"), c.Param("goalId"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Goal not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		trajectory := planning.AnalyzeGoalTrajectory(g.ToPlanning(), time.Now().UTC())
		c.JSON(http.StatusOK, trajectory)
	}
}

type PlanRequest struct {
	Horizon        planning.Horizon        `json:"horizon"`
	EmotionalState planning.EmotionalState `json:"emotional_state"`
	RecentEvents   []planning.Event        `json:"recent_events"`
}

// POST /agents/:id/plan
// Synthesizes a fresh plan on every call. The emotional snapshot and
// recent events come from the chat collaborator via the request body;
// omitting them yields a plan built from goals alone.
func PlanHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID := c.Param("id")
		var req PlanRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
				return
			}
		}
		if req.Horizon == "" {
			req.Horizon = planning.Horizon(c.Query("horizon"))
		}
		if req.Horizon == "" {
			req.Horizon = planning.HorizonShortTerm
		}

		repo := agent.NewRepository(db.DB)
		if _, err := repo.GetAgent(agentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Agent not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		stored, err := repo.ListGoals(agentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		goals := make([]planning.Goal, 0, len(stored))
		for i := range stored {
			goals = append(goals, stored[i].ToPlanning())
		}

		plan := planning.GenerateFuturePlan(agentID, goals, req.EmotionalState, req.RecentEvents, req.Horizon, time.Now().UTC())
		c.JSON(http.StatusOK, plan)
	}
}
