package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"go-progression/internal/agent"
	"go-progression/internal/db"
	"go-progression/internal/progression"
	redisdb "go-progression/internal/redis"
)

// lockAgent serializes mutating handlers per agent. Without redis (unit
// tests) it degrades to a no-op.
func lockAgent(c *gin.Context, rdb *redis.Client, agentID string) (func(), bool) {
	if rdb == nil {
		return func() {}, true
	}
	release, err := redisdb.AcquireAgentLock(c.Request.Context(), rdb, agentID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"message": "Agent is busy, try again"}})
		return nil, false
	}
	return release, true
}

// runAchievementCycle re-evaluates requirements against the updated
// stats and credits any newly satisfied achievements.
func runAchievementCycle(rec *agent.SnapshotRecord, now time.Time) progression.UnlockResult {
	engine := rec.Progress.ToEngine()
	snapshot := rec.Stats.Snapshot(engine.Level)
	newly := progression.CheckAchievements(snapshot, engine)
	result := progression.UnlockAchievements(engine, newly, now)
	rec.Progress.ApplyEngine(result.Progress)
	return result
}

func progressionResponse(rec *agent.SnapshotRecord, result progression.UnlockResult) gin.H {
	return gin.H{
		"stats":      rec.Stats,
		"progress":   result.Progress,
		"unlocked":   result.Unlocked,
		"xp_gained":  result.XPGained,
		"leveled_up": result.LeveledUp,
		"old_level":  result.OldLevel,
		"new_level":  result.NewLevel,
	}
}

// POST /agents/:id/interactions
func InteractionHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID := c.Param("id")
		var req agent.Interaction
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}

		release, ok := lockAgent(c, rdb, agentID)
		if !ok {
			return
		}
		defer release()

		repo := agent.NewRepository(db.DB)
		rec, err := repo.LoadSnapshot(agentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Agent not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}

		now := time.Now().UTC()
		agent.ApplyInteraction(&rec.Stats, req, now)
		result := runAchievementCycle(rec, now)

		if err := repo.SaveStats(&rec.Stats); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save stats"}})
			return
		}
		if err := repo.SaveProgress(&rec.Progress); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save progress"}})
			return
		}

		notifyProgress(agentID, result)
		c.JSON(http.StatusOK, progressionResponse(rec, result))
	}
}

type ActivityEventRequest struct {
	Length int `json:"length"` // conversation_end only
}

// POST /agents/:id/events/:kind
func ActivityEventHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID := c.Param("id")
		kind := c.Param("kind")

		var req ActivityEventRequest
		_ = c.ShouldBindJSON(&req) // body optional for most kinds

		release, ok := lockAgent(c, rdb, agentID)
		if !ok {
			return
		}
		defer release()

		repo := agent.NewRepository(db.DB)
		rec, err := repo.LoadSnapshot(agentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Agent not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}

		now := time.Now().UTC()
		switch kind {
		case "dream":
			agent.RecordDream(&rec.Stats, now)
		case "creative_work":
			agent.RecordCreativeWork(&rec.Stats, now)
		case "journal_entry":
			agent.RecordJournalEntry(&rec.Stats, now)
		case "relationship":
			agent.RecordRelationship(&rec.Stats, now)
		case "conversation_start":
			agent.StartConversation(&rec.Stats, now)
		case "conversation_end":
			agent.UpdateLongestConversation(&rec.Stats, req.Length, now)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Unknown event kind: " + kind}})
			return
		}

		result := runAchievementCycle(rec, now)

		if err := repo.SaveStats(&rec.Stats); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save stats"}})
			return
		}
		if err := repo.SaveProgress(&rec.Progress); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save progress"}})
			return
		}

		notifyProgress(agentID, result)
		c.JSON(http.StatusOK, progressionResponse(rec, result))
	}
}

// GET /agents/:id/progress
func ProgressHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID := c.Param("id")
		repo := agent.NewRepository(db.DB)
		rec, err := repo.LoadSnapshot(agentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Agent not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}

		engine := rec.Progress.ToEngine()
		c.JSON(http.StatusOK, gin.H{
			"agent_id":       agentID,
			"progress":       engine,
			"level_progress": progression.ProgressToNextLevel(engine.ExperiencePoints),
			"stats":          rec.Stats,
		})
	}
}

type AllocateSkillsRequest struct {
	Skill  string `json:"skill"`
	Points int    `json:"points"`
}

// POST /agents/:id/skills
func AllocateSkillsHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID := c.Param("id")
		var req AllocateSkillsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}

		release, ok := lockAgent(c, rdb, agentID)
		if !ok {
			return
		}
		defer release()

		repo := agent.NewRepository(db.DB)
		rec, err := repo.LoadSnapshot(agentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Agent not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}

		engine := rec.Progress.ToEngine()
		updated, err := progression.AllocateSkillPoints(engine, req.Skill, req.Points)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
			return
		}
		rec.Progress.ApplyEngine(updated)
		if err := repo.SaveProgress(&rec.Progress); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to save progress"}})
			return
		}

		log.Printf("[Progression] Agent %s allocated %d points to %s", agentID, req.Points, req.Skill)
		c.JSON(http.StatusOK, gin.H{"progress": updated})
	}
}

// GET /achievements
func AchievementCatalogHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"achievements": progression.Catalog()})
	}
}
