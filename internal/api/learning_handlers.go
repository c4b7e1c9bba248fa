package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-progression/internal/agent"
	"go-progression/internal/db"
	"go-progression/internal/learning"
	"go-progression/internal/patternstore"
)

type DetectPatternsRequest struct {
	Messages []learning.Message `json:"messages"`
}

// POST /agents/:id/patterns
// Classifies one conversation transcript. With a pattern store attached
// the detections are merged into the agent's accumulated observations;
// without one the raw detections are returned as-is.
func DetectPatternsHandler(store *patternstore.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID := c.Param("id")
		var req DetectPatternsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
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

		now := time.Now().UTC()
		detected := learning.DetectPatternsFromConversation(req.Messages, agentID, now)

		if store != nil {
			merged := make([]learning.Pattern, 0, len(detected))
			for _, p := range detected {
				m, err := store.Record(c.Request.Context(), p)
				if err != nil {
					log.Printf("[Learning] Failed to store pattern %s/%s: %v", agentID, p.Type, err)
					merged = append(merged, p)
					continue
				}
				merged = append(merged, m)
			}
			detected = merged
		}

		c.JSON(http.StatusOK, gin.H{"patterns": detected})
	}
}

// GET /agents/:id/patterns
func ListPatternsHandler(store *patternstore.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{"message": "Pattern store not configured"}})
			return
		}
		patterns, err := store.ListByAgent(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Pattern store error"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"patterns": patterns})
	}
}

// GET /agents/:id/profile
// Aggregates the accumulated patterns into the learning profile. With
// no pattern store the profile still renders from the creativity trait
// alone.
func ProfileHandler(store *patternstore.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID := c.Param("id")
		repo := agent.NewRepository(db.DB)
		a, err := repo.GetAgent(agentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Agent not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}

		var patterns []learning.Pattern
		if store != nil {
			patterns, err = store.ListByAgent(c.Request.Context(), agentID)
			if err != nil {
				log.Printf("[Learning] Pattern listing failed for %s: %v", agentID, err)
				patterns = nil
			}
		}

		now := time.Now().UTC()
		adaptations := learning.DeriveAdaptations(agentID, patterns, now)
		profile := learning.CreateLearningProfile(agentID, a.Creativity, patterns, adaptations, now)

		c.JSON(http.StatusOK, gin.H{
			"profile":     profile,
			"adaptations": adaptations,
		})
	}
}
