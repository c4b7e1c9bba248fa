package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-progression/internal/agent"
	"go-progression/internal/db"
)

type CreateAgentRequest struct {
	Name       string  `json:"name"`
	Persona    string  `json:"persona"`
	Creativity float64 `json:"creativity"`
}

// POST /agents
func CreateAgentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAgentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Agent name required"}})
			return
		}
		repo := agent.NewRepository(db.DB)
		a, err := repo.CreateAgent(req.Name, req.Persona, req.Creativity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to create agent"}})
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

// GET /agents
func ListAgentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		repo := agent.NewRepository(db.DB)
		agents, err := repo.ListAgents()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"agents": agents})
	}
}

// GET /agents/:id
func GetAgentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		repo := agent.NewRepository(db.DB)
		a, err := repo.GetAgent(c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Agent not found"}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "DB error"}})
			return
		}
		c.JSON(http.StatusOK, a)
	}
}
