package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-progression/internal/auth"
	"go-progression/internal/config"
	"go-progression/internal/patternstore"
)

// SetupRouter wires every endpoint. The pattern store is optional and
// may be nil; pattern and profile endpoints then work from the request
// payload alone.
func SetupRouter(cfg *config.Config, rdb *redis.Client, patterns *patternstore.Repository) *gin.Engine {
	r := gin.Default()
	subpath := cfg.Server.Subpath // e.g. "/progression" or any custom path, always starts with '/'

	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))

		// Setup: only if no users
		group.POST("/setup", SetupHandler())

		// Auth
		group.POST("/auth/login", LoginHandler(cfg, rdb))
		group.POST("/auth/logout", auth.AuthMiddleware(cfg, rdb, false), LogoutHandler(rdb))
		group.GET("/auth/me", auth.AuthMiddleware(cfg, rdb, false), MeHandler())

		// Achievement catalog (static, no auth needed)
		group.GET("/achievements", AchievementCatalogHandler())

		// --- Agents ---
		group.POST("/agents", auth.AuthMiddleware(cfg, rdb, false), CreateAgentHandler())
		group.GET("/agents", auth.AuthMiddleware(cfg, rdb, false), ListAgentsHandler())
		group.GET("/agents/:id", auth.AuthMiddleware(cfg, rdb, false), GetAgentHandler())

		// --- Progression ---
		group.POST("/agents/:id/interactions", auth.AuthMiddleware(cfg, rdb, false), InteractionHandler(rdb))
		group.POST("/agents/:id/events/:kind", auth.AuthMiddleware(cfg, rdb, false), ActivityEventHandler(rdb))
		group.GET("/agents/:id/progress", auth.AuthMiddleware(cfg, rdb, false), ProgressHandler())
		group.POST("/agents/:id/skills", auth.AuthMiddleware(cfg, rdb, false), AllocateSkillsHandler(rdb))

		// --- Learning ---
		group.POST("/agents/:id/patterns", auth.AuthMiddleware(cfg, rdb, false), DetectPatternsHandler(patterns))
		group.GET("/agents/:id/patterns", auth.AuthMiddleware(cfg, rdb, false), ListPatternsHandler(patterns))
		group.GET("/agents/:id/profile", auth.AuthMiddleware(cfg, rdb, false), ProfileHandler(patterns))

		// --- Planning ---
		group.POST("/agents/:id/goals", auth.AuthMiddleware(cfg, rdb, false), CreateGoalHandler())
		group.GET("/agents/:id/goals", auth.AuthMiddleware(cfg, rdb, false), ListGoalsHandler())
		group.GET("/agents/:id/goals/:goalId/trajectory", auth.AuthMiddleware(cfg, rdb, false), TrajectoryHandler())
		group.POST("/agents/:id/plan", auth.AuthMiddleware(cfg, rdb, false), PlanHandler())

		// --- Progress event WebSocket feed ---
		group.GET("/ws/notifications", WSNotificationsHandler(cfg))
	}
	return r
}
