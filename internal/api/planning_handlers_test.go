package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"go-progression/internal/agent"
	"go-progression/internal/planning"
)

func TestCreateGoalHandler(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	a := createTestAgent(t, "Iris")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/agents/:id/goals", CreateGoalHandler())

	target := time.Now().UTC().Add(30 * 24 * time.Hour)
	w := postJSON(t, r, "/agents/"+a.ID+"/goals", CreateGoalRequest{
		Title:        "Learn about astronomy",
		Category:     "TOPIC_INTEREST",
		CurrentValue: 2,
		TargetValue:  10,
		TargetDate:   &target,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var g agent.LearningGoal
	if err := json.Unmarshal(w.Body.Bytes(), &g); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if g.ID == "" || g.Status != "ACTIVE" {
		t.Errorf("goal should be created ACTIVE with an id, got %+v", g)
	}
	if g.ProgressPercentage != 20 {
		t.Errorf("progress_percentage = %v, want 20", g.ProgressPercentage)
	}
}

func TestCreateGoalHandler_Validation(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	a := createTestAgent(t, "Iris")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/agents/:id/goals", CreateGoalHandler())

	w := postJSON(t, r, "/agents/"+a.ID+"/goals", CreateGoalRequest{TargetValue: 10})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", w.Code)
	}
	w2 := postJSON(t, r, "/agents/"+a.ID+"/goals", CreateGoalRequest{Title: "x", TargetValue: 0})
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero target, got %d", w2.Code)
	}
}

func TestTrajectoryHandler(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	a := createTestAgent(t, "Iris")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/agents/:id/goals", CreateGoalHandler())
	r.GET("/agents/:id/goals/:goalId/trajectory", TrajectoryHandler())

	target := time.Now().UTC().Add(10 * 24 * time.Hour)
	w := postJSON(t, r, "/agents/"+a.ID+"/goals", CreateGoalRequest{
		Title:        "Read five books",
		CurrentValue: 8,
		TargetValue:  10,
		TargetDate:   &target,
	})
	var g agent.LearningGoal
	if err := json.Unmarshal(w.Body.Bytes(), &g); err != nil {
		t.Fatalf("failed to decode goal: %v", err)
	}

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/agents/"+a.ID+"/goals/"+g.ID+"/trajectory", nil)
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w2.Code, w2.Body.String())
	}
	var tr planning.Trajectory
	if err := json.Unmarshal(w2.Body.Bytes(), &tr); err != nil {
		t.Fatalf("failed to decode trajectory: %v", err)
	}
	if tr.GoalID != g.ID {
		t.Errorf("trajectory goal_id = %s, want %s", tr.GoalID, g.ID)
	}
	if tr.Status == "" {
		t.Errorf("trajectory should carry a status")
	}
}

func TestTrajectoryHandler_UnknownGoal(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	a := createTestAgent(t, "Iris")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/agents/:id/goals/:goalId/trajectory", TrajectoryHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/agents/"+a.ID+"/goals/ghost/trajectory", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPlanHandler_EmptyBody(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	a := createTestAgent(t, "Iris")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/agents/:id/plan", PlanHandler())

	w := postJSON(t, r, "/agents/"+a.ID+"/plan", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var plan planning.FuturePlan
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatalf("failed to decode plan: %v", err)
	}
	if plan.Horizon != planning.HorizonShortTerm {
		t.Errorf("default horizon = %s, want short_term", plan.Horizon)
	}
	if plan.AgentID != a.ID {
		t.Errorf("plan agent = %s, want %s", plan.AgentID, a.ID)
	}
	if plan.Summary.BiggestRisk == "" {
		t.Errorf("summary should carry the fallback risk line")
	}
}

func TestPlanHandler_HorizonFromBody(t *testing.T) {
	setupTestDB(t)
	resetTables(t)
	a := createTestAgent(t, "Iris")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/agents/:id/plan", PlanHandler())

	w := postJSON(t, r, "/agents/"+a.ID+"/plan", PlanRequest{Horizon: planning.HorizonImmediate})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var plan planning.FuturePlan
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatalf("failed to decode plan: %v", err)
	}
	if plan.Horizon != planning.HorizonImmediate {
		t.Errorf("horizon = %s, want immediate", plan.Horizon)
	}
	if !plan.ValidUntil.After(plan.GeneratedAt) {
		t.Errorf("valid_until should be after generated_at")
	}
}
