package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Tracker *services.TrackerService
	Goals   *services.GoalService
	Hub     *services.RealtimeHub
}

func NewMealController(tracker *services.TrackerService, goals *services.GoalService, hub *services.RealtimeHub) *MealController {
	return &MealController{Tracker: tracker, Goals: goals, Hub: hub}
}

func (m *MealController) LogMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	meal, err := m.Tracker.LogMeal(c.Request.Context(), userID, input)
	if err != nil {
		respondErr(c, err)
		return
	}
	go pushDashboard(m.Goals, m.Hub, userID)
	c.JSON(http.StatusCreated, meal)
}

// ListMeals returns the meals for one day, default today.
func (m *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")
	meals, err := m.Tracker.MealsForDay(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (m *MealController) DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	userID := c.GetUint("userID")

	if err := m.Tracker.DeleteMeal(c.Request.Context(), userID, uint(id)); err != nil {
		respondErr(c, err)
		return
	}
	go pushDashboard(m.Goals, m.Hub, userID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// pushDashboard recomputes today's dashboard and fans it out to the
// user's open sockets. Failures are dropped; a socket push is best
// effort and the next poll will catch up.
func pushDashboard(goals *services.GoalService, hub *services.RealtimeHub, userID uint) {
	if goals == nil || hub == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	dash, err := goals.GoalsAndProgress(ctx, userID, time.Now())
	if err != nil {
		return
	}
	hub.PushDashboard(userID, gin.H{"type": "dashboard", "data": dash})
}
