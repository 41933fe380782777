package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Tracker *services.TrackerService
	Goals   *services.GoalService
	Hub     *services.RealtimeHub
}

func NewExerciseController(tracker *services.TrackerService, goals *services.GoalService, hub *services.RealtimeHub) *ExerciseController {
	return &ExerciseController{Tracker: tracker, Goals: goals, Hub: hub}
}

func (e *ExerciseController) LogExercise(c *gin.Context) {
	var input services.ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	exercise, err := e.Tracker.LogExercise(c.Request.Context(), userID, input)
	if err != nil {
		respondErr(c, err)
		return
	}
	go pushDashboard(e.Goals, e.Hub, userID)
	c.JSON(http.StatusCreated, exercise)
}

func (e *ExerciseController) ListExercises(c *gin.Context) {
	userID := c.GetUint("userID")
	exercises, err := e.Tracker.ExercisesForDay(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

func (e *ExerciseController) DeleteExercise(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	userID := c.GetUint("userID")

	if err := e.Tracker.DeleteExercise(c.Request.Context(), userID, uint(id)); err != nil {
		respondErr(c, err)
		return
	}
	go pushDashboard(e.Goals, e.Hub, userID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
