package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SleepController struct {
	Tracker *services.TrackerService
	Goals   *services.GoalService
	Hub     *services.RealtimeHub
}

func NewSleepController(tracker *services.TrackerService, goals *services.GoalService, hub *services.RealtimeHub) *SleepController {
	return &SleepController{Tracker: tracker, Goals: goals, Hub: hub}
}

func (s *SleepController) LogSleep(c *gin.Context) {
	var input services.SleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	sleep, err := s.Tracker.LogSleep(c.Request.Context(), userID, input)
	if err != nil {
		respondErr(c, err)
		return
	}
	go pushDashboard(s.Goals, s.Hub, userID)
	c.JSON(http.StatusCreated, sleep)
}

func (s *SleepController) ListSleep(c *gin.Context) {
	userID := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	records, err := s.Tracker.SleepHistory(c.Request.Context(), userID, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sleep": records})
}
