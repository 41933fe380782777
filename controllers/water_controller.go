package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	Tracker *services.TrackerService
	Goals   *services.GoalService
	Hub     *services.RealtimeHub
}

func NewWaterController(tracker *services.TrackerService, goals *services.GoalService, hub *services.RealtimeHub) *WaterController {
	return &WaterController{Tracker: tracker, Goals: goals, Hub: hub}
}

func (w *WaterController) LogWater(c *gin.Context) {
	var input services.WaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	record, err := w.Tracker.LogWater(c.Request.Context(), userID, input)
	if err != nil {
		respondErr(c, err)
		return
	}
	go pushDashboard(w.Goals, w.Hub, userID)
	c.JSON(http.StatusCreated, record)
}

func (w *WaterController) ListWater(c *gin.Context) {
	userID := c.GetUint("userID")
	records, err := w.Tracker.WaterForDay(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"water": records})
}
