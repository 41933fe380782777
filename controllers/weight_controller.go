package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	Tracker *services.TrackerService
}

func NewWeightController(tracker *services.TrackerService) *WeightController {
	return &WeightController{Tracker: tracker}
}

func (w *WeightController) LogWeight(c *gin.Context) {
	var input services.WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	record, err := w.Tracker.LogWeight(c.Request.Context(), userID, input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (w *WeightController) ListWeights(c *gin.Context) {
	userID := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	records, err := w.Tracker.WeightHistory(c.Request.Context(), userID, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weights": records})
}
