package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Goals   *services.GoalService
	Tracker *services.TrackerService
}

func NewDashboardController(goals *services.GoalService, tracker *services.TrackerService) *DashboardController {
	return &DashboardController{Goals: goals, Tracker: tracker}
}

// GetDashboard returns goals, the day's summary and capped progress
// ratios. ?date=YYYY-MM-DD selects a past day; default is today.
func (d *DashboardController) GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	date, err := d.Goals.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}

	dash, err := d.Goals.GoalsAndProgress(c.Request.Context(), userID, date)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

func (d *DashboardController) UpdateGoals(c *gin.Context) {
	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	goal, err := d.Goals.UpsertGoal(c.Request.Context(), userID, input)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GetRecent is the combined feed for the dashboard cards.
func (d *DashboardController) GetRecent(c *gin.Context) {
	userID := c.GetUint("userID")
	recent, err := d.Tracker.Recent(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, recent)
}
