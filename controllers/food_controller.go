package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{Foods: foods}
}

// SearchFoods backs the meal-log autocomplete: GET /api/foods/search?q=apple
func (f *FoodController) SearchFoods(c *gin.Context) {
	foods, err := f.Foods.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}
