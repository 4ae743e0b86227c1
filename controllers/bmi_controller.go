package controllers

import (
	"net/http"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/utils"

	"github.com/gin-gonic/gin"
)

type BMIController struct{}

func NewBMIController() *BMIController { return &BMIController{} }

// Calculate is a pure computation; nothing is persisted here.
func (ctl *BMIController) Calculate(c *gin.Context) {
	var req struct {
		Height float64 `json:"height"` // cm
		Weight float64 `json:"weight"` // kg
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Height <= 0 || req.Weight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Height and weight are required"})
		return
	}

	bmi, err := utils.CalculateBMI(req.Height, req.Weight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi":           bmi,
		"category":      utils.BMICategory(bmi),
		"healthy_range": utils.HealthyBMIRange,
	})
}
