package controllers

import (
	"net/http"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"

	"github.com/gin-gonic/gin"
)

type WellnessController struct {
	wellness *services.WellnessService
}

func NewWellnessController(wellness *services.WellnessService) *WellnessController {
	return &WellnessController{wellness: wellness}
}

func (ctl *WellnessController) Tips(c *gin.Context) {
	advice, err := ctl.wellness.GetTips(c.Request.Context(), c.Query("topic"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

func (ctl *WellnessController) DietPlan(c *gin.Context) {
	plan, err := ctl.wellness.GetDietPlan(c.Request.Context(), c.Query("goal"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
