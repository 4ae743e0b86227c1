package controllers

import (
	"net/http"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/config"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	users   *services.UserService
	health  *services.HealthService
	summary *services.SummaryService
	cfg     *config.Config
}

func NewHealthController(users *services.UserService, health *services.HealthService, summary *services.SummaryService, cfg *config.Config) *HealthController {
	return &HealthController{users: users, health: health, summary: summary, cfg: cfg}
}

func (ctl *HealthController) LogRecord(c *gin.Context) {
	phone := c.MustGet("phone").(string)

	var input services.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.FindByPhone(phone)
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := ctl.health.LogRecord(user, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Health metrics logged successfully!",
		"record":  record,
	})
}

func (ctl *HealthController) Summary(c *gin.Context) {
	phone := c.MustGet("phone").(string)

	user, err := ctl.users.FindByPhone(phone)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := ctl.summary.HealthSummary(user, ctl.cfg.WaterGoalML, ctl.cfg.StepGoal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
