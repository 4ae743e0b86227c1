package controllers

import (
	"net/http"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/config"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"

	"github.com/gin-gonic/gin"
)

// TrackerController serves the water and step logging endpoints.
type TrackerController struct {
	users *services.UserService
	water *services.WaterService
	steps *services.StepService
	cfg   *config.Config
}

func NewTrackerController(users *services.UserService, water *services.WaterService, steps *services.StepService, cfg *config.Config) *TrackerController {
	return &TrackerController{users: users, water: water, steps: steps, cfg: cfg}
}

func (ctl *TrackerController) LogWater(c *gin.Context) {
	phone := c.MustGet("phone").(string)

	var req struct {
		Amount int    `json:"amount"`
		Note   string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.FindByPhone(phone)
	if err != nil {
		respondError(c, err)
		return
	}

	progress, err := ctl.water.Log(user, req.Amount, req.Note, ctl.cfg.WaterGoalML)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Water intake logged successfully",
		"daily_total": progress.Total,
		"goal":        progress.Goal,
		"percentage":  progress.Percentage,
	})
}

func (ctl *TrackerController) WaterToday(c *gin.Context) {
	phone := c.MustGet("phone").(string)

	user, err := ctl.users.FindByPhone(phone)
	if err != nil {
		respondError(c, err)
		return
	}

	progress, err := ctl.water.TodayProgress(user.ID, ctl.cfg.WaterGoalML)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily_total": progress.Total,
		"goal":        progress.Goal,
		"percentage":  progress.Percentage,
		"remaining":   progress.Remaining,
	})
}

func (ctl *TrackerController) LogSteps(c *gin.Context) {
	phone := c.MustGet("phone").(string)

	var req struct {
		Steps      int     `json:"steps"`
		DistanceKm float64 `json:"distance_km"`
		Calories   float64 `json:"calories"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.FindByPhone(phone)
	if err != nil {
		respondError(c, err)
		return
	}

	progress, err := ctl.steps.Log(user, req.Steps, req.DistanceKm, req.Calories, ctl.cfg.StepGoal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Steps logged successfully",
		"daily_total": progress.Total,
		"goal":        progress.Goal,
		"percentage":  progress.Percentage,
	})
}

func (ctl *TrackerController) StepsToday(c *gin.Context) {
	phone := c.MustGet("phone").(string)

	user, err := ctl.users.FindByPhone(phone)
	if err != nil {
		respondError(c, err)
		return
	}

	progress, err := ctl.steps.TodayProgress(user.ID, ctl.cfg.StepGoal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily_total": progress.Total,
		"goal":        progress.Goal,
		"percentage":  progress.Percentage,
		"remaining":   progress.Remaining,
	})
}
