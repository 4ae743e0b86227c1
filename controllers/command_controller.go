package controllers

import (
	"net/http"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/config"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"

	"github.com/gin-gonic/gin"
)

// CommandController is the free-text dispatch surface used by the
// messaging-platform agent over HTTP.
type CommandController struct {
	commands *services.CommandService
	cfg      *config.Config
}

func NewCommandController(commands *services.CommandService, cfg *config.Config) *CommandController {
	return &CommandController{commands: commands, cfg: cfg}
}

// Dispatch routes {message|command, ...params} to an intent handler.
// An authenticated caller's phone number wins over one in the body.
func (ctl *CommandController) Dispatch(c *gin.Context) {
	var req services.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No JSON data received"})
		return
	}

	if phone, ok := c.Get("phone"); ok {
		req.PhoneNumber = phone.(string)
	}

	reply, err := ctl.commands.Dispatch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// Validate returns the configured owner identifier; the agent host calls
// this to authenticate the server.
func (ctl *CommandController) Validate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":         "HealthGennie",
		"owner_phone": ctl.cfg.OwnerPhone,
		"status":      "MCP connected",
	})
}
