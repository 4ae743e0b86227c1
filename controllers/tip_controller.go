package controllers

import (
	"net/http"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"

	"github.com/gin-gonic/gin"
)

type TipController struct {
	tips *services.TipService
}

func NewTipController(tips *services.TipService) *TipController {
	return &TipController{tips: tips}
}

// Generate returns a random health tip, seeding the catalog on first use.
func (ctl *TipController) Generate(c *gin.Context) {
	tip, err := ctl.tips.Random()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tip": gin.H{
			"title":    tip.Title,
			"content":  tip.Content,
			"category": tip.Category,
		},
		"share_text": services.ShareText(tip),
	})
}

// Share bumps the tip's share counter and returns the public link.
func (ctl *TipController) Share(c *gin.Context) {
	slug := c.Param("slug")

	tip, link, err := ctl.tips.Share(slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"share_url":   link,
		"share_count": tip.ShareCount,
		"share_text":  services.ShareText(tip),
	})
}
