package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmbook/farmbook/recommender"
	"github.com/farmbook/farmbook/utils"
)

// CropController exposes the crop recommendation scoring call.
type CropController struct {
	rec *recommender.Recommender
}

// NewCropController creates a CropController. rec may be nil when the model
// artifact is absent; the endpoint then answers 503.
func NewCropController(rec *recommender.Recommender) *CropController {
	return &CropController{rec: rec}
}

// Recommend scores seven soil/climate measurements and returns the best crop.
func (c *CropController) Recommend(ctx *gin.Context) {
	if c.rec == nil {
		utils.Error(ctx, http.StatusServiceUnavailable, "recommendation model unavailable")
		return
	}

	var req struct {
		Nitrogen    *float64 `json:"nitrogen" binding:"required"`
		Phosphorus  *float64 `json:"phosphorus" binding:"required"`
		Potassium   *float64 `json:"potassium" binding:"required"`
		Temperature *float64 `json:"temperature" binding:"required"`
		Humidity    *float64 `json:"humidity" binding:"required"`
		PH          *float64 `json:"ph" binding:"required"`
		Rainfall    *float64 `json:"rainfall" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "All seven features are required")
		return
	}

	features := []float64{
		*req.Nitrogen,
		*req.Phosphorus,
		*req.Potassium,
		*req.Temperature,
		*req.Humidity,
		*req.PH,
		*req.Rainfall,
	}

	classID, crop, err := c.rec.Recommend(features)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"class_id":      classID,
		"crop":          crop,
		"model_version": c.rec.Version(),
	})
}
