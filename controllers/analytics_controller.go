package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farmbook/farmbook/analytics"
	"github.com/farmbook/farmbook/models"
	"github.com/farmbook/farmbook/utils"
)

// AnalyticsController serves derived views over the caller's journal entries.
type AnalyticsController struct {
	db *gorm.DB
}

// NewAnalyticsController creates a new AnalyticsController instance.
func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{db: db}
}

// ProfitTrend returns (sowing_date, profit) pairs ascending by sowing date.
func (a *AnalyticsController) ProfitTrend(ctx *gin.Context) {
	entries, ok := a.loadEntries(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, analytics.ProfitTrend(entries))
}

// CropComparison returns profit summed per crop in first-seen order.
func (a *AnalyticsController) CropComparison(ctx *gin.Context) {
	entries, ok := a.loadEntries(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, analytics.CropComparison(entries))
}

// CostBreakdown returns expenses summed per crop in first-seen order.
func (a *AnalyticsController) CostBreakdown(ctx *gin.Context) {
	entries, ok := a.loadEntries(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, analytics.CostBreakdown(entries))
}

func (a *AnalyticsController) loadEntries(ctx *gin.Context) ([]models.FarmJournal, bool) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	var entries []models.FarmJournal
	if err := a.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load journal entries")
		return nil, false
	}
	return entries, true
}
