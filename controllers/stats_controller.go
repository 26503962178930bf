package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farmbook/farmbook/models"
)

// StatsController provides aggregate statistics such as counts and daily views.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns aggregate counters for the whole application.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var userCount int64
	var journalCount int64
	var postCount int64
	var commentCount int64
	var dailyViews int64

	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		// Fallback to 0 instead of failing the whole endpoint
		userCount = 0
	}
	if err := s.db.Model(&models.FarmJournal{}).Count(&journalCount).Error; err != nil {
		journalCount = 0
	}
	if err := s.db.Model(&models.Post{}).Count(&postCount).Error; err != nil {
		postCount = 0
	}
	if err := s.db.Model(&models.Comment{}).Count(&commentCount).Error; err != nil {
		commentCount = 0
	}

	// Daily views: sum of today's page views across all paths.
	// Use string date equality to avoid timezone/type mismatches with DATE column.
	today := time.Now().In(time.Local).Format("2006-01-02")
	if err := s.db.Model(&models.PageView{}).
		Where("date = ?", today).
		Select("COALESCE(SUM(count),0)").
		Scan(&dailyViews).Error; err != nil {
		dailyViews = 0
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user_count":    userCount,
		"journal_count": journalCount,
		"post_count":    postCount,
		"comment_count": commentCount,
		"daily_views":   dailyViews,
	})
}
