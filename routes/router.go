package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farmbook/farmbook/config"
	"github.com/farmbook/farmbook/controllers"
	"github.com/farmbook/farmbook/middleware"
	"github.com/farmbook/farmbook/recommender"
	"github.com/farmbook/farmbook/utils"
)

// SetupRouter wires routes, middlewares, and controllers. The route table is
// the external HTTP contract; paths and methods are fixed.
func SetupRouter(db *gorm.DB, tokens *utils.TokenManager, rec *recommender.Recommender) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Record PV after each request
	r.Use(middleware.PageViewRecorder(db))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db, tokens)
	journalController := controllers.NewJournalController(db)
	analyticsController := controllers.NewAnalyticsController(db)
	reportController := controllers.NewReportController(db)
	postController := controllers.NewPostController(db, cfg.UploadDir)
	cropController := controllers.NewCropController(rec)
	statsController := controllers.NewStatsController(db)

	authRequired := middleware.AuthRequired(tokens)

	// Account endpoints; registration and login are rate limited per IP.
	r.POST("/register", middleware.RateLimitMiddleware(), authController.Register)
	r.POST("/login", middleware.RateLimitMiddleware(), authController.Login)
	r.GET("/protected", authRequired, authController.Protected)
	r.DELETE("/account", authRequired, authController.DeleteAccount)

	// Journal ledger and derived views
	r.POST("/journal", authRequired, journalController.CreateEntry)
	r.GET("/journal", authRequired, journalController.ListEntries)
	r.PUT("/journal/:id", authRequired, journalController.UpdateEntry)
	r.DELETE("/journal/:id", authRequired, journalController.DeleteEntry)
	r.GET("/export/pdf", authRequired, reportController.ExportPDF)
	r.GET("/analytics/profit-trend", authRequired, analyticsController.ProfitTrend)
	r.GET("/analytics/crop-comparison", authRequired, analyticsController.CropComparison)
	r.GET("/analytics/cost-breakdown", authRequired, analyticsController.CostBreakdown)

	// Social feed
	r.POST("/posts", authRequired, postController.CreatePost)
	r.GET("/posts", authRequired, postController.ListPosts)
	r.POST("/posts/:id/like", authRequired, postController.LikePost)
	r.POST("/posts/:id/comment", authRequired, postController.CreateComment)

	// Crop recommendation
	r.POST("/crop/recommend", authRequired, cropController.Recommend)

	// Public endpoints
	r.GET("/uploads/:filename", postController.ServeUpload)
	r.GET("/stats", statsController.GetStats)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "route not found")
	})

	return r
}
