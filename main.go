package main

import (
	"os"
	"time"

	"github.com/farmbook/farmbook/config"
	"github.com/farmbook/farmbook/models"
	"github.com/farmbook/farmbook/recommender"
	"github.com/farmbook/farmbook/routes"
	"github.com/farmbook/farmbook/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.FarmJournal{},
		&models.Post{},
		&models.Comment{},
		&models.PageView{},
	)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		utils.Sugar.Fatalf("failed to create upload directory: %v", err)
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	// The recommendation endpoint degrades to 503 when the artifact is absent.
	rec, err := recommender.Load(cfg.CropModelPath)
	if err != nil {
		utils.Sugar.Warnf("crop model unavailable: %v", err)
		rec = nil
	} else {
		utils.Sugar.Infof("loaded crop model %s", rec.Version())
	}

	r := routes.SetupRouter(db, tokens, rec)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
