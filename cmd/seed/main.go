package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mindease/mindease-backend/internal/app"
	"github.com/mindease/mindease-backend/internal/data/db"
	"github.com/mindease/mindease-backend/internal/data/seed"
	"github.com/mindease/mindease-backend/internal/platform/logger"
	"github.com/mindease/mindease-backend/internal/platform/shutdown"
)

func main() {
	var dropArticles bool
	flag.BoolVar(&dropArticles, "drop-articles", false, "delete all articles and likes before seeding")
	flag.Parse()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	cfg := app.LoadConfig(log)
	store, err := db.Open(log, cfg.DB)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	if err := store.AutoMigrateAll(); err != nil {
		log.Error("automigrate", "error", err)
		os.Exit(1)
	}

	doc, err := seed.Load()
	if err != nil {
		log.Error("load seed", "error", err)
		os.Exit(1)
	}
	res, err := seed.Run(ctx, store.DB(), log, doc, seed.Options{DropArticles: dropArticles})
	if err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("seeded %d therapists and %d articles (dropped %d)\n", res.Therapists, res.Articles, res.ArticlesDropped)
}
