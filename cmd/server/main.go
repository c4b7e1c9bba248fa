package main

import (
	"fmt"
	"log"
	"os"

	"go-progression/internal/api"
	"go-progression/internal/config"
	"go-progression/internal/db"
	"go-progression/internal/patternstore"
	redisdb "go-progression/internal/redis"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := db.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	rdb := redisdb.NewClient(cfg)

	var patterns *patternstore.Repository
	if cfg.PatternStore.Enabled {
		patterns, err = patternstore.NewRepository(
			cfg.PatternStore.URL,
			cfg.PatternStore.Collection,
			cfg.PatternStore.APIKey,
		)
		if err != nil {
			// The server still runs; pattern accumulation is just off
			log.Printf("[Main] WARNING: Pattern store unavailable: %v", err)
			patterns = nil
		} else {
			log.Printf("[Main] Pattern store connected (collection: %s)", cfg.PatternStore.Collection)
		}
	} else {
		log.Printf("[Main] Pattern store disabled in config")
	}

	r := api.SetupRouter(cfg, rdb, patterns)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
