package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-progression/internal/agent"
	"go-progression/internal/config"
	"go-progression/internal/user"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return err
	}

	// Operator accounts
	if err := db.AutoMigrate(&user.User{}); err != nil {
		return err
	}

	// Agent progression records
	if err := db.AutoMigrate(&agent.Agent{}, &agent.Stats{}, &agent.Progress{}, &agent.LearningGoal{}); err != nil {
		return err
	}

	DB = db
	log.Printf("Database connected and migrated")
	return nil
}
