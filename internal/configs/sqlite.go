package config

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "task-manager-api.com/task-manager-api/internal/models"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.SetupJoinTable(&model.Task{}, "Tags", &model.TaskTag{}); err != nil {
		log.Fatalf("join table setup failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Tag{},
		&model.Task{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
