package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-blog-platform/models"
)

func InitDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Article{}, &models.Comment{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}
