package database

import (
	"log"

	"fittrack/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Progress{},
		&models.Food{},
		&models.FoodLog{},
		&models.DietTarget{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
