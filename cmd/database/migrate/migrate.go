package migration

import (
	"fmt"
	"log"

	"Track2Give-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptScan{}); err != nil {
		log.Fatalf("Error migrating receipt scan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ImpactStats{}); err != nil {
		log.Fatalf("Error migrating impact stats database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SharedItem{}); err != nil {
		log.Fatalf("Error migrating shared item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
