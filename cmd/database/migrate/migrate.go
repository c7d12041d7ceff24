package migration

import (
	"Fridge-Elf-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Fridge{}); err != nil {
		log.Fatalf("Error migrating fridge database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FridgeCompartment{}); err != nil {
		log.Fatalf("Error migrating fridge compartment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NotificationSettings{}); err != nil {
		log.Fatalf("Error migrating notification settings database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
