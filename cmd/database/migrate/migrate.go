package migration

import (
	entities2 "eng-backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities2.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.UserPreference{}); err != nil {
		log.Fatalf("Error migrating user preference database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities2.ProgramTemplate{}); err != nil {
		log.Fatalf("Error migrating program template database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Workout{}); err != nil {
		log.Fatalf("Error migrating workout database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.AssignedPlan{}); err != nil {
		log.Fatalf("Error migrating assigned plan database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities2.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.NutritionPlan{}); err != nil {
		log.Fatalf("Error migrating nutrition plan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.Meal{}); err != nil {
		log.Fatalf("Error migrating meal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.MealFoodItem{}); err != nil {
		log.Fatalf("Error migrating meal food item database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities2.StepGoal{}); err != nil {
		log.Fatalf("Error migrating step goal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.StepEntry{}); err != nil {
		log.Fatalf("Error migrating step entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.WaterGoal{}); err != nil {
		log.Fatalf("Error migrating water goal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.WaterEntry{}); err != nil {
		log.Fatalf("Error migrating water entry database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities2.CheckIn{}); err != nil {
		log.Fatalf("Error migrating check in database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.BodyMetric{}); err != nil {
		log.Fatalf("Error migrating body metric database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
