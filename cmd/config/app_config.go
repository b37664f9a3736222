package config

import (
	"eng-backend/internal/api/handlers"
	"eng-backend/internal/api/routes"
	"eng-backend/internal/middleware"
	"eng-backend/internal/utils"
	"eng-backend/internal/utils/storage"
	"eng-backend/pkg/checkin"
	"eng-backend/pkg/goals"
	"eng-backend/pkg/jwt"
	"eng-backend/pkg/metrics"
	"eng-backend/pkg/nutrition"
	"eng-backend/pkg/program"
	"eng-backend/pkg/shopping"
	"eng-backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Australia/Sydney",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	programRepository := program.NewProgramRepository(db)
	nutritionRepository := nutrition.NewNutritionRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	preferenceStore := shopping.NewPreferenceStore(db)
	goalsRepository := goals.NewGoalsRepository(db)
	checkInRepository := checkin.NewCheckInRepository(db)
	metricsRepository := metrics.NewMetricsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	programService := program.NewProgramService(programRepository, userRepository)
	nutritionService := nutrition.NewNutritionService(nutritionRepository)
	shoppingService := shopping.NewShoppingService(shoppingRepository, preferenceStore)
	goalsService := goals.NewGoalsService(goalsRepository)
	checkInService := checkin.NewCheckInService(checkInRepository, userRepository, s3)
	metricsService := metrics.NewMetricsService(metricsRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	programHandler := handlers.NewProgramHandler(programService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	goalsHandler := handlers.NewGoalsHandler(goalsService, validator)
	checkInHandler := handlers.NewCheckInHandler(checkInService, validator)
	metricsHandler := handlers.NewMetricsHandler(metricsService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		ProgramHandler:   programHandler,
		NutritionHandler: nutritionHandler,
		ShoppingHandler:  shoppingHandler,
		GoalsHandler:     goalsHandler,
		CheckInHandler:   checkInHandler,
		MetricsHandler:   metricsHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
