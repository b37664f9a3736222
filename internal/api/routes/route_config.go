package routes

import (
	"eng-backend/internal/api/handlers"
	"eng-backend/internal/middleware"
	"eng-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	ProgramHandler   handlers.ProgramHandler
	NutritionHandler handlers.NutritionHandler
	ShoppingHandler  handlers.ShoppingHandler
	GoalsHandler     handlers.GoalsHandler
	CheckInHandler   handlers.CheckInHandler
	MetricsHandler   handlers.MetricsHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Programs()
	c.Nutrition()
	c.Shopping()
	c.Goals()
	c.CheckIns()
	c.Metrics()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/accept-invite", c.UserHandler.AcceptInvite)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Post("/athletes/invite", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.InviteAthlete)
		user.Get("/athletes", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetAthletes)
	}
}

func (c *Config) Programs() {
	programs := c.App.Group("/api/v1/programs", c.Middleware.AuthMiddleware(c.JWTService))
	programs.Post("", c.ProgramHandler.CreateProgram)
	programs.Get("", c.ProgramHandler.GetPrograms)
	programs.Put("/:id", c.ProgramHandler.UpdateProgram)
	programs.Delete("/:id", c.ProgramHandler.DeleteProgram)
	programs.Post("/:id/workouts", c.ProgramHandler.AddWorkout)
	programs.Get("/:id/workouts", c.ProgramHandler.GetWorkouts)

	workouts := c.App.Group("/api/v1/workouts", c.Middleware.AuthMiddleware(c.JWTService))
	workouts.Put("/:id", c.ProgramHandler.UpdateWorkout)
	workouts.Delete("/:id", c.ProgramHandler.DeleteWorkout)

	assignments := c.App.Group("/api/v1/assignments", c.Middleware.AuthMiddleware(c.JWTService))
	assignments.Post("", c.ProgramHandler.AssignPlan)
	assignments.Get("/me", c.ProgramHandler.GetMyAssignment)
}

func (c *Config) Nutrition() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Post("", c.NutritionHandler.CreateFoodItem)
	foodItems.Get("", c.NutritionHandler.GetFoodItems)
	foodItems.Put("/:id", c.NutritionHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.NutritionHandler.DeleteFoodItem)

	plans := c.App.Group("/api/v1/nutrition-plans", c.Middleware.AuthMiddleware(c.JWTService))
	plans.Post("", c.NutritionHandler.CreatePlan)
	plans.Get("", c.NutritionHandler.GetPlans)
	plans.Get("/:id", c.NutritionHandler.GetPlanDetail)
	plans.Put("/:id", c.NutritionHandler.UpdatePlan)
	plans.Delete("/:id", c.NutritionHandler.DeletePlan)
	plans.Post("/:id/meals", c.NutritionHandler.AddMeal)

	meals := c.App.Group("/api/v1/meals", c.Middleware.AuthMiddleware(c.JWTService))
	meals.Put("/:id", c.NutritionHandler.UpdateMeal)
	meals.Delete("/:id", c.NutritionHandler.DeleteMeal)
	meals.Post("/:id/food-items", c.NutritionHandler.AddMealFoodItem)

	mealFoods := c.App.Group("/api/v1/meal-food-items", c.Middleware.AuthMiddleware(c.JWTService))
	mealFoods.Delete("/:id", c.NutritionHandler.RemoveMealFoodItem)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping", c.Middleware.AuthMiddleware(c.JWTService))
	shopping.Post("/list", c.ShoppingHandler.GenerateShoppingList)
	shopping.Get("/frequencies/suggest", c.ShoppingHandler.SuggestFrequencies)
	shopping.Get("/frequencies", c.ShoppingHandler.GetSavedFrequencies)
	shopping.Put("/frequencies", c.ShoppingHandler.SaveFrequencies)
}

func (c *Config) Goals() {
	goals := c.App.Group("/api/v1/goals", c.Middleware.AuthMiddleware(c.JWTService))
	goals.Put("/steps", c.GoalsHandler.SetStepGoal)
	goals.Post("/steps/entries", c.GoalsHandler.LogSteps)
	goals.Get("/steps/stats", c.GoalsHandler.GetStepStats)
	goals.Put("/water", c.GoalsHandler.SetWaterGoal)
	goals.Post("/water/entries", c.GoalsHandler.LogWater)
	goals.Get("/water/stats", c.GoalsHandler.GetWaterStats)
}

func (c *Config) CheckIns() {
	checkIns := c.App.Group("/api/v1/check-ins", c.Middleware.AuthMiddleware(c.JWTService))
	checkIns.Post("", c.CheckInHandler.SubmitCheckIn)
	checkIns.Get("", c.CheckInHandler.GetMyCheckIns)
	checkIns.Post("/:id/media", c.CheckInHandler.UploadMedia)
	checkIns.Post("/:id/review", c.CheckInHandler.ReviewCheckIn)

	athletes := c.App.Group("/api/v1/athletes", c.Middleware.AuthMiddleware(c.JWTService))
	athletes.Get("/:id/check-ins", c.CheckInHandler.GetAthleteCheckIns)
}

func (c *Config) Metrics() {
	metrics := c.App.Group("/api/v1/metrics", c.Middleware.AuthMiddleware(c.JWTService))
	metrics.Post("", c.MetricsHandler.LogMetric)
	metrics.Get("", c.MetricsHandler.GetMetrics)
	metrics.Delete("/:id", c.MetricsHandler.DeleteMetric)
	metrics.Get("/tdee", c.MetricsHandler.ComputeTDEE)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
