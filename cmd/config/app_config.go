package config

import (
	"os"
	"time"

	"Track2Give-Backend/internal/api/handlers"
	"Track2Give-Backend/internal/api/routes"
	"Track2Give-Backend/internal/middleware"
	"Track2Give-Backend/internal/utils"
	"Track2Give-Backend/internal/utils/storage"
	"Track2Give-Backend/pkg/carbon"
	"Track2Give-Backend/pkg/community"
	"Track2Give-Backend/pkg/food"
	"Track2Give-Backend/pkg/impact"
	"Track2Give-Backend/pkg/jwt"
	"Track2Give-Backend/pkg/leaderboard"
	"Track2Give-Backend/pkg/user"

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
		TimeZone:   "UTC",
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
	foodRepository := food.NewFoodRepository(db)
	impactRepository := impact.NewImpactRepository(db)
	carbonRepository := carbon.NewCarbonRepository(db)
	communityRepository := community.NewCommunityRepository(db)
	leaderboardRepository := leaderboard.NewLeaderboardRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	impactService := impact.NewImpactService(impactRepository)
	foodService := food.NewFoodService(foodRepository, impactService, s3)
	carbonService := carbon.NewCarbonService(carbonRepository)
	communityService := community.NewCommunityService(
		communityRepository,
		foodRepository,
		userRepository,
		impactService,
	)
	leaderboardService := leaderboard.NewLeaderboardService(leaderboardRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	communityHandler := handlers.NewCommunityHandler(communityService, validator)
	carbonHandler := handlers.NewCarbonHandler(carbonService, impactService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		FoodHandler:        foodHandler,
		CommunityHandler:   communityHandler,
		CarbonHandler:      carbonHandler,
		LeaderboardHandler: leaderboardHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
