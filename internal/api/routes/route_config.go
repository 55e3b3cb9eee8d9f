package routes

import (
	"Track2Give-Backend/internal/api/handlers"
	"Track2Give-Backend/internal/middleware"
	"Track2Give-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	FoodHandler        handlers.FoodHandler
	CommunityHandler   handlers.CommunityHandler
	CarbonHandler      handlers.CarbonHandler
	LeaderboardHandler handlers.LeaderboardHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Community()
	c.Impact()
	c.Leaderboard()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringItems)

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	// Special operations
	foodItems.Post("/:id/consume", c.FoodHandler.ConsumeFoodItem)
	foodItems.Post("/receipt-scan", c.FoodHandler.UploadReceipt)
	foodItems.Get("/receipt-scan/:id", c.FoodHandler.GetReceiptScanResult)
	foodItems.Post("/save-scanned", c.FoodHandler.SaveScannedItems)
}

func (c *Config) Community() {
	community := c.App.Group("/api/v1/community", c.Middleware.AuthMiddleware(c.JWTService))
	community.Post("/share", c.CommunityHandler.ShareFoodItem)
	community.Get("/items", c.CommunityHandler.GetAvailableItems)
	community.Get("/my-shares", c.CommunityHandler.GetMySharedItems)
	community.Post("/items/:id/claim", c.CommunityHandler.ClaimSharedItem)
	community.Post("/items/:id/complete", c.CommunityHandler.CompleteShare)
	community.Delete("/items/:id", c.CommunityHandler.RemoveSharedItem)
}

func (c *Config) Impact() {
	impactGroup := c.App.Group("/api/v1/impact", c.Middleware.AuthMiddleware(c.JWTService))
	impactGroup.Get("/me", c.CarbonHandler.GetUserImpact)
	impactGroup.Get("/history", c.CarbonHandler.GetCarbonHistory)
	impactGroup.Get("/breakdown", c.CarbonHandler.GetCarbonBreakdown)
	impactGroup.Get("/potential", c.CarbonHandler.GetPotentialSavings)
	impactGroup.Get("/global", c.CarbonHandler.GetGlobalCarbonStats)
}

func (c *Config) Leaderboard() {
	leaderboard := c.App.Group("/api/v1/leaderboard", c.Middleware.AuthMiddleware(c.JWTService))
	leaderboard.Get("/donors", c.LeaderboardHandler.GetTopDonors)
	leaderboard.Get("/carbon-savers", c.LeaderboardHandler.GetTopCarbonSavers)
	leaderboard.Get("/me", c.LeaderboardHandler.GetMyRank)
	leaderboard.Get("/stats", c.LeaderboardHandler.GetGlobalDonationStats)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
