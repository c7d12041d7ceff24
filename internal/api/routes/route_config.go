package routes

import (
	"Fridge-Elf-Backend/internal/api/handlers"
	"Fridge-Elf-Backend/internal/middleware"
	"Fridge-Elf-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FridgeHandler       handlers.FridgeHandler
	FoodHandler         handlers.FoodHandler
	NotificationHandler handlers.NotificationHandler
	StatsHandler        handlers.StatsHandler
	WebhookHandler      handlers.WebhookHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Fridges()
	c.FoodItems()
	c.Notifications()
	c.Stats()
}

func (c *Config) GuestRoute() {
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})
	c.App.Post("/webhook/line", c.WebhookHandler.LineWebhook)
	c.App.Post("/api/v1/auth/line", c.UserHandler.LoginWithLine)
}

func (c *Config) Fridges() {
	fridges := c.App.Group("/api/v1/fridges", c.Middleware.AuthMiddleware(c.JWTService))
	{
		fridges.Get("", c.FridgeHandler.GetFridges)
		fridges.Post("", c.FridgeHandler.CreateFridge)
		fridges.Get("/:id", c.FridgeHandler.GetFridgeDetail)
		fridges.Put("/:id", c.FridgeHandler.UpdateFridge)
		fridges.Post("/:id/compartments", c.FridgeHandler.CreateCompartment)
		fridges.Put("/:id/compartments/reorder", c.FridgeHandler.ReorderCompartments)

		fridges.Get("/:id/items", c.FoodHandler.GetFoodItems)
		fridges.Post("/:id/items", c.FoodHandler.AddFoodItem)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	{
		foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
		foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
		foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
		foodItems.Post("/:id/archive", c.FoodHandler.ArchiveFoodItem)
	}
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	{
		notifications.Get("/settings", c.NotificationHandler.GetSettings)
		notifications.Put("/settings", c.NotificationHandler.UpdateSettings)
	}
}

func (c *Config) Stats() {
	statsGroup := c.App.Group("/api/v1/stats", c.Middleware.AuthMiddleware(c.JWTService))
	{
		statsGroup.Get("/monthly", c.StatsHandler.GetMonthlyStats)
		statsGroup.Post("/monthly/send-notification", c.StatsHandler.SendMonthlyStats)
		statsGroup.Post("/monthly/send-all", c.StatsHandler.SendAllMonthlyStats)
	}
}
