package routes

import (
	"UnityPlate-Backend/internal/api/handlers"
	"UnityPlate-Backend/internal/middleware"
	"UnityPlate-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	FoodHandler        handlers.FoodHandler
	RequestHandler     handlers.RequestHandler
	FulfillmentHandler handlers.FulfillmentHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.APIRoute()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello World from Unity Plate's server!")
	})
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) APIRoute() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	api := c.App.Group("/api/v1")
	{
		api.Put("/user", c.UserHandler.UpsertUser)
		api.Get("/get-user/:email", auth, c.UserHandler.GetUser)

		api.Post("/add-food", auth, c.FoodHandler.AddFood)
		api.Get("/get-foods", c.FoodHandler.GetFoods)
		api.Put("/edit-food/:food_id", auth, c.FoodHandler.EditFood)
		api.Delete("/delete-food/:food_id", auth, c.FoodHandler.DeleteFood)
		api.Post("/food-image", auth, c.FoodHandler.UploadFoodImage)

		api.Post("/add-request", auth, c.RequestHandler.AddRequest)
		api.Get("/get-requests", c.RequestHandler.GetRequests)
		api.Delete("/cancel-request/:request_id", auth, c.RequestHandler.CancelRequest)

		api.Put("/confirm-request/:request_id/:food_id", auth, c.FulfillmentHandler.ConfirmRequest)
	}
}
