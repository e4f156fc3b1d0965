package config

import (
	"UnityPlate-Backend/internal/api/handlers"
	"UnityPlate-Backend/internal/api/routes"
	"UnityPlate-Backend/internal/middleware"
	"UnityPlate-Backend/internal/utils"
	"UnityPlate-Backend/internal/utils/storage"
	"UnityPlate-Backend/pkg/food"
	"UnityPlate-Backend/pkg/fulfillment"
	"UnityPlate-Backend/pkg/jwt"
	"UnityPlate-Backend/pkg/request"
	"UnityPlate-Backend/pkg/user"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
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

	// setting up logging
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
		Output:     file,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	requestRepository := request.NewRequestRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository)
	foodService := food.NewFoodService(foodRepository, requestRepository, s3)
	requestService := request.NewRequestService(requestRepository)
	fulfillmentService := fulfillment.NewFulfillmentService(foodRepository, requestRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, jwtService)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	fulfillmentHandler := handlers.NewFulfillmentHandler(fulfillmentService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		FoodHandler:        foodHandler,
		RequestHandler:     requestHandler,
		FulfillmentHandler: fulfillmentHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
