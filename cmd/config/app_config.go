package config

import (
	"Fridge-Elf-Backend/internal/api/handlers"
	"Fridge-Elf-Backend/internal/api/routes"
	"Fridge-Elf-Backend/internal/middleware"
	"Fridge-Elf-Backend/internal/utils"
	"Fridge-Elf-Backend/internal/utils/mailing"
	"Fridge-Elf-Backend/pkg/food"
	"Fridge-Elf-Backend/pkg/fridge"
	"Fridge-Elf-Backend/pkg/jwt"
	"Fridge-Elf-Backend/pkg/line"
	"Fridge-Elf-Backend/pkg/notification"
	"Fridge-Elf-Backend/pkg/scheduler"
	"Fridge-Elf-Backend/pkg/stats"
	"Fridge-Elf-Backend/pkg/user"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, appLog zerolog.Logger) (*fiber.App, *scheduler.Scheduler, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	loc, err := time.LoadLocation(utils.TimezoneName())
	if err != nil {
		return nil, nil, fmt.Errorf("load timezone %q: %w", utils.TimezoneName(), err)
	}

	// setting up logging and limiter
	err = os.MkdirAll("./logs", os.ModePerm)
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
		TimeZone:   utils.TimezoneName(),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	fridgeRepository := fridge.NewFridgeRepository(db)
	foodRepository := food.NewFoodRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	fridgeService := fridge.NewFridgeService(fridgeRepository)
	foodService := food.NewFoodService(foodRepository, fridgeRepository)
	notificationService := notification.NewNotificationService(notificationRepository)
	lineService, err := line.NewLineService(userService, appLog)
	if err != nil {
		return nil, nil, fmt.Errorf("init line client: %w", err)
	}
	statsService := stats.NewStatsService(
		fridgeRepository,
		foodRepository,
		userRepository,
		lineService,
		&mailing.SMTPMailer{},
		loc,
		appLog,
	)

	// Scheduler
	capacity, _ := strconv.Atoi(utils.GetConfig("FRIDGE_CAPACITY"))
	jobs := scheduler.NewJobs(
		notificationRepository,
		fridgeRepository,
		foodRepository,
		statsService,
		lineService,
		capacity,
		loc,
		appLog,
	)
	sched := scheduler.New(loc, jobs, appLog)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	statsHandler := handlers.NewStatsHandler(statsService, appLog)
	webhookHandler := handlers.NewWebhookHandler(lineService, appLog)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FridgeHandler:       fridgeHandler,
		FoodHandler:         foodHandler,
		NotificationHandler: notificationHandler,
		StatsHandler:        statsHandler,
		WebhookHandler:      webhookHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, sched, nil
}
