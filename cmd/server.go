package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/skovr/talentmatch/matching/auth"
	"github.com/skovr/talentmatch/matching/match/matchapi"
	"github.com/skovr/talentmatch/matching/profile/profileapi"
	"github.com/skovr/talentmatch/pkg/errx"
	"github.com/skovr/talentmatch/pkg/logx"
)

func main() {
	logx.SetLevel(logx.LevelInfo)

	ctx := context.Background()
	container := NewContainer(ctx)
	defer container.DB.Close()
	defer container.Redis.Close()

	app := fiber.New(fiber.Config{
		AppName:               "TalentMatch API",
		DisableStartupMessage: false,
		ErrorHandler:          globalErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if err := container.DB.Ping(); err != nil {
			dbStatus = "error: " + err.Error()
		}
		redisStatus := "ok"
		if err := container.Redis.Ping(c.Context()).Err(); err != nil {
			redisStatus = "error: " + err.Error()
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
		})
	})

	auth.RegisterRoutes(app, container.AuthHandlers)
	profileapi.RegisterRoutes(app, container.ProfileHandlers, container.TokenService)
	matchapi.RegisterRoutes(app, container.MatchHandlers, container.TokenService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		logx.Infof("Starting server on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logx.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}
	logx.Info("Server exited")
}

func globalErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	var appErr *errx.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.HTTPStatus).JSON(appErr.ToHTTPResponse())
	}

	logx.Errorf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
