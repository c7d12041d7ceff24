package main

import (
	"Fridge-Elf-Backend/cmd/config"
	migration "Fridge-Elf-Backend/cmd/database/migrate"
	"Fridge-Elf-Backend/internal/utils"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	utils.LoadConfig()
	log := utils.NewLogger()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	app, sched, err := config.NewApp(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build application")
	}

	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}

	go func() {
		if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	sched.Stop()
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("shutdown complete")
}
