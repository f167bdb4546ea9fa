package config

import (
	"fmt"
	"os"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/appcontext"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/catalog"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/session"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func InitContext() (*appcontext.Context, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("No .env file found, using environment variables")
	}

	logger, err := InitLogger()
	if err != nil {
		return nil, err
	}

	ctx := &appcontext.Context{
		Logger:   logger,
		Sessions: session.NewManager(),
		Catalog:  catalog.New(),

		Environment:  os.Getenv("ENVIRONMENT"),
		SeedDemoData: os.Getenv("DEMO_DATA") != "false",
	}

	return ctx, nil
}

func InitLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Port returns the listen port, defaulting to 8080.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
