package main

import (
	"fmt"
	"log"
	"os"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/config"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/http"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bda-studio",
		Short: "Mocked natural-language-to-SQL studio backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func runServer() error {
	ctx, err := config.InitContext()
	if err != nil {
		log.Fatalf("Failed to initialize context: %v", err)
	}

	defer func() {
		if err := ctx.Logger.Sync(); err != nil {
			fmt.Printf("Failed to sync logger: %v\n", err)
		}
	}()

	service := http.NewHTTPService(ctx)

	port := config.Port()
	ctx.Logger.Info("Starting server", zap.String("port", port))
	if err := service.Engine().Run(":" + port); err != nil {
		ctx.Logger.Fatal("Failed to start the server", zap.Error(err))
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
