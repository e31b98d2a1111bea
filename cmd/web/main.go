package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lvervaek/energy-app/pkg/server"
	"github.com/lvervaek/energy-app/pkg/services/config"
	"github.com/lvervaek/energy-app/pkg/services/cost"
	"github.com/lvervaek/energy-app/pkg/store/refdata"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the energy bill analyzer web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional settings file (env variables take precedence)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	store, err := refdata.Load(settings.DataDir)
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}
	logger.Info().Str("dir", settings.DataDir).Msg("reference data loaded")

	addr := net.JoinHostPort(settings.ServerHost, settings.ServerPort)
	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Analyzer: cost.NewAnalyzer(store),
			Catalog:  store,
			Logger:   logger,
		},
	})

	return api.Start()
}
