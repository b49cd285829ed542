package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/spend-atlas/pkg/server"
	"github.com/de-tools/spend-atlas/pkg/services/analysis"
	"github.com/de-tools/spend-atlas/pkg/services/expense"
	"github.com/de-tools/spend-atlas/pkg/store/sqlite"
	expensestore "github.com/de-tools/spend-atlas/pkg/store/sqlite/expense"
)

var settingsPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Spend Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&settingsPath, "config", "c", "",
		"Path to an analysis settings file (defaults ship with the engine)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings := analysis.DefaultSettings()
	if settingsPath != "" {
		loaded, err := analysis.LoadSettings(settingsPath)
		if err != nil {
			return fmt.Errorf("failed to load analysis settings: %w", err)
		}
		settings = loaded
		logger.Info().Msgf("Analysis settings loaded from `%s`.", settingsPath)
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "spend-atlas.db"
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open expense database: %w", err)
	}
	defer db.Close()

	store, err := expensestore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create expense store: %w", err)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Expenses: expense.NewService(store),
			Engine:   analysis.NewEngine(settings, nil),
		},
	})

	return api.Start()
}
