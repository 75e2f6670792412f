package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/recyclehero/recyclehero-golang/internal/config"
	"github.com/recyclehero/recyclehero-golang/internal/database"
	"github.com/recyclehero/recyclehero-golang/internal/handlers"
	"github.com/recyclehero/recyclehero-golang/internal/routes"
)

var migrateOnStart bool

var rootCmd = &cobra.Command{
	Use:   "recyclehero-api",
	Short: "REST backend for the RecycleHero recycling map",
	Long: `Backend API for a location-crowdsourcing recycling app: users submit
drop-off points, admins moderate them, and recycling events feed the
aggregate statistics.`,
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func newLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := config.Load()

	if migrateOnStart {
		if err := database.Migrate(cfg.DatabaseDSN); err != nil {
			return err
		}
		logger.Info().Msg("database migrations applied")
	}

	db, err := database.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info().Msg("database connection pool established")

	app := &handlers.Handlers{
		DB:     db,
		Logger: logger,
	}

	router := routes.SetupRouter(app, cfg)

	logger.Info().Str("port", cfg.Port).Msg("starting RecycleHero API server")
	return router.Run(":" + cfg.Port)
}

func main() {
	// A missing .env file is fine; the system environment still applies.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
}
