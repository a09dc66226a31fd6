package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"palette/internal/app"
	"palette/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "palette",
	Short: "Palette CLI App",
	Long:  `Palette searches a creator dashboard's articles, resources, scripts and events and ranks them in one list.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	SilenceUsage: true,
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := app.ConfigureLogging(cfg); err != nil {
			return err
		}

		appInstance, err := app.NewApp(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appInstance, err := GetAppFromContext(cmd.Context()); err == nil {
			appInstance.Close()
		}
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the collection backend and other diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		backend := "postgres"
		if appInstance.Config.Database.Primary.DSN == "" {
			backend = "built-in fixtures"
		}
		fmt.Fprintf(out, "Checking collection backend (%s)...\n", backend)

		if err := appInstance.SearchService.Ping(ctx); err != nil {
			return fmt.Errorf("collection backend ping failed: %w", err)
		}
		fmt.Fprintln(out, "Collection backend reachable.")

		if appInstance.JobClient == nil {
			fmt.Fprintln(out, "Search history is recorded inline.")
		} else {
			fmt.Fprintf(out, "Search history is queued on redis at %s.\n", appInstance.Config.Redis.Address)
		}
		log.Debug("doctor finished")
		return nil
	},
}
