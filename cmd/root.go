package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinictrack/clinictrack/internal/app"
	"github.com/clinictrack/clinictrack/internal/config"
	"github.com/clinictrack/clinictrack/internal/staff"
	"github.com/clinictrack/clinictrack/internal/store"
	"github.com/clinictrack/clinictrack/internal/ui/theme"
)

var rootCmd = &cobra.Command{
	Use:           "clinictrack",
	Short:         "Clinic staff training tracker",
	Long:          "ClinicTrack records how far each clinic staff member has progressed on the clinic's trainable skills.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return execute(context.Background())
}

// execute runs the command tree and reports a failure on stderr.
func execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), theme.Failure.Render("Error: "+err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CLINICTRACK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("as", "", "Acting staff member (name or ID)")

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(memoCmd)
	rootCmd.AddCommand(clinicCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the --config file, or the default config path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.LoadFromPath(p)
	}
	return config.Load()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (which CLINICTRACK_DATABASE_PATH overrides), then
// CLINICTRACK_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// openApp loads configuration and opens the application for one command.
// The caller must Close the returned App.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, err
	}
	return app.Open(cmd.Context(), app.Options{
		Config: cfg,
		DBPath: dbPath,
		LogOut: cmd.ErrOrStderr(),
	})
}

// actor resolves the --as flag.
func actor(cmd *cobra.Command, a *app.App) (staff.User, error) {
	ref, _ := cmd.Flags().GetString("as")
	return a.Actor(ref)
}

// targetUser resolves an optional user argument, defaulting to the actor.
func targetUser(cmd *cobra.Command, a *app.App, args []string) (staff.User, error) {
	if len(args) > 0 {
		return a.Staff.Lookup(args[0])
	}
	return actor(cmd, a)
}
