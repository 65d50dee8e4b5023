package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/config"
	"github.com/pvaidya/recheck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "recheck",
	Short: "Homework review with asynchronous mistake analysis",
	Long: "Recheck keeps graded homework answers in a local store, classifies mistakes and " +
		"concepts asynchronously through an LLM classification gateway, and reconciles " +
		"completed analyses into a central reporting store.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/recheck/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RECHECK_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(requeueCmd)
	rootCmd.AddCommand(weaknessesCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// openStore resolves the database path using the --db flag (highest
// priority), then the config file / RECHECK_DB, then the default XDG path.
func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = cfg.DBPath
	}
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, err
	}
	return store.Open(path)
}
