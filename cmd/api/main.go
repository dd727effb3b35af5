package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"choukette/pkg/config"
	"choukette/pkg/logger"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "choukette",
	Short: "Bakery staffing marketplace API",
	Long: `choukette serves the bakery staffing marketplace: missions,
professionals, bakery dashboards, the blog and session login.

Session state is kept as JSON snapshots in the backend selected by
STORAGE_DRIVER (memory, sqlite, redis or firestore).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotsCmd)
}

// loadConfig reads the configuration and initializes the logger for it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Init(cfg.Environment)
	return cfg, nil
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
