package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"choukette/internal/domain/service"
	"choukette/internal/infrastructure/storage"
	"choukette/pkg/config"
	"choukette/pkg/logger"
)

var exportStdout bool

// snapshotsCmd inspects the persisted session snapshots
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Inspect and manage persisted snapshots",
	Long: `Inspect and manage the JSON snapshots kept in the backend selected
by STORAGE_DRIVER.

Available subcommands:
  list   - Print the stored keys
  clear  - Remove the given keys, or every key when none are given
  export - Dump all snapshots as one JSON document`,
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored snapshot keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSnapshots(cmd, func(cfg *config.Config, snapshots *service.SnapshotService) error {
			keys, err := snapshots.Keys(cmd.Context())
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		})
	},
}

var snapshotsClearCmd = &cobra.Command{
	Use:   "clear [key...]",
	Short: "Remove snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSnapshots(cmd, func(cfg *config.Config, snapshots *service.SnapshotService) error {
			keys := args
			if len(keys) == 0 {
				all, err := snapshots.Keys(cmd.Context())
				if err != nil {
					return err
				}
				keys = all
			}
			if err := snapshots.Clear(cmd.Context(), keys...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d snapshot(s)\n", len(keys))
			return nil
		})
	},
}

var snapshotsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump all snapshots as JSON",
	Long: `Dump every snapshot as one JSON object keyed by snapshot name.

The archive is uploaded to SNAPSHOT_BUCKET when it is set, unless --stdout
is given; otherwise it is written to standard output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSnapshots(cmd, func(cfg *config.Config, snapshots *service.SnapshotService) error {
			dump, err := snapshots.Dump(cmd.Context())
			if err != nil {
				return err
			}

			archive, err := json.MarshalIndent(dump, "", "  ")
			if err != nil {
				return fmt.Errorf("encode snapshots: %w", err)
			}

			if cfg.SnapshotBucket == "" || exportStdout {
				fmt.Fprintln(cmd.OutOrStdout(), string(archive))
				return nil
			}

			opts, err := firebaseCredentials(cfg).ClientOptions()
			if err != nil {
				return err
			}
			client, err := storage.NewCloudStorageClient(cmd.Context(), cfg.SnapshotBucket, opts...)
			if err != nil {
				return err
			}
			defer client.Close()

			url, err := client.UploadSnapshotArchive(cmd.Context(), bytes.NewReader(archive))
			if err != nil {
				return err
			}
			logger.Info("Exported %d snapshot(s) to %s", len(dump), url)
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		})
	},
}

func init() {
	snapshotsExportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to standard output even when SNAPSHOT_BUCKET is set")

	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsCmd.AddCommand(snapshotsClearCmd)
	snapshotsCmd.AddCommand(snapshotsExportCmd)
}

// withSnapshots opens the configured backend for the duration of fn.
func withSnapshots(cmd *cobra.Command, fn func(*config.Config, *service.SnapshotService) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	repo, closeRepo, err := openSnapshotRepository(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	return fn(cfg, service.NewSnapshotService(repo))
}
