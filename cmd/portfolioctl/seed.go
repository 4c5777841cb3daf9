package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store the dataset as a Postgres snapshot",
	Long:  "Writes the dataset into portfolio_snapshots. The server reads the newest snapshot when portfolio.source is postgres.",
	RunE:  runSeed,
}

var (
	seedDataFile    string
	seedDatabaseURL string
)

func init() {
	seedCmd.Flags().StringVarP(&seedDataFile, "file", "f", "", "Path to a dataset JSON file (defaults to the embedded dataset)")
	seedCmd.Flags().StringVar(&seedDatabaseURL, "db-url", "", "Database URL (defaults to DB_DSN)")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if seedDatabaseURL == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		seedDatabaseURL = cfg.DB.DSN
	}
	if seedDatabaseURL == "" {
		return fmt.Errorf("DB_DSN not set and --db-url not provided")
	}

	d, err := loadDataset(ctx, seedDataFile)
	if err != nil {
		return err
	}

	log := logger.NewZapLogger("development")
	pool, err := persistence.NewPostgresPool(ctx, seedDatabaseURL, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	snap, err := persistence.NewPostgresDatasetRepo(pool, log).SaveSnapshot(ctx, d)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved snapshot %s (version %s)\n", snap.ID, snap.Version)
	return nil
}
