// Command catalog-seed fills the catalog database with demo products.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/config"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/db/sqlite"
	logpkg "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/logger"
	productrepo "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/repository/product"
)

var (
	dbPath string
	force  bool
)

var rootCmd = &cobra.Command{
	Use:   "catalog-seed",
	Short: "Insert the demo products into the catalog database",
	Long: "Insert the demo products into the catalog database.\n" +
		"An already populated catalog is left alone unless --force is given.",
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "catalog database path (default: catalog.path from config)")
	rootCmd.Flags().BoolVar(&force, "force", false, "insert even when the catalog already has products")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	env := config.GetEnv()

	logger, err := logpkg.NewLogger(env, "catalog-seed", "")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	path := dbPath
	if path == "" {
		cfg, err := config.Load(env)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		path = cfg.Catalog.Path
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = db.Close() }()

	n, err := seed(ctx, productrepo.New(db.SQL()), force)
	if err != nil {
		return err
	}

	logger.Info("Catalog seeded", zap.String("path", path), zap.Int("inserted", n))
	cmd.Printf("inserted %d products into %s\n", n, path)
	return nil
}
