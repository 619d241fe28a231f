package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"library-lending/config"
	"library-lending/library"
	"library-lending/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}
	dbPath := cfg.CatalogDB
	if dbPath == "" {
		dbPath = "catalog.db"
	}

	cmd := &cobra.Command{
		Use:   "import_catalog",
		Short: "Write the reference catalog into a fresh SQLite fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.NewLogger(cfg.Log, "import_catalog")
			defer log.Sync() //nolint:errcheck
			return run(cmd.Context(), dbPath, log)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", dbPath, "path of the SQLite file to (re)create")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, dbPath string, log *zap.Logger) error {
	// Clean up any existing database files
	fmt.Println("Cleaning up existing database files...")
	for _, file := range []string{dbPath, dbPath + "-shm", dbPath + "-wal"} {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			fmt.Printf("Warning: Could not remove %s: %v\n", file, err)
		}
	}

	db, err := library.NewDatabase(dbPath, log)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	items := library.SeedItems()
	fmt.Printf("Importing %d items into %s...\n", len(items), dbPath)
	if err := db.SaveItems(ctx, items); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}

	n, err := db.CountItems(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d items\n", n)

	loaded, err := db.LoadItems(ctx)
	if err != nil {
		return fmt.Errorf("reading back catalog: %w", err)
	}
	fmt.Println("\nImported items:")
	fmt.Printf("%-3s %-40s %-28s %-9s %s\n", "#", "Title", "Author", "Kind", "Status")
	fmt.Println(strings.Repeat("-", 100))
	for i, it := range loaded {
		fmt.Printf("%-3d %-40s %-28s %-9s %s\n", i+1, truncateString(it.Title, 40), truncateString(it.Author, 28), it.Kind, it.Status())
	}
	return nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
