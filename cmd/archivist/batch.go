package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/closetarchive/archivist/internal/cli"
	"github.com/closetarchive/archivist/internal/common"
	"github.com/closetarchive/archivist/internal/config"
	"github.com/closetarchive/archivist/internal/model"
	"github.com/closetarchive/archivist/internal/storage"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <products.json>",
		Short: "Classify a file of product listings",
		Long: `Classify every product in a JSON file and persist the results.

The file holds an array of products:
  [{"id": "p1", "name": "알파인더스트리 MA-1", "imageUrl": "https://..."}]

Examples:
  archivist batch products.json
  archivist batch products.json --db ./results.db`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().String("db", "", "results database path (default: $HOME/.local/share/archivist/archivist.db)")
	_ = viper.BindPFlag("database.path", cmd.Flags().Lookup("db"))

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	products, err := loadProducts(args[0])
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("no products in %s", args[0])
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/archivist/archivist.db"
	}
	dbPath = config.ExpandPath(dbPath)

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("failed to run migrations: %w", migrateErr)
	}

	eng, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	runID, err := db.StartRun(ctx, len(products))
	if err != nil {
		return err
	}

	progress := cli.NewBatchProgress(cmd.ErrOrStderr(), len(products))
	results := eng.ClassifyBatch(ctx, products, progress.Update)

	classified, failed := 0, 0
	for i, r := range results {
		if r.Result.Confidence == 0 && r.Result.Category == model.CategoryArchive {
			failed++
		} else {
			classified++
		}
		if saveErr := db.SaveClassification(ctx, runID, products[i], r.Result); saveErr != nil {
			common.LogError(saveErr, "Failed to persist result", common.Fields{
				"product": r.ProductID,
			})
		}
	}

	if err := db.FinishRun(ctx, runID, classified, failed); err != nil {
		return err
	}

	common.LogInfo("Batch run finished", common.Fields{
		"run":        runID,
		"classified": classified,
		"degenerate": failed,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.TitleStyle.Render(fmt.Sprintf("Run %s", runID)))
	fmt.Fprintln(out, cli.BoldStyle.Render(fmt.Sprintf("%d classified, %d degenerate of %d", classified, failed, len(products))))

	return nil
}

func loadProducts(path string) ([]model.Product, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse products file: %w", err)
	}

	return products, nil
}
