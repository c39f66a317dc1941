package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"woocommerce.GO/config"
	productService "woocommerce.GO/service/product"
)

var (
	importFile     string
	importBatch    int
	importMediaDir string
)

var importCmd = &cobra.Command{
	Use:   "products:import",
	Short: "Import products from CSV into wc_products",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("failed to open CSV: %w", err)
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}

		mediaDir := importMediaDir
		if mediaDir == "" {
			mediaDir = config.App().MediaDir
		}
		res, err := productService.ImportProducts(db, f, productService.ImportOptions{
			BatchSize: importBatch,
			MediaDir:  mediaDir,
		})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "  [warn] %s\n", w)
		}
		fmt.Fprintf(out, `
=== Import Report ===
CSV rows:       %d
Created:        %d
Updated:        %d
Skipped:        %d
Media items:    %d
Total time:     %s
  - Processing: %s
  - DB write:   %s
=====================
`, res.TotalRows, res.Created, res.Updated, res.Skipped, res.Media,
			res.TotalTime.Round(time.Millisecond),
			res.ProcessTime.Round(time.Millisecond),
			res.DBTime.Round(time.Millisecond))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 500, "Batch size for DB operations")
	importCmd.Flags().StringVar(&importMediaDir, "media-dir", "", "Directory image paths are relative to (default MEDIA_DIR)")
	rootCmd.AddCommand(importCmd)
}
