package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/closetarchive/archivist/internal/cli"
	"github.com/closetarchive/archivist/internal/model"
)

func classifyCmd() *cobra.Command {
	var imageURL string

	cmd := &cobra.Command{
		Use:   "classify <title>",
		Short: "Classify a single product listing",
		Long: `Classify one product title into an archive category.

Examples:
  archivist classify "알파인더스트리 MA-1 봄버"
  archivist classify "Barbour 왁스드 자켓" --image https://example.com/photo.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := buildEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			product := model.Product{
				ID:       "cli",
				Name:     strings.Join(args, " "),
				ImageURL: imageURL,
			}

			result, err := eng.ClassifyProduct(cmd.Context(), product)
			if err != nil {
				return fmt.Errorf("classification failed: %w", err)
			}

			printClassification(cmd, product, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&imageURL, "image", "", "product photo URL for visual analysis")

	return cmd
}

func printClassification(cmd *cobra.Command, product model.Product, c model.Classification) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, cli.TitleStyle.Render(product.Name))

	categoryLine := fmt.Sprintf("%s (%d)", c.Category, c.Confidence)
	if c.Category == model.CategoryArchive {
		fmt.Fprintln(out, cli.FallbackStyle.Render(categoryLine))
	} else {
		fmt.Fprintln(out, cli.CategoryStyle.Render(categoryLine))
	}

	if c.FastPath {
		fmt.Fprintln(out, cli.SubtleStyle.Render("decided by fast-path rules"))
	}
	if c.Reason != "" {
		fmt.Fprintln(out, cli.SubtleStyle.Render(c.Reason))
	}

	for _, s := range c.Signals {
		if !s.HasVote() {
			continue
		}
		fmt.Fprintln(out, cli.SubtleStyle.Render(
			fmt.Sprintf("  %-12s %s (%d)", s.Source, s.Category, s.Confidence)))
	}
}
