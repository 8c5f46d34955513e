package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/closetarchive/archivist/internal/brandbook"
	"github.com/closetarchive/archivist/internal/cli"
)

func brandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brands <query>",
		Short: "Look up a brand in the brand book",
		Long: `Check how a brand name or product title resolves against the brand
database. Useful when a classification leaned on an unexpected brand match.

Examples:
  archivist brands "칼하트"
  archivist brands "Polo Ralph Lauren 옥스포드 셔츠"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			book := brandbook.New()
			out := cmd.OutOrStdout()

			if info, ok := book.Lookup(query); ok {
				fmt.Fprintln(out, cli.CategoryStyle.Render(info.Canonical))
				fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("tier %s, origin %s (exact match)", info.Tier, info.Origin)))
				return nil
			}

			if info, ok := book.Match(query); ok {
				fmt.Fprintln(out, cli.CategoryStyle.Render(info.Canonical))
				fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("tier %s, origin %s (matched inside title)", info.Tier, info.Origin)))
				return nil
			}

			fmt.Fprintln(out, cli.FallbackStyle.Render("no brand recognized"))
			fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("%d names indexed", book.Size())))
			return nil
		},
	}
}
