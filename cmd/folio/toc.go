package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tocCmd = &cobra.Command{
	Use:   "toc <book>",
	Short: "Print a book's page count and table of contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, _ := cmd.Flags().GetString("pattern")
		b, err := openBook(args[0], pattern)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d pages\n", args[0], b.PageCount())
		for _, ch := range b.Chapters() {
			fmt.Fprintf(out, "%-10s %-40s p.%d\n", ch.Label, ch.Title, ch.StartPage)
			for _, tp := range ch.Topics {
				fmt.Fprintf(out, "           - %-38s p.%d\n", tp.Title, tp.Page)
			}
		}
		return nil
	},
}

func init() {
	tocCmd.Flags().String("pattern", "**/*.{png,jpg,jpeg}", "image pattern when the book is a directory")
	rootCmd.AddCommand(tocCmd)
}
