package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/content"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Paged document viewer tooling",
	Long: `folio drives the document viewer engine without a window: render the
page-turn sound to a WAV file, replay scripted gestures against a book and
print what the viewer would show, or list a book's table of contents.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (folio.Config, error) {
	cfg, err := folio.LoadConfig(cfgFile)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w\nRun `folio config init` to create a config file", err)
	}
	return cfg, nil
}

// book is what the commands need from a content source.
type book interface {
	folio.ContentProvider
	folio.TOCProvider
}

// openBook loads a Markdown file, or a directory of images matched by pattern.
func openBook(path, pattern string) (book, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening book: %w", err)
	}
	if info.IsDir() {
		b, err := content.NewImageBook(os.DirFS(path), pattern)
		if err != nil {
			return nil, fmt.Errorf("loading images from %s: %w", path, err)
		}
		return b, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
	default:
		return nil, fmt.Errorf("unsupported book %s: want a directory or a Markdown file", path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	b, err := content.NewMarkdownBook(src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return b, nil
}
