//go:build !(js && wasm)

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-docs/config"
	"github.com/vcrobe/nojs-docs/console"
	"github.com/vcrobe/nojs-docs/content"
	"github.com/vcrobe/nojs-docs/web"
)

var (
	cfgFile     string
	contentFile string
	shellFile   string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "docsite-check",
	Short: "Validate and query the docs site without a browser",
	Long: `docsite-check loads the page shell, content table and site configuration
(the embedded ones unless paths are given) and drives the same controller the
browser runs against an in-memory DOM.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "site config file (default: embedded site.yaml)")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "content file or glob such as docs/**/*.yaml (default: embedded content.yaml)")
	rootCmd.PersistentFlags().StringVar(&shellFile, "shell", "", "page shell html file (default: embedded index.html)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log controller activity at debug level")
}

// inputs is everything a command needs from the flags.
type inputs struct {
	cfg    *config.Config
	table  *content.Table
	shell  []byte
	logger *slog.Logger
}

func loadInputs() (*inputs, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	table, err := loadContent()
	if err != nil {
		return nil, err
	}

	shell := web.Shell
	if shellFile != "" {
		if shell, err = os.ReadFile(shellFile); err != nil {
			return nil, fmt.Errorf("reading shell: %w", err)
		}
	}

	return &inputs{cfg: cfg, table: table, shell: shell, logger: console.New(level)}, nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		cfg, err := config.Parse(web.Config)
		if err != nil {
			return nil, fmt.Errorf("loading embedded config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func loadContent() (*content.Table, error) {
	if contentFile == "" {
		table, err := content.Parse(web.Content)
		if err != nil {
			return nil, fmt.Errorf("loading embedded content: %w", err)
		}
		return table, nil
	}
	base, pattern := doublestar.SplitPattern(filepath.ToSlash(contentFile))
	table, err := content.LoadFiles(os.DirFS(base), pattern)
	if err != nil {
		return nil, fmt.Errorf("loading content %s: %w", contentFile, err)
	}
	return table, nil
}
