// Package main provides the resume builder CLI: local document storage,
// template rendering, PDF export, snapshots, and AI content assistance.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/persist"
	"github.com/jonathan/resume-builder/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Local resume builder",
	Long:  "Resume Builder edits a locally stored resume document, renders it through interchangeable templates, exports it to PDF, and generates content suggestions via the Gemini API.",
}

var (
	flagConfig     string
	flagStorageDir string
	flagVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagStorageDir, "storage-dir", "", "storage directory (default ~/.resume-builder)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print detailed progress information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: flags over config file
// over environment.
func loadConfig() (config.Config, error) {
	cfg := config.Config{
		StorageDir: flagStorageDir,
		Verbose:    flagVerbose,
	}

	if flagConfig != "" {
		fileCfg, err := config.Load(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(*config.FromEnv())

	if cfg.StorageDir == "" {
		cfg.StorageDir = config.DefaultStorageDir()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// openWorkspace restores the persisted document and wires the store to
// durable storage. Every mutation from here on is auto-persisted.
func openWorkspace(cfg config.Config) (*store.Store, *persist.Adapter, error) {
	kv, err := persist.NewFileKV(cfg.StorageDir)
	if err != nil {
		return nil, nil, err
	}

	st := store.NewFromDocument(persist.Restore(kv))
	adapter := persist.NewAdapter(kv, st)
	adapter.Bind()
	return st, adapter, nil
}
