package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a summary of the stored document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, _, err := openWorkspace(cfg)
		if err != nil {
			return err
		}
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintDocument(st.Document())
		printer.PrintSections(st.Sections())
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <document.json>",
	Short: "Replace the stored document with a JSON document file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}

		var doc store.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse document JSON: %w", err)
		}
		if doc.Theme == "" {
			doc.Theme = store.DefaultTheme
		}
		if doc.Template == "" {
			doc.Template = store.DefaultTemplate
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, adapter, err := openWorkspace(cfg)
		if err != nil {
			return err
		}
		st.ReplaceContent(doc.Data, doc.Sections)
		st.SetTheme(doc.Theme)
		st.SetTemplate(doc.Template)
		if err := adapter.SaveCurrent(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd, importCmd)
}
