package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
)

var (
	flagExportTemplate string
	flagExportDate     bool
	flagExportOut      string
	flagExportHTML     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the current document and export it to PDF",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportTemplate, "template", "", "template to render (modern, minimalist, ats); default is the stored choice")
	exportCmd.Flags().BoolVar(&flagExportDate, "date", false, "append a YYYYMMDD stamp to the filename")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "output directory (default from config)")
	exportCmd.Flags().BoolVar(&flagExportHTML, "html", false, "print the rendered HTML instead of exporting a PDF")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, _, err := openWorkspace(cfg)
	if err != nil {
		return err
	}

	templateName := flagExportTemplate
	if templateName == "" {
		templateName = st.Template()
	}
	tmpl, err := rendering.ParseTemplate(templateName)
	if err != nil {
		return err
	}

	data := st.Data()
	html, err := rendering.Render(data, st.Sections(), tmpl)
	if err != nil {
		return err
	}

	if flagExportHTML {
		fmt.Fprintln(cmd.OutOrStdout(), html)
		return nil
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintDocument(st.Document())
	}

	outDir := flagExportOut
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	exporter := export.NewPDFExporter()
	exporter.ChromePath = cfg.ChromePath
	exporter.Verbose = cfg.Verbose

	includeDate := flagExportDate || cfg.IncludeDate
	path, err := exporter.ExportToFile(cmd.Context(), html, outDir, data.Personal.Name, tmpl, includeDate)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
	return nil
}
