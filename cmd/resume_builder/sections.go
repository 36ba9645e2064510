package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Inspect and reorder document sections",
}

var sectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sections in render order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, _, err := openWorkspace(cfg)
		if err != nil {
			return err
		}
		sections := st.Sections()
		sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })
		observability.NewPrinter(cmd.OutOrStdout()).PrintSections(sections)
		return nil
	},
}

var sectionsMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move a section from one position to another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid from position %q", args[0])
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid to position %q", args[1])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, _, err := openWorkspace(cfg)
		if err != nil {
			return err
		}
		st.MoveSection(from, to)
		fmt.Fprintf(cmd.OutOrStdout(), "Moved section %d to position %d\n", from, to)
		return nil
	},
}

var sectionsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a section's visibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, _, err := openWorkspace(cfg)
		if err != nil {
			return err
		}
		if err := st.ToggleSectionVisibility(args[0]); err != nil {
			return fmt.Errorf("section %q: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Toggled section %q\n", args[0])
		return nil
	},
}

var sectionsTitleCmd = &cobra.Command{
	Use:   "title <id> <title>",
	Short: "Rename a section",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, _, err := openWorkspace(cfg)
		if err != nil {
			return err
		}
		if err := st.UpdateSectionTitle(args[0], args[1]); err != nil {
			return fmt.Errorf("section %q: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed section %q\n", args[0])
		return nil
	},
}

func init() {
	sectionsCmd.AddCommand(sectionsListCmd, sectionsMoveCmd, sectionsToggleCmd, sectionsTitleCmd)
	rootCmd.AddCommand(sectionsCmd)
}
