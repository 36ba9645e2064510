package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage named snapshots of the document",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current document content under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, adapter, err := openWorkspace(cfg)
		if err != nil {
			return err
		}
		if err := adapter.SaveSnapshot(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved snapshot %q\n", args[0])
		return nil
	},
}

var snapshotLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Replace the live document content with a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, adapter, err := openWorkspace(cfg)
		if err != nil {
			return err
		}
		if err := adapter.LoadSnapshot(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded snapshot %q\n", args[0])
		return nil
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, adapter, err := openWorkspace(cfg)
		if err != nil {
			return err
		}
		names, err := adapter.ListSnapshots()
		if err != nil {
			return err
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintSnapshots(names)
		return nil
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, adapter, err := openWorkspace(cfg)
		if err != nil {
			return err
		}
		if err := adapter.DeleteSnapshot(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %q\n", args[0])
		return nil
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotSaveCmd, snapshotLoadCmd, snapshotListCmd, snapshotDeleteCmd)
	rootCmd.AddCommand(snapshotCmd)
}
