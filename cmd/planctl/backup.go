package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full state to a JSON or YAML backup",
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				output = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
			}
			if err := a.backups.Export(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", output)
			return nil
		}),
	}

	cmd.Flags().StringP("output", "o", "", "Output file path, .yaml for YAML (default: backup_YYYYMMDD_HHMMSS.json)")
	return cmd
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the full state with a backup (WARNING: destructive)",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			if err := a.backups.Import(args[0]); err != nil {
				return err
			}
			if err := a.state.LastPersistError(); err != nil {
				return fmt.Errorf("backup applied but not saved: %w", err)
			}
			state := a.state.State()
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d weeks and %d log entries\n", len(state.Weeks), len(state.Logs))
			return nil
		}),
	}
	return cmd
}

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored state so the next start uses the seed (WARNING: destructive)",
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return fmt.Errorf("refusing to delete state %s without --yes", a.repo.Key())
			}
			if err := a.repo.Delete(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted state %s\n", a.repo.Key())
			return nil
		}),
	}

	cmd.Flags().Bool("yes", false, "Confirm deleting all weeks and log entries")
	return cmd
}
