package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"phaseplan/internal/calendar"
	"phaseplan/internal/planner"
)

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show average energy, RPE and sleep per cycle phase",
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			state := a.state.State()
			rows := planner.OrderedSummaries(state.Logs)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd, rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PHASE\tDAYS\tENERGY\tRPE\tSLEEP")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
					r.Phase, r.Summary.N, r.Summary.Energy.Display(), r.Summary.RPE.Display(), r.Summary.Sleep.Display())
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			for _, r := range rows {
				if g := planner.GuidanceFor(r.Phase, state.Settings); g != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %s", r.Phase, g)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		}),
	}

	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	return cmd
}

func trendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Print the dated energy and RPE series as JSON",
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			return printJSON(cmd, planner.BuildTrendSeries(a.state.State().Logs))
		}),
	}
}

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show the planned session for a date",
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			if date == "" {
				date = calendar.FromTime(time.Now()).String()
			}
			session, ok := planner.FindPlannedSession(date, a.state.State().Weeks)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: nothing planned\n", date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", date, session)
			return nil
		}),
	}

	cmd.Flags().StringP("date", "d", "", "Date as YYYY-MM-DD (default: today)")
	return cmd
}

func xlsxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Write the plan, log and insights to a spreadsheet",
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer file.Close()

			if err := a.reports.WriteWorkbook(file, a.state.State()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workbook written to %s\n", output)
			return nil
		}),
	}

	cmd.Flags().StringP("output", "o", "plan.xlsx", "Output file path")
	return cmd
}

func icsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Write planned sessions as an iCalendar file",
		RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			events := calendar.PlanEvents(a.state.State().Weeks)
			if err := os.WriteFile(output, []byte(calendar.GenerateICS(events, time.Now())), 0o644); err != nil {
				return fmt.Errorf("failed to write calendar: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d sessions written to %s\n", len(events), output)
			return nil
		}),
	}

	cmd.Flags().StringP("output", "o", "plan.ics", "Output file path")
	return cmd
}
