package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"phaseplan/internal/models"
	"phaseplan/internal/planner"
)

// Workbook sheet names
const (
	SheetPlan     = "Plan"
	SheetLog      = "Log"
	SheetInsights = "Insights"
	SheetTrend    = "Trend"
)

// ReportService renders the state as a spreadsheet
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// WriteWorkbook writes an xlsx workbook for state to w
func (s *ReportService) WriteWorkbook(w io.Writer, state models.AppState) error {
	f, err := s.BuildWorkbook(state)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// BuildWorkbook assembles the workbook in memory. The caller closes it.
func (s *ReportService) BuildWorkbook(state models.AppState) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetPlan); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetLog, SheetInsights, SheetTrend} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	steps := []func(*excelize.File, models.AppState) error{
		writePlanSheet,
		writeLogSheet,
		writeInsightsSheet,
		writeTrendSheet,
	}
	for _, step := range steps {
		if err := step(f, state); err != nil {
			f.Close()
			return nil, err
		}
	}

	for _, name := range []string{SheetPlan, SheetLog, SheetInsights, SheetTrend} {
		if err := f.SetRowStyle(name, 1, 1, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to style %s header: %w", name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func writePlanSheet(f *excelize.File, state models.AppState) error {
	rows := [][]interface{}{{
		"Week", "Week Start", "Phase", "Theme", "Goals", "Day",
		"Session", "Intention", "Effort", "Fuel", "Sleep Target",
	}}
	for wi, week := range state.Weeks {
		goals := strings.Join(nonEmpty(week.Goals[:]), "; ")
		for di, day := range week.Days {
			rows = append(rows, []interface{}{
				wi + 1, week.WeekStart, string(week.Phase), week.Theme, goals,
				models.WeekdayNames[di], day.Session, day.Intention,
				day.Effort, day.Fuel, day.SleepTarget,
			})
		}
	}
	if err := writeRows(f, SheetPlan, rows); err != nil {
		return err
	}
	return f.SetColWidth(SheetPlan, "D", "H", 24)
}

func writeLogSheet(f *excelize.File, state models.AppState) error {
	rows := [][]interface{}{{
		"Date", "Cycle Day", "Phase", "Planned", "Actual", "RPE", "Energy", "Sleep", "Notes",
	}}
	for _, row := range state.Logs {
		rows = append(rows, []interface{}{
			row.Date, row.CycleDay, string(row.Phase), row.Planned, row.Actual,
			cellNumber(row.RPE), cellNumber(row.Energy), cellNumber(row.Sleep), row.Notes,
		})
	}
	if err := writeRows(f, SheetLog, rows); err != nil {
		return err
	}
	return f.SetColWidth(SheetLog, "D", "E", 24)
}

func writeInsightsSheet(f *excelize.File, state models.AppState) error {
	rows := [][]interface{}{{"Phase", "Days Logged", "Avg Energy", "Avg RPE", "Avg Sleep"}}
	for _, r := range planner.OrderedSummaries(state.Logs) {
		rows = append(rows, []interface{}{
			string(r.Phase), r.Summary.N,
			r.Summary.Energy.Display(), r.Summary.RPE.Display(), r.Summary.Sleep.Display(),
		})
	}
	return writeRows(f, SheetInsights, rows)
}

func writeTrendSheet(f *excelize.File, state models.AppState) error {
	points := planner.BuildTrendSeries(state.Logs)
	rows := [][]interface{}{{"Date", "Energy", "RPE"}}
	for _, p := range points {
		rows = append(rows, []interface{}{p.Date, p.Energy, p.RPE})
	}
	if err := writeRows(f, SheetTrend, rows); err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	last := strconv.Itoa(len(points) + 1)
	series := func(col string) excelize.ChartSeries {
		return excelize.ChartSeries{
			Name:       SheetTrend + "!$" + col + "$1",
			Categories: SheetTrend + "!$A$2:$A$" + last,
			Values:     SheetTrend + "!$" + col + "$2:$" + col + "$" + last,
		}
	}
	chart := &excelize.Chart{
		Type:   excelize.Line,
		Series: []excelize.ChartSeries{series("B"), series("C")},
	}
	if err := f.AddChart(SheetTrend, "E2", chart); err != nil {
		return fmt.Errorf("failed to add trend chart: %w", err)
	}
	return nil
}

// cellNumber leaves unrecorded values as blank cells rather than 0
func cellNumber(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
