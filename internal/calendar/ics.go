package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"phaseplan/internal/models"
)

// Event represents one all-day calendar entry
type Event struct {
	UID         string
	Summary     string
	Description string
	Date        CalendarDate
}

// planNamespace seeds deterministic event UIDs so re-importing an export
// updates existing entries instead of duplicating them
var planNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("phaseplan/plan"))

// PlanEvents returns one event per planned session in weeks.
// Days[di] is always weekday di (Monday=0), so a week whose start is not a
// Monday places each day on the matching weekday inside its 7-day window.
// Weeks without a parseable start and days without a session are skipped.
func PlanEvents(weeks []models.Week) []Event {
	var events []Event
	for _, week := range weeks {
		start, err := ParseCalendarDate(week.WeekStart)
		if err != nil {
			continue
		}
		offset := MondayIndexedWeekday(week.WeekStart)
		for di, day := range week.Days {
			if strings.TrimSpace(day.Session) == "" {
				continue
			}
			date := start.AddDays((di - offset + 7) % 7)
			events = append(events, Event{
				UID:         uuid.NewSHA1(planNamespace, []byte(date.String()+"|"+day.Session)).String(),
				Summary:     day.Session,
				Description: describeDay(week, day),
				Date:        date,
			})
		}
	}
	return events
}

func describeDay(week models.Week, day models.DayPlan) string {
	var parts []string
	if week.Phase != models.PhaseUnset {
		parts = append(parts, "Phase: "+string(week.Phase))
	}
	if day.Intention != "" {
		parts = append(parts, "Intention: "+day.Intention)
	}
	if day.Effort > 0 {
		parts = append(parts, fmt.Sprintf("Effort: %d/5", day.Effort))
	}
	if day.Fuel != "" {
		parts = append(parts, "Fuel: "+day.Fuel)
	}
	if day.SleepTarget > 0 {
		parts = append(parts, fmt.Sprintf("Sleep target: %gh", day.SleepTarget))
	}
	return strings.Join(parts, "\n")
}

// GenerateICS renders events as an iCalendar document
func GenerateICS(events []Event, stamp time.Time) string {
	var sb strings.Builder

	sb.WriteString("BEGIN:VCALENDAR\r\n")
	sb.WriteString("VERSION:2.0\r\n")
	sb.WriteString("PRODID:-//PhasePlan//Training Plan//EN\r\n")
	sb.WriteString("CALSCALE:GREGORIAN\r\n")
	sb.WriteString("METHOD:PUBLISH\r\n")
	sb.WriteString("X-WR-CALNAME:Training plan\r\n")

	for _, event := range events {
		next := event.Date.AddDays(1)
		sb.WriteString("BEGIN:VEVENT\r\n")
		sb.WriteString(fmt.Sprintf("UID:%s\r\n", event.UID))
		sb.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp.UTC().Format("20060102T150405Z")))
		sb.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", formatICSDate(event.Date)))
		sb.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", formatICSDate(next)))
		sb.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(event.Summary)))
		if event.Description != "" {
			sb.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(event.Description)))
		}
		sb.WriteString("END:VEVENT\r\n")
	}

	sb.WriteString("END:VCALENDAR\r\n")
	return sb.String()
}

func formatICSDate(d CalendarDate) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// escapeICS escapes text values per RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
