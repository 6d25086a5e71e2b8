package main

import (
	"fmt"
	"strings"
)

func renderBanner() string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	b.WriteString(rule + "\n")
	b.WriteString("CALENDAR GENERATION SYSTEM\n")
	b.WriteString("Advanced Date Processing and Statistical Analysis\n")
	b.WriteString(rule + "\n")
	b.WriteString("Features: Leap Year Calculation, Monthly Display, Statistics\n")
	b.WriteString("Algorithm: Zeller's Congruence for Day-of-Week Determination\n")
	b.WriteString(rule + "\n")
	return b.String()
}

// renderMonth lays out one month as a 7-column grid followed by its
// analysis block. Rows wrap on absolute grid positions, so the leading
// blanks count toward the first row's seven cells.
func renderMonth(mc MonthCalendar) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%20s %d\n", mc.Name, mc.Year)
	b.WriteString(strings.Repeat("-", 28) + "\n")
	for _, wd := range gregorianWeekDays {
		fmt.Fprintf(&b, "%3s", wd)
	}
	b.WriteByte('\n')
	position := 0
	for ; position < mc.StartWeekday; position++ {
		b.WriteString("   ")
	}
	for day := 1; day <= mc.Days; day++ {
		fmt.Fprintf(&b, "%3d", day)
		position++
		if position%7 == 0 {
			b.WriteByte('\n')
		}
	}
	if position%7 != 0 {
		b.WriteByte('\n')
	}
	b.WriteString("\nMonth Analysis:\n")
	fmt.Fprintf(&b, "  Total Days: %d\n", mc.Days)
	fmt.Fprintf(&b, "  Starting Day: %d (0=Sunday)\n", mc.StartWeekday)
	fmt.Fprintf(&b, "  Weekends: %d\n", mc.WeekendEstimate)
	return b.String()
}

// renderMonthDetail extends the analysis block with the day-of-year range,
// shown only in single-month mode.
func renderMonthDetail(mc MonthCalendar) string {
	return fmt.Sprintf("  Day of Year Range: %d-%d\n", mc.FirstOfYear, mc.LastOfYear)
}

func renderStatistics(stats YearStatistics) string {
	var b strings.Builder
	b.WriteString("ANNUAL CALENDAR STATISTICS REPORT\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Target Year: %d\n", stats.Year)
	fmt.Fprintf(&b, "Leap Year Status: %s\n", leapYearText(stats.LeapYear))
	fmt.Fprintf(&b, "Total Days: %d\n", stats.TotalDays)
	fmt.Fprintf(&b, "Weekend Days: %d\n", stats.WeekendDays)
	fmt.Fprintf(&b, "Weekday Count: %d\n", stats.WeekdayCount)
	fmt.Fprintf(&b, "Weekend Percentage: %.1f%%\n", stats.WeekendPercentage)
	b.WriteString("\nMonth Length Distribution:\n")
	fmt.Fprintf(&b, "  Shortest Month: %d days\n", stats.ShortestMonth)
	fmt.Fprintf(&b, "  Longest Month: %d days\n", stats.LongestMonth)
	fmt.Fprintf(&b, "  Average Month Length: %.1f days\n", stats.AverageLength)
	return b.String()
}

func renderCompletion(stats YearStatistics) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	b.WriteString("\n" + rule + "\n")
	b.WriteString("CALENDAR GENERATION COMPLETED SUCCESSFULLY\n")
	fmt.Fprintf(&b, "Year Processed: %d\n", stats.Year)
	fmt.Fprintf(&b, "Months Generated: %d\n", len(stats.MonthLengths))
	fmt.Fprintf(&b, "Leap Year Status: %s\n", leapYearText(stats.LeapYear))
	b.WriteString(rule + "\n")
	return b.String()
}

func leapYearText(leap bool) string {
	if leap {
		return "TRUE"
	}
	return "FALSE"
}
