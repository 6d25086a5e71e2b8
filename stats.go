package main

import "sort"

// MonthCalendar is the computed layout of a single month, ready for rendering.
type MonthCalendar struct {
	Year         int
	Month        int
	Name         string
	Days         int
	StartWeekday int // 0=Sunday
	FirstOfYear  int // day-of-year of the 1st
	LastOfYear   int // day-of-year of the last day
	// WeekendEstimate is the number of calendar-grid rows the month spans,
	// ceil((Days+StartWeekday)/7). It approximates the weekend count and
	// deliberately differs from the exact per-day count in YearStatistics.
	WeekendEstimate int
}

// YearStatistics aggregates calendar data for one year.
type YearStatistics struct {
	Year              int
	LeapYear          bool
	TotalDays         int
	WeekendDays       int
	WeekdayCount      int
	MonthLengths      []int // sorted ascending
	ShortestMonth     int
	LongestMonth      int
	AverageLength     float64
	WeekendPercentage float64
}

func buildMonth(month, year int) (MonthCalendar, error) {
	name, err := monthName(month)
	if err != nil {
		return MonthCalendar{}, err
	}
	days, err := monthLength(month, year)
	if err != nil {
		return MonthCalendar{}, err
	}
	start, err := firstWeekday(month, year)
	if err != nil {
		return MonthCalendar{}, err
	}
	first, err := dayOfYear(1, month, year)
	if err != nil {
		return MonthCalendar{}, err
	}
	return MonthCalendar{
		Year:            year,
		Month:           month,
		Name:            name,
		Days:            days,
		StartWeekday:    start,
		FirstOfYear:     first,
		LastOfYear:      first + days - 1,
		WeekendEstimate: (days + start + 6) / 7,
	}, nil
}

// aggregateYear walks all 12 months of a year and accumulates day totals,
// the exact weekend count and the month-length distribution.
func aggregateYear(year int) (YearStatistics, error) {
	stats := YearStatistics{
		Year:         year,
		LeapYear:     isGregorianLeapYear(year),
		MonthLengths: make([]int, 0, 12),
	}
	for month := 1; month <= 12; month++ {
		days, err := monthLength(month, year)
		if err != nil {
			return YearStatistics{}, err
		}
		start, err := firstWeekday(month, year)
		if err != nil {
			return YearStatistics{}, err
		}
		stats.TotalDays += days
		stats.MonthLengths = append(stats.MonthLengths, days)
		for day := 1; day <= days; day++ {
			weekday := (start + day - 1) % 7
			if weekday == 0 || weekday == 6 {
				stats.WeekendDays++
			}
		}
	}
	stats.WeekdayCount = stats.TotalDays - stats.WeekendDays
	sort.Ints(stats.MonthLengths)
	stats.ShortestMonth = stats.MonthLengths[0]
	stats.LongestMonth = stats.MonthLengths[len(stats.MonthLengths)-1]
	stats.AverageLength = float64(stats.TotalDays) / 12.0
	if stats.TotalDays > 0 {
		stats.WeekendPercentage = float64(stats.WeekendDays) / float64(stats.TotalDays) * 100.0
	}
	return stats, nil
}
