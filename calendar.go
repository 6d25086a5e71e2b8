package main

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDay   = errors.New("invalid day")
)

var gregorianMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var gregorianWeekDays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// standardMonthDays holds day counts for a non-leap year, indexed by month-1.
var standardMonthDays = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isGregorianLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || (year%400 == 0)
}

func monthLength(month, year int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if month == 2 && isGregorianLeapYear(year) {
		return 29, nil
	}
	return standardMonthDays[month-1], nil
}

func monthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return gregorianMonths[month-1], nil
}

// firstWeekday returns the weekday of day 1 of the given month, 0=Sunday,
// via Zeller's congruence.
func firstWeekday(month, year int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	m, y := month, year
	// Zeller treats January and February as months 13 and 14 of the previous year.
	if m < 3 {
		m += 12
		y--
	}
	c := y / 100
	yy := y % 100
	h := (1 + 13*(m+1)/5 + yy + yy/4 + c/4 - 2*c) % 7
	// Zeller's raw result has 0=Saturday and can come out negative.
	h = (h + 7) % 7
	return (h + 6) % 7, nil
}

// dayOfYear returns the 1-based position of the given date within its year.
func dayOfYear(day, month, year int) (int, error) {
	length, err := monthLength(month, year)
	if err != nil {
		return 0, err
	}
	if day < 1 || day > length {
		return 0, fmt.Errorf("%w: %d for month %d", ErrInvalidDay, day, month)
	}
	position := day
	for m := 1; m < month; m++ {
		days, err := monthLength(m, year)
		if err != nil {
			return 0, err
		}
		position += days
	}
	return position, nil
}
