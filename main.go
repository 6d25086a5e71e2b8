package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

type Color struct{ r, g, b int }

func rgb(c Color, s string) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.r, c.g, c.b, s)
}

var (
	white = Color{255, 255, 255}
	grey  = Color{188, 188, 188}
	sky   = Color{135, 206, 235}
)

const (
	demonstrationYear = 2025
	monthsPerYear     = 12
	minSupportedYear  = 1900
	maxSupportedYear  = 2100
)

// validateDateInput checks month and year against the supported ranges.
// The date math itself is valid outside these bounds; this is the single
// entry-point gate.
func validateDateInput(month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < minSupportedYear || year > maxSupportedYear {
		return false
	}
	return true
}

// painter returns rgb or a pass-through depending on the color flag.
func painter(disabled bool) func(Color, string) string {
	if disabled {
		return func(_ Color, s string) string { return s }
	}
	return rgb
}

func runFullYear(year int, paint func(Color, string) string) error {
	fmt.Print(paint(white, renderBanner()))
	fmt.Println("Calendar Generation Parameters Validated Successfully")
	fmt.Printf("Target Year: %d\n", year)
	fmt.Println("Processing Mode: Complete Annual Calendar")
	fmt.Println(strings.Repeat("=", 60))

	bar := progressbar.NewOptions(monthsPerYear,
		progressbar.OptionSetDescription("Generating calendar..."),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)
	defer bar.Close()

	for month := 1; month <= monthsPerYear; month++ {
		mc, err := buildMonth(month, year)
		if err != nil {
			return err
		}
		rule := strings.Repeat("-", 50)
		fmt.Println()
		fmt.Println(paint(grey, rule))
		fmt.Printf("PROCESSING MONTH: %d (%s)\n", month, paint(sky, mc.Name))
		fmt.Println(paint(grey, rule))
		fmt.Print(renderMonth(mc))
		_ = bar.Add(1)
	}

	stats, err := aggregateYear(year)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(paint(white, strings.Repeat("=", 60)))
	fmt.Println("EXECUTING CALENDAR STATISTICAL ANALYSIS")
	fmt.Println(paint(white, strings.Repeat("=", 60)))
	fmt.Print(renderStatistics(stats))
	fmt.Print(renderCompletion(stats))
	return nil
}

func runSingleMonth(month, year int, paint func(Color, string) string) error {
	mc, err := buildMonth(month, year)
	if err != nil {
		return err
	}
	rule := strings.Repeat("-", 50)
	fmt.Println(paint(grey, rule))
	fmt.Printf("PROCESSING MONTH: %d (%s)\n", month, paint(sky, mc.Name))
	fmt.Println(paint(grey, rule))
	fmt.Print(renderMonth(mc))
	fmt.Print(renderMonthDetail(mc))
	return nil
}

func main() {
	noColor := flag.Bool("no-color", false, "Disable ANSI colors in section headers")
	flag.BoolVar(noColor, "n", false, "Disable ANSI colors (shorthand)")
	flag.Usage = func() {
		fmt.Println("Usage: gregcal [flags] [year] [month]")
		fmt.Println("\nFlags:")
		fmt.Println("  -n, --no-color    Disable ANSI colors in section headers")
		fmt.Println("  -h, --help        Show this help message and exit")
		fmt.Println("\nArguments:")
		fmt.Printf("  year              Year to generate (%d-%d, default %d)\n",
			minSupportedYear, maxSupportedYear, demonstrationYear)
		fmt.Println("  month             Month to generate (1-12); omit for the full year")
		fmt.Println("\nExamples:")
		fmt.Println("  gregcal               # Full calendar for the demonstration year")
		fmt.Println("  gregcal 2028          # Full calendar for 2028")
		fmt.Println("  gregcal 2025 3        # March 2025 only")
	}
	flag.Parse()
	args := flag.Args()

	year := demonstrationYear
	month := 0 // 0 selects the full-year run
	switch len(args) {
	case 0:
	case 1:
		y, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Invalid year argument.")
			os.Exit(1)
		}
		year = y
	case 2:
		y, err1 := strconv.Atoi(args[0])
		m, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			fmt.Fprintln(os.Stderr, "Invalid year or month argument.")
			os.Exit(1)
		}
		year, month = y, m
	default:
		fmt.Println("Usage: gregcal [flags] [year] [month]")
		fmt.Println("Try 'gregcal --help' for more information.")
		os.Exit(1)
	}

	checkMonth := month
	if checkMonth == 0 {
		checkMonth = 1
	}
	if !validateDateInput(checkMonth, year) {
		fmt.Fprintln(os.Stderr, "ERROR: Invalid calendar parameters detected.")
		os.Exit(1)
	}

	paint := painter(*noColor)
	var err error
	if month == 0 {
		err = runFullYear(year, paint)
	} else {
		err = runSingleMonth(month, year, paint)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
