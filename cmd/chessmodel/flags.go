// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessmodel-go/internal/config"
)

var (
	// Input options
	scriptFile = flag.String("f", "", "Script file to run (default: stdin)")
	watch      = flag.Bool("watch", false, "Re-run the script whenever the file changes (needs -f)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("format", "text", "Output format: text or json")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format (same as -format json)")
	showBoard    = flag.Bool("b", false, "Print the board after every applied event")
	noCoords     = flag.Bool("nocoords", false, "Omit coordinates around board diagrams")
	quietEvents  = flag.Bool("q", false, "Don't echo accepted events")

	// Logging
	logFile   = flag.String("l", "", "Write log messages to file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 = warnings, 1 = info, 2 = debug")

	// Move generation
	workers = flag.Int("workers", 1, "Goroutines used to generate moves")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig turns the parsed flags into a Config.
func buildConfig() (*config.Config, error) {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return nil, err
	}
	if *jsonOutput {
		format = config.JSON
	}
	return config.NewConfigBuilder().
		WithOutputFormat(format).
		WithBoardDiagrams(*showBoard).
		WithCoordinates(!*noCoords).
		WithEventEcho(!*quietEvents).
		WithVerbosity(*verbosity).
		WithWorkers(*workers).
		WithScript(*scriptFile, *watch).
		Build(), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmodel [options]\n\n")
	fmt.Fprintf(os.Stderr, "Runs a board script: setup events, play events and inspection commands.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript lines:\n")
	fmt.Fprintf(os.Stderr, "  put <w|b> <Rank> <square> [home <square>]\n")
	fmt.Fprintf(os.Stderr, "  remove <square>\n")
	fmt.Fprintf(os.Stderr, "  <square> --> <square>     move\n")
	fmt.Fprintf(os.Stderr, "  <square> x <square>       capture\n")
	fmt.Fprintf(os.Stderr, "  standard | lock | show | log\n")
	fmt.Fprintf(os.Stderr, "  moves <side> | material <side> | view <square>\n")
	fmt.Fprintf(os.Stderr, "  relations <square> | fork <ply>\n")
	fmt.Fprintf(os.Stderr, "  save [label] | restore <id> | drop <id> | snapshots\n")
	fmt.Fprintf(os.Stderr, "\nSquares are written A_1 .. H_8; '#' starts a comment.\n")
	fmt.Fprintf(os.Stderr, "A put without 'home' makes the target square the piece's home. The 'log'\n")
	fmt.Fprintf(os.Stderr, "command adds 'home' wherever the two differ.\n")
}
