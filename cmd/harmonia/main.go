package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/harmonia-api/internal/api"
	"github.com/Conceptual-Machines/harmonia-api/internal/cli"
	"github.com/Conceptual-Machines/harmonia-api/internal/config"
	"github.com/Conceptual-Machines/harmonia-api/internal/logger"
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "harmonia",
	Short: "Chord/melody harmonic analysis engine",
	Long: `Harmonia analyzes a chord symbol plus a melody fragment and reports
the best-matching modes, key context and per-note melodic functions.

Pipeline: chord symbol → required tones → mode scoring → function tags`,
	Version: version,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <chord>",
	Short: "Analyze a single chord with a melody fragment",
	Long: `Analyze one chord symbol against a melody fragment and print the
mode ranking and per-note function tags.

Examples:
  harmonia analyze D7b9b13 --notes "F#,A,C,Eb,Bb"
  harmonia analyze Cmaj7 --notes "E B D" --key G
  harmonia analyze G7 -n "F#,A,C,D" --debug 3`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive analysis loop",
	Long: `Read chord/melody lines from stdin and analyze each one.

Input format:  <chord>: note1, note2, ...
Type 'debug=N' (0..5) to change diagnostic verbosity, 'quit' to exit.

Example:
  harmonia repl --key F`,
	RunE: runRepl,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP analysis API",
	Long: `Start the REST API exposing analysis, chord parsing, mode catalog
and scale endpoints.

Example:
  harmonia serve --port 8080`,
	RunE: runServe,
}

var (
	// analyze / repl flags
	notesArg   string
	globalKey  string
	debugLevel int

	// serve flags
	port string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)

	analyzeCmd.Flags().StringVarP(&notesArg, "notes", "n", "", "Melody notes, comma or space separated (required)")
	analyzeCmd.Flags().StringVarP(&globalKey, "key", "k", "C", "Global major key for roman numeral context")
	analyzeCmd.Flags().IntVar(&debugLevel, "debug", 0, "Diagnostic verbosity (0..5)")
	if err := analyzeCmd.MarkFlagRequired("notes"); err != nil {
		log.Fatal(err)
	}

	replCmd.Flags().StringVarP(&globalKey, "key", "k", "C", "Global major key for roman numeral context")
	replCmd.Flags().IntVar(&debugLevel, "debug", 0, "Initial diagnostic verbosity (0..5)")

	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default: PORT env or 8080)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger.SetVerbosity(debugLevel)

	chord := args[0]
	notes := splitNotes(notesArg)
	if len(notes) == 0 {
		return fmt.Errorf("no melody notes given (use --notes \"F#,A,C\")")
	}

	analyzer := theory.NewAnalyzer(globalKey)
	result, err := analyzer.Analyze(chord, notes, "")
	if err != nil {
		return err
	}

	var out strings.Builder
	cli.Render(&out, result)
	fmt.Print(out.String())
	return nil
}

func runRepl(cmd *cobra.Command, args []string) error {
	logger.SetVerbosity(debugLevel)
	analyzer := theory.NewAnalyzer(globalKey)

	fmt.Printf("Global key: %s major. Enter lines like  D7b9b13: F#, A, C, Eb, Bb\n", analyzer.DefaultKey())
	fmt.Println("Commands: debug=N (0..5), quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if lvl, ok := parseDebugCommand(line); ok {
			if lvl < 0 || lvl > 5 {
				fmt.Fprintln(os.Stderr, "debug level must be 0..5")
				continue
			}
			logger.SetVerbosity(lvl)
			fmt.Printf("debug level set to %d\n", lvl)
			continue
		}

		chord, notes, err := cli.ParseLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		result, err := analyzer.Analyze(chord, notes, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		var out strings.Builder
		cli.Render(&out, result)
		fmt.Print(out.String())
	}
	return scanner.Err()
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if port != "" {
		cfg.Port = port
	}
	logger.SetVerbosity(cfg.DebugLevel)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.SetupRouter(cfg, version)
	log.Printf("🚀 Starting server on port %s (global key: %s)", cfg.Port, cfg.GlobalKey)
	return router.Run(":" + cfg.Port)
}

// parseDebugCommand recognizes "debug=N" lines from the repl.
func parseDebugCommand(line string) (int, bool) {
	if !strings.HasPrefix(line, "debug=") {
		return 0, false
	}
	lvl, err := strconv.Atoi(strings.TrimPrefix(line, "debug="))
	if err != nil {
		return 0, false
	}
	return lvl, true
}

func splitNotes(s string) []string {
	var tokens []string
	if strings.Contains(s, ",") {
		tokens = strings.Split(s, ",")
	} else {
		tokens = strings.Fields(s)
	}
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
