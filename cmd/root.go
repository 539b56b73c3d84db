package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/notion-page/config"
	"github.com/s0up4200/notion-page/notion"
	"github.com/s0up4200/notion-page/query"
	"github.com/s0up4200/notion-page/render"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger

	// Command flags
	outputFormat string
	queryExpr    string
	logLevel     string
)

// rootCmd fetches a page and prints it
var rootCmd = &cobra.Command{
	Use:   "notion-page [page-id]",
	Short: "Fetch a Notion page and print it",
	Long: `notion-page fetches a single page from the Notion API using the
NOTION_API_KEY environment variable and prints the response, pretty-printed
when it is JSON.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: initializeApp,
	RunE:              runFetch,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format (json, yaml)")
	rootCmd.Flags().StringVarP(&queryExpr, "query", "q", "", "expression evaluated against the page, e.g. 'title()'")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp loads the configuration and sets up logging
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(logLevel)
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFormat
	}

	logger = setupLogger(cfg.Logging, os.Stderr)
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	// Set log level
	level := zerolog.WarnLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runFetch(cmd *cobra.Command, args []string) error {
	pageID := resolvePageID(args, cfg.Notion.PageID)

	formatter, err := render.NewFormatter(cfg.Output.Format)
	if err != nil {
		return err
	}

	var q *query.Query
	if queryExpr != "" {
		q, err = query.Compile(queryExpr)
		if err != nil {
			return fmt.Errorf("invalid query: %w", err)
		}
	}

	logger.Info().Str("page_id", pageID).Msg("Fetching page")

	client, err := notion.NewClient(cfg.Notion.APIKey, logger,
		notion.WithBaseURL(cfg.Notion.BaseURL),
		notion.WithTimeout(cfg.Notion.Timeout),
	)
	if err != nil {
		return fmt.Errorf("notion API call failed: %w", err)
	}
	defer client.Close()

	resp, err := client.GetPage(context.Background(), pageID)
	if err != nil {
		return fmt.Errorf("notion API call failed: %w", err)
	}

	text, err := formatResult(formatter, q, resp)
	if err != nil {
		return err
	}

	return render.WriteResult(cmd.OutOrStdout(), text)
}

// formatResult renders the page, or the query result when a query is set
func formatResult(f *render.Formatter, q *query.Query, resp *notion.Response) (string, error) {
	if q == nil {
		return f.FormatPage(resp)
	}

	if !resp.JSON {
		return "", fmt.Errorf("cannot query a non-JSON response")
	}

	result, err := q.Evaluate(resp.Value)
	if err != nil {
		return "", err
	}
	return f.FormatValue(result)
}

// resolvePageID picks the page to fetch: argument first, then the configured default
func resolvePageID(args []string, fallback string) string {
	if len(args) > 0 {
		if id := strings.TrimSpace(args[0]); id != "" {
			return id
		}
	}
	if fallback != "" {
		return fallback
	}
	return config.DefaultPageID
}

// writeLine is used by subcommands for plain output
func writeLine(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format+"\n", a...)
}
