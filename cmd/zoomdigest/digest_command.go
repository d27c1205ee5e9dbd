package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"zoomdigest/internal/attendees"
	"zoomdigest/internal/charset"
	"zoomdigest/internal/config"
	"zoomdigest/internal/logging"
	"zoomdigest/internal/report"
	"zoomdigest/internal/textutil"
)

const formatTable = "table"

type digestFlags struct {
	skipRows  int
	date      string
	clock     string
	cutoff    string
	output    string
	format    string
	bom       bool
	preview   bool
	showStats bool
	dryRun    bool
}

func newDigestCommand(ctx *commandContext) *cobra.Command {
	var flags digestFlags

	cmd := &cobra.Command{
		Use:   "digest <export.csv>",
		Short: "Keep guests whose final leave time is at or after the cutoff",
		Long: "Reads a Zoom webinar attendee report, keeps each email's latest row, and writes\n" +
			"the guests who left at or after the cutoff. Use \"-\" to read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, closeLog, err := ctx.newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeLog()
			input := args[0]
			logger = logger.With(logging.String(logging.FieldInput, input))

			if !cmd.Flags().Changed("skip-rows") {
				flags.skipRows = cfg.Digest.SkipRows
			}
			if !cmd.Flags().Changed("bom") {
				flags.bom = cfg.Output.BOM
			}
			if strings.TrimSpace(flags.format) == "" {
				flags.format = cfg.Output.Format
			}

			parser := newTimestampParser(cfg)
			cutoff, err := resolveCutoff(parser, cfg, flags)
			if err != nil {
				return err
			}

			contents, err := readInput(cmd, input)
			if err != nil {
				return err
			}
			logger.Debug("digest starting",
				logging.Int("skip_rows", flags.skipRows),
				logging.Time("cutoff", cutoff),
				logging.Bool("dry_run", flags.dryRun),
			)

			digester := attendees.New(attendees.Options{
				Detector: charset.NewDetector(charset.Options{
					SampleBytes:   cfg.Detection.SampleBytes,
					MinConfidence: cfg.Detection.MinConfidence,
				}),
				Timestamps:  parser,
				GuestValues: cfg.Digest.GuestValues,
				Logger:      logger,
			})

			started := time.Now()
			result, err := digester.Run(attendees.Request{
				Contents:       contents,
				HeaderSkipRows: flags.skipRows,
				Cutoff:         cutoff,
			})
			if err != nil {
				return explainDigestError(err, flags.skipRows)
			}
			logger.Debug("digest finished", logging.Duration("elapsed", time.Since(started)))

			return emitDigest(cmd, cfg, input, flags, result)
		},
	}

	cmd.Flags().IntVar(&flags.skipRows, "skip-rows", 0, "Lines before the attendee header row (default from digest.skip_rows)")
	cmd.Flags().StringVar(&flags.date, "date", "", "Cutoff date, YYYY-MM-DD (default from digest.cutoff_date)")
	cmd.Flags().StringVar(&flags.clock, "time", "", "Cutoff time of day, HH:MM[:SS] (default from digest.cutoff_time)")
	cmd.Flags().StringVar(&flags.cutoff, "cutoff", "", "Cutoff as a single date-time; overrides --date and --time")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output path, or - for stdout (default <input>-digested.<ext>)")
	cmd.Flags().StringVar(&flags.format, "format", "", "Output format: csv, xlsx, json or table (default from output.format)")
	cmd.Flags().BoolVar(&flags.bom, "bom", false, "Prefix CSV output with a UTF-8 byte order mark")
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "Print the digest as a table after writing it")
	cmd.Flags().BoolVar(&flags.showStats, "stats", false, "Print per-stage row counts")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Run the digest without writing output")
	return cmd
}

func readInput(cmd *cobra.Command, input string) ([]byte, error) {
	if input == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return data, nil
}

func newTimestampParser(cfg *config.Config) *attendees.TimestampParser {
	layouts := append(append([]string(nil), cfg.Digest.TimestampLayouts...), attendees.DefaultLayouts...)
	return attendees.NewTimestampParser(layouts, cfg.Location(), cfg.Digest.LenientTimestamps)
}

// resolveCutoff prefers --cutoff, then --date/--time, then the configured
// default. A flag date without --time falls back to the configured time.
func resolveCutoff(parser *attendees.TimestampParser, cfg *config.Config, flags digestFlags) (time.Time, error) {
	if v := strings.TrimSpace(flags.cutoff); v != "" {
		return parser.ParseCutoffValue(v)
	}
	date := strings.TrimSpace(flags.date)
	if date == "" {
		date = cfg.Digest.CutoffDate
	}
	clock := strings.TrimSpace(flags.clock)
	if clock == "" {
		clock = cfg.Digest.CutoffTime
	}
	if date == "" {
		return time.Time{}, &attendees.CutoffParseError{Value: clock, Err: errors.New("no cutoff date given; pass --date or set digest.cutoff_date")}
	}
	return parser.ParseCutoff(date, clock)
}

func explainDigestError(err error, skipRows int) error {
	var schemaErr *attendees.SchemaError
	if errors.As(err, &schemaErr) {
		return fmt.Errorf("%w (header searched after skipping %d line(s); adjust --skip-rows)", err, skipRows)
	}
	return err
}

func emitDigest(cmd *cobra.Command, cfg *config.Config, input string, flags digestFlags, result *attendees.Result) error {
	stdout := cmd.OutOrStdout()
	info := stdout
	colorize := shouldColorize(stdout)

	if strings.EqualFold(flags.format, formatTable) {
		fmt.Fprintln(stdout, renderDigestTable(result.Records))
	} else if !flags.dryRun {
		format, err := report.ParseFormat(flags.format)
		if err != nil {
			return err
		}
		target := outputPath(cfg, input, flags.output, format)
		if target == "-" {
			if format.Binary() && isTerminal(stdout) {
				return fmt.Errorf("refusing to write %s to a terminal; pass --output <file>", format)
			}
			info = cmd.ErrOrStderr()
			colorize = shouldColorize(info)
		}
		opts := report.Options{Format: format, BOM: flags.bom}
		if err := report.Write(target, stdout, result.Records, opts); err != nil {
			return err
		}
		if target != "-" {
			fmt.Fprintln(info, renderStatusLine("Digest", statusOK,
				fmt.Sprintf("wrote %d attendee(s) to %s", len(result.Records), target), colorize))
		}
	}

	if n := result.Stats.UnparsedLeaveTimes; n > 0 {
		fmt.Fprintln(info, renderStatusLine("Leave times", statusWarn,
			fmt.Sprintf("%d row(s) had unreadable leave times and were excluded", n), colorize))
	}
	if flags.preview && !strings.EqualFold(flags.format, formatTable) {
		fmt.Fprintln(info, renderDigestTable(result.Records))
	}
	if flags.showStats {
		fmt.Fprintln(info, renderStatsTable(result.Stats))
	}
	return nil
}

// outputPath resolves where the digest goes. Stdin input without -o writes
// to stdout.
func outputPath(cfg *config.Config, input, flagValue string, format report.Format) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if input == "-" {
		return "-"
	}
	dir := cfg.Output.Dir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, textutil.DigestFileName(input, cfg.Output.Suffix, format.Extension()))
}
