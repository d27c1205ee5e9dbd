package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"zoomdigest/internal/charset"
	"zoomdigest/internal/logging"
)

type detectOutput struct {
	Path       string `json:"path"`
	Charset    string `json:"charset"`
	Language   string `json:"language,omitempty"`
	Confidence int    `json:"confidence"`
}

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "detect <export.csv>",
		Short: "Report the character encoding detected for an export",
		Args:  cobra.ExactArgs(1),
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

			contents, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			detector := charset.NewDetector(charset.Options{
				SampleBytes:   cfg.Detection.SampleBytes,
				MinConfidence: cfg.Detection.MinConfidence,
			})
			detection, err := detector.Detect(contents)
			if err != nil {
				logging.ErrorWithContext(logger, "encoding detection failed", "encoding_detection",
					logging.String(logging.FieldInput, args[0]),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "re-export the report or convert it to UTF-8"),
				)
				return fmt.Errorf("detect encoding: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, detectOutput{
					Path:       args[0],
					Charset:    detection.Charset,
					Language:   detection.Language,
					Confidence: detection.Confidence,
				})
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			kind := statusOK
			if detection.Confidence < 50 {
				kind = statusWarn
			}
			fmt.Fprintln(out, renderStatusLine("Encoding", kind, detection.Charset, colorize))
			fmt.Fprintln(out, renderStatusLine("Confidence", kind, strconv.Itoa(detection.Confidence)+"%", colorize))
			if detection.Language != "" {
				fmt.Fprintln(out, renderStatusLine("Language", statusInfo, detection.Language, colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
