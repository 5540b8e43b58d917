// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pdztool/internal/config"
	"pdztool/internal/export"
	"pdztool/pdz"
)

const version = "0.2.0"

var (
	outputDir    string
	outputFormat string
	configPath   string
	verbose      bool
	debug        bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pdztool <file.pdz>",
	Short: "Parse Bruker PDZ files and convert them to JSON and CSV",
	Long: `pdztool decodes Bruker XRF instrument PDZ files (pdz24 and pdz25
dialects) and exports the parsed records as JSON, CSV spectrum tables and
embedded JPEG images.`,
	Args:          cobra.ExactArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			verbose = true
		}
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return errors.Wrap(err, "initializing logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory for parsed files (default current directory)")
	rootCmd.Flags().StringVar(&outputFormat, "format", "", "output format: json, csv or all (default all)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a pdztool.yaml configuration file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output (implies --verbose)")
}

func run(cmd *cobra.Command, filePath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if outputFormat != "" {
		cfg.OutputFormat = outputFormat
	}
	switch cfg.OutputFormat {
	case "json", "csv", "all":
	default:
		return errors.Errorf("unknown output format %q", cfg.OutputFormat)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", filePath)
	}
	baseName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	parser, err := pdz.NewParser(data, pdz.WithLogger(logger))
	if err != nil {
		return errors.Wrapf(err, "parsing %s", filePath)
	}
	logger.Debug("file framed",
		zap.String("dialect", parser.Dialect().String()),
		zap.Int("records", len(parser.Records())),
		zap.Strings("record_names", parser.RecordNames()))

	doc := parser.Parse()

	imagePaths, err := export.WriteImages(doc, cfg.OutputDir, baseName)
	if err != nil {
		return err
	}
	if len(imagePaths) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d image(s) to %s\n", len(imagePaths), cfg.OutputDir)
	}

	if cfg.OutputFormat == "json" || cfg.OutputFormat == "all" {
		path, err := export.WriteJSON(doc, cfg.OutputDir, baseName)
		if err != nil {
			return err
		}
		logger.Debug("json written", zap.String("path", path))
	}
	if cfg.OutputFormat == "csv" || cfg.OutputFormat == "all" {
		path, err := export.WriteCSV(doc, cfg.OutputDir, baseName, export.CSVOptions{
			RecordNames:     cfg.CSV.Records,
			ChannelStartKeV: cfg.CSV.ChannelStartKeV,
		})
		if err != nil {
			return err
		}
		logger.Debug("csv written", zap.String("path", path))
	}

	if verbose {
		printSummary(cmd, parser, doc)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "File %s processed successfully.\n", filePath)
	return nil
}

// printSummary lists the parsed records and their decoded field counts.
func printSummary(cmd *cobra.Command, parser *pdz.Parser, doc *pdz.Document) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n=== File Summary ===\n")
	fmt.Fprintf(out, "Dialect: %s\n", parser.Dialect())
	fmt.Fprintf(out, "Records: %d\n", len(parser.Records()))
	for _, name := range doc.Names() {
		phases := doc.Phases(name)
		if len(phases) == 1 {
			fmt.Fprintf(out, "  %s: %d fields\n", name, phases[0].Len())
			continue
		}
		fmt.Fprintf(out, "  %s: %d phases\n", name, len(phases))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
