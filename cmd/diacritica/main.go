// Package main provides the CLI entrypoint for diacritica.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ldwg/diacritica/internal/analyze"
	"github.com/ldwg/diacritica/internal/classify"
	"github.com/ldwg/diacritica/internal/config"
	"github.com/ldwg/diacritica/internal/model"
	"github.com/ldwg/diacritica/internal/repertoire"
	"github.com/ldwg/diacritica/internal/report"
	"github.com/ldwg/diacritica/internal/scratch"
	"github.com/ldwg/diacritica/internal/ucd"
)

const (
	defaultFormat      = "pdf"
	defaultOccurrences = true
)

var (
	analysisSource    string
	analysisInput     string
	analysisRefresh   bool
	reportOutput      string
	reportFormat      string
	reportColor       bool
	reportOccurrences bool
	reportFont        string
	reportFontBold    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "diacritica",
		Short:         "Latin script diacritics analyzer",
		Long:          "Analyzes the Latin script Root Zone LGR repertoire for code points that canonically decompose to an ASCII base letter plus combining diacritical marks, and renders a structured report.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAnalyzeCmd,
	}

	rootCmd.Flags().StringVar(&analysisSource, "source", repertoire.DefaultSourceURL, "LGR page URL")
	rootCmd.Flags().StringVar(&analysisInput, "input", "", "local LGR HTML file (skips the download)")
	rootCmd.Flags().BoolVar(&analysisRefresh, "refresh", false, "re-download the LGR page even if cached")
	rootCmd.Flags().StringVar(&reportOutput, "output", "", "report destination (default: dated PDF name, or stdout for text)")
	rootCmd.Flags().StringVar(&reportFormat, "format", defaultFormat, "report format: pdf or text")
	rootCmd.Flags().BoolVar(&reportColor, "color", false, "colorize text output")
	rootCmd.Flags().BoolVar(&reportOccurrences, "occurrences", defaultOccurrences, "include the fixed LGR sequence table")
	rootCmd.Flags().StringVar(&reportFont, "font", "", "TTF font for PDF output (full Unicode coverage)")
	rootCmd.Flags().StringVar(&reportFontBold, "font-bold", "", "bold TTF font for PDF output")

	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "source", &analysisSource, fileCfg.Analysis.Source)
	applyStringConfig(cmd, "input", &analysisInput, fileCfg.Analysis.Input)
	applyBoolConfig(cmd, "refresh", &analysisRefresh, fileCfg.Analysis.Refresh)
	applyStringConfig(cmd, "output", &reportOutput, fileCfg.Report.Output)
	applyStringConfig(cmd, "format", &reportFormat, fileCfg.Report.Format)
	applyBoolConfig(cmd, "color", &reportColor, fileCfg.Report.Color)
	applyBoolConfig(cmd, "occurrences", &reportOccurrences, fileCfg.Report.Occurrences)
	applyStringConfig(cmd, "font", &reportFont, fileCfg.Report.Font)
	applyStringConfig(cmd, "font-bold", &reportFontBold, fileCfg.Report.FontBold)

	cfg := model.Config{
		SourceURL:   analysisSource,
		InputPath:   analysisInput,
		OutputPath:  reportOutput,
		Format:      strings.ToLower(strings.TrimSpace(reportFormat)),
		Refresh:     analysisRefresh,
		Color:       reportColor,
		Occurrences: reportOccurrences,
		FontPath:    reportFont,
		FontBold:    reportFontBold,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if cfg.OutputPath == "" && cfg.Format == "pdf" {
		cfg.OutputPath = fmt.Sprintf("diacritics-report-%s.pdf", time.Now().Format("2006-01-02"))
	}

	ctx := cmd.Context()
	candidates, sourceDesc, err := loadRepertoire(ctx, cfg)
	if err != nil {
		return err
	}
	logErrf("Found %d unique candidate code points\n", len(candidates))

	src, err := ucd.Load()
	if err != nil {
		return fmt.Errorf("failed to open character database: %w", err)
	}

	st, err := scratch.Open()
	if err != nil {
		return fmt.Errorf("failed to open scratch store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close scratch store: %v\n", cerr)
		}
	}()

	result, err := analyze.Run(ctx, src, candidates, st, sourceDesc)
	if err != nil {
		return err
	}
	logErrf("Found %d Latin characters with ASCII base + diacritics\n", result.Summary.Qualifying)

	if err := emit(cmd, result, src, cfg); err != nil {
		return err
	}
	return nil
}

func loadRepertoire(ctx context.Context, cfg model.Config) ([]rune, string, error) {
	if cfg.InputPath != "" {
		candidates, err := repertoire.ExtractFile(cfg.InputPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load repertoire: %w", err)
		}
		return candidates, cfg.InputPath, nil
	}

	logErrf("Fetching data from %s...\n", cfg.SourceURL)
	path, cached, err := repertoire.Fetch(ctx, cfg.SourceURL, config.DefaultCacheDir(), cfg.Refresh)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch LGR page: %w", err)
	}
	if cached {
		logErrf("Using cached copy %s\n", filepath.Base(path))
	}
	candidates, err := repertoire.ExtractFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load repertoire: %w", err)
	}
	return candidates, cfg.SourceURL, nil
}

func emit(cmd *cobra.Command, result model.AnalysisResult, src ucd.Source, cfg model.Config) error {
	switch cfg.Format {
	case "pdf":
		opts := report.PDFOptions{
			FontPath:     cfg.FontPath,
			FontBoldPath: cfg.FontBold,
			Occurrences:  cfg.Occurrences,
		}
		if err := report.RenderPDF(cfg.OutputPath, result, src, opts); err != nil {
			return err
		}
		logErrf("Report saved to %s\n", cfg.OutputPath)
		return nil
	case "text":
		opts := report.TextOptions{Color: cfg.Color, Occurrences: cfg.Occurrences}
		if cfg.OutputPath == "" {
			return report.RenderText(cmd.OutOrStdout(), result, src, opts)
		}
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		// No ANSI color and a fixed width when writing to a file.
		opts = report.TextOptions{Occurrences: cfg.Occurrences, Width: report.FileWidth}
		if err := report.RenderText(f, result, src, opts); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close report file: %w", err)
		}
		logErrf("Report saved to %s\n", cfg.OutputPath)
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected pdf or text)", cfg.Format)
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <codepoint|character>",
		Short: "Classify a single code point",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspectCmd,
	}
}

func runInspectCmd(cmd *cobra.Command, args []string) error {
	cp, err := parseCodePoint(args[0])
	if err != nil {
		return err
	}

	src, err := ucd.Load()
	if err != nil {
		return fmt.Errorf("failed to open character database: %w", err)
	}
	rec, err := classify.New(src).Classify(cp)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lines := []string{
		fmt.Sprintf("Code point: U+%04X (%s)", rec.CodePoint, string(rec.CodePoint)),
		fmt.Sprintf("Name: %s", rec.Meta.Name),
		fmt.Sprintf("Category: %s", rec.Meta.Category),
		fmt.Sprintf("Script: %s", rec.Meta.Script),
	}
	if len(rec.CanonicalDecomposition) == 0 {
		lines = append(lines, "Canonical decomposition: none")
	} else {
		lines = append(lines, fmt.Sprintf("Canonical decomposition: %s", report.DetailLine(src, rec.CanonicalDecomposition)))
	}
	if rec.Qualifying {
		lines = append(lines, fmt.Sprintf("Qualifying: yes (%d diacritic marks)", rec.DiacriticCount))
	} else {
		lines = append(lines, "Qualifying: no")
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// parseCodePoint accepts "U+00E9", "0x00E9", a bare hex number, or a single
// character.
func parseCodePoint(arg string) (rune, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return 0, fmt.Errorf("code point argument is empty")
	}
	if utf8.RuneCountInString(arg) == 1 {
		r, _ := utf8.DecodeRuneInString(arg)
		return r, nil
	}
	hex := arg
	switch {
	case strings.HasPrefix(arg, "U+"), strings.HasPrefix(arg, "u+"):
		hex = arg[2:]
	case strings.HasPrefix(arg, "0x"), strings.HasPrefix(arg, "0X"):
		hex = arg[2:]
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", arg, err)
	}
	return rune(value), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# diacritica configuration
# Uncomment a value to enable it. CLI flags override config values.

[analysis]
# source = %q
# input = ""              # Local LGR HTML file (skips the download)
# refresh = false         # Re-download the LGR page even if cached

[report]
# output = ""             # Report destination (default: dated PDF name)
# format = %q             # pdf or text
# color = false           # Colorize text output
# occurrences = %t        # Include the fixed LGR sequence table
# font = ""               # TTF font for PDF output
# font-bold = ""          # Bold TTF font for PDF output
`,
		repertoire.DefaultSourceURL,
		defaultFormat,
		defaultOccurrences,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Format != "pdf" && cfg.Format != "text" {
		return fmt.Errorf("--format must be pdf or text")
	}
	if cfg.InputPath == "" && cfg.SourceURL == "" {
		return fmt.Errorf("--source or --input is required")
	}
	if cfg.FontBold != "" && cfg.FontPath == "" {
		return fmt.Errorf("--font-bold requires --font")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
