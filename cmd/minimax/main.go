// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the MiniMax command-line tool.
// It loads configuration, turns a prompt into stylized drafts and prints
// or saves them in the requested format.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"minimax/internal/config"
	"minimax/internal/generator"
	"minimax/internal/models"
	"minimax/internal/render"
	"minimax/internal/slug"
)

const version = "1.0.0"

const examples = `  minimax "How to start a morning routine"
  minimax "My coding journey" --styles educational,motivational
  minimax "Cooking hack" --styles all --format markdown
  minimax "Product review" --output results.txt

Available styles:
  educational, entertainment, lifestyle, motivational, trendy, storytelling, all`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Logs go to stderr so stdout carries only the rendered drafts.
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(stderr, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cmd := newRootCmd(cfg, logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, generator.ErrEmptyPrompt) {
			err = errors.New("prompt cannot be empty")
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// options holds the parsed flag values for one invocation.
type options struct {
	styles   string
	output   string
	format   string
	toneDown bool
	seed     uint64
}

// newRootCmd builds the root command. Flag defaults come from cfg.
func newRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	opts := options{
		styles:   cfg.Styles,
		format:   cfg.Format,
		toneDown: cfg.ToneDown,
		seed:     cfg.Seed,
	}

	cmd := &cobra.Command{
		Use:           "minimax <prompt>",
		Short:         "MiniMax - Transform prompts into TikTok-ready content",
		Example:       examples,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd.Context(), cmd.OutOrStdout(), logger, args[0], opts)
		},
	}
	cmd.SetVersionTemplate("MiniMax {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&opts.styles, "styles", "s", opts.styles, "comma-separated list of creator styles")
	flags.StringVarP(&opts.output, "output", "o", "", "file or directory to save results to (default: print to console)")
	flags.StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, yaml, markdown, html")
	flags.BoolVar(&opts.toneDown, "tone-down", opts.toneDown, "rewrite ad-like drafts into softer wording")
	flags.Uint64Var(&opts.seed, "seed", opts.seed, "seed for reproducible template selection (0 = random)")

	return cmd
}

// generate produces the drafts for prompt and writes them to out or to
// the --output path.
func generate(ctx context.Context, out io.Writer, logger *slog.Logger, prompt string, opts options) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	styles, unknown := models.ParseStyles(opts.styles)
	for _, name := range unknown {
		logger.Warn("unknown style, skipping", "style", name)
	}

	genOpts := []generator.Option{
		generator.WithLogger(logger),
		generator.WithToneDown(opts.toneDown),
	}
	if opts.seed != 0 {
		genOpts = append(genOpts, generator.WithSeed(opts.seed))
	}
	gen := generator.New(genOpts...)

	report, err := gen.Report(ctx, prompt, styles...)
	if err != nil {
		return err
	}
	logger.Debug("rendering report",
		"run_id", report.RunID,
		"drafts", len(report.Results),
		"format", format,
	)

	if opts.output == "" {
		return render.Write(out, format, report)
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, format, report); err != nil {
		return err
	}

	path := opts.output
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, slug.Filename(prompt, format.Ext()))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("saving results: %w", err)
	}
	fmt.Fprintf(out, "✅ Results saved to: %s\n", path)
	return nil
}
