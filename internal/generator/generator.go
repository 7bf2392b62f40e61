// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator turns a free-text prompt into stylized social-media post
// drafts. Every field comes from a fixed per-style table; the only
// variation is which hook and call-to-action template gets picked.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"

	"minimax/internal/models"
	"minimax/internal/safety"
)

// ErrEmptyPrompt is returned when the prompt is empty or whitespace only.
var ErrEmptyPrompt = errors.New("generator: prompt cannot be empty")

// Generator runs the draft pipeline. It is immutable after New and safe
// for concurrent use, provided any Chooser passed via WithChooser is too.
type Generator struct {
	pick     Chooser
	seed     uint64
	checker  safety.Checker
	toneDown bool
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithChooser replaces the random template selection. Mostly useful in
// tests to make hook and CTA choice deterministic.
func WithChooser(pick Chooser) Option {
	return func(g *Generator) { g.pick = pick }
}

// WithSeed makes selection reproducible: every Generate call draws from a
// fresh PCG source seeded with seed. Zero keeps the default random source.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.seed = seed }
}

// WithChecker replaces the keyword safety scorer.
func WithChecker(c safety.Checker) Option {
	return func(g *Generator) { g.checker = c }
}

// WithToneDown rewrites sales phrases in drafts that score as ad-like and
// scores them again.
func WithToneDown(enabled bool) Option {
	return func(g *Generator) { g.toneDown = enabled }
}

// WithLogger sets the logger used for warnings and debug output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New creates a Generator. Without options it picks templates with the
// global math/rand/v2 source and scores drafts with safety.KeywordScorer.
func New(opts ...Option) *Generator {
	g := &Generator{
		checker: safety.KeywordScorer{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces one draft per style, in the order given. With no
// styles it covers every style in declaration order. Styles outside the
// known set are skipped with a warning.
func (g *Generator) Generate(ctx context.Context, prompt string, styles ...models.Style) ([]models.ContentResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	if len(styles) == 0 {
		styles = models.AllStyles()
	}

	pick := g.chooser()
	results := make([]models.ContentResult, 0, len(styles))
	for _, style := range styles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !style.IsValid() {
			g.logger.Warn("unknown style, skipping", "style", string(style))
			continue
		}
		results = append(results, g.build(prompt, style, pick))
	}

	g.logger.Debug("drafts generated", "styles", len(results), "prompt_len", len(prompt))
	return results, nil
}

// Report runs Generate and wraps the drafts in a models.Report.
func (g *Generator) Report(ctx context.Context, prompt string, styles ...models.Style) (models.Report, error) {
	results, err := g.Generate(ctx, prompt, styles...)
	if err != nil {
		return models.Report{}, err
	}
	report := models.NewReport(prompt, results)
	g.logger.Debug("report assembled", "run_id", report.RunID.String())
	return report, nil
}

// build assembles a single draft and scores hook, caption and CTA together.
func (g *Generator) build(prompt string, style models.Style, pick Chooser) models.ContentResult {
	res := models.ContentResult{
		Style:    style,
		Hook:     HookFor(prompt, style, pick),
		Outline:  OutlineFor(prompt, style),
		Caption:  CaptionFor(prompt, style),
		CTA:      CTAFor(style, pick),
		Hashtags: HashtagsFor(prompt, style),
	}
	res.Safety = g.checker.Check(scoredText(res))

	if g.toneDown && res.Safety.IsAdLike {
		res.Hook = safety.ToneDown(res.Hook)
		res.Caption = safety.ToneDown(res.Caption)
		res.CTA = safety.ToneDown(res.CTA)
		res.Safety = g.checker.Check(scoredText(res))
		g.logger.Debug("toned down ad-like draft", "style", string(style), "risk", string(res.Safety.RiskLevel))
	}
	return res
}

func scoredText(r models.ContentResult) string {
	return r.Hook + " " + r.Caption + " " + r.CTA
}

// chooser returns the selection function for one Generate call.
func (g *Generator) chooser() Chooser {
	switch {
	case g.pick != nil:
		return g.pick
	case g.seed != 0:
		return rand.New(rand.NewPCG(g.seed, g.seed)).IntN
	default:
		return rand.IntN
	}
}
