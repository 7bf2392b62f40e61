// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel classifies how risky a generated draft looks.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskCaution  RiskLevel = "caution"
	RiskHighRisk RiskLevel = "high_risk"
)

// SafetyFlag is the outcome of scoring a draft's text. A new flag is
// created for every scoring call.
type SafetyFlag struct {
	RiskLevel RiskLevel `json:"risk_level" yaml:"risk_level"`
	Reasons   []string  `json:"reasons" yaml:"reasons"`
	IsAdLike  bool      `json:"is_ad_like" yaml:"is_ad_like"`
	AdScore   float64   `json:"ad_score" yaml:"ad_score"` // 0..1
}

// IsSafe returns true when the flag is SAFE and carries no ad-like marker.
func (f SafetyFlag) IsSafe() bool {
	return f.RiskLevel == RiskSafe && !f.IsAdLike
}

// ContentResult is one stylized post draft generated from a prompt.
type ContentResult struct {
	Style    Style      `json:"style" yaml:"style"`
	Hook     string     `json:"hook" yaml:"hook"`
	Outline  []string   `json:"script_outline" yaml:"script_outline"`
	Caption  string     `json:"caption" yaml:"caption"`
	CTA      string     `json:"call_to_action" yaml:"call_to_action"`
	Hashtags []string   `json:"hashtags" yaml:"hashtags"`
	Safety   SafetyFlag `json:"safety" yaml:"safety"`
}

// Report groups the drafts produced by a single generation run.
type Report struct {
	RunID       uuid.UUID       `json:"run_id" yaml:"run_id"`
	Prompt      string          `json:"prompt" yaml:"prompt"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Results     []ContentResult `json:"results" yaml:"results"`
}

// NewReport wraps results in a Report with a fresh run ID.
func NewReport(prompt string, results []ContentResult) Report {
	return Report{
		RunID:       uuid.New(),
		Prompt:      prompt,
		GeneratedAt: time.Now().UTC(),
		Results:     results,
	}
}
