// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package safety flags generated drafts that read like advertising or use
// sensational claims. Scoring is a keyword heuristic: no model is involved
// and the result depends only on the input text.
package safety

import (
	"fmt"
	"regexp"
	"strings"

	"minimax/internal/models"
)

// adKeywords are promotional phrases. Each counts once, however often it occurs.
var adKeywords = []string{
	"buy now", "click link", "promo code", "discount", "limited time",
	"order now", "shop now", "get yours", "exclusive deal", "sale",
	"sponsored", "partnership", "affiliate", "use code",
}

// riskyPatterns are phrases associated with sensational or deceptive claims.
var riskyPatterns = []string{
	"guaranteed results", "get rich quick", "lose weight fast",
	"miracle cure", "secret trick", "doctors hate", "one weird trick",
	"shocking truth", "unbelievable", "you won't believe",
}

// Classification thresholds.
const (
	highRiskPatterns = 3
	highRiskAdScore  = 0.5
	cautionAdScore   = 0.2
	maxListedRisky   = 3
)

// Checker scores draft text. The pipeline depends on this interface so a
// different scorer can be swapped in.
type Checker interface {
	// Check returns a fresh SafetyFlag for text.
	Check(text string) models.SafetyFlag
}

// KeywordScorer is the default Checker backed by Score.
type KeywordScorer struct{}

// Check implements Checker.
func (KeywordScorer) Check(text string) models.SafetyFlag {
	return Score(text)
}

// Score classifies text against the static keyword lists. Matching is
// case-insensitive substring containment, not word-boundary matching.
func Score(text string) models.SafetyFlag {
	lower := strings.ToLower(text)
	flag := models.SafetyFlag{
		RiskLevel: models.RiskSafe,
		Reasons:   []string{},
	}

	adMatches := 0
	for _, kw := range adKeywords {
		if strings.Contains(lower, kw) {
			adMatches++
		}
	}
	if adMatches > 0 {
		flag.IsAdLike = true
		flag.AdScore = min(float64(adMatches)/float64(len(adKeywords)), 1.0)
		flag.Reasons = append(flag.Reasons, fmt.Sprintf("Contains %d promotional keywords", adMatches))
	}

	var risky []string
	for _, p := range riskyPatterns {
		if strings.Contains(lower, p) {
			risky = append(risky, p)
		}
	}
	if len(risky) > 0 {
		listed := risky[:min(len(risky), maxListedRisky)]
		flag.Reasons = append(flag.Reasons, "Contains risky patterns: "+strings.Join(listed, ", "))
	}

	switch {
	case len(risky) >= highRiskPatterns || flag.AdScore > highRiskAdScore:
		flag.RiskLevel = models.RiskHighRisk
	case len(risky) > 0 || flag.AdScore > cautionAdScore:
		flag.RiskLevel = models.RiskCaution
	}

	return flag
}

// toneDownRules soften direct sales language. Applied in order.
var toneDownRules = []struct {
	re   *regexp.Regexp
	with string
}{
	{regexp.MustCompile(`(?i)buy now`), "check it out"},
	{regexp.MustCompile(`(?i)order today`), "available now"},
	{regexp.MustCompile(`(?i)use my code`), "link in bio"},
	{regexp.MustCompile(`(?i)#ad\b`), ""},
}

// ToneDown rewrites the most obvious sales phrases so a draft reads less
// like an advert. Text without such phrases is returned unchanged.
func ToneDown(text string) string {
	for _, r := range toneDownRules {
		text = r.re.ReplaceAllString(text, r.with)
	}
	return text
}
