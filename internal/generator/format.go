// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"strings"

	"minimax/internal/models"
)

var (
	rule   = strings.Repeat("=", 80)
	banner = strings.Repeat("🎬", 40)
)

// Format renders one draft as the plain-text block shown on the console.
func Format(r models.ContentResult) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("%s", rule)
	line("CREATOR STYLE: %s", strings.ToUpper(string(r.Style)))
	line("%s", rule)
	line("")

	line("🎣 HOOK:")
	line("   %s", r.Hook)
	line("")

	line("📝 SCRIPT OUTLINE:")
	for _, l := range r.Outline {
		line("   %s", l)
	}
	line("")

	line("💬 CAPTION:")
	for _, l := range strings.Split(r.Caption, "\n") {
		line("   %s", l)
	}
	line("")

	line("📣 CALL-TO-ACTION:")
	line("   %s", r.CTA)
	line("")

	line("🏷️  HASHTAGS:")
	line("   %s", strings.Join(r.Hashtags, " "))
	line("")

	line("🛡️  CONTENT SAFETY:")
	line("   Risk Level: %s", strings.ToUpper(string(r.Safety.RiskLevel)))
	if r.Safety.IsAdLike {
		line("   ⚠️  AD-LIKE CONTENT DETECTED (Score: %.2f)", r.Safety.AdScore)
	}
	if len(r.Safety.Reasons) > 0 {
		line("   Flags:")
		for _, reason := range r.Safety.Reasons {
			line("     - %s", reason)
		}
	}
	if r.Safety.IsSafe() {
		line("   ✅ Content looks safe!")
	}

	return b.String()
}

// FormatReport renders every draft for prompt between a header banner and
// a closing summary.
func FormatReport(prompt string, results []models.ContentResult) string {
	parts := make([]string, 0, len(results)+8)
	parts = append(parts,
		"\n"+banner,
		"MINIMAX - TIKTOK CONTENT GENERATOR",
		banner,
		"\nINPUT PROMPT: "+prompt,
		fmt.Sprintf("\nGenerating content in %d creator style(s)...\n", len(results)),
	)
	for _, r := range results {
		parts = append(parts, Format(r))
	}
	parts = append(parts,
		rule,
		"✨ Content generation complete!",
		fmt.Sprintf("Generated %d unique content variations", len(results)),
		rule,
	)
	return strings.Join(parts, "\n")
}
