// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"minimax/internal/models"
)

// StyleLabel returns the display label for a style, e.g. "Storytelling".
func StyleLabel(s models.Style) string {
	return cases.Title(language.English).String(string(s))
}

// mdEscaper escapes characters that would otherwise start Markdown
// constructs inside user-supplied text.
var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
)

// Markdown renders the report as a Markdown document: one level-two
// section per style with the outline as a numbered list and the safety
// verdict as bullets.
func Markdown(report models.Report) string {
	var b strings.Builder

	b.WriteString("# MiniMax drafts\n\n")
	fmt.Fprintf(&b, "**Prompt:** %s\n\n", mdEscaper.Replace(report.Prompt))
	fmt.Fprintf(&b, "**Drafts:** %d\n", len(report.Results))

	for _, r := range report.Results {
		fmt.Fprintf(&b, "\n## %s\n\n", StyleLabel(r.Style))

		fmt.Fprintf(&b, "**Hook:** %s\n\n", mdEscaper.Replace(r.Hook))

		b.WriteString("**Script outline:**\n\n")
		for i, step := range r.Outline {
			fmt.Fprintf(&b, "%d. %s\n", i+1, mdEscaper.Replace(step))
		}
		b.WriteString("\n")

		fmt.Fprintf(&b, "**Caption:** %s\n\n", mdEscaper.Replace(r.Caption))
		fmt.Fprintf(&b, "**Call to action:** %s\n\n", mdEscaper.Replace(r.CTA))

		tags := make([]string, len(r.Hashtags))
		for i, h := range r.Hashtags {
			tags[i] = "`" + strings.ReplaceAll(h, "`", "") + "`"
		}
		fmt.Fprintf(&b, "**Hashtags:** %s\n\n", strings.Join(tags, " "))

		b.WriteString("**Safety:**\n\n")
		fmt.Fprintf(&b, "- Risk level: %s\n", strings.ToUpper(string(r.Safety.RiskLevel)))
		if r.Safety.IsAdLike {
			fmt.Fprintf(&b, "- Ad-like content detected (score %.2f)\n", r.Safety.AdScore)
		}
		for _, reason := range r.Safety.Reasons {
			fmt.Fprintf(&b, "- %s\n", mdEscaper.Replace(reason))
		}
		if r.Safety.IsSafe() {
			b.WriteString("- Content looks safe\n")
		}
	}

	return b.String()
}
