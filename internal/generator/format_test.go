package generator

import (
	"strings"
	"testing"

	"minimax/internal/models"
)

func sampleResult(flag models.SafetyFlag) models.ContentResult {
	return models.ContentResult{
		Style:    models.StyleMotivational,
		Hook:     "Why focus matters more than you think",
		Outline:  OutlineFor("", models.StyleMotivational),
		Caption:  CaptionFor("focus", models.StyleMotivational),
		CTA:      "Comment your goals below!",
		Hashtags: []string{"#fyp", "#focus"},
		Safety:   flag,
	}
}

func TestFormat_Sections(t *testing.T) {
	out := Format(sampleResult(models.SafetyFlag{RiskLevel: models.RiskSafe}))

	for _, marker := range []string{
		"CREATOR STYLE: MOTIVATIONAL",
		"HOOK", "SCRIPT OUTLINE", "CAPTION", "CALL-TO-ACTION", "HASHTAGS", "CONTENT SAFETY",
		"   Why focus matters more than you think",
		"   #fyp #focus",
		"   Risk Level: SAFE",
		"✅ Content looks safe!",
	} {
		if !strings.Contains(out, marker) {
			t.Errorf("Format output missing %q", marker)
		}
	}
	if strings.Contains(out, "AD-LIKE") {
		t.Error("safe draft should not carry the ad-like warning")
	}
	if !strings.HasPrefix(out, strings.Repeat("=", 80)+"\n") {
		t.Error("output should open with an 80-column rule")
	}
}

func TestFormat_CaptionLinesIndented(t *testing.T) {
	out := Format(sampleResult(models.SafetyFlag{RiskLevel: models.RiskSafe}))
	if !strings.Contains(out, "   Your reminder about focus 💪🌟\n   \n   You've got this! Share to inspire others.\n") {
		t.Errorf("caption not rendered line by line:\n%s", out)
	}
}

func TestFormat_Flags(t *testing.T) {
	tests := []struct {
		name        string
		flag        models.SafetyFlag
		contains    []string
		notContains []string
	}{
		{
			name: "ad-like but safe level",
			flag: models.SafetyFlag{
				RiskLevel: models.RiskSafe,
				IsAdLike:  true,
				AdScore:   1.0 / 14.0,
				Reasons:   []string{"Contains 1 promotional keywords"},
			},
			contains:    []string{"⚠️  AD-LIKE CONTENT DETECTED (Score: 0.07)", "   Flags:", "     - Contains 1 promotional keywords"},
			notContains: []string{"looks safe"},
		},
		{
			name: "high risk",
			flag: models.SafetyFlag{
				RiskLevel: models.RiskHighRisk,
				Reasons:   []string{"Contains risky patterns: a, b, c"},
			},
			contains:    []string{"Risk Level: HIGH_RISK", "     - Contains risky patterns: a, b, c"},
			notContains: []string{"looks safe", "AD-LIKE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Format(sampleResult(tt.flag))
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("missing %q in:\n%s", s, out)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(out, s) {
					t.Errorf("unexpected %q in:\n%s", s, out)
				}
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	results := []models.ContentResult{
		sampleResult(models.SafetyFlag{RiskLevel: models.RiskSafe}),
		sampleResult(models.SafetyFlag{RiskLevel: models.RiskCaution}),
	}
	out := FormatReport("focus", results)

	for _, s := range []string{
		"MINIMAX - TIKTOK CONTENT GENERATOR",
		"INPUT PROMPT: focus",
		"Generating content in 2 creator style(s)...",
		"✨ Content generation complete!",
		"Generated 2 unique content variations",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("report missing %q", s)
		}
	}
	if n := strings.Count(out, "CREATOR STYLE:"); n != 2 {
		t.Errorf("report has %d style blocks, want 2", n)
	}
}
