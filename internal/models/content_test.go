package models

import "testing"

// TestSafetyFlagIsSafe verifies that only SAFE, non ad-like flags count as safe.
func TestSafetyFlagIsSafe(t *testing.T) {
	tests := []struct {
		name string
		flag SafetyFlag
		want bool
	}{
		{name: "safe", flag: SafetyFlag{RiskLevel: RiskSafe}, want: true},
		{name: "safe but ad-like", flag: SafetyFlag{RiskLevel: RiskSafe, IsAdLike: true}, want: false},
		{name: "caution", flag: SafetyFlag{RiskLevel: RiskCaution}, want: false},
		{name: "high risk", flag: SafetyFlag{RiskLevel: RiskHighRisk}, want: false},
		{name: "empty level", flag: SafetyFlag{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flag.IsSafe(); got != tt.want {
				t.Errorf("SafetyFlag%+v.IsSafe() = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

// TestRiskLevelConstants verifies the wire values of the risk levels.
func TestRiskLevelConstants(t *testing.T) {
	tests := []struct {
		level    RiskLevel
		expected string
	}{
		{RiskSafe, "safe"},
		{RiskCaution, "caution"},
		{RiskHighRisk, "high_risk"},
	}

	for _, tt := range tests {
		if string(tt.level) != tt.expected {
			t.Errorf("RiskLevel = %q, want %q", string(tt.level), tt.expected)
		}
	}
}

// TestNewReport checks that every report gets its own run ID.
func TestNewReport(t *testing.T) {
	results := []ContentResult{{Style: StyleTrendy}}

	a := NewReport("prompt", results)
	b := NewReport("prompt", results)

	if a.RunID == b.RunID {
		t.Errorf("expected distinct run IDs, both were %s", a.RunID)
	}
	if a.Prompt != "prompt" {
		t.Errorf("Prompt = %q, want %q", a.Prompt, "prompt")
	}
	if len(a.Results) != 1 || a.Results[0].Style != StyleTrendy {
		t.Errorf("Results = %+v, want one trendy result", a.Results)
	}
	if a.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be set")
	}
}
