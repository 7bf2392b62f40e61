// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strings"

// Style is the creator tone a draft is written in. It keys every
// per-style template table.
type Style string

const (
	StyleEducational   Style = "educational"
	StyleEntertainment Style = "entertainment"
	StyleLifestyle     Style = "lifestyle"
	StyleMotivational  Style = "motivational"
	StyleTrendy        Style = "trendy"
	StyleStorytelling  Style = "storytelling"
)

// StyleAll is the sentinel style name that selects every style.
const StyleAll = "all"

// AllStyles returns every style in declaration order. The returned slice
// is a fresh copy and may be modified by the caller.
func AllStyles() []Style {
	return []Style{
		StyleEducational,
		StyleEntertainment,
		StyleLifestyle,
		StyleMotivational,
		StyleTrendy,
		StyleStorytelling,
	}
}

// IsValid reports whether s is one of the six known styles.
func (s Style) IsValid() bool {
	switch s {
	case StyleEducational, StyleEntertainment, StyleLifestyle,
		StyleMotivational, StyleTrendy, StyleStorytelling:
		return true
	}
	return false
}

// ParseStyle matches a style name case-insensitively, ignoring
// surrounding whitespace.
func ParseStyle(name string) (Style, bool) {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	if !s.IsValid() {
		return "", false
	}
	return s, true
}

// ParseStyles parses a comma-separated list of style names.
//
// A nil styles slice means "all styles": it is returned for empty input,
// when the list contains the "all" sentinel, and when no name could be
// recognised. Unrecognised names are reported in unknown (lower-cased,
// trimmed) so the caller can warn about them.
func ParseStyles(input string) (styles []Style, unknown []string) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	names := strings.Split(input, ",")
	for i, n := range names {
		names[i] = strings.ToLower(strings.TrimSpace(n))
	}
	for _, n := range names {
		if n == StyleAll {
			return nil, nil
		}
	}

	for _, n := range names {
		if s, ok := ParseStyle(n); ok {
			styles = append(styles, s)
			continue
		}
		unknown = append(unknown, n)
	}
	if len(styles) == 0 {
		return nil, unknown
	}
	return styles, unknown
}
