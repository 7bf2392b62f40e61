// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives file-system friendly names from prompts.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespace matches runs of spaces, tabs and newlines.
	whitespace = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

const (
	maxFilenameLen   = 80
	minCutPosition   = 20
	fallbackFilename = "minimax-drafts"
)

// Generate creates a lowercase, hyphen-separated slug.
// Example: "My coding journey!" → "my-coding-journey"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Filename returns "<slug>.<ext>" for a prompt. Long slugs are cut to 80
// bytes and then back to the last hyphen so words are not split. Prompts
// with no usable characters fall back to "minimax-drafts".
func Filename(prompt, ext string) string {
	name := Generate(prompt)
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
		if i := strings.LastIndex(name, "-"); i > minCutPosition {
			name = name[:i]
		}
		name = strings.TrimRight(name, "-")
	}
	if name == "" {
		name = fallbackFilename
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return name
	}
	return name + "." + ext
}
