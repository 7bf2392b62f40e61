// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"minimax/internal/models"
)

const (
	hookTopicShortWords = 3  // prompts up to this many words are used whole
	hookTopicWords      = 4  // otherwise the hook topic is the first N words
	captionTopicRunes   = 50 // caption topics are cut at this many characters
	baseHashtagCount    = 5
	topicHashtagCount   = 3
	topicHashtagMinLen  = 5 // topic words must be longer than 4 letters
	maxHashtags         = 8
)

// Chooser returns a uniformly distributed index in [0, n). n is always > 0.
type Chooser func(n int) int

// HookFor builds the opening line for style, picking one of the style's
// templates with pick.
func HookFor(prompt string, style models.Style, pick Chooser) string {
	templates := hookTemplates[style]
	if len(templates) == 0 {
		return ""
	}
	return fmt.Sprintf(templates[pick(len(templates))], hookTopic(prompt))
}

// hookTopic returns the prompt unchanged when it is short, otherwise its
// first four words joined by single spaces.
func hookTopic(prompt string) string {
	words := strings.Fields(prompt)
	if len(words) <= hookTopicShortWords {
		return prompt
	}
	return strings.Join(words[:hookTopicWords], " ")
}

// OutlineFor returns the six-beat script outline for style. The outline is
// fixed per style; prompt does not influence it.
func OutlineFor(_ string, style models.Style) []string {
	row := outlines[style]
	out := make([]string, len(row))
	copy(out, row)
	return out
}

// CaptionFor fills the style's caption template with the first 50
// characters of prompt, marking truncation with "...".
func CaptionFor(prompt string, style models.Style) string {
	tmpl, ok := captionTemplates[style]
	if !ok {
		return ""
	}
	topic := prompt
	if utf8.RuneCountInString(prompt) > captionTopicRunes {
		topic = string([]rune(prompt)[:captionTopicRunes]) + "..."
	}
	return fmt.Sprintf(tmpl, topic)
}

// CTAFor picks one of the style's call-to-action phrases.
func CTAFor(style models.Style, pick Chooser) string {
	ctas := ctaTemplates[style]
	if len(ctas) == 0 {
		return ""
	}
	return ctas[pick(len(ctas))]
}

// HashtagsFor combines the style's first five base tags with up to three
// topic words from prompt. Tags are de-duplicated in first-seen order,
// capped at eight and prefixed with '#'.
func HashtagsFor(prompt string, style models.Style) []string {
	base := baseHashtags[style]
	tags := make([]string, 0, baseHashtagCount+topicHashtagCount)
	tags = append(tags, base[:min(len(base), baseHashtagCount)]...)
	tags = append(tags, topicWords(prompt)...)

	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, maxHashtags)
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, "#"+tag)
		if len(out) == maxHashtags {
			break
		}
	}
	return out
}

// topicWords extracts the first three lower-cased, purely alphabetic words
// longer than four letters, after trailing punctuation is stripped.
func topicWords(prompt string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(prompt)) {
		w = strings.TrimRight(w, ".,!?")
		if utf8.RuneCountInString(w) < topicHashtagMinLen || !isAlpha(w) {
			continue
		}
		words = append(words, w)
		if len(words) == topicHashtagCount {
			break
		}
	}
	return words
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
