package services

import (
	"regexp"
	"strings"
)

var (
	codeFencePattern     = regexp.MustCompile("```[a-zA-Z]*")
	trailingCommaPattern = regexp.MustCompile(`,\s*([\]}])`)
	emphasisPattern      = regexp.MustCompile(`\*+`)
	stageCuePattern      = regexp.MustCompile(`\[[^\]]*\]`)
	asidePattern         = regexp.MustCompile(`\([^)]*\)`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// CleanModelJSON normalizes raw model output so a JSON parser can attempt
// it: code fences and surrounding prose are stripped, only the outermost
// [ ... ] span is kept, and trailing commas before ] or } are removed.
// Parse failure is still possible and must be handled by the caller.
func CleanModelJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "[]"
	}

	cleaned = codeFencePattern.ReplaceAllString(cleaned, "")

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start >= 0 && end > start {
		cleaned = cleaned[start : end+1]
	}

	cleaned = trailingCommaPattern.ReplaceAllString(cleaned, "$1")

	return strings.TrimSpace(cleaned)
}

// CleanSpeechText reduces a script to the words meant to be spoken aloud:
// emphasis markup, bracketed stage directions and parenthetical asides are
// removed and whitespace runs collapse to single spaces.
func CleanSpeechText(raw string) string {
	cleaned := emphasisPattern.ReplaceAllString(raw, "")
	cleaned = stageCuePattern.ReplaceAllString(cleaned, "")
	cleaned = asidePattern.ReplaceAllString(cleaned, "")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
