package model

import "strings"

// Normalize converts a model identifier to the canonical catalog key for
// its family. For example, "claude-sonnet-4-20250514" becomes
// "claude-sonnet-4", "claude-3-5-sonnet-20241022" becomes
// "claude-3.5-sonnet", and "gpt-5-nano-2025-08-07" becomes "gpt-5-mini".
// Identifiers that are already catalog keys or match no known pattern are
// returned unchanged.
func Normalize(model string) string {
	if _, ok := builtin.entries[model]; ok {
		return model
	}
	lower := strings.ToLower(strings.TrimSpace(model))

	// Claude models
	if strings.Contains(lower, "opus") {
		return "claude-opus-4"
	}
	if strings.Contains(lower, "sonnet") {
		if isClaude35(lower) {
			return "claude-3.5-sonnet"
		}
		return "claude-sonnet-4"
	}
	if strings.Contains(lower, "haiku") {
		if strings.Contains(lower, "haiku-3") || strings.Contains(lower, "-3-haiku") {
			return "claude-3-haiku"
		}
		return "claude-3.5-haiku"
	}

	// GPT models (check gpt-5 before gpt-4o: both start with "gpt")
	if strings.HasPrefix(lower, "gpt-5") {
		if strings.Contains(lower, "-mini") || strings.Contains(lower, "-nano") {
			return "gpt-5-mini"
		}
		return "gpt-5"
	}
	if strings.HasPrefix(lower, "gpt-4o") {
		if strings.Contains(lower, "-mini") {
			return "gpt-4o-mini"
		}
		return "gpt-4o"
	}

	// Gemini models, including "models/gemini-..." resource names
	if strings.Contains(lower, "gemini") {
		if strings.Contains(lower, "flash") {
			return "gemini-2.5-flash"
		}
		return "gemini-2.5-pro"
	}

	return model
}

// isClaude35 reports whether the lowercase identifier names a Claude 3.5
// model ("claude-3.5-..." or the dated "claude-3-5-..." form).
func isClaude35(lower string) bool {
	return strings.Contains(lower, "3.5") || strings.Contains(lower, "3-5")
}
