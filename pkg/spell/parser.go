package spell

import (
	"encoding/json"
	"strings"
)

// fallbackTitle is the title used when model output cannot be parsed.
const fallbackTitle = "Your Custom Spell"

// StripCodeFence removes a wrapping Markdown code fence (``` or ```json)
// from the model output, if present. Text without a fence is returned
// trimmed but otherwise untouched.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// Drop the opening fence line (which may carry a language tag).
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		return strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
	}

	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

// Parse converts raw model text into a Spell. Parsing never fails the
// caller: on malformed output it returns a degraded payload carrying the
// original text and a parse_error flag, plus ok=false.
func Parse(raw string) (*Spell, bool) {
	cleaned := StripCodeFence(raw)

	var sp Spell
	if err := json.Unmarshal([]byte(cleaned), &sp); err != nil {
		return &Spell{
			Title:       fallbackTitle,
			RawResponse: raw,
			ParseError:  true,
		}, false
	}

	if sp.Title == "" {
		sp.Title = fallbackTitle
	}
	return &sp, true
}
