// Package gemini wraps the Google Gemini API for text generation,
// multi-turn conversation, and content analysis.
//
// It wraps the google.golang.org/genai SDK. A Client owns one ordered
// conversation transcript; SendTurn re-sends the whole transcript as a
// single flattened prompt on every call rather than using structured
// multi-turn context, so transcripts grow without bound and there is no
// token-budget handling. Provider failures propagate to the caller with
// no retry or backoff.
package gemini

const (
	defaultModel       = "gemini-pro"
	defaultTemperature = 0.7
	defaultMaxTokens   = 2048
	defaultTopP        = 0.9
	defaultTopK        = 40
)
