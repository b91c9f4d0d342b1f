// Package quote implements the transform between the edit form's parallel
// arrays and the single text body a quote is stored as.
//
// A body is one line per utterance, "speaker: text", joined by newlines.
// Parsing splits on the first colon only, so utterances may themselves
// contain colons.
package quote

import (
	"fmt"
	"strings"
)

// Line is one parsed (speaker, text) pair. Speaker is empty for lines that
// carry no colon; such lines are excluded from speaker search but round-trip
// through Compose unchanged.
type Line struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Compose pairs names and texts by index into a canonical body. The two
// slices must be the same length; a mismatch means the submitted form was
// malformed and is rejected rather than zipped loosely.
func Compose(names, texts []string) (string, error) {
	if len(names) != len(texts) {
		return "", fmt.Errorf("mismatched quote arrays: %d names, %d texts", len(names), len(texts))
	}
	lines := make([]string, 0, len(names))
	for i := range names {
		name := strings.TrimSpace(names[i])
		text := strings.TrimSpace(texts[i])
		if name == "" && text == "" {
			continue
		}
		if name == "" {
			lines = append(lines, text)
			continue
		}
		lines = append(lines, name+": "+text)
	}
	return strings.Join(lines, "\n"), nil
}

// Parse splits a stored body back into (speaker, text) pairs.
func Parse(body string) []Line {
	var out []Line
	for _, raw := range strings.Split(body, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		speaker, text, found := strings.Cut(raw, ":")
		if !found {
			out = append(out, Line{Text: strings.TrimSpace(raw)})
			continue
		}
		out = append(out, Line{
			Speaker: strings.TrimSpace(speaker),
			Text:    strings.TrimSpace(text),
		})
	}
	return out
}

// MatchesSpeaker reports whether any speaker in the body contains query,
// case-insensitively. An empty query matches every body.
func MatchesSpeaker(body, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, line := range Parse(body) {
		if line.Speaker == "" {
			continue
		}
		if strings.Contains(strings.ToLower(line.Speaker), q) {
			return true
		}
	}
	return false
}
