package slotclock

import "strings"

// NormalizeLocation folds free-text city/state input into a canonical
// comparable form: trimmed, lower-cased, inner whitespace collapsed.
func NormalizeLocation(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// DisplayLocation renders a normalized location back into a presentable form
// with each word capitalized.
func DisplayLocation(normalized string) string {
	words := strings.Fields(normalized)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
