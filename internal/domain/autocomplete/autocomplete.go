// Package autocomplete provides the hint resolution and visibility rules of the typeahead.
package autocomplete

import "strings"

// HintResolver returns the completion suggested for input given the current options.
// When a completion exists the result must start with input.
type HintResolver[T any] func(input string, options []T) string

// NoHint is the resolver used when the caller does not supply one.
func NoHint[T any](string, []T) string {
	return ""
}

// ComputeCompletionSuffix returns the suffix if input is a prefix of fullText.
// Matching is case-insensitive unless caseSensitive is set.
// Returns the suffix and true if input matches as a prefix, otherwise empty string and false.
func ComputeCompletionSuffix(input, fullText string, caseSensitive bool) (string, bool) {
	if input == "" || fullText == "" || len(fullText) < len(input) {
		return "", false
	}

	head := fullText[:len(input)]
	if caseSensitive {
		if head != input {
			return "", false
		}
	} else if !strings.EqualFold(head, input) {
		return "", false
	}

	// Return the original-case suffix from fullText
	suffix := fullText[len(input):]
	return suffix, suffix != ""
}

// PrefixResolver builds a resolver that completes input with the first option,
// in list order, whose text extends input. The typed prefix is kept as-is so the
// result always starts with input.
func PrefixResolver[T any](text func(T) string, caseSensitive bool) HintResolver[T] {
	return func(input string, options []T) string {
		for _, opt := range options {
			if suffix, ok := ComputeCompletionSuffix(input, text(opt), caseSensitive); ok {
				return input + suffix
			}
		}
		return ""
	}
}

// StringResolver is PrefixResolver for plain string options.
func StringResolver(caseSensitive bool) HintResolver[string] {
	return PrefixResolver(func(s string) string { return s }, caseSensitive)
}

// IsHintVisible reports whether hint leaves a non-empty completable suffix after input.
func IsHintVisible(input, hint string) bool {
	return len(input) > 0 && len(hint) > len(input)
}

// HintSuffix returns the part of hint displayed after input, or "" when there is none.
func HintSuffix(input, hint string) string {
	if !IsHintVisible(input, hint) || !strings.HasPrefix(hint, input) {
		return ""
	}
	return hint[len(input):]
}
