// Package normalize turns free-text clue and answer strings into the
// canonical forms the redundancy engine blocks and compares on.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// generalStopwords is shared by answer mode and clue-bag mode.
var generalStopwords = set("a", "an", "and", "of", "the", "this", "these")

// answerStopwords is dropped only in answer mode, after the general set.
var answerStopwords = set(
	"accept", "prompt", "reject", "directed", "antiprompt", "anti-prompt", "or",
)

// clueStopwords extends generalStopwords for clue-bag mode.
var clueStopwords = union(generalStopwords, set(
	"that", "he", "him", "his", "she", "her", "hers", "is", "are", "work",
	"works", "who", "which", "was", "were", "one", "another", "as", "in",
	"when", "they", "their", "them", "name", "identify", "man", "mans",
	"from", "on", "to", "by", "with", "title", "titular", "those", "it",
	"its", "be", "at",
), set(
	"figure", "figures", "entity", "entities", "object", "objects",
	"substance", "substances", "character", "characters",
))

// rejectClausePattern matches the start of an answer's reject clause;
// everything from the match onward is discarded before tokenization.
var rejectClausePattern = regexp.MustCompile(`(?i)(?:do not |don't |don’t )(?:accept |prompt |take )|reject `)

// bracketPattern matches a single non-nested bracketed aside.
var bracketPattern = regexp.MustCompile(`\[[^\[\]]*\]|\([^()]*\)|\{[^{}]*\}`)

// notWordPattern matches anything that isn't a word character, digit, or whitespace.
var notWordPattern = regexp.MustCompile(`[^\w\s\d]`)

const maxAnswerLength = 51

// Answer canonicalizes an answer line: reject-clause truncation,
// bracket removal, punctuation stripping, stop-word filtering, and
// concatenation without separators, capped at 51 characters.
func Answer(s string) string {
	s = strings.ToLower(s)
	s = stripDiacritics(s)
	s = truncateAtReject(s)
	s = bracketPattern.ReplaceAllString(s, "")
	s = notWordPattern.ReplaceAllString(s, "")

	var b strings.Builder
	for _, tok := range strings.Fields(s) {
		if _, stop := generalStopwords[tok]; stop {
			continue
		}
		if _, stop := answerStopwords[tok]; stop {
			continue
		}
		b.WriteString(tok)
	}

	out := b.String()
	if len(out) > maxAnswerLength {
		out = out[:maxAnswerLength]
	}
	return out
}

// ClueBag returns the set of distinct content words of a clue after
// normalization and extended stop-word removal.
func ClueBag(s string) map[string]struct{} {
	s = strings.ToLower(s)
	s = stripDiacritics(s)
	s = bracketPattern.ReplaceAllString(s, "")
	s = notWordPattern.ReplaceAllString(s, "")

	bag := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		if _, stop := clueStopwords[tok]; stop {
			continue
		}
		bag[tok] = struct{}{}
	}
	return bag
}

// truncateAtReject discards everything from the first reject clause
// ("do not accept ", "don't prompt ", "reject ", ...) onward.
func truncateAtReject(s string) string {
	loc := rejectClausePattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]]
}

var diacriticTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripDiacritics decomposes s and drops combining marks, so accented
// letters become their base letter ("é" -> "e"). Characters with no
// such decomposition (for example "ø" or "ß") are not transliterated;
// they pass through unchanged and are later removed as non-word
// characters.
func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticTransform, s)
	if err != nil {
		return s
	}
	return out
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func union(sets ...map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range sets {
		for w := range s {
			out[w] = struct{}{}
		}
	}
	return out
}
