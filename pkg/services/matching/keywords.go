package matching

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxKeywords      = 5
	minKeywordLength = 3
)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "this": {}, "that": {},
	"are": {}, "was": {}, "were": {}, "will": {}, "have": {}, "has": {}, "had": {},
	"into": {}, "onto": {}, "per": {}, "not": {}, "but": {}, "all": {}, "any": {},
	"can": {}, "our": {}, "your": {}, "its": {}, "their": {}, "than": {}, "then": {},
	"each": {}, "also": {}, "such": {}, "other": {}, "more": {}, "most": {}, "some": {},
	"use": {}, "used": {}, "using": {}, "via": {}, "new": {}, "set": {}, "type": {},
}

// ExtractKeywords returns up to five distinct lower-case tokens of text, longer
// than two characters and not stop words, ranked by frequency then first appearance.
func ExtractKeywords(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	type candidate struct {
		word  string
		count int
	}
	var candidates []*candidate
	seen := make(map[string]*candidate)
	for _, token := range tokens {
		if utf8.RuneCountInString(token) < minKeywordLength {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if c, ok := seen[token]; ok {
			c.count++
			continue
		}
		c := &candidate{word: token, count: 1}
		seen[token] = c
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].count > candidates[j].count
	})

	if len(candidates) > maxKeywords {
		candidates = candidates[:maxKeywords]
	}
	keywords := make([]string, len(candidates))
	for i, c := range candidates {
		keywords[i] = c.word
	}
	return keywords
}
