// Package textproc turns free text into normalized terms and term frequencies.
package textproc

import (
	"regexp"
	"sort"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// FrequencyTable counts terms and remembers the order in which each term was first seen.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

// TermCount is a single entry of a FrequencyTable
type TermCount struct {
	Term  string
	Count int
}

// NewFrequencyTable creates an empty FrequencyTable
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add increments the count for term
func (f *FrequencyTable) Add(term string) {
	if _, exists := f.counts[term]; !exists {
		f.order = append(f.order, term)
	}
	f.counts[term]++
}

// Count returns the count for term, or 0 if the term was never added
func (f *FrequencyTable) Count(term string) int {
	return f.counts[term]
}

// Len returns the number of distinct terms
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Terms returns distinct terms in first-seen order
func (f *FrequencyTable) Terms() []string {
	terms := make([]string, len(f.order))
	copy(terms, f.order)
	return terms
}

// MostCommon returns all entries sorted by count (descending).
// Entries with equal counts keep first-seen order.
func (f *FrequencyTable) MostCommon() []TermCount {
	entries := make([]TermCount, len(f.order))
	for i, term := range f.order {
		entries[i] = TermCount{Term: term, Count: f.counts[term]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Tokenize lowercases text, splits it into alphabetic runs and drops
// short tokens and stopwords. Token order follows the text.
func Tokenize(text string) []string {
	raw := wordPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		if isValidToken(token) {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// isValidToken checks if a token should be kept
func isValidToken(token string) bool {
	if len(token) < minTokenLength {
		return false
	}
	return !stopwords[token]
}

// Frequencies counts unigrams and allowlisted bigram phrases in text.
// Bigrams are formed from adjacent tokens of the filtered stream, so a
// dropped stopword between two words does not break a phrase.
func Frequencies(text string) *FrequencyTable {
	table := NewFrequencyTable()
	tokens := Tokenize(text)

	for _, token := range tokens {
		table.Add(token)
	}

	for i := 0; i+1 < len(tokens); i++ {
		phrase := tokens[i] + " " + tokens[i+1]
		if skillPhrases[phrase] {
			table.Add(phrase)
		}
	}

	return table
}

// ExtractTerms returns the distinct terms found in text, in first-seen order.
// Used to derive candidate skills from resume or profile text.
func ExtractTerms(text string) []string {
	return Frequencies(text).Terms()
}
