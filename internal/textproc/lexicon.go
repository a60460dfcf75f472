package textproc

// minTokenLength is the shortest token kept after splitting
const minTokenLength = 3

// stopwords are dropped before counting. Besides common English function
// words this covers words that show up in nearly every job posting.
var stopwords = map[string]bool{
	"the": true, "and": true, "with": true, "for": true, "that": true,
	"this": true, "from": true, "are": true, "will": true, "you": true,
	"our": true, "your": true, "have": true, "has": true, "been": true,
	"being": true, "was": true, "were": true, "not": true, "but": true,
	"they": true, "their": true, "can": true, "able": true, "about": true,
	"into": true, "all": true, "also": true, "than": true, "more": true,
	"other": true, "some": true, "such": true, "must": true, "should": true,
	"would": true, "could": true, "may": true, "who": true, "which": true,
	"how": true, "what": true,
	// posting noise
	"need": true, "needs": true, "required": true, "experience": true,
	"data": true, "analyst": true, "used": true, "daily": true,
	"looking": true, "seeking": true,
}

// skillPhrases are the two-word terms counted alongside unigrams
var skillPhrases = map[string]bool{
	"machine learning":   true,
	"data analysis":      true,
	"project management": true,
	"deep learning":      true,
}

// IsStopword reports whether term is filtered out by the tokenizer
func IsStopword(term string) bool {
	return stopwords[term]
}

// IsSkillPhrase reports whether phrase is an allowlisted multi-word skill
func IsSkillPhrase(phrase string) bool {
	return skillPhrases[phrase]
}
