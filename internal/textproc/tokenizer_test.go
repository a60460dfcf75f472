package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "no alphabetic content",
			text: "123 -- 4.5 !!! ###",
			want: []string{},
		},
		{
			name: "lowercases and splits on punctuation",
			text: "Python, SQL; AWS/Docker",
			want: []string{"python", "sql", "aws", "docker"},
		},
		{
			name: "digits act as separators",
			text: "python3and4go",
			want: []string{"python"},
		},
		{
			name: "drops short tokens",
			text: "go js c++ rust",
			want: []string{"rust"},
		},
		{
			name: "drops stopwords",
			text: "We need the experience with Kubernetes",
			want: []string{"kubernetes"},
		},
		{
			name: "drops posting noise words",
			text: "Data analyst required, used daily, looking and seeking",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestFrequencies_CountsUnigrams(t *testing.T) {
	table := Frequencies("Python python PYTHON sql sql aws")

	assert.Equal(t, 3, table.Count("python"))
	assert.Equal(t, 2, table.Count("sql"))
	assert.Equal(t, 1, table.Count("aws"))
	assert.Equal(t, 0, table.Count("docker"))
	assert.Equal(t, 3, table.Len())
}

func TestFrequencies_EmptyText(t *testing.T) {
	table := Frequencies("")

	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.MostCommon())
	assert.Empty(t, table.Terms())
}

func TestFrequencies_CountsPhrasesAndComponents(t *testing.T) {
	table := Frequencies("Machine learning and deep learning. Machine learning again.")

	assert.Equal(t, 2, table.Count("machine learning"))
	assert.Equal(t, 1, table.Count("deep learning"))
	assert.Equal(t, 2, table.Count("machine"))
	assert.Equal(t, 3, table.Count("learning"))
	assert.Equal(t, 1, table.Count("deep"))
}

func TestFrequencies_PhraseAcrossDroppedToken(t *testing.T) {
	// "of" and "the" are dropped before bigrams are formed
	table := Frequencies("machine of the learning")

	assert.Equal(t, 1, table.Count("machine learning"))
}

func TestFrequencies_PhraseAcrossPunctuation(t *testing.T) {
	table := Frequencies("project, management")

	assert.Equal(t, 1, table.Count("project management"))
}

func TestFrequencies_NonAllowlistedBigramIgnored(t *testing.T) {
	table := Frequencies("cloud computing")

	assert.Equal(t, 0, table.Count("cloud computing"))
	assert.Equal(t, []string{"cloud", "computing"}, table.Terms())
}

func TestFrequencies_PhraseWithStopwordComponentNeverDetected(t *testing.T) {
	// "data" is a stopword, so "data analysis" cannot survive filtering
	table := Frequencies("data analysis")

	assert.Equal(t, 0, table.Count("data analysis"))
	assert.Equal(t, 1, table.Count("analysis"))
}

func TestFrequencyTable_MostCommonStableOrder(t *testing.T) {
	table := NewFrequencyTable()
	for _, term := range []string{"zeta", "alpha", "beta", "alpha", "gamma", "beta", "alpha"} {
		table.Add(term)
	}

	got := table.MostCommon()
	require.Len(t, got, 4)
	assert.Equal(t, TermCount{Term: "alpha", Count: 3}, got[0])
	assert.Equal(t, TermCount{Term: "beta", Count: 2}, got[1])
	// ties keep first-seen order, not alphabetical
	assert.Equal(t, TermCount{Term: "zeta", Count: 1}, got[2])
	assert.Equal(t, TermCount{Term: "gamma", Count: 1}, got[3])
}

func TestFrequencyTable_TermsReturnsCopy(t *testing.T) {
	table := NewFrequencyTable()
	table.Add("python")

	terms := table.Terms()
	terms[0] = "mutated"

	assert.Equal(t, []string{"python"}, table.Terms())
}

func TestExtractTerms_Deduplicates(t *testing.T) {
	terms := ExtractTerms("python python python sql sql")

	assert.ElementsMatch(t, []string{"python", "sql"}, terms)
}

func TestExtractTerms_Deterministic(t *testing.T) {
	text := "Led machine learning projects in Python; mentored engineers on AWS and Docker."

	first := ExtractTerms(text)
	second := ExtractTerms(text)

	assert.Equal(t, first, second)
}

func TestExtractTerms_DoubledTextSameSet(t *testing.T) {
	text := "Built React dashboards, Node services and deep learning pipelines"

	assert.ElementsMatch(t, ExtractTerms(text), ExtractTerms(text+" "+text))
}

func TestExtractTerms_IncludesPhrases(t *testing.T) {
	terms := ExtractTerms("Project management and machine learning")

	assert.Contains(t, terms, "project management")
	assert.Contains(t, terms, "machine learning")
	assert.Contains(t, terms, "project")
	assert.Contains(t, terms, "learning")
}

func TestExtractTerms_Empty(t *testing.T) {
	assert.Empty(t, ExtractTerms(""))
	assert.Empty(t, ExtractTerms("   \n\t"))
}

func TestExtractTerms_NoStopwords(t *testing.T) {
	terms := ExtractTerms("The analyst will need experience with data that is required daily")

	for _, term := range terms {
		assert.False(t, IsStopword(term), "stopword %q leaked", term)
	}
}

func TestLexiconLookups(t *testing.T) {
	assert.True(t, IsStopword("experience"))
	assert.True(t, IsStopword("the"))
	assert.False(t, IsStopword("python"))

	assert.True(t, IsSkillPhrase("deep learning"))
	assert.False(t, IsSkillPhrase("deep"))
	assert.False(t, IsSkillPhrase("Deep Learning"))
}
