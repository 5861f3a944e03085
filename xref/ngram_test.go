package xref

import (
	"testing"

	"github.com/poiesic/lectio/synonyms"
	"github.com/stretchr/testify/assert"
)

func keys(s NGramSet) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}

func TestBuildNGrams(t *testing.T) {
	seq := []string{"lord", "shepherd", "want", "green"}

	grams := BuildNGrams(seq, 2)
	assert.Equal(t, []NGram{{"lord", "shepherd"}, {"shepherd", "want"}, {"want", "green"}}, grams)

	assert.Len(t, BuildNGrams(seq, 4), 1)
	assert.Empty(t, BuildNGrams(seq, 5))
	assert.Empty(t, BuildNGrams(nil, 1))
	assert.Empty(t, BuildNGrams(seq, 0))
	assert.Len(t, BuildNGrams(seq, 1), 4)
}

func TestVariations_Incremental(t *testing.T) {
	t.Run("no synonyms keeps literal only", func(t *testing.T) {
		got := Variations(NGram{"lord", "shepherd"}, nil, ExpansionIncremental)
		assert.Equal(t, []string{"lord shepherd"}, keys(got))
	})

	t.Run("single position", func(t *testing.T) {
		syn := synonyms.Map{"god": {"god", "lord"}}
		got := Variations(NGram{"god", "loved"}, syn, ExpansionIncremental)
		assert.ElementsMatch(t, []string{"god loved", "lord loved"}, keys(got))
	})

	t.Run("later positions substitute into earlier variants", func(t *testing.T) {
		syn := synonyms.Map{
			"god":   {"god", "lord"},
			"loved": {"loved", "beloved"},
		}
		got := Variations(NGram{"god", "loved"}, syn, ExpansionIncremental)
		assert.ElementsMatch(t,
			[]string{"god loved", "lord loved", "god beloved", "lord beloved"},
			keys(got))
	})

	t.Run("literal kept even when group omits its key", func(t *testing.T) {
		syn := synonyms.Map{"god": {"lord", "almighty"}}
		got := Variations(NGram{"god", "reigns"}, syn, ExpansionIncremental)
		assert.ElementsMatch(t, []string{"god reigns", "lord reigns", "almighty reigns"}, keys(got))
	})
}

func TestVariations_Cartesian(t *testing.T) {
	t.Run("full product", func(t *testing.T) {
		syn := synonyms.Map{
			"god":   {"god", "lord"},
			"loved": {"loved", "beloved"},
		}
		got := Variations(NGram{"god", "loved"}, syn, ExpansionCartesian)
		assert.ElementsMatch(t,
			[]string{"god loved", "lord loved", "god beloved", "lord beloved"},
			keys(got))
	})

	t.Run("literal dropped when group omits its key", func(t *testing.T) {
		syn := synonyms.Map{"god": {"lord", "almighty"}}
		got := Variations(NGram{"god", "reigns"}, syn, ExpansionCartesian)
		assert.ElementsMatch(t, []string{"lord reigns", "almighty reigns"}, keys(got))
	})
}

func TestNGramMatches(t *testing.T) {
	a := NGramSet{"lord shepherd": {}, "shepherd want": {}}
	b := NGramSet{"lord shepherd": {}, "green pastures": {}}
	c := NGramSet{"lord rock": {}}

	assert.True(t, HasNGramMatch(a, b))
	assert.True(t, HasNGramMatch(b, a))
	assert.False(t, HasNGramMatch(a, c))
	assert.False(t, HasNGramMatch(a, NGramSet{}))
	assert.Equal(t, 1, CountNGramMatches(a, b))
	assert.Equal(t, 0, CountNGramMatches(a, c))
}

func TestNGramMetric_Score(t *testing.T) {
	m := NewNGram(2)
	assert.Equal(t, "2-gram", m.Name())

	t.Run("shepherd and rock do not share a bigram", func(t *testing.T) {
		src := m.Prepare("the lord is my shepherd", nil, false)
		cand := m.Prepare("the lord is my rock", nil, false)

		assert.Equal(t, []string{"lord shepherd"}, keys(src.NGrams))
		assert.Equal(t, []string{"lord rock"}, keys(cand.NGrams))

		score, ok := m.Score(src, cand)
		assert.False(t, ok)
		assert.Equal(t, 0.0, score)
	})

	t.Run("counts distinct shared phrases", func(t *testing.T) {
		src := m.Prepare("Holy holy holy Lord God Almighty", nil, false)
		cand := m.Prepare("holy holy saith the Lord God", nil, false)

		score, ok := m.Score(src, cand)
		assert.True(t, ok)
		// "holy holy" and "lord god"
		assert.Equal(t, 2.0, score)
	})

	t.Run("synonyms bridge different words", func(t *testing.T) {
		syn := synonyms.Map{"shepherd": {"shepherd", "keeper"}}
		src := m.Prepare("The LORD is my shepherd", syn, true)
		cand := m.Prepare("The LORD is thy keeper", syn, true)

		score, ok := m.Score(src, cand)
		assert.True(t, ok)
		assert.Equal(t, 1.0, score)

		plainSrc := m.Prepare("The LORD is my shepherd", syn, false)
		plainCand := m.Prepare("The LORD is thy keeper", syn, false)
		_, ok = m.Score(plainSrc, plainCand)
		assert.False(t, ok)
	})

	t.Run("short verse contributes no n-grams", func(t *testing.T) {
		src := NewNGram(3).Prepare("Jesus wept.", nil, false)
		assert.Empty(t, src.NGrams)
	})
}

func TestExpansionMode_String(t *testing.T) {
	assert.Equal(t, "incremental", ExpansionIncremental.String())
	assert.Equal(t, "cartesian", ExpansionCartesian.String())
}
