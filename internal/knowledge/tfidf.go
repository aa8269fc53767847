package knowledge

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxFeatures caps the vocabulary at the most frequent terms.
const maxFeatures = 1000

// tokenRe keeps alphanumeric runs of two or more characters.
var tokenRe = regexp.MustCompile(`[a-z0-9][a-z0-9']+`)

// stopwords is the usual English function-word list; tokens in it never
// enter the vocabulary.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a about above after again all am an and any are as at be because
		been before being below between both but by could did do does
		doing down during each few for from further had has have having
		he her here hers herself him himself his how i if in into is it
		its itself just me more most my myself no nor not now of off on
		once only or other our ours ourselves out over own same she so
		some such than that the their theirs them themselves then there
		these they this those through to too under until up very was we
		were what when where which while who whom why will with you your
		yours yourself yourselves`) {
		stopwords[w] = struct{}{}
	}
}

// tokenize lowercases the text and emits unigrams plus adjacent bigrams,
// with stopwords removed before bigram formation.
func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)

	uni := raw[:0]
	for _, t := range raw {
		if _, skip := stopwords[t]; !skip {
			uni = append(uni, t)
		}
	}

	out := make([]string, 0, len(uni)*2)
	out = append(out, uni...)
	for i := 0; i+1 < len(uni); i++ {
		out = append(out, uni[i]+" "+uni[i+1])
	}
	return out
}

// tfidfIndex is a fitted term-frequency / inverse-document-frequency model
// over a document corpus. Vectors are L2-normalized so cosine similarity
// reduces to a dot product.
type tfidfIndex struct {
	vocab   map[string]int
	idf     []float64
	vectors [][]float64
}

// fitTFIDF builds the index from scratch over the given documents.
func fitTFIDF(docs []string) *tfidfIndex {
	if len(docs) == 0 {
		return nil
	}

	counts := make([]map[string]int, len(docs))
	totals := map[string]int{}
	df := map[string]int{}
	for i, doc := range docs {
		c := map[string]int{}
		for _, tok := range tokenize(doc) {
			c[tok]++
		}
		counts[i] = c
		for tok, n := range c {
			totals[tok] += n
			df[tok]++
		}
	}

	terms := make([]string, 0, len(totals))
	for t := range totals {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totals[terms[i]] != totals[terms[j]] {
			return totals[terms[i]] > totals[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	idx := &tfidfIndex{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, t := range terms {
		idx.vocab[t] = i
		// Smoothed IDF keeps terms present in every document from
		// zeroing out.
		idx.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	idx.vectors = make([][]float64, len(docs))
	for i, c := range counts {
		idx.vectors[i] = idx.vectorizeCounts(c)
	}
	return idx
}

// vectorize maps free text into the fitted vector space. Terms outside the
// vocabulary are ignored.
func (idx *tfidfIndex) vectorize(text string) []float64 {
	c := map[string]int{}
	for _, tok := range tokenize(text) {
		c[tok]++
	}
	return idx.vectorizeCounts(c)
}

func (idx *tfidfIndex) vectorizeCounts(counts map[string]int) []float64 {
	v := make([]float64, len(idx.vocab))
	for tok, n := range counts {
		if i, ok := idx.vocab[tok]; ok {
			v[i] = float64(n) * idx.idf[i]
		}
	}
	normalize(v)
	return v
}

func normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}

// cosine of two L2-normalized vectors.
func cosine(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}
