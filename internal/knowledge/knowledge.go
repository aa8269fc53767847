// Package knowledge is the in-memory retrieval layer: a TF-IDF index over
// previously solved problems, consulted before any external search. The
// index is rebuilt on every insert, which stays cheap at the corpus sizes a
// single instance curates.
package knowledge

import (
	"sort"
	"strings"
	"sync"

	"github.com/abhisek/mathroute/internal/solution"
)

// keywordTerms is the fixed vocabulary used for keyword tagging on insert.
var keywordTerms = []string{
	"solve", "find", "calculate", "compute", "determine",
	"equation", "derivative", "integral", "limit",
	"triangle", "circle", "area", "volume", "angle",
	"matrix", "vector", "system", "polynomial",
}

// Entry is one stored problem with its worked solution.
type Entry struct {
	Problem  string
	Solution solution.Solution
	Category solution.Category
	Keywords []string
}

// Match is an Entry scored against a query.
type Match struct {
	Entry
	Similarity float64
}

// Retriever stores entries and answers similarity queries. Safe for
// concurrent use.
type Retriever struct {
	mu      sync.RWMutex
	entries []Entry
	index   *tfidfIndex
}

// NewRetriever returns an empty retriever.
func NewRetriever() *Retriever {
	return &Retriever{}
}

// Add stores a problem and rebuilds the index. Problem text is lowercased
// so lookups are case-insensitive.
func (r *Retriever) Add(problem string, sol solution.Solution, category solution.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, Entry{
		Problem:  strings.ToLower(problem),
		Solution: sol,
		Category: category,
		Keywords: extractKeywords(problem),
	})
	r.rebuild()
}

// rebuild refits the index over all stored problem texts. Callers hold the
// write lock.
func (r *Retriever) rebuild() {
	docs := make([]string, len(r.entries))
	for i, e := range r.entries {
		docs[i] = e.Problem
	}
	r.index = fitTFIDF(docs)
}

// Search returns the entries most similar to the query, best first. Entries
// scoring below minSimilarity are dropped and at most limit results are
// returned. An empty index yields no results.
func (r *Retriever) Search(query string, limit int, minSimilarity float64) []Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.index == nil || len(r.entries) == 0 {
		return nil
	}

	qv := r.index.vectorize(query)
	var out []Match
	for i, e := range r.entries {
		sim := cosine(qv, r.index.vectors[i])
		if sim >= minSimilarity {
			out = append(out, Match{Entry: e, Similarity: sim})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ByCategory returns all entries in the given category.
func (r *Retriever) ByCategory(category solution.Category) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for _, e := range r.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Stats reports the total entry count and a per-category breakdown.
func (r *Retriever) Stats() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := map[string]int{"total": len(r.entries)}
	for _, e := range r.entries {
		stats[string(e.Category)]++
	}
	return stats
}

func extractKeywords(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, term := range keywordTerms {
		if strings.Contains(lower, term) {
			out = append(out, term)
		}
	}
	return out
}
