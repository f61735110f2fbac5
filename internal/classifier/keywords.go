// Package classifier decides a complaint's category, first by exact
// keyword evidence, then by arbitrating between inference providers.
// keywords.go implements an Aho-Corasick matcher over the category
// keyword table for O(n+m) scanning.
package classifier

import (
	"strings"
	"sync"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/civicgrid/triage/internal/domain"
)

// CategoryMatcher scans complaint text against the category keyword
// table in a single pass. Ties are broken by table order, so the
// earliest category wins deterministically.
type CategoryMatcher struct {
	mu         sync.RWMutex
	matcher    *ahocorasick.Matcher
	keywords   []string
	kwCategory []int // keyword index -> category table index
	categories []domain.CategoryKeywords
}

// NewCategoryMatcher builds the automaton from an ordered keyword table.
func NewCategoryMatcher(table []domain.CategoryKeywords) *CategoryMatcher {
	m := &CategoryMatcher{categories: table}
	m.rebuildLocked()
	return m
}

// rebuildLocked constructs the Aho-Corasick automaton.
// MUST be called with m.mu held, except from the constructor.
func (m *CategoryMatcher) rebuildLocked() {
	m.keywords = m.keywords[:0]
	m.kwCategory = m.kwCategory[:0]

	for catIdx, cat := range m.categories {
		for _, kw := range cat.Keywords {
			normalized := normalizeKeyword(kw)
			if normalized == "" {
				continue
			}
			m.keywords = append(m.keywords, normalized)
			m.kwCategory = append(m.kwCategory, catIdx)
		}
	}

	if len(m.keywords) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(m.keywords)
	} else {
		m.matcher = nil
	}
}

// Match returns the category whose keyword appears in the text, or
// ok=false when nothing matches. When keywords from several categories
// hit, the category listed first in the table wins.
func (m *CategoryMatcher) Match(text string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.matcher == nil {
		return "", false
	}

	hits := m.matcher.Match([]byte(normalizeText(text)))
	best := -1
	for _, hitIndex := range hits {
		if hitIndex >= len(m.kwCategory) {
			continue
		}
		catIdx := m.kwCategory[hitIndex]
		if best == -1 || catIdx < best {
			best = catIdx
		}
	}
	if best == -1 {
		return "", false
	}
	return m.categories[best].Category, true
}

// UpdateTable hot-swaps the keyword table and rebuilds the automaton.
func (m *CategoryMatcher) UpdateTable(table []domain.CategoryKeywords) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = table
	m.rebuildLocked()
}

// Categories returns the current category table.
func (m *CategoryMatcher) Categories() []domain.CategoryKeywords {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.categories
}

// KeywordCount returns the total number of indexed keywords.
func (m *CategoryMatcher) KeywordCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keywords)
}

func normalizeKeyword(kw string) string {
	return strings.ToLower(strings.TrimSpace(kw))
}

// normalizeText lowercases and replaces punctuation with spaces while
// keeping combining marks, which Tamil keywords depend on.
func normalizeText(text string) string {
	text = strings.ToLower(text)

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			result.WriteRune(r)
		} else {
			result.WriteByte(' ')
		}
	}
	return result.String()
}
