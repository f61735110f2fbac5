// Package similarity retrieves previously resolved cases that resemble
// a new complaint, giving the triage verdict a precedent to cite.
package similarity

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"

	"github.com/civicgrid/triage/internal/logger"
)

// minOverlap is the smallest token overlap score treated as a match.
const minOverlap = 0.2

// ticketIDLength is the hex prefix taken from a fresh UUID.
const ticketIDLength = 6

// Case is one resolved precedent.
type Case struct {
	ID         string
	Summary    string
	Resolution string
	tokens     map[string]struct{}
}

// Index finds the closest precedent for a complaint text.
type Index interface {
	Nearest(ctx context.Context, text string) (*Case, bool)
	Add(ctx context.Context, summary, resolution string) string
}

// TokenIndex is an in-memory Index scored by token overlap. Good enough
// for the precedent corpus sizes a single ward produces.
type TokenIndex struct {
	mu     sync.RWMutex
	cases  []Case
	logger logger.Logger
}

// NewTokenIndex creates an index seeded with resolved cases.
func NewTokenIndex(log logger.Logger) *TokenIndex {
	idx := &TokenIndex{logger: log}
	for _, seed := range seedCases {
		idx.Add(context.Background(), seed.summary, seed.resolution)
	}
	return idx
}

// Add stores a resolved case and returns its generated ticket id.
func (x *TokenIndex) Add(_ context.Context, summary, resolution string) string {
	id := NewTicketID()
	c := Case{
		ID:         id,
		Summary:    summary,
		Resolution: resolution,
		tokens:     tokenize(summary),
	}

	x.mu.Lock()
	x.cases = append(x.cases, c)
	x.mu.Unlock()
	return id
}

// Nearest returns the best-overlapping case, or ok=false when nothing
// clears the overlap floor.
func (x *TokenIndex) Nearest(_ context.Context, text string) (*Case, bool) {
	query := tokenize(text)
	if len(query) == 0 {
		return nil, false
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	bestScore := 0.0
	bestIdx := -1
	for i := range x.cases {
		score := overlap(query, x.cases[i].tokens)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx == -1 || bestScore < minOverlap {
		return nil, false
	}

	found := x.cases[bestIdx]
	x.logger.Debug("precedent case matched",
		logger.String("case_id", found.ID),
		logger.Float64("overlap", bestScore))
	return &found, true
}

// NewTicketID generates a short reference id like Ticket_3fa2bc.
func NewTicketID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "Ticket_" + raw[:ticketIDLength]
}

// overlap scores how much of the query vocabulary the case covers.
func overlap(query, doc map[string]struct{}) float64 {
	if len(query) == 0 || len(doc) == 0 {
		return 0
	}
	shared := 0
	for tok := range query {
		if _, ok := doc[tok]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(query))
}

func tokenize(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
	})
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if len(f) < 3 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens[f] = struct{}{}
	}
	return tokens
}

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "near": {}, "there": {}, "this": {},
	"that": {}, "with": {}, "has": {}, "have": {}, "been": {}, "not": {},
	"are": {}, "was": {}, "from": {}, "here": {},
}

// seedCases are resolved precedents loaded at startup until the index
// is fed from the complaint store.
var seedCases = []struct {
	summary    string
	resolution string
}{
	{
		summary:    "Deep pothole on Anna Nagar 2nd Avenue damaged two-wheelers during rain",
		resolution: "Road patch laid within 24 hours after escalation to Bridges and Roads",
	},
	{
		summary:    "Garbage bin overflowing near Perambur market, stray animals scattering waste",
		resolution: "Extra collection round scheduled and bin replaced",
	},
	{
		summary:    "Street light not working on Velachery bypass service lane for a week",
		resolution: "Fused fitting replaced by Electrical Dept within 48 hours",
	},
	{
		summary:    "Water stagnation breeding mosquitoes behind Mylapore tank street",
		resolution: "Drain desilted and larvicide sprayed by Vector Control",
	},
	{
		summary:    "Tree branch fell across the road near Guindy after heavy winds",
		resolution: "Parks and Gardens cleared the blockage the same evening",
	},
}
