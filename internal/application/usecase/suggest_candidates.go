package usecase

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/bnema/typeahead/internal/domain/entity"
)

// SuggestCandidatesUseCase ranks candidates against the typed text. The widget
// displays exactly what it returns.
type SuggestCandidatesUseCase struct {
	maxResults    int
	fuzzy         bool
	caseSensitive bool
}

// SuggestOptions configures ranking.
type SuggestOptions struct {
	// MaxResults caps the output. 0 means unlimited.
	MaxResults    int
	Fuzzy         bool
	CaseSensitive bool
}

// NewSuggestCandidatesUseCase creates a ranking use case.
func NewSuggestCandidatesUseCase(opts SuggestOptions) *SuggestCandidatesUseCase {
	return &SuggestCandidatesUseCase{
		maxResults:    opts.MaxResults,
		fuzzy:         opts.Fuzzy,
		caseSensitive: opts.CaseSensitive,
	}
}

// Suggestion is a ranked candidate with the byte offsets of matched characters.
type Suggestion struct {
	entity.Candidate
	MatchedIndexes []int
}

// Suggest returns the candidates for query: prefix matches first in candidate
// order, then (when enabled) the remaining fuzzy matches by descending score.
// An empty query returns the candidates unchanged.
func (uc *SuggestCandidatesUseCase) Suggest(query string, candidates []entity.Candidate) []Suggestion {
	var out []Suggestion

	if query == "" {
		for _, c := range candidates {
			if uc.full(out) {
				break
			}
			out = append(out, Suggestion{Candidate: c})
		}
		return out
	}

	prefixed := make(map[int]struct{})
	for i, c := range candidates {
		if uc.full(out) {
			return out
		}
		if !uc.hasPrefix(c.Value, query) {
			continue
		}
		prefixed[i] = struct{}{}
		out = append(out, Suggestion{Candidate: c, MatchedIndexes: span(len(query))})
	}

	if !uc.fuzzy {
		return out
	}

	for _, m := range fuzzy.FindFrom(query, candidateList(candidates)) {
		if uc.full(out) {
			break
		}
		if _, dup := prefixed[m.Index]; dup {
			continue
		}
		out = append(out, Suggestion{Candidate: candidates[m.Index], MatchedIndexes: m.MatchedIndexes})
	}
	return out
}

func (uc *SuggestCandidatesUseCase) full(out []Suggestion) bool {
	return uc.maxResults > 0 && len(out) >= uc.maxResults
}

func (uc *SuggestCandidatesUseCase) hasPrefix(value, query string) bool {
	if len(value) < len(query) {
		return false
	}
	head := value[:len(query)]
	if uc.caseSensitive {
		return head == query
	}
	return strings.EqualFold(head, query)
}

func span(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// candidateList adapts candidates to fuzzy.Source.
type candidateList []entity.Candidate

func (l candidateList) String(i int) string { return l[i].Value }

func (l candidateList) Len() int { return len(l) }

// Values returns the candidate values of suggestions in order.
func Values(suggestions []Suggestion) []string {
	values := make([]string, len(suggestions))
	for i, s := range suggestions {
		values[i] = s.Value
	}
	return values
}
