// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"

	"github.com/bnema/typeahead/internal/domain/entity"
)

//go:generate mockgen -source=candidate_source.go -destination=mocks/mock_candidate_source.go -package=mocks

// CandidateSource produces the values the picker can offer.
type CandidateSource interface {
	// Name identifies the source in candidates and logs, e.g. "stdin" or a file path.
	Name() string
	// Load returns every value of the source in its natural order.
	Load(ctx context.Context) ([]entity.Candidate, error)
}
