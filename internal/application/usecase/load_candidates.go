package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/typeahead/internal/application/port"
	"github.com/bnema/typeahead/internal/domain/entity"
	"github.com/bnema/typeahead/internal/logging"
)

// LoadCandidatesUseCase gathers candidates from every configured source.
type LoadCandidatesUseCase struct {
	sources []port.CandidateSource
}

// NewLoadCandidatesUseCase creates a loader over sources, in priority order.
func NewLoadCandidatesUseCase(sources ...port.CandidateSource) *LoadCandidatesUseCase {
	return &LoadCandidatesUseCase{sources: sources}
}

// Execute loads all sources concurrently. The result keeps source order, then the
// order within each source; a value seen twice keeps its first occurrence.
// Empty values are dropped. The first failing source cancels the others.
func (uc *LoadCandidatesUseCase) Execute(ctx context.Context) ([]entity.Candidate, error) {
	log := logging.FromContext(ctx)

	results := make([][]entity.Candidate, len(uc.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range uc.sources {
		g.Go(func() error {
			candidates, err := src.Load(gctx)
			if err != nil {
				return fmt.Errorf("failed to load candidates from %s: %w", src.Name(), err)
			}
			results[i] = candidates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var merged []entity.Candidate
	for i, candidates := range results {
		for _, c := range candidates {
			if c.Value == "" {
				continue
			}
			if _, dup := seen[c.Value]; dup {
				continue
			}
			seen[c.Value] = struct{}{}
			merged = append(merged, c)
		}
		log.Debug().
			Str("source", uc.sources[i].Name()).
			Int("loaded", len(candidates)).
			Msg("candidates loaded")
	}

	return merged, nil
}
