package repository

import (
	"context"

	"github.com/bnema/typeahead/internal/domain/entity"
)

//go:generate mockery --name=HistoryRepository --output=mocks --outpkg=mocks --filename=mock_history_repository.go --with-expecter

// HistoryRepository defines persistence of picked values.
type HistoryRepository interface {
	// Record stores value as used now, creating it or bumping its use count.
	Record(ctx context.Context, value string) error

	// FindByValue retrieves a selection by its value. Returns nil, nil when absent.
	FindByValue(ctx context.Context, value string) (*entity.Selection, error)

	// GetRecent retrieves the most recently used selections first.
	GetRecent(ctx context.Context, limit int) ([]*entity.Selection, error)

	// Count returns the number of stored selections.
	Count(ctx context.Context) (int64, error)

	// Delete removes a single selection by ID.
	Delete(ctx context.Context, id int64) error

	// DeleteAll removes every selection.
	DeleteAll(ctx context.Context) error
}
