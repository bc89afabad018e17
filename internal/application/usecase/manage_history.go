package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/typeahead/internal/domain/entity"
	"github.com/bnema/typeahead/internal/domain/repository"
	"github.com/bnema/typeahead/internal/logging"
)

const defaultHistoryLimit = 50

// ManageHistoryUseCase records and inspects picked values.
type ManageHistoryUseCase struct {
	historyRepo repository.HistoryRepository
}

// NewManageHistoryUseCase creates a new history use case.
func NewManageHistoryUseCase(historyRepo repository.HistoryRepository) *ManageHistoryUseCase {
	return &ManageHistoryUseCase{
		historyRepo: historyRepo,
	}
}

// Record remembers value as picked now. Blank values are ignored.
func (uc *ManageHistoryUseCase) Record(ctx context.Context, value string) error {
	log := logging.FromContext(ctx)

	if strings.TrimSpace(value) == "" {
		return nil
	}
	if err := uc.historyRepo.Record(ctx, value); err != nil {
		return fmt.Errorf("failed to record selection: %w", err)
	}

	log.Debug().Str("value", value).Msg("selection recorded")
	return nil
}

// Recent returns the most recently picked values first.
func (uc *ManageHistoryUseCase) Recent(ctx context.Context, limit int) ([]*entity.Selection, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := uc.historyRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent history: %w", err)
	}
	return entries, nil
}

// Clear deletes every recorded selection and returns how many there were.
func (uc *ManageHistoryUseCase) Clear(ctx context.Context) (int64, error) {
	log := logging.FromContext(ctx)

	count, err := uc.historyRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	if count == 0 {
		return 0, nil
	}
	if err := uc.historyRepo.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	log.Info().Int64("deleted", count).Msg("history cleared")
	return count, nil
}

// Forget deletes the selection with value, if recorded.
func (uc *ManageHistoryUseCase) Forget(ctx context.Context, value string) (bool, error) {
	entry, err := uc.historyRepo.FindByValue(ctx, value)
	if err != nil {
		return false, fmt.Errorf("failed to find selection: %w", err)
	}
	if entry == nil {
		return false, nil
	}
	if err := uc.historyRepo.Delete(ctx, entry.ID); err != nil {
		return false, fmt.Errorf("failed to delete selection: %w", err)
	}
	return true, nil
}
