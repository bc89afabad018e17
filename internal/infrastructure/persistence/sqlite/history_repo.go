package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/typeahead/internal/application/port"
	"github.com/bnema/typeahead/internal/domain/entity"
	"github.com/bnema/typeahead/internal/domain/repository"
	"github.com/bnema/typeahead/internal/logging"
)

const (
	upsertSelection = `INSERT INTO selections (value, use_count, last_used, created_at)
VALUES (?, 1, ?, ?)
ON CONFLICT(value) DO UPDATE SET use_count = use_count + 1, last_used = excluded.last_used`

	selectColumns = `SELECT id, value, use_count, last_used, created_at FROM selections`
)

type historyRepo struct {
	provider port.DatabaseProvider
	now      func() time.Time
}

// NewHistoryRepository creates a SQLite-backed selection history. The database
// is resolved through provider on every call.
func NewHistoryRepository(provider port.DatabaseProvider) repository.HistoryRepository {
	return &historyRepo{provider: provider, now: time.Now}
}

func (r *historyRepo) db(ctx context.Context) (*sql.DB, error) {
	return r.provider.DB(ctx)
}

func (r *historyRepo) Record(ctx context.Context, value string) error {
	log := logging.FromContext(ctx)

	db, err := r.db(ctx)
	if err != nil {
		return err
	}

	now := r.now().UnixMilli()
	if _, err := db.ExecContext(ctx, upsertSelection, value, now, now); err != nil {
		return fmt.Errorf("failed to upsert selection: %w", err)
	}

	log.Debug().Str("value", value).Msg("selection saved")
	return nil
}

func (r *historyRepo) FindByValue(ctx context.Context, value string) (*entity.Selection, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, selectColumns+` WHERE value = ?`, value)
	s, err := scanSelection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *historyRepo) GetRecent(ctx context.Context, limit int) ([]*entity.Selection, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, selectColumns+` ORDER BY last_used DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.Selection
	for rows.Next() {
		s, err := scanSelection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *historyRepo) Count(ctx context.Context) (int64, error) {
	db, err := r.db(ctx)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM selections`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *historyRepo) Delete(ctx context.Context, id int64) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM selections WHERE id = ?`, id)
	return err
}

func (r *historyRepo) DeleteAll(ctx context.Context) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM selections`)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSelection(row scanner) (*entity.Selection, error) {
	var (
		s                   entity.Selection
		lastUsed, createdAt int64
	)
	if err := row.Scan(&s.ID, &s.Value, &s.UseCount, &lastUsed, &createdAt); err != nil {
		return nil, err
	}
	s.LastUsed = time.UnixMilli(lastUsed)
	s.CreatedAt = time.UnixMilli(createdAt)
	return &s, nil
}
