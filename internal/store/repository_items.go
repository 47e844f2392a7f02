package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type itemRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewItemRepository returns the SQLite-backed [ItemRepository].
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// InsertItem implements [ItemRepository]. The dedup lookup and the insert
// run under one hold of the connection mutex, so two concurrent captures of
// the same content cannot both insert.
func (r *itemRepository) InsertItem(ctx context.Context, item models.NewItem) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.exclusive(ctx, func(ctx context.Context) error {
		existing, found, err := r.findDuplicate(ctx, item.Hash, item.Kind, item.FilePath)
		if err != nil {
			return err
		}
		if found {
			id = existing
			return nil
		}

		query, args, err := sq.Insert(itemsTable).
			Columns(itemInsertColumns...).
			Values(
				r.now().UnixMilli(),
				item.Kind.String(),
				item.Size,
				item.Hash,
				nullString(item.FilePath),
				0,
				item.ContentBlob,
				item.PreviewBlob,
				item.RTFBlob,
			).
			PlaceholderFormat(sq.Question).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.InsertItem").
			Str("kind", item.Kind.String()).
			Msg("failed to insert item")
		return 0, err
	}

	return id, nil
}

// FindDuplicate implements [ItemRepository].
func (r *itemRepository) FindDuplicate(ctx context.Context, hash []byte, kind models.Kind, filePath *string) (int64, bool, error) {
	var (
		id    int64
		found bool
	)
	err := r.exclusive(ctx, func(ctx context.Context) error {
		var err error
		id, found, err = r.findDuplicate(ctx, hash, kind, filePath)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "itemRepository.FindDuplicate").
			Str("kind", kind.String()).
			Msg("failed to look up duplicate item")
		return 0, false, err
	}
	return id, found, nil
}

// findDuplicate must be called with the connection mutex held.
func (r *itemRepository) findDuplicate(ctx context.Context, hash []byte, kind models.Kind, filePath *string) (int64, bool, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, findDuplicateItem, hash, kind.String(), nullString(filePath)).Scan(&id)
	if isNoRows(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return id, true, nil
}

// ListRecent implements [ItemRepository].
func (r *itemRepository) ListRecent(ctx context.Context, limit int, kinds ...models.Kind) ([]models.ItemMetadata, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(itemMetadataColumns...).
		From(itemsTable).
		OrderBy("is_pinned DESC", "created_at DESC", "id DESC").
		PlaceholderFormat(sq.Question)
	if len(kinds) > 0 {
		values := make([]string, 0, len(kinds))
		for _, k := range kinds {
			values = append(values, k.String())
		}
		builder = builder.Where(sq.Eq{"kind": values})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "itemRepository.ListRecent").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var items []models.ItemMetadata
	err = r.exclusive(ctx, func(ctx context.Context) error {
		items = items[:0]

		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				item     models.ItemMetadata
				kind     string
				hash     []byte
				filePath sql.NullString
				pinned   int64
			)
			if err = rows.Scan(&item.ID, &item.CreatedAt, &kind, &item.Size, &hash, &filePath, &pinned); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}

			item.Kind = models.Kind(kind)
			item.SHA256Hex = hex.EncodeToString(hash)
			item.FilePath = stringPtr(filePath)
			item.IsPinned = pinned != 0
			items = append(items, item)
		}

		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.ListRecent").
			Int("limit", limit).
			Msg("failed to list items")
		return nil, err
	}

	return items, nil
}

// GetItemRaw implements [ItemRepository].
func (r *itemRepository) GetItemRaw(ctx context.Context, id int64) (models.RawItem, error) {
	var item models.RawItem
	err := r.exclusive(ctx, func(ctx context.Context) error {
		var (
			kind     string
			filePath sql.NullString
		)
		err := r.DB.QueryRowContext(ctx, getRawItem, id).
			Scan(&kind, &item.ContentBlob, &item.PreviewBlob, &item.RTFBlob, &filePath)
		if isNoRows(err) {
			return ErrItemNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		item.Kind = models.Kind(kind)
		item.FilePath = stringPtr(filePath)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "itemRepository.GetItemRaw").
			Int64("item_id", id).
			Msg("failed to get item")
		return models.RawItem{}, err
	}

	return item, nil
}

// PinItem implements [ItemRepository].
func (r *itemRepository) PinItem(ctx context.Context, id int64, pinned bool) error {
	value := 0
	if pinned {
		value = 1
	}

	if err := r.execAffectingOne(ctx, pinItem, value, id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "itemRepository.PinItem").
			Int64("item_id", id).
			Bool("pinned", pinned).
			Msg("failed to update pin state")
		return err
	}
	return nil
}

// DeleteItem implements [ItemRepository].
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	if err := r.execAffectingOne(ctx, deleteItem, id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "itemRepository.DeleteItem").
			Int64("item_id", id).
			Msg("failed to delete item")
		return err
	}
	return nil
}

// ClearAll implements [ItemRepository].
func (r *itemRepository) ClearAll(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.exclusive(ctx, func(ctx context.Context) error {
		res, err := r.DB.ExecContext(ctx, deleteAllItems)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		deleted, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "itemRepository.ClearAll").Msg("failed to clear items")
		return 0, err
	}
	return deleted, nil
}

// execAffectingOne executes a single-row statement and maps zero affected
// rows to ErrItemNotFound.
func (r *itemRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	return r.exclusive(ctx, func(ctx context.Context) error {
		res, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n == 0 {
			return ErrItemNotFound
		}
		return nil
	})
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
