package store

import (
	"context"

	"github.com/MKhiriev/go-clip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository is the persistent, deduplicated clipboard history.
// Content is stored encrypted; the repository never sees plaintext.
type ItemRepository interface {
	// InsertItem stores item unless a row with the same kind, hash and file
	// path exists, in which case the existing id is returned.
	InsertItem(ctx context.Context, item models.NewItem) (int64, error)
	// FindDuplicate looks up the newest row matching the dedup key.
	FindDuplicate(ctx context.Context, hash []byte, kind models.Kind, filePath *string) (int64, bool, error)
	// ListRecent returns metadata ordered pinned first, then newest first.
	// A non-positive limit returns all rows. kinds, when given, filters the
	// result.
	ListRecent(ctx context.Context, limit int, kinds ...models.Kind) ([]models.ItemMetadata, error)
	// GetItemRaw returns the encrypted columns of one row.
	GetItemRaw(ctx context.Context, id int64) (models.RawItem, error)
	PinItem(ctx context.Context, id int64, pinned bool) error
	DeleteItem(ctx context.Context, id int64) error
	// ClearAll deletes every row and returns how many were removed.
	ClearAll(ctx context.Context) (int64, error)
}
