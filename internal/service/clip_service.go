package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/models"
)

// TextPreviewRunes is the length of the text preview in ListRecent.
const TextPreviewRunes = 100

type clipService struct {
	keys     crypto.KeyManager
	items    store.ItemRepository
	writer   Writer
	activity ActivityTracker
	logger   *logger.Logger
	stat     func(string) (os.FileInfo, error)
}

// NewClipService creates the command-facing ClipService. activity may be
// nil when auto-lock is not used.
func NewClipService(keys crypto.KeyManager, items store.ItemRepository, writer Writer, activity ActivityTracker, log *logger.Logger) ClipService {
	return &clipService{
		keys:     keys,
		items:    items,
		writer:   writer,
		activity: activity,
		logger:   log,
		stat:     os.Stat,
	}
}

func (s *clipService) touch() {
	if s.activity != nil {
		s.activity.Touch()
	}
}

// Unlock implements ClipService.
func (s *clipService) Unlock(ctx context.Context) error {
	s.touch()
	return s.keys.Unlock(ctx)
}

// Lock implements ClipService.
func (s *clipService) Lock() {
	s.keys.Lock()
}

// ResetMasterKey implements ClipService.
func (s *clipService) ResetMasterKey(ctx context.Context) error {
	s.touch()
	return s.keys.ResetMasterKey(ctx)
}

// IsUnlocked implements ClipService.
func (s *clipService) IsUnlocked() bool {
	return s.keys.IsUnlocked()
}

// ListRecent implements ClipService.
func (s *clipService) ListRecent(ctx context.Context, limit int, kinds ...models.Kind) ([]models.ItemView, error) {
	s.touch()

	items, err := s.items.ListRecent(ctx, limit, kinds...)
	if err != nil {
		return nil, err
	}

	unlocked := s.keys.IsUnlocked()
	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		view := models.ItemView{ItemMetadata: item}

		switch item.Kind {
		case models.KindText:
			if unlocked {
				view.Preview = s.textPreview(ctx, item.ID)
			}
		case models.KindFile:
			if item.FilePath != nil {
				view.Preview = filepath.Base(*item.FilePath)
				if view.Size <= 0 {
					if info, err := s.stat(*item.FilePath); err == nil {
						view.Size = info.Size()
					}
				}
			}
		}

		views = append(views, view)
	}
	return views, nil
}

// textPreview returns the first TextPreviewRunes runes of a text item, or
// "" when it cannot be decrypted.
func (s *clipService) textPreview(ctx context.Context, id int64) string {
	raw, err := s.items.GetItemRaw(ctx, id)
	if err != nil || raw.ContentBlob == nil {
		return ""
	}
	plain, err := s.keys.Decrypt(raw.ContentBlob)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("item_id", id).Msg("no preview for item")
		return ""
	}
	return truncateRunes(strings.ToValidUTF8(string(plain), string(utf8.RuneError)), TextPreviewRunes)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// GetItemRaw implements ClipService.
func (s *clipService) GetItemRaw(ctx context.Context, id int64) (models.RawItem, error) {
	s.touch()
	return s.items.GetItemRaw(ctx, id)
}

// CopyItem implements ClipService.
func (s *clipService) CopyItem(ctx context.Context, id int64) error {
	s.touch()
	return s.writer.CopyBack(ctx, id)
}

// PinItem implements ClipService.
func (s *clipService) PinItem(ctx context.Context, id int64, pinned bool) error {
	s.touch()
	return s.items.PinItem(ctx, id, pinned)
}

// DeleteItem implements ClipService.
func (s *clipService) DeleteItem(ctx context.Context, id int64) error {
	s.touch()
	return s.items.DeleteItem(ctx, id)
}

// ImagePreview implements ClipService. A non-positive maxSide selects
// clipboard.DefaultPreviewSide.
func (s *clipService) ImagePreview(ctx context.Context, id int64, maxSide int) ([]byte, error) {
	s.touch()

	raw, err := s.items.GetItemRaw(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw.Kind != models.KindImage {
		return nil, fmt.Errorf("%w: item %d is %s", ErrNotAnImage, id, raw.Kind)
	}
	if raw.ContentBlob == nil {
		return nil, ErrEmptyItem
	}

	plain, err := s.keys.Decrypt(raw.ContentBlob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	img, err := clipboard.DecodePNG(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	if maxSide <= 0 {
		maxSide = clipboard.DefaultPreviewSide
	}

	return clipboard.EncodePNG(clipboard.Thumbnail(img, maxSide))
}

// ClearHistory implements ClipService.
func (s *clipService) ClearHistory(ctx context.Context) (int64, error) {
	s.touch()

	n, err := s.items.ClearAll(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int64("deleted", n).Msg("clipboard history cleared")
	return n, nil
}

// IsNotFound reports whether err means the requested item does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrItemNotFound)
}
