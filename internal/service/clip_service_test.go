package service

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/mock"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type spyActivity struct {
	touches atomic.Int64
}

func (s *spyActivity) Touch() { s.touches.Add(1) }

type clipDeps struct {
	keys     *mock.MockKeyManager
	items    *mock.MockItemRepository
	backend  *mock.MockBackend
	activity *spyActivity
}

func newTestClipService(t *testing.T) (ClipService, clipDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := clipDeps{
		keys:     mock.NewMockKeyManager(ctrl),
		items:    mock.NewMockItemRepository(ctrl),
		backend:  mock.NewMockBackend(ctrl),
		activity: &spyActivity{},
	}
	writer := NewWriter(deps.backend, deps.keys, deps.items, logger.Nop())
	svc := NewClipService(deps.keys, deps.items, writer, deps.activity, logger.Nop())
	return svc, deps
}

// ── ListRecent ──────────────────────────────────────────────────────────────

func TestClipService_ListRecent_Previews(t *testing.T) {
	svc, deps := newTestClipService(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	long := strings.Repeat("é", 150)
	deps.items.EXPECT().ListRecent(gomock.Any(), 10).Return([]models.ItemMetadata{
		{ID: 1, Kind: models.KindText, Size: int64(len(long))},
		{ID: 2, Kind: models.KindFile, FilePath: &path},
		{ID: 3, Kind: models.KindImage, Size: 42},
	}, nil)
	deps.keys.EXPECT().IsUnlocked().Return(true)
	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).
		Return(models.RawItem{Kind: models.KindText, ContentBlob: sealed("long")}, nil)
	deps.keys.EXPECT().Decrypt(sealed("long")).Return([]byte(long), nil)

	views, err := svc.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, TextPreviewRunes, utf8.RuneCountInString(views[0].Preview))
	assert.True(t, strings.HasPrefix(long, views[0].Preview))

	assert.Equal(t, "notes.md", views[1].Preview)
	assert.Equal(t, int64(3), views[1].Size, "zero size is refreshed from disk")

	assert.Empty(t, views[2].Preview)
	assert.Equal(t, int64(42), views[2].Size)

	assert.Equal(t, int64(1), deps.activity.touches.Load())
}

func TestClipService_ListRecent_LockedHasNoTextPreview(t *testing.T) {
	svc, deps := newTestClipService(t)

	deps.items.EXPECT().ListRecent(gomock.Any(), 5).Return([]models.ItemMetadata{
		{ID: 1, Kind: models.KindText},
	}, nil)
	deps.keys.EXPECT().IsUnlocked().Return(false)

	views, err := svc.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].Preview)
}

func TestClipService_ListRecent_UndecryptableTextHasNoPreview(t *testing.T) {
	svc, deps := newTestClipService(t)

	deps.items.EXPECT().ListRecent(gomock.Any(), 5).Return([]models.ItemMetadata{
		{ID: 1, Kind: models.KindText},
	}, nil)
	deps.keys.EXPECT().IsUnlocked().Return(true)
	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).
		Return(models.RawItem{Kind: models.KindText, ContentBlob: sealed("old")}, nil)
	deps.keys.EXPECT().Decrypt(gomock.Any()).Return(nil, crypto.ErrAuthentication)

	views, err := svc.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, views[0].Preview)
}

func TestClipService_ListRecent_KindFilterAndError(t *testing.T) {
	svc, deps := newTestClipService(t)

	deps.items.EXPECT().ListRecent(gomock.Any(), 0, models.KindFile).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListRecent(context.Background(), 0, models.KindFile)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("", 3))
	assert.Equal(t, "ab", truncateRunes("ab", 3))
	assert.Equal(t, "abc", truncateRunes("abc", 3))
	assert.Equal(t, "ab", truncateRunes("abc", 2))
	assert.Equal(t, "日本", truncateRunes("日本語", 2))
}

// ── ImagePreview ────────────────────────────────────────────────────────────

func TestClipService_ImagePreview_ScalesDown(t *testing.T) {
	svc, deps := newTestClipService(t)

	src, err := clipboard.EncodePNG(image.NewNRGBA(image.Rect(0, 0, 300, 150)))
	require.NoError(t, err)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(4)).
		Return(models.RawItem{Kind: models.KindImage, ContentBlob: sealed("png")}, nil)
	deps.keys.EXPECT().Decrypt(sealed("png")).Return(src, nil)

	out, err := svc.ImagePreview(context.Background(), 4, 0)
	require.NoError(t, err)

	img, err := clipboard.DecodePNG(out)
	require.NoError(t, err)
	assert.Equal(t, clipboard.DefaultPreviewSide, img.Bounds().Dx())
	assert.Equal(t, clipboard.DefaultPreviewSide/2, img.Bounds().Dy())
}

func TestClipService_ImagePreview_SmallImageUnchanged(t *testing.T) {
	svc, deps := newTestClipService(t)

	src, err := clipboard.EncodePNG(testImage())
	require.NoError(t, err)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(4)).
		Return(models.RawItem{Kind: models.KindImage, ContentBlob: sealed("png")}, nil)
	deps.keys.EXPECT().Decrypt(gomock.Any()).Return(src, nil)

	out, err := svc.ImagePreview(context.Background(), 4, 64)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestClipService_ImagePreview_Errors(t *testing.T) {
	t.Run("not an image", func(t *testing.T) {
		svc, deps := newTestClipService(t)
		deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).
			Return(models.RawItem{Kind: models.KindText, ContentBlob: sealed("x")}, nil)

		_, err := svc.ImagePreview(context.Background(), 1, 0)
		assert.ErrorIs(t, err, ErrNotAnImage)
	})

	t.Run("decrypt failure", func(t *testing.T) {
		svc, deps := newTestClipService(t)
		deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).
			Return(models.RawItem{Kind: models.KindImage, ContentBlob: sealed("x")}, nil)
		deps.keys.EXPECT().Decrypt(gomock.Any()).Return(nil, crypto.ErrLocked)

		_, err := svc.ImagePreview(context.Background(), 1, 0)
		assert.ErrorIs(t, err, ErrDecryption)
		assert.ErrorIs(t, err, crypto.ErrLocked)
	})

	t.Run("missing item", func(t *testing.T) {
		svc, deps := newTestClipService(t)
		deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).Return(models.RawItem{}, store.ErrItemNotFound)

		_, err := svc.ImagePreview(context.Background(), 1, 0)
		assert.True(t, IsNotFound(err))
	})
}

// ── key and item commands ───────────────────────────────────────────────────

func TestClipService_KeyCommands(t *testing.T) {
	svc, deps := newTestClipService(t)
	ctx := context.Background()

	deps.keys.EXPECT().Unlock(gomock.Any()).Return(nil)
	deps.keys.EXPECT().IsUnlocked().Return(true)
	deps.keys.EXPECT().Lock()
	deps.keys.EXPECT().ResetMasterKey(gomock.Any()).Return(crypto.ErrKeyStore)

	require.NoError(t, svc.Unlock(ctx))
	assert.True(t, svc.IsUnlocked())
	svc.Lock()
	assert.ErrorIs(t, svc.ResetMasterKey(ctx), crypto.ErrKeyStore)
}

func TestClipService_ItemCommands(t *testing.T) {
	svc, deps := newTestClipService(t)
	ctx := context.Background()

	deps.items.EXPECT().PinItem(gomock.Any(), int64(1), true).Return(nil)
	deps.items.EXPECT().DeleteItem(gomock.Any(), int64(2)).Return(store.ErrItemNotFound)
	deps.items.EXPECT().ClearAll(gomock.Any()).Return(int64(7), nil)
	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(3)).
		Return(models.RawItem{Kind: models.KindFile, FilePath: strPtr("/tmp/x")}, nil).Times(2)
	deps.backend.EXPECT().WriteFileRef("/tmp/x").Return(nil)

	require.NoError(t, svc.PinItem(ctx, 1, true))
	assert.ErrorIs(t, svc.DeleteItem(ctx, 2), store.ErrItemNotFound)

	n, err := svc.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	raw, err := svc.GetItemRaw(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, models.KindFile, raw.Kind)

	require.NoError(t, svc.CopyItem(ctx, 3))

	assert.Equal(t, int64(5), deps.activity.touches.Load())
}

func TestClipService_NilActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	keys := mock.NewMockKeyManager(ctrl)
	keys.EXPECT().Unlock(gomock.Any()).Return(nil)

	svc := NewClipService(keys, mock.NewMockItemRepository(ctrl), nil, nil, logger.Nop())
	assert.NoError(t, svc.Unlock(context.Background()))
}
