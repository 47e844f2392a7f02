package store

import (
	"context"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
)

// newTestRepo opens a migrated SQLite database in a temp dir. The returned
// repository uses a fake clock that advances one millisecond per insert.
func newTestRepo(t *testing.T) (*itemRepository, *Storages) {
	t.Helper()

	s, err := NewStorages(context.Background(), config.Storage{DataDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	repo := s.Items.(*itemRepository)
	base := time.UnixMilli(1_700_000_000_000)
	var tick int64
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}
	return repo, s
}

func textItem(text string) models.NewItem {
	return models.NewItem{
		Kind:        models.KindText,
		Size:        int64(len(text)),
		Hash:        HashText(text),
		ContentBlob: []byte("sealed:" + text),
	}
}

func fileItem(path string) models.NewItem {
	return models.NewItem{
		Kind:     models.KindFile,
		Hash:     HashFilePath(path),
		FilePath: &path,
	}
}

// ── InsertItem / dedup ──

func TestInsertItem_Dedup(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.InsertItem(ctx, textItem("hello"))
	require.NoError(t, err)
	second, err := repo.InsertItem(ctx, textItem("hello"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	items, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestInsertItem_SameHashDifferentFilePath(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	hash := ComputeHash([]byte("same"))
	a, b := "/tmp/a.txt", "/tmp/b.txt"

	idA, err := repo.InsertItem(ctx, models.NewItem{Kind: models.KindFile, Hash: hash, FilePath: &a})
	require.NoError(t, err)
	idB, err := repo.InsertItem(ctx, models.NewItem{Kind: models.KindFile, Hash: hash, FilePath: &b})
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)

	// a NULL path is its own dedup bucket
	idNil, err := repo.InsertItem(ctx, models.NewItem{Kind: models.KindFile, Hash: hash})
	require.NoError(t, err)
	assert.NotEqual(t, idA, idNil)
	assert.NotEqual(t, idB, idNil)

	items, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestInsertItem_SameHashDifferentKind(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	hash := ComputeHash([]byte("x"))
	idText, err := repo.InsertItem(ctx, models.NewItem{Kind: models.KindText, Hash: hash})
	require.NoError(t, err)
	idImage, err := repo.InsertItem(ctx, models.NewItem{Kind: models.KindImage, Hash: hash})
	require.NoError(t, err)
	assert.NotEqual(t, idText, idImage)
}

func TestInsertItem_ConcurrentDuplicates(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	const n = 8
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i // per-iteration copy (go 1.21 loop semantics)
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.InsertItem(ctx, textItem("race"))
			assert.NoError(t, err)
			ids[i] = id
		}()
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	items, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFindDuplicate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, found, err := repo.FindDuplicate(ctx, HashText("missing"), models.KindText, nil)
	require.NoError(t, err)
	assert.False(t, found)

	id, err := repo.InsertItem(ctx, textItem("present"))
	require.NoError(t, err)

	got, found, err := repo.FindDuplicate(ctx, HashText("present"), models.KindText, nil)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, id, got)
}

// ── ListRecent ──

func TestListRecent_PinnedFirstThenNewest(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	oldest, err := repo.InsertItem(ctx, textItem("one"))
	require.NoError(t, err)
	middle, err := repo.InsertItem(ctx, textItem("two"))
	require.NoError(t, err)
	newest, err := repo.InsertItem(ctx, textItem("three"))
	require.NoError(t, err)

	require.NoError(t, repo.PinItem(ctx, oldest, true))

	items, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, oldest, items[0].ID)
	assert.True(t, items[0].IsPinned)
	assert.Equal(t, newest, items[1].ID)
	assert.Equal(t, middle, items[2].ID)
	assert.Greater(t, items[1].CreatedAt, items[2].CreatedAt)

	require.NoError(t, repo.PinItem(ctx, oldest, false))
	items, err = repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{newest, middle, oldest}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestListRecent_SameMillisecondUsesID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	fixed := time.UnixMilli(1_700_000_000_000)
	repo.now = func() time.Time { return fixed }

	first, err := repo.InsertItem(ctx, textItem("a"))
	require.NoError(t, err)
	second, err := repo.InsertItem(ctx, textItem("b"))
	require.NoError(t, err)

	items, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second, items[0].ID)
	assert.Equal(t, first, items[1].ID)
}

func TestListRecent_LimitAndKindFilter(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for _, s := range []string{"a", "b", "c"} {
		_, err := repo.InsertItem(ctx, textItem(s))
		require.NoError(t, err)
	}
	_, err := repo.InsertItem(ctx, fileItem("/tmp/report.pdf"))
	require.NoError(t, err)

	items, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = repo.ListRecent(ctx, 0, models.KindFile)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.KindFile, items[0].Kind)
	require.NotNil(t, items[0].FilePath)
	assert.Equal(t, "/tmp/report.pdf", *items[0].FilePath)

	items, err = repo.ListRecent(ctx, 0, models.KindText, models.KindImage)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	items, err = repo.ListRecent(ctx, 0, models.KindImage)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListRecent_TextScenario(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	item := textItem("hello db")
	_, err := repo.InsertItem(ctx, item)
	require.NoError(t, err)

	items, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.KindText, items[0].Kind)
	assert.Equal(t, hex.EncodeToString(HashText("hello db")), items[0].SHA256Hex)
	assert.Equal(t, int64(len("hello db")), items[0].Size)
	assert.Nil(t, items[0].FilePath)
	assert.False(t, items[0].IsPinned)
}

func TestListRecent_MissingFileKeepsZeroSize(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	path := "/definitely/not/here.txt"
	id, err := repo.InsertItem(ctx, fileItem(path))
	require.NoError(t, err)

	items, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, models.KindFile, items[0].Kind)
	assert.Zero(t, items[0].Size)

	raw, err := repo.GetItemRaw(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, raw.ContentBlob)
	require.NotNil(t, raw.FilePath)
	assert.Equal(t, path, *raw.FilePath)
}

// ── GetItemRaw / PinItem / DeleteItem / ClearAll ──

func TestGetItemRaw_ReturnsBlobs(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	item := textItem("rich")
	item.RTFBlob = []byte("sealed-rtf")
	id, err := repo.InsertItem(ctx, item)
	require.NoError(t, err)

	raw, err := repo.GetItemRaw(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.KindText, raw.Kind)
	assert.Equal(t, item.ContentBlob, raw.ContentBlob)
	assert.Equal(t, item.RTFBlob, raw.RTFBlob)
	assert.Nil(t, raw.PreviewBlob)
	assert.Nil(t, raw.FilePath)
}

func TestDeleteItem_ThenGetIsNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.InsertItem(ctx, textItem("gone"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteItem(ctx, id))

	_, err = repo.GetItemRaw(ctx, id)
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.ErrorIs(t, repo.DeleteItem(ctx, id), ErrItemNotFound)
}

func TestPinItem_Missing(t *testing.T) {
	repo, _ := newTestRepo(t)
	assert.ErrorIs(t, repo.PinItem(context.Background(), 42, true), ErrItemNotFound)
}

func TestClearAll(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for _, s := range []string{"a", "b"} {
		_, err := repo.InsertItem(ctx, textItem(s))
		require.NoError(t, err)
	}

	n, err := repo.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	items, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, items)

	n, err = repo.ClearAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewStorages_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewStorages(ctx, config.Storage{DataDir: dir}, logger.Nop())
	require.NoError(t, err)
	_, err = s.Items.InsertItem(ctx, textItem("persisted"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStorages(ctx, config.Storage{DataDir: dir}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	items, err := s.Items.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestNewStorages_SpecialCharactersInDataDir(t *testing.T) {
	for _, name := range []string{"a#b", "a?b", "a%41b", "a b"} {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			dir := filepath.Join(root, name)
			ctx := context.Background()

			s, err := NewStorages(ctx, config.Storage{DataDir: dir}, logger.Nop())
			require.NoError(t, err)
			_, err = s.Items.InsertItem(ctx, textItem("inside"))
			require.NoError(t, err)
			require.NoError(t, s.Close())

			_, err = os.Stat(filepath.Join(dir, DatabaseFileName))
			require.NoError(t, err, "database must live inside the data directory")

			entries, err := os.ReadDir(root)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, name, entries[0].Name())
		})
	}
}

func TestNewStorages_EmptyDataDir(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	assert.True(t, errors.Is(err, ErrStorageInit))
}
