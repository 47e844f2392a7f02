package service

import (
	"context"
	"errors"
	"image"
	"testing"

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

func newTestWriter(t *testing.T) (Writer, watcherDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := watcherDeps{
		backend: mock.NewMockBackend(ctrl),
		keys:    mock.NewMockKeyManager(ctrl),
		items:   mock.NewMockItemRepository(ctrl),
	}
	return NewWriter(deps.backend, deps.keys, deps.items, logger.Nop()), deps
}

func strPtr(s string) *string { return &s }

func TestWriter_CopyBack_Text(t *testing.T) {
	w, deps := newTestWriter(t)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).
		Return(models.RawItem{Kind: models.KindText, ContentBlob: sealed("hi")}, nil)
	deps.keys.EXPECT().Decrypt(sealed("hi")).Return([]byte("hi"), nil)
	deps.backend.EXPECT().WriteText("hi").Return(nil)

	require.NoError(t, w.CopyBack(context.Background(), 1))
}

func TestWriter_CopyBack_TextWithRTF(t *testing.T) {
	w, deps := newTestWriter(t)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).Return(models.RawItem{
		Kind:        models.KindText,
		ContentBlob: sealed("hi"),
		RTFBlob:     sealed("rtf"),
	}, nil)
	deps.keys.EXPECT().Decrypt(sealed("hi")).Return([]byte("hi"), nil)
	deps.keys.EXPECT().Decrypt(sealed("rtf")).Return([]byte(`{\rtf1 hi}`), nil)
	gomock.InOrder(
		deps.backend.EXPECT().WriteText("hi").Return(nil),
		deps.backend.EXPECT().WriteRTF([]byte(`{\rtf1 hi}`)).Return(nil),
	)

	require.NoError(t, w.CopyBack(context.Background(), 1))
}

func TestWriter_CopyBack_RTFUnsupportedIsIgnored(t *testing.T) {
	w, deps := newTestWriter(t)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).Return(models.RawItem{
		Kind:        models.KindText,
		ContentBlob: sealed("hi"),
		RTFBlob:     sealed("rtf"),
	}, nil)
	deps.keys.EXPECT().Decrypt(gomock.Any()).Return([]byte("x"), nil).Times(2)
	deps.backend.EXPECT().WriteText("x").Return(nil)
	deps.backend.EXPECT().WriteRTF(gomock.Any()).Return(clipboard.ErrUnsupported)
	deps.backend.EXPECT().Name().Return("text-only").AnyTimes()

	require.NoError(t, w.CopyBack(context.Background(), 1))
}

func TestWriter_CopyBack_RTFDecryptFailureWritesNothing(t *testing.T) {
	w, deps := newTestWriter(t)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).Return(models.RawItem{
		Kind:        models.KindText,
		ContentBlob: sealed("hi"),
		RTFBlob:     sealed("rtf"),
	}, nil)
	deps.keys.EXPECT().Decrypt(sealed("hi")).Return([]byte("hi"), nil)
	deps.keys.EXPECT().Decrypt(sealed("rtf")).Return(nil, crypto.ErrAuthentication)
	// no Write* expectations: the clipboard must stay untouched

	err := w.CopyBack(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDecryption)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestWriter_CopyBack_Locked(t *testing.T) {
	w, deps := newTestWriter(t)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).
		Return(models.RawItem{Kind: models.KindText, ContentBlob: sealed("hi")}, nil)
	deps.keys.EXPECT().Decrypt(gomock.Any()).Return(nil, crypto.ErrLocked)

	err := w.CopyBack(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDecryption)
	assert.ErrorIs(t, err, crypto.ErrLocked)
}

func TestWriter_CopyBack_Image(t *testing.T) {
	w, deps := newTestWriter(t)

	png, err := clipboard.EncodePNG(testImage())
	require.NoError(t, err)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(2)).
		Return(models.RawItem{Kind: models.KindImage, ContentBlob: sealed("png")}, nil)
	deps.keys.EXPECT().Decrypt(sealed("png")).Return(png, nil)
	deps.backend.EXPECT().WriteImage(gomock.Any()).DoAndReturn(func(img image.Image) error {
		assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
		return nil
	})

	require.NoError(t, w.CopyBack(context.Background(), 2))
}

func TestWriter_CopyBack_CorruptPNG(t *testing.T) {
	w, deps := newTestWriter(t)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(2)).
		Return(models.RawItem{Kind: models.KindImage, ContentBlob: sealed("png")}, nil)
	deps.keys.EXPECT().Decrypt(gomock.Any()).Return([]byte("not a png"), nil)

	assert.ErrorIs(t, w.CopyBack(context.Background(), 2), ErrDecryption)
}

func TestWriter_CopyBack_DanglingFile(t *testing.T) {
	w, deps := newTestWriter(t)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(3)).
		Return(models.RawItem{Kind: models.KindFile, FilePath: strPtr("/no/such/file.txt")}, nil)
	deps.backend.EXPECT().WriteFileRef("/no/such/file.txt").Return(nil)

	require.NoError(t, w.CopyBack(context.Background(), 3))
}

func TestWriter_CopyBack_NotFound(t *testing.T) {
	w, deps := newTestWriter(t)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(9)).Return(models.RawItem{}, store.ErrItemNotFound)

	assert.ErrorIs(t, w.CopyBack(context.Background(), 9), store.ErrItemNotFound)
}

func TestWriter_CopyBack_EmptyRows(t *testing.T) {
	tests := []struct {
		name string
		raw  models.RawItem
		want error
	}{
		{name: "text without content", raw: models.RawItem{Kind: models.KindText}, want: ErrEmptyItem},
		{name: "image without content", raw: models.RawItem{Kind: models.KindImage}, want: ErrEmptyItem},
		{name: "file without path", raw: models.RawItem{Kind: models.KindFile}, want: ErrEmptyItem},
		{name: "unknown kind", raw: models.RawItem{Kind: "video"}, want: ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, deps := newTestWriter(t)
			deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).Return(tt.raw, nil)

			assert.ErrorIs(t, w.CopyBack(context.Background(), 1), tt.want)
		})
	}
}

func TestWriter_CopyBack_WriteFailure(t *testing.T) {
	w, deps := newTestWriter(t)

	deps.items.EXPECT().GetItemRaw(gomock.Any(), int64(1)).
		Return(models.RawItem{Kind: models.KindText, ContentBlob: sealed("hi")}, nil)
	deps.keys.EXPECT().Decrypt(gomock.Any()).Return([]byte("hi"), nil)
	deps.backend.EXPECT().WriteText("hi").Return(clipboard.ErrTimeout)

	err := w.CopyBack(context.Background(), 1)
	assert.True(t, errors.Is(err, clipboard.ErrTimeout))
}
