package service

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/models"
)

type writer struct {
	backend clipboard.Backend
	keys    crypto.KeyManager
	items   store.ItemRepository
	logger  *logger.Logger
}

// NewWriter creates a Writer that restores items from items onto backend.
func NewWriter(backend clipboard.Backend, keys crypto.KeyManager, items store.ItemRepository, log *logger.Logger) Writer {
	return &writer{
		backend: backend,
		keys:    keys,
		items:   items,
		logger:  log,
	}
}

// payload is a fully decrypted item ready to be written.
type payload struct {
	kind     models.Kind
	text     string
	img      image.Image
	filePath string
	rtf      []byte
}

// CopyBack implements Writer.
func (w *writer) CopyBack(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	raw, err := w.items.GetItemRaw(ctx, id)
	if err != nil {
		return err
	}

	p, err := w.open(raw)
	if err != nil {
		log.Err(err).Str("func", "writer.CopyBack").Int64("item_id", id).Msg("failed to prepare item")
		return err
	}

	if err = w.write(p); err != nil {
		log.Err(err).Str("func", "writer.CopyBack").Int64("item_id", id).Msg("failed to write clipboard")
		return err
	}

	log.Debug().Int64("item_id", id).Str("kind", p.kind.String()).Msg("item copied to clipboard")
	return nil
}

// open decrypts every blob of raw. Nothing is written until all of them
// decrypt.
func (w *writer) open(raw models.RawItem) (payload, error) {
	p := payload{kind: raw.Kind}

	switch raw.Kind {
	case models.KindText:
		if raw.ContentBlob == nil {
			return payload{}, ErrEmptyItem
		}
		plain, err := w.decrypt(raw.ContentBlob)
		if err != nil {
			return payload{}, err
		}
		p.text = string(plain)
	case models.KindImage:
		if raw.ContentBlob == nil {
			return payload{}, ErrEmptyItem
		}
		plain, err := w.decrypt(raw.ContentBlob)
		if err != nil {
			return payload{}, err
		}
		img, err := clipboard.DecodePNG(plain)
		if err != nil {
			return payload{}, fmt.Errorf("%w: %w", ErrDecryption, err)
		}
		p.img = img
	case models.KindFile:
		if raw.FilePath == nil || *raw.FilePath == "" {
			return payload{}, ErrEmptyItem
		}
		p.filePath = *raw.FilePath
	default:
		return payload{}, fmt.Errorf("%w: %q", ErrUnknownKind, raw.Kind)
	}

	if raw.RTFBlob != nil {
		rtf, err := w.decrypt(raw.RTFBlob)
		if err != nil {
			return payload{}, err
		}
		p.rtf = rtf
	}

	return p, nil
}

func (w *writer) write(p payload) error {
	var err error
	switch p.kind {
	case models.KindText:
		err = w.backend.WriteText(p.text)
	case models.KindImage:
		err = w.backend.WriteImage(p.img)
	case models.KindFile:
		// dangling paths are written as is
		err = w.backend.WriteFileRef(p.filePath)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", p.kind, err)
	}

	if len(p.rtf) == 0 {
		return nil
	}
	if err = w.backend.WriteRTF(p.rtf); err != nil {
		if errors.Is(err, clipboard.ErrUnsupported) {
			w.logger.Debug().Str("backend", w.backend.Name()).Msg("backend has no rtf support, sidecar skipped")
			return nil
		}
		return fmt.Errorf("write rtf: %w", err)
	}
	return nil
}

func (w *writer) decrypt(blob []byte) ([]byte, error) {
	plain, err := w.keys.Decrypt(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	return plain, nil
}
