package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/models"
)

// DefaultPollInterval is used when the watcher is built with a non-positive
// interval.
const DefaultPollInterval = 250 * time.Millisecond

type watcher struct {
	backend  clipboard.Backend
	keys     crypto.KeyManager
	items    store.ItemRepository
	interval time.Duration
	logger   *logger.Logger
	stat     func(string) (os.FileInfo, error)

	// tickMu serializes Tick; lastCount is the mirror of the OS change
	// counter and starts at 0 so the first tick captures the current
	// clipboard.
	tickMu    sync.Mutex
	lastCount int64

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a Watcher that samples backend every interval and
// stores new captures through items, sealing payloads with keys.
func NewWatcher(backend clipboard.Backend, keys crypto.KeyManager, items store.ItemRepository, interval time.Duration, log *logger.Logger) Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &watcher{
		backend:  backend,
		keys:     keys,
		items:    items,
		interval: interval,
		logger:   log,
		stat:     os.Stat,
	}
}

// Tick implements Watcher.
func (w *watcher) Tick(ctx context.Context) error {
	w.tickMu.Lock()
	defer w.tickMu.Unlock()

	count, err := w.backend.ChangeCount()
	if err != nil {
		return fmt.Errorf("read change count: %w", err)
	}
	if count == w.lastCount {
		return nil
	}
	// one counter value maps to at most one capture, even if it fails
	w.lastCount = count

	ctx, log := w.logger.WithTraceID(ctx)
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Int64("change_count", count)
	})

	return w.capture(ctx, log)
}

// capture classifies the clipboard content by precedence:
// file references, then text, then image.
func (w *watcher) capture(ctx context.Context, log *logger.Logger) error {
	urls, err := w.backend.FileURLs()
	if err != nil {
		return fmt.Errorf("read file urls: %w", err)
	}
	if len(urls) > 0 {
		return w.captureFiles(ctx, log, urls)
	}

	text, ok, err := w.backend.Text()
	if err != nil {
		return fmt.Errorf("read text: %w", err)
	}
	if ok {
		return w.captureText(ctx, log, text)
	}

	img, err := w.backend.Image()
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if img != nil {
		return w.captureImage(ctx, log, img)
	}

	log.Debug().Str("func", "watcher.capture").Msg("clipboard change has no supported representation")
	return nil
}

func (w *watcher) captureFiles(ctx context.Context, log *logger.Logger, urls []string) error {
	var errs []error
	for _, raw := range urls {
		path := clipboard.ParseFileURL(raw)
		if path == "" {
			continue
		}

		var size int64
		if info, err := w.stat(path); err == nil {
			size = info.Size()
		}

		id, err := w.items.InsertItem(ctx, models.NewItem{
			Kind:     models.KindFile,
			Size:     size,
			Hash:     store.HashFilePath(path),
			FilePath: &path,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("store file item: %w", err))
			continue
		}
		log.Debug().Int64("item_id", id).Str("kind", models.KindFile.String()).Msg("captured file reference")
	}
	return errors.Join(errs...)
}

func (w *watcher) captureText(ctx context.Context, log *logger.Logger, text string) error {
	content, err := w.keys.Encrypt([]byte(text))
	if errors.Is(err, crypto.ErrLocked) {
		log.Debug().Str("kind", models.KindText.String()).Msg("key locked, capture dropped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seal text: %w", err)
	}

	item := models.NewItem{
		Kind:        models.KindText,
		Size:        int64(len(text)),
		Hash:        store.HashText(text),
		ContentBlob: content,
	}

	rtf, err := w.backend.RTF()
	if err != nil {
		log.Warn().Err(err).Msg("failed to read rtf, storing plain text only")
	}
	if len(rtf) > 0 {
		sealed, err := w.keys.Encrypt(rtf)
		if err != nil {
			log.Warn().Err(err).Msg("failed to seal rtf, storing plain text only")
		} else {
			item.RTFBlob = sealed
		}
	}

	id, err := w.items.InsertItem(ctx, item)
	if err != nil {
		return fmt.Errorf("store text item: %w", err)
	}
	log.Debug().Int64("item_id", id).Str("kind", models.KindText.String()).Bool("rtf", item.RTFBlob != nil).Msg("captured text")
	return nil
}

func (w *watcher) captureImage(ctx context.Context, log *logger.Logger, img image.Image) error {
	if !w.keys.IsUnlocked() {
		log.Debug().Str("kind", models.KindImage.String()).Msg("key locked, capture dropped")
		return nil
	}

	png, err := clipboard.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode image: %w", err)
	}

	content, err := w.keys.Encrypt(png)
	if errors.Is(err, crypto.ErrLocked) {
		log.Debug().Str("kind", models.KindImage.String()).Msg("key locked, capture dropped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seal image: %w", err)
	}

	id, err := w.items.InsertItem(ctx, models.NewItem{
		Kind:        models.KindImage,
		Size:        int64(len(png)),
		Hash:        store.HashImage(png),
		ContentBlob: content,
	})
	if err != nil {
		return fmt.Errorf("store image item: %w", err)
	}
	log.Debug().Int64("item_id", id).Str("kind", models.KindImage.String()).Int("bytes", len(png)).Msg("captured image")
	return nil
}

// Run implements Watcher.
func (w *watcher) Run(ctx context.Context) error {
	w.logger.Info().
		Str("backend", w.backend.Name()).
		Dur("interval", w.interval).
		Msg("clipboard watcher started")

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("clipboard watcher stopped")
			return nil
		case <-t.C:
			if err := w.Tick(ctx); err != nil {
				w.logger.Err(err).Str("func", "watcher.Run").Msg("clipboard tick failed")
			}
		}
	}
}

// Start implements Watcher.
func (w *watcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		_ = w.Run(runCtx)
	}()
}

// Stop implements Watcher.
func (w *watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
