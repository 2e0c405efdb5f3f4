// Package syncer pushes the whole catalog document to a remote replica
// endpoint after each change, the way the legacy admin kept the hosted
// copy of products.json current. Pushes are debounced and best-effort:
// a failed push is retried on the next change, never surfaced to the
// mutation that triggered it.
package syncer

import (
	"sync"
	"time"

	"github.com/aerotools/catalogd/config"
	"github.com/aerotools/catalogd/internal/catalog"
	"github.com/aerotools/catalogd/pkg/metrics"
	"github.com/asaskevich/EventBus"
	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const pushTimeout = 10 * time.Second

type Syncer struct {
	url      string
	debounce time.Duration
	engine   *catalog.Engine

	mu    sync.Mutex
	timer *time.Timer
}

func New(engine *catalog.Engine, cfg config.SyncConfig) *Syncer {
	debounce := time.Duration(cfg.DebounceSec) * time.Second
	if debounce <= 0 {
		debounce = time.Second
	}
	return &Syncer{
		url:      cfg.URL,
		debounce: debounce,
		engine:   engine,
	}
}

// Start subscribes to catalog change events on the bus.
func (s *Syncer) Start(bus EventBus.Bus) error {
	if s.url == "" {
		return errors.New("sync enabled but no url configured")
	}
	return bus.Subscribe(catalog.TopicCatalogChanged, s.onChange)
}

// Stop cancels any pending debounced push.
func (s *Syncer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// onChange resets the debounce window so a burst of edits produces a
// single push.
func (s *Syncer) onChange(ev catalog.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.push)
	zap.L().Debug("catalog sync scheduled", zap.String("op", ev.Op))
}

func (s *Syncer) push() {
	items := s.engine.List()

	var code int
	err := gout.PUT(s.url).
		SetTimeout(pushTimeout).
		SetJSON(gout.H{"products": items}).
		Code(&code).
		Do()
	if err != nil || code < 200 || code >= 300 {
		metrics.IncrCounter(metrics.CatalogSyncFailure, 1)
		zap.L().Warn("catalog sync push failed",
			zap.String("url", s.url), zap.Int("status", code), zap.Error(err))
		return
	}

	metrics.IncrCounter(metrics.CatalogSyncPush, 1)
	zap.L().Info("catalog synced to replica",
		zap.String("url", s.url), zap.Int("products", len(items)))
}
