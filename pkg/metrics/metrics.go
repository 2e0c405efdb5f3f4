// Package metrics is a small embedded time-series store for service
// gauges and counters, kept under <workdir>/metrics. It trades a real
// metrics backend for zero external infrastructure, which is all a
// single-node back-office needs.
package metrics

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/nakabonne/tstorage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	mu       sync.Mutex
	store    tstorage.Storage
	counters = make(map[string]int64)
)

// Counter and gauge names recorded by the service.
const (
	CatalogMutations   = "catalog_mutations"
	CatalogSize        = "catalog_size"
	CatalogSyncPush    = "catalog_sync_push"
	CatalogSyncFailure = "catalog_sync_failure"
	SystemCPUUse       = "system_cpuuse"
	SystemMemUse       = "system_memuse"
)

// InitMetrics opens the on-disk series store under workdir.
func InitMetrics(workdir string) error {
	mu.Lock()
	defer mu.Unlock()
	if store != nil {
		return nil
	}
	// Nanosecond timestamps keep rapid counter increments as distinct
	// points; coarser precision folds same-instant rows into one.
	s, err := tstorage.NewStorage(
		tstorage.WithDataPath(filepath.Join(workdir, "metrics")),
		tstorage.WithTimestampPrecision(tstorage.Nanoseconds),
		tstorage.WithRetention(7*24*time.Hour),
	)
	if err != nil {
		return errors.Wrap(err, "open metrics storage")
	}
	store = s
	return nil
}

// SetGauge records an instantaneous value. A no-op before InitMetrics.
func SetGauge(name string, value int64) {
	insert(name, float64(value))
}

// IncrCounter bumps a monotonic counter and records its new total.
func IncrCounter(name string, delta int64) {
	mu.Lock()
	counters[name] += delta
	total := counters[name]
	mu.Unlock()
	insert(name, float64(total))
}

func insert(name string, value float64) {
	mu.Lock()
	s := store
	mu.Unlock()
	if s == nil {
		return
	}
	err := s.InsertRows([]tstorage.Row{
		{Metric: name, DataPoint: tstorage.DataPoint{Timestamp: time.Now().UnixNano(), Value: value}},
	})
	if err != nil {
		zap.L().Debug("metrics insert failed", zap.String("metric", name), zap.Error(err))
	}
}

// Summary aggregates one series over a trailing window.
type SummaryStats struct {
	Metric string  `json:"metric"`
	Count  int     `json:"count"`
	Last   float64 `json:"last"`
	Mean   float64 `json:"mean"`
	P95    float64 `json:"p95"`
}

// Summary computes count/last/mean/p95 for a metric over the trailing
// window. An unknown or empty series yields a zero summary, not an
// error, so dashboards render before any data exists.
func Summary(name string, window time.Duration) SummaryStats {
	out := SummaryStats{Metric: name}

	mu.Lock()
	s := store
	mu.Unlock()
	if s == nil {
		return out
	}

	// Select's end bound is exclusive; +1 keeps the current instant in.
	end := time.Now().UnixNano() + 1
	points, err := s.Select(name, nil, end-1-window.Nanoseconds(), end)
	if err != nil || len(points) == 0 {
		return out
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	out.Count = len(values)
	out.Last = values[len(values)-1]
	if m, err := stats.Mean(values); err == nil {
		out.Mean = m
	}
	if p, err := stats.Percentile(values, 95); err == nil {
		out.P95 = p
	}
	return out
}

// Close flushes and closes the series store.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}
