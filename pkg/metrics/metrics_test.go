package metrics

import (
	"testing"
	"time"
)

func TestGaugeCounterSummary(t *testing.T) {
	if err := InitMetrics(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer Close()

	SetGauge(CatalogSize, 8)
	IncrCounter(CatalogMutations, 1)
	IncrCounter(CatalogMutations, 1)

	gauge := Summary(CatalogSize, time.Minute)
	if gauge.Count == 0 || gauge.Last != 8 {
		t.Errorf("gauge summary = %+v", gauge)
	}

	counter := Summary(CatalogMutations, time.Minute)
	if counter.Last != 2 {
		t.Errorf("counter total = %v, want 2", counter.Last)
	}
	// both increments survive as distinct points
	if counter.Count != 2 {
		t.Errorf("counter points = %d, want 2", counter.Count)
	}

	empty := Summary("never_recorded", time.Minute)
	if empty.Count != 0 || empty.Last != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}
