// Package audit keeps an append-only trail of catalog mutations in a
// JSONL file under the workdir, pruned daily after the configured
// retention. It is observability, not a transaction log: nothing
// replays it.
package audit

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Entry is one recorded mutation.
type Entry struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	ProductID string    `json:"productId,omitempty"`
	Count     int       `json:"count"`
	Time      time.Time `json:"time"`
}

// Logger appends entries to <workdir>/audit/catalog.jsonl.
type Logger struct {
	mu   sync.Mutex
	path string
	node *snowflake.Node
}

func NewLogger(workdir string) (*Logger, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "init snowflake node")
	}
	dir := filepath.Join(workdir, "audit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create audit dir %s", dir)
	}
	return &Logger{
		path: filepath.Join(dir, "catalog.jsonl"),
		node: node,
	}, nil
}

// Record appends one mutation entry. Failures are logged and swallowed:
// the trail must never fail a mutation.
func (l *Logger) Record(op, productID string, count int) {
	entry := Entry{
		ID:        l.node.Generate().String(),
		Op:        op,
		ProductID: productID,
		Count:     count,
		Time:      time.Now(),
	}
	line, err := json.Marshal(entry)
	if err != nil {
		zap.L().Warn("audit encode failed", zap.Error(err))
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		zap.L().Warn("audit open failed", zap.String("path", l.path), zap.Error(err))
		return
	}
	defer f.Close()
	_, _ = f.Write(append(line, '\n'))
}

// Tail returns up to n most recent entries, newest last.
func (l *Logger) Tail(n int) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.readAll()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

// Prune rewrites the trail keeping only entries newer than retention.
func (l *Logger) Prune(retention time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.readAll()
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-retention)
	kept := entries[:0]
	for _, e := range entries {
		if e.Time.After(cutoff) {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}

	tmp := l.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "create %s", tmp)
	}
	w := bufio.NewWriter(f)
	for _, e := range kept {
		line, err := json.Marshal(e)
		if err != nil {
			continue
		}
		_, _ = w.Write(append(line, '\n'))
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "flush audit trail")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close audit trail")
	}
	return errors.Wrap(os.Rename(tmp, l.path), "replace audit trail")
}

func (l *Logger) readAll() ([]Entry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "open %s", l.path)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue // skip torn lines rather than losing the trail
		}
		entries = append(entries, e)
	}
	return entries, errors.Wrap(sc.Err(), "scan audit trail")
}
