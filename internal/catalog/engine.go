package catalog

import (
	"strings"
	"sync"

	"github.com/aerotools/catalogd/internal/domain"
	"github.com/asaskevich/EventBus"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Reorder directions.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Store is the persistence adapter contract: load and overwrite the
// whole ordered list. Load is expected to fall back to the built-in
// seed when the durable medium is empty, unreadable or malformed.
type Store interface {
	Load() ([]domain.Product, error)
	Save(items []domain.Product) error
}

// Engine owns the authoritative in-memory catalog and is the only
// writer to the persistence adapter. Every mutation validates, applies,
// writes through and returns the full updated list. Operations are
// serialized by a mutex; the single-logical-writer model still holds
// per instance, the mutex only enforces it under an HTTP surface.
//
// Known limitation: two separate processes sharing one durable medium
// overwrite each other last-write-wins; the engine only guarantees
// consistency of its own view.
type Engine struct {
	mu    sync.Mutex
	store Store
	bus   EventBus.Bus
	items []domain.Product
}

// NewEngine creates an engine over the given adapter. bus may be nil.
func NewEngine(store Store, bus EventBus.Bus) *Engine {
	return &Engine{store: store, bus: bus}
}

// Load primes the in-memory list from the adapter. An adapter error is
// the one truly unexpected condition here; it is converted into a
// fallback to the default catalog rather than propagated.
func (e *Engine) Load() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	items, err := e.store.Load()
	if err != nil {
		zap.L().Warn("catalog load failed, falling back to defaults", zap.Error(err))
		items = domain.DefaultCatalog()
	}
	e.items = items
	return nil
}

// List returns a deep copy of the current ordered catalog.
func (e *Engine) List() []domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return domain.CloneCatalog(e.items)
}

// Get returns one record by id.
func (e *Engine) Get(id string) (domain.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if idx := e.indexOf(id); idx >= 0 {
		return e.items[idx].Clone(), nil
	}
	return domain.Product{}, &NotFoundError{ID: id}
}

// Add validates a draft, resolves its id and slug, appends it at the
// end and persists. An explicit id/slug is kept when unique; a missing
// or colliding one is generated, so uniqueness never relies on caller
// discipline.
func (e *Engine) Add(draft domain.Product) ([]domain.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	draft = draft.Clone()
	draft.Name = strings.TrimSpace(draft.Name)
	draft.ID = strings.TrimSpace(draft.ID)
	draft.Slug = strings.TrimSpace(draft.Slug)
	if draft.Slug == "" {
		draft.Slug = Slugify(draft.Name)
	}
	if draft.PriceRange == "" {
		draft.PriceRange = "medium"
	}

	if errs := Validate(draft); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	ids, slugs := e.keys()
	switch {
	case draft.ID == "":
		draft.ID = NewProductID(draft.Category, ids)
	case ids[draft.ID]:
		draft.ID = UniqueID(draft.ID, ids)
	}
	if slugs[draft.Slug] {
		draft.Slug = UniqueSlug(draft.Slug, slugs)
	}

	e.items = append(e.items, draft)
	return e.commit(OpAdd, draft.ID)
}

// Update shallow-merges a patch over the record with the given id,
// re-validates the merged result and persists. The id never changes.
// Nothing is written when the merged record is invalid.
func (e *Engine) Update(id string, patch map[string]interface{}) ([]domain.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}

	merged := e.items[idx].Clone()
	if err := mergePatch(&merged, patch); err != nil {
		return nil, &ValidationError{Fields: map[string]string{"patch": err.Error()}}
	}
	merged.ID = id
	merged.Name = strings.TrimSpace(merged.Name)
	merged.Slug = strings.TrimSpace(merged.Slug)

	if errs := Validate(merged); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	for i, p := range e.items {
		if i == idx {
			continue
		}
		if p.Slug == merged.Slug {
			return nil, &ValidationError{Fields: map[string]string{"slug": "already in use"}}
		}
	}

	e.items[idx] = merged
	return e.commit(OpUpdate, id)
}

// Delete removes the record with the given id. An absent id is a no-op,
// not an error; the order of the remaining records is preserved.
func (e *Engine) Delete(id string) ([]domain.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return domain.CloneCatalog(e.items), nil
	}
	e.items = append(e.items[:idx], e.items[idx+1:]...)
	return e.commit(OpDelete, id)
}

// Duplicate clones a record, regenerates both id and slug with the
// suffix collision loop, and inserts the copy immediately after the
// source.
func (e *Engine) Duplicate(id string) ([]domain.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}

	ids, slugs := e.keys()
	copied := e.items[idx].Clone()
	copied.ID = UniqueID(copied.ID, ids)
	copied.Slug = UniqueSlug(copied.Slug, slugs)

	e.items = append(e.items, domain.Product{})
	copy(e.items[idx+2:], e.items[idx+1:])
	e.items[idx+1] = copied
	return e.commit(OpDuplicate, copied.ID)
}

// Reorder swaps the record with its adjacent neighbour. Moving the
// first record up or the last record down is a no-op: the boundary
// never wraps and never errors. An unknown id is likewise a no-op.
func (e *Engine) Reorder(id, direction string) ([]domain.Product, error) {
	if direction != DirectionUp && direction != DirectionDown {
		return nil, &ValidationError{Fields: map[string]string{"direction": "must be up or down"}}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return domain.CloneCatalog(e.items), nil
	}
	target := idx - 1
	if direction == DirectionDown {
		target = idx + 1
	}
	if target < 0 || target >= len(e.items) {
		return domain.CloneCatalog(e.items), nil
	}
	e.items[idx], e.items[target] = e.items[target], e.items[idx]
	return e.commit(OpReorder, id)
}

// Export serializes the current catalog to the portable document.
func (e *Engine) Export() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ExportDocument(e.items)
}

// Import replaces the whole catalog with a rehydrated document in a
// single atomic swap and one write. The document is rejected outright
// on any parse, shape or record validation failure, leaving the
// catalog untouched.
func (e *Engine) Import(data []byte) ([]domain.Product, error) {
	items, err := ImportDocument(data)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = domain.CloneCatalog(items)
	return e.commit(OpImport, "")
}

// ResetToDefaults replaces the catalog with the built-in seed list.
func (e *Engine) ResetToDefaults() ([]domain.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = domain.DefaultCatalog()
	return e.commit(OpReset, "")
}

// commit writes the list through the adapter and publishes the change
// event. A failed write still returns the updated in-memory list, with
// a *PersistenceError flagging that durability is degraded.
func (e *Engine) commit(op, id string) ([]domain.Product, error) {
	list := domain.CloneCatalog(e.items)

	var perr error
	if err := e.store.Save(e.items); err != nil {
		zap.L().Error("catalog write-through failed",
			zap.String("op", op), zap.String("product", id), zap.Error(err))
		perr = &PersistenceError{Err: err}
	}

	if e.bus != nil {
		e.bus.Publish(TopicCatalogChanged, ChangeEvent{Op: op, ProductID: id, Count: len(e.items)})
	}
	return list, perr
}

func (e *Engine) indexOf(id string) int {
	for i, p := range e.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) keys() (ids, slugs map[string]bool) {
	ids = make(map[string]bool, len(e.items))
	slugs = make(map[string]bool, len(e.items))
	for _, p := range e.items {
		ids[p.ID] = true
		slugs[p.Slug] = true
	}
	return ids, slugs
}

// mergePatch decodes a json-keyed patch map onto the record. Only keys
// present in the patch are touched; "id" is stripped beforehand.
func mergePatch(dst *domain.Product, patch map[string]interface{}) error {
	cleaned := make(map[string]interface{}, len(patch))
	for k, v := range patch {
		if strings.EqualFold(k, "id") {
			continue
		}
		cleaned[k] = v
	}

	// ZeroFields makes a patched slice or map replace the stored one
	// instead of merging element-wise into it.
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           dst,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(cleaned)
}
