package catalog

// TopicCatalogChanged is published on the application bus after every
// successful mutation. Subscribers (replica syncer, audit trail,
// metrics) must never block: handlers run on the mutating goroutine.
const TopicCatalogChanged = "catalog:changed"

// Mutation kinds carried by ChangeEvent.Op.
const (
	OpAdd       = "add"
	OpUpdate    = "update"
	OpDelete    = "delete"
	OpDuplicate = "duplicate"
	OpReorder   = "reorder"
	OpImport    = "import"
	OpReset     = "reset"
)

// ChangeEvent describes one committed catalog mutation.
type ChangeEvent struct {
	Op        string
	ProductID string
	Count     int
}
