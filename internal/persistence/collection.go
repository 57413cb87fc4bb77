package persistence

import (
	"context"
	"errors"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

var (
	// ErrNotFound is returned when no document has the requested id.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when an id cannot address a document in the backend.
	ErrInvalidID = errors.New("invalid document id")
)

// Store hands out collections and owns the underlying client.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Collection is a named set of documents. Every method is a single store
// operation; only single-document writes are atomic.
type Collection interface {
	Name() string
	Find(ctx context.Context, q Query) ([]domain.Document, error)
	FindByID(ctx context.Context, id string) (domain.Document, error)
	Count(ctx context.Context, conds ...Condition) (int64, error)
	// Insert stores doc under a backend-assigned id; any _id in doc is ignored.
	Insert(ctx context.Context, doc domain.Document) (*InsertResult, error)
	// UpsertFields merges fields into the document, creating it when absent.
	UpsertFields(ctx context.Context, id string, fields domain.Document) (*UpdateResult, error)
	// Increment adds delta to a numeric field; a missing field counts as zero.
	Increment(ctx context.Context, id, field string, delta int) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

// Operator selects how a Condition compares a field.
type Operator int

const (
	// OpEquals matches string fields equal to Value.
	OpEquals Operator = iota
	// OpContains matches string fields containing Value, ignoring case.
	OpContains
)

// Condition filters documents on one field. Dotted fields address nested documents.
type Condition struct {
	Field string
	Op    Operator
	Value string
}

// Eq builds an equality condition.
func Eq(field, value string) Condition {
	return Condition{Field: field, Op: OpEquals, Value: value}
}

// Contains builds a case-insensitive literal substring condition.
func Contains(field, substr string) Condition {
	return Condition{Field: field, Op: OpContains, Value: substr}
}

// Sort orders results by a single field. Documents without the field come
// first in ascending order.
type Sort struct {
	Field      string
	Descending bool
}

// Query describes a Find. Limit 0 means no limit.
type Query struct {
	Conditions []Condition
	Sort       *Sort
	Skip       int64
	Limit      int64
}

// InsertResult mirrors the driver result the front-end consumes.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult mirrors the driver result the front-end consumes.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult mirrors the driver result the front-end consumes.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
