package persistence

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// MemoryStore keeps collections in process memory. Used by tests and local runs.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*MemoryCollection
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*MemoryCollection)}
}

// Collection returns the named collection, creating it on first use.
func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	coll, ok := s.collections[name]
	if !ok {
		coll = &MemoryCollection{name: name, docs: make(map[string]domain.Document)}
		s.collections[name] = coll
	}
	return coll
}

func (s *MemoryStore) Ping(context.Context) error  { return nil }
func (s *MemoryStore) Close(context.Context) error { return nil }

// MemoryCollection is a mutex-guarded map of documents kept in insertion order.
type MemoryCollection struct {
	name  string
	mu    sync.RWMutex
	order []string
	docs  map[string]domain.Document
}

func (c *MemoryCollection) Name() string { return c.name }

func (c *MemoryCollection) Find(_ context.Context, q Query) ([]domain.Document, error) {
	c.mu.RLock()
	var matched []domain.Document
	for _, id := range c.order {
		doc := c.docs[id]
		if matchesAll(doc, q.Conditions) {
			matched = append(matched, withID(doc, id))
		}
	}
	c.mu.RUnlock()

	if q.Sort != nil {
		field, desc := q.Sort.Field, q.Sort.Descending
		sort.SliceStable(matched, func(i, j int) bool {
			a, aok := lookupNumber(matched[i], field)
			b, bok := lookupNumber(matched[j], field)
			if desc {
				return aok && (!bok || a > b)
			}
			return bok && (!aok || a < b)
		})
	}

	if q.Skip > 0 {
		if q.Skip >= int64(len(matched)) {
			return []domain.Document{}, nil
		}
		matched = matched[q.Skip:]
	}
	if q.Limit > 0 && q.Limit < int64(len(matched)) {
		matched = matched[:q.Limit]
	}
	if matched == nil {
		matched = []domain.Document{}
	}
	return matched, nil
}

func (c *MemoryCollection) FindByID(_ context.Context, id string) (domain.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return withID(doc, id), nil
}

func (c *MemoryCollection) Count(_ context.Context, conds ...Condition) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var n int64
	for _, doc := range c.docs {
		if matchesAll(doc, conds) {
			n++
		}
	}
	return n, nil
}

func (c *MemoryCollection) Insert(_ context.Context, doc domain.Document) (*InsertResult, error) {
	id := uuid.NewString()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[id] = doc.Without(domain.FieldID)
	c.order = append(c.order, id)
	return &InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (c *MemoryCollection) UpsertFields(_ context.Context, id string, fields domain.Document) (*UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fields = fields.Without(domain.FieldID)
	// the id becomes a map key, so it must not alias a request buffer
	id = strings.Clone(id)

	existing, ok := c.docs[id]
	if !ok {
		c.docs[id] = fields
		c.order = append(c.order, id)
		upserted := id
		return &UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &upserted}, nil
	}

	merged := existing.Without()
	for k, v := range fields {
		merged[k] = v
	}
	c.docs[id] = merged
	return &UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (c *MemoryCollection) Increment(_ context.Context, id, field string, delta int) (*UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	existing, ok := c.docs[id]
	if !ok {
		return &UpdateResult{Acknowledged: true}, nil
	}

	current := 0.0
	if raw, present := existing[field]; present {
		n, isNum := toFloat(raw)
		if !isNum {
			return nil, fmt.Errorf("increment %s.%s: field is not numeric", c.name, field)
		}
		current = n
	}
	updated := existing.Without()
	updated[field] = current + float64(delta)
	c.docs[id] = updated
	return &UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (c *MemoryCollection) Delete(_ context.Context, id string) (*DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return &DeleteResult{Acknowledged: true}, nil
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func withID(doc domain.Document, id string) domain.Document {
	out := doc.Without()
	out[domain.FieldID] = id
	return out
}

func matchesAll(doc domain.Document, conds []Condition) bool {
	for _, cond := range conds {
		val, ok := lookup(doc, cond.Field).(string)
		if !ok {
			return false
		}
		switch cond.Op {
		case OpEquals:
			if val != cond.Value {
				return false
			}
		case OpContains:
			if !strings.Contains(strings.ToLower(val), strings.ToLower(cond.Value)) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func lookup(doc map[string]any, path string) any {
	var current any = doc
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			if d, isDoc := current.(domain.Document); isDoc {
				m = d
			} else {
				return nil
			}
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}
	return current
}

func lookupNumber(doc domain.Document, path string) (float64, bool) {
	return toFloat(lookup(doc, path))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
