package repository

import (
	"context"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/persistence"
)

// FoodFilter captures the name search and page window of the food listing.
type FoodFilter struct {
	Search string
	Limit  int64
	Offset int64
}

// FoodRepository encapsulates food persistence.
type FoodRepository interface {
	ListByPurchaseCount(ctx context.Context, descending bool, limit int64) ([]domain.Document, error)
	ListWithFilter(ctx context.Context, filter FoodFilter) ([]domain.Document, error)
	CountByName(ctx context.Context, search string) (int64, error)
	ListByOwner(ctx context.Context, email string) ([]domain.Document, error)
	GetByID(ctx context.Context, id string) (domain.Document, error)
	Create(ctx context.Context, doc domain.Document) (*persistence.InsertResult, error)
	Upsert(ctx context.Context, id string, fields domain.Document) (*persistence.UpdateResult, error)
	IncrementPurchaseCount(ctx context.Context, id string) (*persistence.UpdateResult, error)
	Delete(ctx context.Context, id string) (*persistence.DeleteResult, error)
}

type foodRepository struct {
	coll persistence.Collection
}

// NewFoodRepository instantiates repository.
func NewFoodRepository(coll persistence.Collection) FoodRepository {
	return &foodRepository{coll: coll}
}

func (r *foodRepository) ListByPurchaseCount(ctx context.Context, descending bool, limit int64) ([]domain.Document, error) {
	return r.coll.Find(ctx, persistence.Query{
		Sort:  &persistence.Sort{Field: domain.FieldPurchaseCount, Descending: descending},
		Limit: limit,
	})
}

func (r *foodRepository) ListWithFilter(ctx context.Context, filter FoodFilter) ([]domain.Document, error) {
	return r.coll.Find(ctx, persistence.Query{
		Conditions: []persistence.Condition{persistence.Contains(domain.FieldName, filter.Search)},
		Skip:       filter.Offset,
		Limit:      filter.Limit,
	})
}

func (r *foodRepository) CountByName(ctx context.Context, search string) (int64, error) {
	return r.coll.Count(ctx, persistence.Contains(domain.FieldName, search))
}

func (r *foodRepository) ListByOwner(ctx context.Context, email string) ([]domain.Document, error) {
	return r.coll.Find(ctx, persistence.Query{
		Conditions: []persistence.Condition{persistence.Eq(domain.FieldOwnerEmail, email)},
	})
}

func (r *foodRepository) GetByID(ctx context.Context, id string) (domain.Document, error) {
	return r.coll.FindByID(ctx, id)
}

func (r *foodRepository) Create(ctx context.Context, doc domain.Document) (*persistence.InsertResult, error) {
	return r.coll.Insert(ctx, doc)
}

func (r *foodRepository) Upsert(ctx context.Context, id string, fields domain.Document) (*persistence.UpdateResult, error) {
	return r.coll.UpsertFields(ctx, id, fields)
}

func (r *foodRepository) IncrementPurchaseCount(ctx context.Context, id string) (*persistence.UpdateResult, error) {
	return r.coll.Increment(ctx, id, domain.FieldPurchaseCount, 1)
}

func (r *foodRepository) Delete(ctx context.Context, id string) (*persistence.DeleteResult, error) {
	return r.coll.Delete(ctx, id)
}
