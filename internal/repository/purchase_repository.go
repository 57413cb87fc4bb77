package repository

import (
	"context"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/persistence"
)

// PurchaseRepository encapsulates purchase persistence.
type PurchaseRepository interface {
	List(ctx context.Context) ([]domain.Document, error)
	ListByBuyer(ctx context.Context, email string) ([]domain.Document, error)
	GetByID(ctx context.Context, id string) (domain.Document, error)
	Create(ctx context.Context, doc domain.Document) (*persistence.InsertResult, error)
	Delete(ctx context.Context, id string) (*persistence.DeleteResult, error)
}

type purchaseRepository struct {
	coll persistence.Collection
}

// NewPurchaseRepository instantiates repository.
func NewPurchaseRepository(coll persistence.Collection) PurchaseRepository {
	return &purchaseRepository{coll: coll}
}

func (r *purchaseRepository) List(ctx context.Context) ([]domain.Document, error) {
	return r.coll.Find(ctx, persistence.Query{})
}

func (r *purchaseRepository) ListByBuyer(ctx context.Context, email string) ([]domain.Document, error) {
	return r.coll.Find(ctx, persistence.Query{
		Conditions: []persistence.Condition{persistence.Eq(domain.FieldBuyerEmail, email)},
	})
}

func (r *purchaseRepository) GetByID(ctx context.Context, id string) (domain.Document, error) {
	return r.coll.FindByID(ctx, id)
}

func (r *purchaseRepository) Create(ctx context.Context, doc domain.Document) (*persistence.InsertResult, error) {
	return r.coll.Insert(ctx, doc)
}

func (r *purchaseRepository) Delete(ctx context.Context, id string) (*persistence.DeleteResult, error) {
	return r.coll.Delete(ctx, id)
}
