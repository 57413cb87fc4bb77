package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/observability"
	"github.com/spec-kit/restaurant-service/internal/persistence"
	"github.com/spec-kit/restaurant-service/internal/repository"
)

// PurchaseService records and reads purchases.
type PurchaseService struct {
	purchases repository.PurchaseRepository
	foods     repository.FoodRepository
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// NewPurchaseService builds the service.
func NewPurchaseService(purchases repository.PurchaseRepository, foods repository.FoodRepository, logger *zap.Logger, metrics *observability.Metrics) *PurchaseService {
	return &PurchaseService{purchases: purchases, foods: foods, logger: logger, metrics: metrics}
}

// Record inserts the purchase, then bumps the purchase count of the food it
// names. The two writes are not atomic: a failure after the insert leaves the
// purchase recorded with a stale count; that failure is logged and the insert
// result is still returned.
func (s *PurchaseService) Record(ctx context.Context, purchase domain.Document) (*persistence.InsertResult, error) {
	res, err := s.purchases.Create(ctx, purchase)
	if err != nil {
		return nil, err
	}

	log := s.logger.With(zap.String("purchase_id", res.InsertedID))
	foodID, ok := purchase.String(domain.FieldFoodID)
	if !ok {
		log.Warn("purchase has no foodId; purchase count not updated")
		s.metrics.RecordPurchase(observability.PurchaseCounterSkipped)
		return res, nil
	}

	log = log.With(zap.String("food_id", foodID))
	update, err := s.foods.IncrementPurchaseCount(ctx, foodID)
	switch {
	case err != nil:
		log.Error("failed to increment purchase count", zap.Error(err))
		s.metrics.RecordPurchase(observability.PurchaseCounterFailed)
	case update.MatchedCount == 0:
		log.Warn("purchased food not found; purchase count not updated")
		s.metrics.RecordPurchase(observability.PurchaseCounterSkipped)
	default:
		s.metrics.RecordPurchase(observability.PurchaseCounterUpdated)
	}
	return res, nil
}

func (s *PurchaseService) List(ctx context.Context) ([]domain.Document, error) {
	return s.purchases.List(ctx)
}

// Get returns nil without error when the purchase does not exist.
func (s *PurchaseService) Get(ctx context.Context, id string) (domain.Document, error) {
	doc, err := s.purchases.GetByID(ctx, id)
	return optionalDocument(doc, err, id)
}

// ListByBuyer returns purchases whose buyer email matches. Callers check ownership first.
func (s *PurchaseService) ListByBuyer(ctx context.Context, email string) ([]domain.Document, error) {
	return s.purchases.ListByBuyer(ctx, email)
}

func (s *PurchaseService) Delete(ctx context.Context, id string) (*persistence.DeleteResult, error) {
	res, err := s.purchases.Delete(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, id)
	}
	return res, nil
}
