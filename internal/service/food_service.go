package service

import (
	"context"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/persistence"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util/errorutil"
)

// FoodService coordinates the food catalogue.
type FoodService struct {
	foods repository.FoodRepository
}

// NewFoodService builds the service.
func NewFoodService(foods repository.FoodRepository) *FoodService {
	return &FoodService{foods: foods}
}

// TopFoods returns the first page of foods ordered by purchase count.
func (s *FoodService) TopFoods(ctx context.Context, sort domain.FoodSort) ([]domain.Document, error) {
	docs, err := s.foods.ListByPurchaseCount(ctx, sort.Descending(), domain.TopFoodsLimit)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return docs, nil
}

// Search pages through foods whose name contains the search text.
func (s *FoodService) Search(ctx context.Context, page domain.FoodPage) ([]domain.Document, error) {
	return s.foods.ListWithFilter(ctx, repository.FoodFilter{
		Search: page.Search,
		Limit:  int64(page.Size),
		Offset: int64(page.Skip()),
	})
}

func (s *FoodService) Count(ctx context.Context, search string) (int64, error) {
	return s.foods.CountByName(ctx, search)
}

// Get returns nil without error when the food does not exist.
func (s *FoodService) Get(ctx context.Context, id string) (domain.Document, error) {
	doc, err := s.foods.GetByID(ctx, id)
	return optionalDocument(doc, err, id)
}

// ListByOwner returns foods added by email. Callers check ownership first.
func (s *FoodService) ListByOwner(ctx context.Context, email string) ([]domain.Document, error) {
	return s.foods.ListByOwner(ctx, email)
}

func (s *FoodService) Create(ctx context.Context, doc domain.Document) (*persistence.InsertResult, error) {
	return s.foods.Create(ctx, doc)
}

// Update sets the given fields verbatim, creating the food when absent.
func (s *FoodService) Update(ctx context.Context, id string, fields domain.Document) (*persistence.UpdateResult, error) {
	fields = fields.Without(domain.FieldID)
	if len(fields) == 0 {
		return nil, apperrors.NewValidationError("empty update", nil)
	}
	res, err := s.foods.Upsert(ctx, id, fields)
	if err != nil {
		return nil, mapStoreError(err, id)
	}
	return res, nil
}

func (s *FoodService) Delete(ctx context.Context, id string) (*persistence.DeleteResult, error) {
	res, err := s.foods.Delete(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, id)
	}
	return res, nil
}
