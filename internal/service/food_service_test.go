package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/persistence"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util/errorutil"
)

type brokenFoodRepo struct {
	repository.FoodRepository
}

func (brokenFoodRepo) ListByPurchaseCount(context.Context, bool, int64) ([]domain.Document, error) {
	return nil, errors.New("server selection timeout")
}

func (brokenFoodRepo) Upsert(context.Context, string, domain.Document) (*persistence.UpdateResult, error) {
	return nil, persistence.ErrInvalidID
}

func newFoodService(t *testing.T, docs ...domain.Document) (*FoodService, []string) {
	t.Helper()
	repo := repository.NewFoodRepository(persistence.NewMemoryStore().Collection("foods"))
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		res, err := repo.Create(context.Background(), doc)
		require.NoError(t, err)
		ids = append(ids, res.InsertedID)
	}
	return NewFoodService(repo), ids
}

func TestTopFoodsLimitsToSixAndSorts(t *testing.T) {
	var docs []domain.Document
	for i := 1; i <= 8; i++ {
		docs = append(docs, domain.Document{"name": "dish", "purchaseCount": i})
	}
	svc, _ := newFoodService(t, docs...)
	ctx := context.Background()

	desc, err := svc.TopFoods(ctx, domain.FoodSortPurchaseCountDesc)
	require.NoError(t, err)
	require.Len(t, desc, domain.TopFoodsLimit)
	assert.EqualValues(t, 8, desc[0]["purchaseCount"])
	assert.EqualValues(t, 3, desc[5]["purchaseCount"])

	asc, err := svc.TopFoods(ctx, domain.ParseFoodSort(""))
	require.NoError(t, err)
	require.Len(t, asc, domain.TopFoodsLimit)
	assert.EqualValues(t, 1, asc[0]["purchaseCount"])
}

func TestTopFoodsStoreFailureIsInternal(t *testing.T) {
	svc := NewFoodService(brokenFoodRepo{})

	_, err := svc.TopFoods(context.Background(), domain.FoodSortPurchaseCountAsc)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "internal server error", de.Message)
}

func TestSearchPagesThroughMatches(t *testing.T) {
	svc, _ := newFoodService(t,
		domain.Document{"name": "Pizza One"},
		domain.Document{"name": "Sushi"},
		domain.Document{"name": "pizza two"},
		domain.Document{"name": "PIZZA three"},
	)
	ctx := context.Background()

	first, err := svc.Search(ctx, domain.FoodPage{Page: 1, Size: 2, Search: "pizza"})
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := svc.Search(ctx, domain.FoodPage{Page: 2, Size: 2, Search: "pizza"})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "PIZZA three", second[0]["name"])

	all, err := svc.Search(ctx, domain.FoodPage{Page: 1})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	count, err := svc.Count(ctx, "pizza")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestGetMissingFoodReturnsNil(t *testing.T) {
	svc, ids := newFoodService(t, domain.Document{"name": "Dal"})
	ctx := context.Background()

	doc, err := svc.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Dal", doc["name"])

	doc, err = svc.Get(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestUpdateRejectsEmptyBody(t *testing.T) {
	svc, ids := newFoodService(t, domain.Document{"name": "Dal"})

	_, err := svc.Update(context.Background(), ids[0], domain.Document{"_id": "x"})
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
}

func TestUpdateMergesFields(t *testing.T) {
	svc, ids := newFoodService(t, domain.Document{"name": "Dal", "price": 5})
	ctx := context.Background()

	res, err := svc.Update(ctx, ids[0], domain.Document{"price": 6, "category": "lentils"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)

	doc, err := svc.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Dal", doc["name"])
	assert.EqualValues(t, 6, doc["price"])
	assert.Equal(t, "lentils", doc["category"])
}

func TestUpdateInvalidIDIsValidationError(t *testing.T) {
	svc := NewFoodService(brokenFoodRepo{})

	_, err := svc.Update(context.Background(), "zz", domain.Document{"name": "x"})
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, "invalid id", de.Message)
}

func TestListByOwner(t *testing.T) {
	svc, _ := newFoodService(t,
		domain.Document{"name": "A", "email": "a@x.com"},
		domain.Document{"name": "B", "email": "b@x.com"},
	)

	mine, err := svc.ListByOwner(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0]["name"])
}
