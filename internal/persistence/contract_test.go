package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/persistence"
)

// collectionFactory returns an empty collection for one subtest.
type collectionFactory func(t *testing.T) persistence.Collection

// runCollectionContract checks the behaviour every backend must share.
// newID produces an id the backend accepts but has not stored.
func runCollectionContract(t *testing.T, newCollection collectionFactory, newID func() string) {
	ctx := context.Background()

	seedFoods := func(t *testing.T, coll persistence.Collection) map[string]string {
		t.Helper()
		ids := map[string]string{}
		for key, doc := range map[string]domain.Document{
			"pepperoni": {"name": "Pepperoni Pizza", "purchaseCount": 5, "email": "a@x.com"},
			"margherita": {"name": "PIZZA Margherita", "purchaseCount": 1, "email": "b@x.com"},
			"burger":     {"name": "Burger", "purchaseCount": 3, "email": "a@x.com"},
			"roll":       {"name": "C++ Roll", "email": "A@x.com"},
		} {
			res, err := coll.Insert(ctx, doc)
			require.NoError(t, err)
			ids[key] = res.InsertedID
		}
		return ids
	}

	names := func(docs []domain.Document) []string {
		out := make([]string, 0, len(docs))
		for _, d := range docs {
			out = append(out, d["name"].(string))
		}
		return out
	}

	t.Run("insert and find by id", func(t *testing.T) {
		coll := newCollection(t)

		res, err := coll.Insert(ctx, domain.Document{"_id": "client-chosen", "name": "Soup", "price": 4.5})
		require.NoError(t, err)
		assert.True(t, res.Acknowledged)
		require.NotEmpty(t, res.InsertedID)
		assert.NotEqual(t, "client-chosen", res.InsertedID)

		doc, err := coll.FindByID(ctx, res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, res.InsertedID, doc["_id"])
		assert.Equal(t, "Soup", doc["name"])
		assert.EqualValues(t, 4.5, doc["price"])
	})

	t.Run("find by unknown id", func(t *testing.T) {
		coll := newCollection(t)

		_, err := coll.FindByID(ctx, newID())
		assert.ErrorIs(t, err, persistence.ErrNotFound)
	})

	t.Run("contains is case-insensitive and literal", func(t *testing.T) {
		coll := newCollection(t)
		seedFoods(t, coll)

		docs, err := coll.Find(ctx, persistence.Query{Conditions: []persistence.Condition{persistence.Contains("name", "pizza")}})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Pepperoni Pizza", "PIZZA Margherita"}, names(docs))

		docs, err = coll.Find(ctx, persistence.Query{Conditions: []persistence.Condition{persistence.Contains("name", "c++")}})
		require.NoError(t, err)
		assert.Equal(t, []string{"C++ Roll"}, names(docs))

		docs, err = coll.Find(ctx, persistence.Query{Conditions: []persistence.Condition{persistence.Contains("name", "%")}})
		require.NoError(t, err)
		assert.Empty(t, docs)

		count, err := coll.Count(ctx, persistence.Contains("name", ""))
		require.NoError(t, err)
		assert.EqualValues(t, 4, count)
	})

	t.Run("equality is exact", func(t *testing.T) {
		coll := newCollection(t)
		seedFoods(t, coll)

		docs, err := coll.Find(ctx, persistence.Query{Conditions: []persistence.Condition{persistence.Eq("email", "a@x.com")}})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Pepperoni Pizza", "Burger"}, names(docs))

		count, err := coll.Count(ctx, persistence.Eq("email", "nobody@x.com"))
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("equality on nested field", func(t *testing.T) {
		coll := newCollection(t)
		for _, buyer := range []string{"a@x.com", "b@x.com", "a@x.com"} {
			_, err := coll.Insert(ctx, domain.Document{
				"name":  "order for " + buyer,
				"buyer": map[string]any{"buyer_email": buyer, "buyer_name": "someone"},
			})
			require.NoError(t, err)
		}

		docs, err := coll.Find(ctx, persistence.Query{Conditions: []persistence.Condition{persistence.Eq("buyer.buyer_email", "a@x.com")}})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("sort skip and limit", func(t *testing.T) {
		coll := newCollection(t)
		seedFoods(t, coll)

		desc, err := coll.Find(ctx, persistence.Query{
			Sort:  &persistence.Sort{Field: "purchaseCount", Descending: true},
			Limit: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Pepperoni Pizza", "Burger"}, names(desc))

		asc, err := coll.Find(ctx, persistence.Query{Sort: &persistence.Sort{Field: "purchaseCount"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"C++ Roll", "PIZZA Margherita", "Burger", "Pepperoni Pizza"}, names(asc))

		page, err := coll.Find(ctx, persistence.Query{
			Sort:  &persistence.Sort{Field: "purchaseCount"},
			Skip:  1,
			Limit: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"PIZZA Margherita", "Burger"}, names(page))

		beyond, err := coll.Find(ctx, persistence.Query{Skip: 10})
		require.NoError(t, err)
		assert.Empty(t, beyond)
	})

	t.Run("upsert merges or creates", func(t *testing.T) {
		coll := newCollection(t)
		ids := seedFoods(t, coll)

		res, err := coll.UpsertFields(ctx, ids["burger"], domain.Document{"price": 12, "name": "Cheese Burger", "_id": "ignored"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.MatchedCount)
		assert.Zero(t, res.UpsertedCount)
		assert.Nil(t, res.UpsertedID)

		doc, err := coll.FindByID(ctx, ids["burger"])
		require.NoError(t, err)
		assert.Equal(t, "Cheese Burger", doc["name"])
		assert.EqualValues(t, 12, doc["price"])
		assert.EqualValues(t, 3, doc["purchaseCount"])

		fresh := newID()
		res, err = coll.UpsertFields(ctx, fresh, domain.Document{"name": "Tacos"})
		require.NoError(t, err)
		assert.Zero(t, res.MatchedCount)
		assert.EqualValues(t, 1, res.UpsertedCount)
		require.NotNil(t, res.UpsertedID)
		assert.Equal(t, fresh, *res.UpsertedID)

		doc, err = coll.FindByID(ctx, fresh)
		require.NoError(t, err)
		assert.Equal(t, "Tacos", doc["name"])
	})

	t.Run("increment", func(t *testing.T) {
		coll := newCollection(t)
		ids := seedFoods(t, coll)

		res, err := coll.Increment(ctx, ids["pepperoni"], "purchaseCount", 1)
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.MatchedCount)

		doc, err := coll.FindByID(ctx, ids["pepperoni"])
		require.NoError(t, err)
		assert.EqualValues(t, 6, doc["purchaseCount"])

		_, err = coll.Increment(ctx, ids["roll"], "purchaseCount", 1)
		require.NoError(t, err)
		doc, err = coll.FindByID(ctx, ids["roll"])
		require.NoError(t, err)
		assert.EqualValues(t, 1, doc["purchaseCount"])

		res, err = coll.Increment(ctx, newID(), "purchaseCount", 1)
		require.NoError(t, err)
		assert.Zero(t, res.MatchedCount)
	})

	t.Run("delete", func(t *testing.T) {
		coll := newCollection(t)
		ids := seedFoods(t, coll)

		res, err := coll.Delete(ctx, ids["burger"])
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.DeletedCount)

		res, err = coll.Delete(ctx, ids["burger"])
		require.NoError(t, err)
		assert.Zero(t, res.DeletedCount)

		_, err = coll.FindByID(ctx, ids["burger"])
		assert.ErrorIs(t, err, persistence.ErrNotFound)

		count, err := coll.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, count)
	})
}
