package persistence

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// Mongo wraps a MongoDB client bound to one database.
type Mongo struct {
	Client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects with the Stable API v1 and verifies the deployment with a ping.
func NewMongo(ctx context.Context, uri, database string, logger *zap.Logger) (*Mongo, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info("connected to mongo", zap.String("database", database))
	return &Mongo{Client: client, db: client.Database(database)}, nil
}

// Collection returns the named collection.
func (m *Mongo) Collection(name string) Collection {
	return &MongoCollection{coll: m.db.Collection(name)}
}

// Ping verifies connectivity.
func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return errors.New("mongo client not configured")
	}
	return m.Client.Ping(ctx, nil)
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}

// MongoCollection implements Collection over a *mongo.Collection.
type MongoCollection struct {
	coll *mongo.Collection
}

func (c *MongoCollection) Name() string { return c.coll.Name() }

func (c *MongoCollection) Find(ctx context.Context, q Query) ([]domain.Document, error) {
	opts := options.Find()
	if q.Sort != nil {
		dir := 1
		if q.Sort.Descending {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.Sort.Field, Value: dir}})
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := c.coll.Find(ctx, mongoFilter(q.Conditions), opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.Name(), err)
	}
	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.Name(), err)
	}

	docs := make([]domain.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromBSON(m))
	}
	return docs, nil
}

func (c *MongoCollection) FindByID(ctx context.Context, id string) (domain.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var raw bson.M
	if err := c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s/%s: %w", c.Name(), id, err)
	}
	return fromBSON(raw), nil
}

func (c *MongoCollection) Count(ctx context.Context, conds ...Condition) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, mongoFilter(conds))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.Name(), err)
	}
	return n, nil
}

func (c *MongoCollection) Insert(ctx context.Context, doc domain.Document) (*InsertResult, error) {
	res, err := c.coll.InsertOne(ctx, bson.M(doc.Without(domain.FieldID)))
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", c.Name(), err)
	}
	return &InsertResult{Acknowledged: true, InsertedID: idString(res.InsertedID)}, nil
}

func (c *MongoCollection) UpsertFields(ctx context.Context, id string, fields domain.Document) (*UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M(fields.Without(domain.FieldID))}
	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert %s/%s: %w", c.Name(), id, err)
	}
	return updateResult(res), nil
}

func (c *MongoCollection) Increment(ctx context.Context, id, field string, delta int) (*UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return nil, fmt.Errorf("increment %s/%s: %w", c.Name(), id, err)
	}
	return updateResult(res), nil
}

func (c *MongoCollection) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete %s/%s: %w", c.Name(), id, err)
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func mongoFilter(conds []Condition) bson.D {
	filter := bson.D{}
	for _, cond := range conds {
		switch cond.Op {
		case OpEquals:
			filter = append(filter, bson.E{Key: cond.Field, Value: cond.Value})
		case OpContains:
			filter = append(filter, bson.E{Key: cond.Field, Value: primitive.Regex{
				Pattern: regexp.QuoteMeta(cond.Value),
				Options: "i",
			}})
		}
	}
	return filter
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func fromBSON(m bson.M) domain.Document {
	doc := domain.Document(m)
	if id, ok := doc[domain.FieldID]; ok {
		doc[domain.FieldID] = idString(id)
	}
	return doc
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func updateResult(res *mongo.UpdateResult) *UpdateResult {
	out := &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := idString(res.UpsertedID)
		out.UpsertedID = &id
	}
	return out
}
