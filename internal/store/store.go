package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"newsagent/models"
)

// storedAtLayout matches the timestamps already in the collection, ISO-8601
// with microseconds and no zone suffix.
const storedAtLayout = "2006-01-02T15:04:05.000000"

type SaveStats struct {
	Inserted int
	Known    int
	Failed   int
}

// Store persists collected news keyed by URL.
type Store interface {
	SaveAll(ctx context.Context, items []models.NewsItem) (SaveStats, error)
	Recent(ctx context.Context, limit int) ([]models.NewsItem, error)
	Count(ctx context.Context) (int64, error)
	Close(ctx context.Context) error
}

// newsCollection is the slice of *mongo.Collection the store calls.
type newsCollection interface {
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type mongoStore struct {
	client *mongo.Client
	coll   newsCollection
	log    *zap.Logger
	now    func() time.Time
}

// Connect dials MongoDB, verifies the connection with a ping and makes sure
// the unique url index exists.
func Connect(ctx context.Context, uri, dbName, collName string, log *zap.Logger) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	coll := client.Database(dbName).Collection(collName)
	if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "url", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return nil, fmt.Errorf("creating url index: %w", err)
	}

	return &mongoStore{
		client: client,
		coll:   coll,
		log:    log,
		now:    time.Now,
	}, nil
}

// SaveAll upserts every item keyed by url. Items already present count as
// known; per-item failures are logged and skipped. An error comes back only
// when nothing could be saved at all.
func (s *mongoStore) SaveAll(ctx context.Context, items []models.NewsItem) (SaveStats, error) {
	var stats SaveStats
	var lastErr error

	for _, item := range items {
		item.StoredAt = s.now().Format(storedAtLayout)

		result, err := s.coll.UpdateOne(ctx,
			bson.M{"url": item.URL},
			bson.M{"$set": item},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			stats.Failed++
			lastErr = err
			s.log.Warn("saving news item", zap.String("url", item.URL), zap.Error(err))
			continue
		}

		if result.UpsertedID != nil {
			stats.Inserted++
		} else {
			stats.Known++
		}
	}

	if len(items) > 0 && stats.Failed == len(items) {
		return stats, fmt.Errorf("saving news items: %w", lastErr)
	}

	s.log.Info("saved news items",
		zap.Int("inserted", stats.Inserted),
		zap.Int("known", stats.Known),
		zap.Int("total", len(items)))
	return stats, nil
}

// Recent returns the newest items by storage time. limit <= 0 means no limit.
func (s *mongoStore) Recent(ctx context.Context, limit int) ([]models.NewsItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "stored_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("querying news items: %w", err)
	}

	var items []models.NewsItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decoding news items: %w", err)
	}
	return items, nil
}

func (s *mongoStore) Count(ctx context.Context) (int64, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting news items: %w", err)
	}
	return count, nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
