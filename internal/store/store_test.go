package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"newsagent/models"
)

type fakeCollection struct {
	updateFn func(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	findFn   func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	countFn  func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

func (f *fakeCollection) UpdateOne(ctx context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return f.updateFn(ctx, filter, update, opts...)
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	return f.findFn(ctx, filter, opts...)
}

func (f *fakeCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return f.countFn(ctx, filter, opts...)
}

func testStore(coll newsCollection) *mongoStore {
	return &mongoStore{
		coll: coll,
		log:  zap.NewNop(),
		now:  func() time.Time { return time.Date(2024, 5, 1, 14, 30, 0, 123456000, time.UTC) },
	}
}

func TestSaveAll_InsertedAndKnown(t *testing.T) {
	var updates []bson.M
	coll := &fakeCollection{
		updateFn: func(_ context.Context, filter, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
			require.Len(t, opts, 1)
			assert.True(t, *opts[0].Upsert)

			updates = append(updates, update.(bson.M))

			// First item is new, second already exists.
			if len(updates) == 1 {
				return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: "new-id"}, nil
			}
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}

	s := testStore(coll)

	stats, err := s.SaveAll(context.Background(), []models.NewsItem{
		{Title: "Nowa gra", URL: "https://example.com/a/"},
		{Title: "Znana gra", URL: "https://example.com/b/"},
	})

	require.NoError(t, err)
	assert.Equal(t, SaveStats{Inserted: 1, Known: 1}, stats)

	require.Len(t, updates, 2)
	saved := updates[0]["$set"].(models.NewsItem)
	assert.Equal(t, "https://example.com/a/", saved.URL)
	assert.Equal(t, "2024-05-01T14:30:00.123456", saved.StoredAt)
}

func TestSaveAll_PartialFailure(t *testing.T) {
	calls := 0
	coll := &fakeCollection{
		updateFn: func(_ context.Context, _, _ interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("write conflict")
			}
			return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: "id"}, nil
		},
	}

	s := testStore(coll)

	stats, err := s.SaveAll(context.Background(), []models.NewsItem{
		{URL: "https://example.com/a/"},
		{URL: "https://example.com/b/"},
	})

	require.NoError(t, err)
	assert.Equal(t, SaveStats{Inserted: 1, Failed: 1}, stats)
}

func TestSaveAll_AllFailed(t *testing.T) {
	coll := &fakeCollection{
		updateFn: func(_ context.Context, _, _ interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
			return nil, errors.New("server selection timeout")
		},
	}

	s := testStore(coll)

	stats, err := s.SaveAll(context.Background(), []models.NewsItem{
		{URL: "https://example.com/a/"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server selection timeout")
	assert.Equal(t, SaveStats{Failed: 1}, stats)
}

func TestSaveAll_Empty(t *testing.T) {
	coll := &fakeCollection{
		updateFn: func(_ context.Context, _, _ interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
			t.Fatal("unexpected UpdateOne call")
			return nil, nil
		},
	}

	s := testStore(coll)

	stats, err := s.SaveAll(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, SaveStats{}, stats)
}

func TestRecent(t *testing.T) {
	var gotOpts []*options.FindOptions
	coll := &fakeCollection{
		findFn: func(_ context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
			assert.Equal(t, bson.M{}, filter)
			gotOpts = opts

			return mongo.NewCursorFromDocuments([]interface{}{
				bson.D{
					{Key: "title", Value: "Druga"},
					{Key: "url", Value: "https://example.com/b/"},
					{Key: "stored_at", Value: "2024-05-02T00:00:00.000000"},
				},
				bson.D{
					{Key: "title", Value: "Pierwsza"},
					{Key: "url", Value: "https://example.com/a/"},
					{Key: "stored_at", Value: "2024-05-01T00:00:00.000000"},
				},
			}, nil, nil)
		},
	}

	s := testStore(coll)

	items, err := s.Recent(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Druga", items[0].Title)
	assert.Equal(t, "2024-05-02T00:00:00.000000", items[0].StoredAt)

	require.Len(t, gotOpts, 1)
	assert.Equal(t, int64(2), *gotOpts[0].Limit)
	assert.Equal(t, bson.D{{Key: "stored_at", Value: -1}}, gotOpts[0].Sort)
}

func TestRecent_NoLimit(t *testing.T) {
	coll := &fakeCollection{
		findFn: func(_ context.Context, _ interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
			require.Len(t, opts, 1)
			assert.Nil(t, opts[0].Limit)
			return mongo.NewCursorFromDocuments([]interface{}{}, nil, nil)
		},
	}

	s := testStore(coll)

	items, err := s.Recent(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecent_FindError(t *testing.T) {
	coll := &fakeCollection{
		findFn: func(_ context.Context, _ interface{}, _ ...*options.FindOptions) (*mongo.Cursor, error) {
			return nil, errors.New("connection reset")
		},
	}

	s := testStore(coll)

	_, err := s.Recent(context.Background(), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "querying news items")
}

func TestCount(t *testing.T) {
	coll := &fakeCollection{
		countFn: func(_ context.Context, filter interface{}, _ ...*options.CountOptions) (int64, error) {
			assert.Equal(t, bson.M{}, filter)
			return 42, nil
		},
	}

	s := testStore(coll)

	count, err := s.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
