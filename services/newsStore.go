package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hitenstark10/tenx-tracking/config"
	"github.com/hitenstark10/tenx-tracking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bucketDocID is the fixed key of the single news-bucket record.
const bucketDocID = 1

type bucketDoc struct {
	ID         int       `bson:"_id"`
	Data       string    `bson:"data"`
	CacheDate  string    `bson:"cache_date"`
	FetchCount int       `bson:"fetch_count"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

// MongoBucketStore persists the day bucket as one upserted document in the
// news_cache collection.
type MongoBucketStore struct{}

func NewMongoBucketStore() *MongoBucketStore {
	return &MongoBucketStore{}
}

func (s *MongoBucketStore) Load(ctx context.Context) (*BucketRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	coll := config.OpenCollection("news_cache")

	var doc bucketDoc
	err := coll.FindOne(ctx, bson.M{"_id": bucketDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var articles []models.NewsArticle
	if doc.Data != "" {
		if err := json.Unmarshal([]byte(doc.Data), &articles); err != nil {
			return nil, fmt.Errorf("decoding cached articles: %w", err)
		}
	}

	return &BucketRecord{
		Articles:   articles,
		CacheDate:  doc.CacheDate,
		FetchCount: doc.FetchCount,
	}, nil
}

func (s *MongoBucketStore) Save(ctx context.Context, rec *BucketRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	data, err := json.Marshal(rec.Articles)
	if err != nil {
		return fmt.Errorf("encoding articles: %w", err)
	}

	coll := config.OpenCollection("news_cache")
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "data", Value: string(data)},
		{Key: "cache_date", Value: rec.CacheDate},
		{Key: "fetch_count", Value: rec.FetchCount},
		{Key: "updated_at", Value: time.Now()},
	}}}
	opts := options.Update().SetUpsert(true)
	_, err = coll.UpdateOne(ctx, bson.M{"_id": bucketDocID}, update, opts)
	return err
}
