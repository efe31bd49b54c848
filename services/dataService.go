package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hitenstark10/tenx-tracking/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Per-user documents live one-per-user in a collection per resource,
// keyed by (collection, user_id). The server stores them as opaque JSON
// and overwrites whole documents (last write wins).

type userDoc struct {
	UserID    string    `bson:"user_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// GetUserDoc returns the user's document for the resource, or nil when the
// user has none yet.
func GetUserDoc(resource, userID string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := config.OpenCollection("user_" + resource)

	var doc userDoc
	err := coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc.Data), nil
}

// SaveUserDoc upserts the user's document for the resource.
func SaveUserDoc(resource, userID string, data json.RawMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := config.OpenCollection("user_" + resource)

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "data", Value: string(data)},
		{Key: "updated_at", Value: time.Now()},
	}}}
	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, bson.M{"user_id": userID}, update, opts)
	return err
}

// LoadUserDoc unmarshals the user's document into out, leaving out
// untouched when no document exists.
func LoadUserDoc(resource, userID string, out interface{}) error {
	raw, err := GetUserDoc(resource, userID)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// StoreUserDoc marshals v and upserts it as the user's document.
func StoreUserDoc(resource, userID string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return SaveUserDoc(resource, userID, data)
}
