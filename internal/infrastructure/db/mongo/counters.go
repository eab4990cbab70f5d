package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// nextID allocates the next numeric id for the named sequence using an
// atomic $inc upsert on the counters collection. Safe under concurrent
// writers; ids start at 1.
func nextID(ctx context.Context, db *mongo.Database, sequence string) (int64, error) {
	res := db.Collection(countersCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Value int64 `bson:"value"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next id for %s: %w", sequence, err)
	}
	return doc.Value, nil
}
