package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/api/internal/profile"
)

// singletonKey is the fixed document id; the repository never queries by any
// other key, so at most one profile document can exist.
const singletonKey = "owner"

// MongoRepo stores the singleton profile as one fixed-id document, upserted
// in place on every write.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Get(ctx context.Context) (*profile.Profile, error) {
	var p profile.Profile
	if err := m.col.FindOne(ctx, bson.M{"_id": singletonKey}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) Put(ctx context.Context, p *profile.Profile) error {
	opts := options.Replace().SetUpsert(true)
	doc := struct {
		ID string `bson:"_id"`
		profile.Profile `bson:",inline"`
	}{ID: singletonKey, Profile: *p}
	_, err := m.col.ReplaceOne(ctx, bson.M{"_id": singletonKey}, doc, opts)
	return err
}
