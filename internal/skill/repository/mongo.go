package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/api/internal/skill"
)

// MongoRepo implements SkillRepository on a MongoDB collection, sharing the
// counters collection with projects for integer id allocation.
type MongoRepo struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewMongoRepo(col, counters *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col, counters: counters}
}

func (m *MongoRepo) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	res := m.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "skills"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (m *MongoRepo) Create(ctx context.Context, s *skill.Skill) error {
	id, err := m.nextID(ctx)
	if err != nil {
		return err
	}
	s.ID = id
	_, err = m.col.InsertOne(ctx, s)
	return err
}

func (m *MongoRepo) List(ctx context.Context) ([]skill.Skill, error) {
	sortSpec := bson.D{{Key: "category", Value: 1}, {Key: "percentage", Value: -1}}
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetSort(sortSpec))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []skill.Skill{}
	for cur.Next(ctx) {
		var s skill.Skill
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cur.Err()
}

func (m *MongoRepo) Delete(ctx context.Context, id int64) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
