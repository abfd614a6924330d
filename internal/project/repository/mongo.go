package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/api/internal/project"
)

// MongoRepo implements ProjectRepository on a MongoDB collection. Integer ids
// are allocated from a shared counters collection so they stay stable and
// monotonic like an autoincrement column.
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
		bson.M{"_id": "projects"},
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

func (m *MongoRepo) Create(ctx context.Context, p *project.Project) error {
	id, err := m.nextID(ctx)
	if err != nil {
		return err
	}
	p.ID = id
	_, err = m.col.InsertOne(ctx, p)
	return err
}

func (m *MongoRepo) Get(ctx context.Context, id int64) (*project.Project, error) {
	var p project.Project
	if err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]project.Project, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []project.Project{}
	for cur.Next(ctx) {
		var p project.Project
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// Update replaces the full document. Deliberately no version filter: the
// second of two racing writers wins the whole row.
func (m *MongoRepo) Update(ctx context.Context, p *project.Project) error {
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
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
