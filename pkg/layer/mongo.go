package layer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/genart-dev/plugin-shapes/pkg/property"
)

// MongoStore keeps the layer stack in a MongoDB collection, one document per
// layer, ordered by creation time.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	URI        string // connection string
	Database   string // database name, defaults to "shapes"
	Collection string // collection name, defaults to "layers"
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "shapes"
	}
	if cfg.Collection == "" {
		cfg.Collection = "layers"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Get retrieves a layer by id.
func (s *MongoStore) Get(ctx context.Context, id string) (*Layer, error) {
	var l Layer
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Add inserts a layer document.
func (s *MongoStore) Add(ctx context.Context, l *Layer) error {
	_, err := s.coll.InsertOne(ctx, l)
	return err
}

// UpdateProperties merges patch into the layer's property bag using a $set
// per patched key, so unspecified keys are never cleared.
func (s *MongoStore) UpdateProperties(ctx context.Context, id string, patch property.Bag) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range patch {
		set["properties."+k] = v
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the layers ordered by creation time, bottom first.
func (s *MongoStore) List(ctx context.Context) ([]*Layer, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var layers []*Layer
	if err := cur.All(ctx, &layers); err != nil {
		return nil, err
	}
	return layers, nil
}

// Remove deletes a layer document.
func (s *MongoStore) Remove(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
