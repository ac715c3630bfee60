// File: database/repository/client/client_mongo.go
package clientRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wellspring/database"
	"wellspring/models"
)

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo returns a ClientRepository backed by MongoDB.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{coll: database.Collection("clients")}
}

func (r *mongoClientRepo) Create(ctx context.Context, client models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, client)
	return err
}

func (r *mongoClientRepo) GetByID(ctx context.Context, clientID string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": clientID}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *mongoClientRepo) Update(ctx context.Context, client models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": client.ID}, client)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
