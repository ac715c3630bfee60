// File: database/repository/professional/professional_mongo.go
package professionalRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wellspring/database"
	"wellspring/models"
)

type mongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo returns a ProfessionalRepository backed by MongoDB.
func NewMongoProfessionalRepo() ProfessionalRepository {
	return &mongoProfessionalRepo{coll: database.Collection("professionals")}
}

func (r *mongoProfessionalRepo) Create(ctx context.Context, professional models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if professional.ID == "" {
		professional.ID = uuid.New().String()
	}
	now := time.Now()
	professional.CreatedAt = now
	professional.UpdatedAt = now
	if professional.BookingMode == "" {
		professional.BookingMode = models.BookingModeAuto
	}

	_, err := r.coll.InsertOne(ctx, professional)
	return err
}

func (r *mongoProfessionalRepo) GetByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var professional models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"id": professionalID}).Decode(&professional); err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *mongoProfessionalRepo) GetByEmail(ctx context.Context, email string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var professional models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&professional); err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *mongoProfessionalRepo) Update(ctx context.Context, professional models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	professional.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": professional.ID}, professional)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
