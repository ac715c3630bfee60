// File: database/repository/session/session_mongo.go
package sessionRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wellspring/database"
	"wellspring/models"
)

// ErrCapacityExhausted is returned when a seat reservation loses the race
// for the last remaining unit.
var ErrCapacityExhausted = errors.New("session capacity exhausted")

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo returns a SessionRepository backed by MongoDB.
func NewMongoSessionRepo() SessionRepository {
	return &mongoSessionRepo{coll: database.Collection("sessions")}
}

func (r *mongoSessionRepo) CreateMany(ctx context.Context, sessions []models.Session) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(sessions))
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = time.Now()
		}
		docs[i] = s
		ids[i] = s.ID
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *mongoSessionRepo) GetByID(ctx context.Context, sessionID string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.Session
	if err := r.coll.FindOne(ctx, bson.M{"id": sessionID}).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *mongoSessionRepo) GetByProfessionalFrom(ctx context.Context, professionalID string, from time.Time) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professionalId": professionalID,
		"startTime":      bson.M{"$gte": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}

	// Drop malformed documents rather than handing them to the scheduler.
	valid := sessions[:0]
	for _, s := range sessions {
		if s.StartTime.IsZero() {
			continue
		}
		valid = append(valid, s)
	}
	return valid, nil
}

func (r *mongoSessionRepo) IncrementParticipants(ctx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":    sessionID,
		"$expr": bson.M{"$lt": bson.A{"$participantCount", "$maxParticipants"}},
	}
	update := bson.M{"$inc": bson.M{"participantCount": 1}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// The capacity guard is part of the filter, so a zero match means
		// either a full session or a concurrently deleted one.
		if _, gerr := r.GetByID(ctx, sessionID); gerr != nil {
			return mongo.ErrNoDocuments
		}
		return ErrCapacityExhausted
	}
	return nil
}

func (r *mongoSessionRepo) DecrementParticipants(ctx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":               sessionID,
		"participantCount": bson.M{"$gt": 0},
	}
	update := bson.M{"$inc": bson.M{"participantCount": -1}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSessionRepo) DeleteByID(ctx context.Context, professionalID, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": sessionID, "professionalId": professionalID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
