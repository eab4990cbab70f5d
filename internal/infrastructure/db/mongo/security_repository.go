package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/condovia/residential-api/internal/core/domain"
)

const collectionSecurity = "security_records"

const securitySequence = "security_records"

// SecurityRepository persists the gatehouse log.
type SecurityRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewSecurityRepository(db *mongo.Database) *SecurityRepository {
	return &SecurityRepository{db: db, col: db.Collection(collectionSecurity)}
}

func (r *SecurityRepository) Create(ctx context.Context, rec *domain.SecurityRecord) (*domain.SecurityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, securitySequence)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	rec.CreatedAt, rec.UpdatedAt = stampInsert()

	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		return nil, fmt.Errorf("insert security record: %w", err)
	}
	return rec, nil
}

func (r *SecurityRepository) FindByID(ctx context.Context, id int64) (*domain.SecurityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec domain.SecurityRecord
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find security record: %w", err)
	}
	return &rec, nil
}

func (r *SecurityRepository) List(ctx context.Context) ([]domain.SecurityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list security records: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.SecurityRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode security records: %w", err)
	}
	return out, nil
}

func (r *SecurityRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete security record: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
