package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/condovia/residential-api/internal/core/domain"
)

const collectionVehicles = "vehicles"

const vehiclesSequence = "vehicles"

// VehicleRepository persists vehicles. The unique plate index rejects
// duplicate registrations.
type VehicleRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) *VehicleRepository {
	return &VehicleRepository{db: db, col: db.Collection(collectionVehicles)}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, vehiclesSequence)
	if err != nil {
		return nil, err
	}
	v.ID = id
	v.CreatedAt, v.UpdatedAt = stampInsert()

	if _, err := r.col.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPlateTaken
		}
		return nil, fmt.Errorf("insert vehicle: %w", err)
	}
	return v, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.Vehicle
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return &v, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "plate", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer cur.Close(ctx)

	var vehicles []domain.Vehicle
	if err := cur.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := stampUpdate(bson.M{
		"plate":      v.Plate,
		"account_id": v.AccountID,
		"unit_id":    v.UnitID,
		"brand":      v.Brand,
		"model":      v.Model,
		"color":      v.Color,
		"status":     v.Status,
	})

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": v.ID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPlateTaken
		}
		return fmt.Errorf("update vehicle: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// ClearAccountRef nulls account_id on every vehicle owned by the
// deleted account (SET NULL, not cascade).
func (r *VehicleRepository) ClearAccountRef(ctx context.Context, accountID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"account_id": accountID},
		bson.M{"$unset": bson.M{"account_id": ""}, "$set": stampUpdate(bson.M{})},
	)
	if err != nil {
		return fmt.Errorf("clear vehicle account refs: %w", err)
	}
	return nil
}

// ClearUnitRef nulls unit_id on every vehicle parked at the deleted units.
func (r *VehicleRepository) ClearUnitRef(ctx context.Context, unitIDs []int64) error {
	if len(unitIDs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"unit_id": bson.M{"$in": unitIDs}},
		bson.M{"$unset": bson.M{"unit_id": ""}, "$set": stampUpdate(bson.M{})},
	)
	if err != nil {
		return fmt.Errorf("clear vehicle unit refs: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique plate index.
func (r *VehicleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "plate", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "account_id", Value: 1}}},
		{Keys: bson.D{{Key: "unit_id", Value: 1}}},
	})
	return err
}
