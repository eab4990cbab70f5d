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

const collectionMaintenance = "maintenance_requests"

const maintenanceSequence = "maintenance_requests"

// MaintenanceRepository persists maintenance requests.
type MaintenanceRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) *MaintenanceRepository {
	return &MaintenanceRepository{db: db, col: db.Collection(collectionMaintenance)}
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, maintenanceSequence)
	if err != nil {
		return nil, err
	}
	m.ID = id
	m.CreatedAt, m.UpdatedAt = stampInsert()

	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return nil, fmt.Errorf("insert maintenance request: %w", err)
	}
	return m, nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.MaintenanceRequest
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find maintenance request: %w", err)
	}
	return &m, nil
}

// List returns requests, optionally filtered by unit.
func (r *MaintenanceRepository) List(ctx context.Context, unitID int64) ([]domain.MaintenanceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if unitID != 0 {
		filter["unit_id"] = unitID
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.MaintenanceRequest
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode maintenance requests: %w", err)
	}
	return out, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *domain.MaintenanceRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := stampUpdate(bson.M{
		"title":       m.Title,
		"description": m.Description,
		"priority":    m.Priority,
		"status":      m.Status,
	})

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": m.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update maintenance request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete maintenance request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}
