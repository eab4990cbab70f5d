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

const (
	collectionCommonAreas  = "common_areas"
	collectionReservations = "reservations"
)

const (
	commonAreasSequence  = "common_areas"
	reservationsSequence = "reservations"
)

// CommonAreaRepository persists common areas and reservations.
type CommonAreaRepository struct {
	db           *mongo.Database
	areas        *mongo.Collection
	reservations *mongo.Collection
}

func NewCommonAreaRepository(db *mongo.Database) *CommonAreaRepository {
	return &CommonAreaRepository{
		db:           db,
		areas:        db.Collection(collectionCommonAreas),
		reservations: db.Collection(collectionReservations),
	}
}

func (r *CommonAreaRepository) Create(ctx context.Context, a *domain.CommonArea) (*domain.CommonArea, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, commonAreasSequence)
	if err != nil {
		return nil, err
	}
	a.ID = id
	a.CreatedAt, a.UpdatedAt = stampInsert()

	if _, err := r.areas.InsertOne(ctx, a); err != nil {
		return nil, fmt.Errorf("insert common area: %w", err)
	}
	return a, nil
}

func (r *CommonAreaRepository) FindByID(ctx context.Context, id int64) (*domain.CommonArea, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.CommonArea
	err := r.areas.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommonAreaNotFound
		}
		return nil, fmt.Errorf("find common area: %w", err)
	}
	return &a, nil
}

func (r *CommonAreaRepository) List(ctx context.Context) ([]domain.CommonArea, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.areas.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list common areas: %w", err)
	}
	defer cur.Close(ctx)

	var areas []domain.CommonArea
	if err := cur.All(ctx, &areas); err != nil {
		return nil, fmt.Errorf("decode common areas: %w", err)
	}
	return areas, nil
}

func (r *CommonAreaRepository) Update(ctx context.Context, a *domain.CommonArea) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := stampUpdate(bson.M{
		"name":        a.Name,
		"description": a.Description,
		"capacity":    a.Capacity,
		"opens_at":    a.OpensAt,
		"closes_at":   a.ClosesAt,
		"active":      a.Active,
	})

	res, err := r.areas.UpdateOne(ctx, bson.M{"_id": a.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update common area: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommonAreaNotFound
	}
	return nil
}

func (r *CommonAreaRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.areas.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete common area: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommonAreaNotFound
	}
	return nil
}

func (r *CommonAreaRepository) CreateReservation(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, reservationsSequence)
	if err != nil {
		return nil, err
	}
	res.ID = id
	res.CreatedAt, res.UpdatedAt = stampInsert()

	if _, err := r.reservations.InsertOne(ctx, res); err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}
	return res, nil
}

func (r *CommonAreaRepository) FindReservationByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var res domain.Reservation
	err := r.reservations.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return &res, nil
}

// ListReservations returns reservations, optionally filtered by area.
func (r *CommonAreaRepository) ListReservations(ctx context.Context, commonAreaID int64) ([]domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if commonAreaID != 0 {
		filter["common_area_id"] = commonAreaID
	}

	cur, err := r.reservations.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Reservation
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}
	return out, nil
}

func (r *CommonAreaRepository) UpdateReservation(ctx context.Context, res *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := stampUpdate(bson.M{
		"date":       res.Date,
		"start_time": res.StartTime,
		"end_time":   res.EndTime,
		"status":     res.Status,
	})

	upd, err := r.reservations.UpdateOne(ctx, bson.M{"_id": res.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if upd.MatchedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *CommonAreaRepository) DeleteReservation(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.reservations.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}
