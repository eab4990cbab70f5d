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

const (
	collectionProperties = "properties"
	collectionUnits      = "units"
)

const (
	propertiesSequence = "properties"
	unitsSequence      = "units"
)

// PropertyRepository persists properties and units. Unit codes are
// unique per property via a compound unique index.
type PropertyRepository struct {
	db    *mongo.Database
	props *mongo.Collection
	units *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{
		db:    db,
		props: db.Collection(collectionProperties),
		units: db.Collection(collectionUnits),
	}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, propertiesSequence)
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.CreatedAt, p.UpdatedAt = stampInsert()

	if _, err := r.props.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}
	return p, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id int64) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Property
	err := r.props.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return &p, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.props.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer cur.Close(ctx)

	var props []domain.Property
	if err := cur.All(ctx, &props); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	return props, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := stampUpdate(bson.M{
		"name":    p.Name,
		"address": p.Address,
		"city":    p.City,
		"state":   p.State,
		"country": p.Country,
		"type":    p.Type,
	})

	res, err := r.props.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.props.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) CreateUnit(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, unitsSequence)
	if err != nil {
		return nil, err
	}
	u.ID = id
	u.CreatedAt, u.UpdatedAt = stampInsert()

	if _, err := r.units.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUnitCodeTaken
		}
		return nil, fmt.Errorf("insert unit: %w", err)
	}
	return u, nil
}

func (r *PropertyRepository) FindUnitByID(ctx context.Context, id int64) (*domain.Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.Unit
	err := r.units.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, fmt.Errorf("find unit: %w", err)
	}
	return &u, nil
}

func (r *PropertyRepository) ListUnits(ctx context.Context, propertyID int64) ([]domain.Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.units.Find(ctx, bson.M{"property_id": propertyID}, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer cur.Close(ctx)

	var units []domain.Unit
	if err := cur.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("decode units: %w", err)
	}
	return units, nil
}

func (r *PropertyRepository) UpdateUnit(ctx context.Context, u *domain.Unit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := stampUpdate(bson.M{
		"code":      u.Code,
		"level":     u.Level,
		"area_m2":   u.AreaM2,
		"bedrooms":  u.Bedrooms,
		"bathrooms": u.Bathrooms,
		"status":    u.Status,
	})

	res, err := r.units.UpdateOne(ctx, bson.M{"_id": u.ID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUnitCodeTaken
		}
		return fmt.Errorf("update unit: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *PropertyRepository) DeleteUnit(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.units.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

// DeleteUnitsByProperty removes every unit of the property and returns
// the ids removed so callers can clear vehicle references.
func (r *PropertyRepository) DeleteUnitsByProperty(ctx context.Context, propertyID int64) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.units.Find(ctx, bson.M{"property_id": propertyID}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("find units by property: %w", err)
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID int64 `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode unit ids: %w", err)
	}

	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}

	if _, err := r.units.DeleteMany(ctx, bson.M{"property_id": propertyID}); err != nil {
		return nil, fmt.Errorf("delete units by property: %w", err)
	}
	return ids, nil
}

// EnsureIndexes creates the compound unique (property_id, code) index.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.units.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "property_id", Value: 1}, {Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
