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

const collectionNotices = "notices"

const noticesSequence = "notices"

// NoticeRepository persists notices.
type NoticeRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewNoticeRepository(db *mongo.Database) *NoticeRepository {
	return &NoticeRepository{db: db, col: db.Collection(collectionNotices)}
}

func (r *NoticeRepository) Create(ctx context.Context, n *domain.Notice) (*domain.Notice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, noticesSequence)
	if err != nil {
		return nil, err
	}
	n.ID = id
	n.CreatedAt, n.UpdatedAt = stampInsert()

	if _, err := r.col.InsertOne(ctx, n); err != nil {
		return nil, fmt.Errorf("insert notice: %w", err)
	}
	return n, nil
}

func (r *NoticeRepository) FindByID(ctx context.Context, id int64) (*domain.Notice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n domain.Notice
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("find notice: %w", err)
	}
	return &n, nil
}

func (r *NoticeRepository) List(ctx context.Context) ([]domain.Notice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Notice
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode notices: %w", err)
	}
	return out, nil
}

func (r *NoticeRepository) Update(ctx context.Context, n *domain.Notice) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := stampUpdate(bson.M{
		"title": n.Title,
		"body":  n.Body,
	})

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": n.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update notice: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoticeNotFound
	}
	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoticeNotFound
	}
	return nil
}
