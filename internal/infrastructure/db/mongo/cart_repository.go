package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopcart/cart-backend/internal/core/domain"
)

const cartCollection = "cart_items"

type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(cartCollection)}
}

type mongoCartItem struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Src   string             `bson:"src"`
	Title string             `bson:"title"`
	Price float64            `bson:"price"`
}

// Insert persists the item and returns it with the assigned ObjectID.
func (r *CartRepository) Insert(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, mongoCartItem{
		Src:   item.Src,
		Title: item.Title,
		Price: item.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert cart item: unexpected id type %T", res.InsertedID)
	}

	return &domain.CartItem{
		ID:    oid.Hex(),
		Src:   item.Src,
		Title: item.Title,
		Price: item.Price,
	}, nil
}

// FindAll returns every item in the collection's natural order.
func (r *CartRepository) FindAll(ctx context.Context) ([]*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoCartItem
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}

	items := make([]*domain.CartItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, &domain.CartItem{
			ID:    d.ID.Hex(),
			Src:   d.Src,
			Title: d.Title,
			Price: d.Price,
		})
	}
	return items, nil
}

func (r *CartRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count cart items: %w", err)
	}
	return n, nil
}

// DeleteByID removes one item. A malformed ID is rejected; a well-formed ID
// that matches nothing returns (0, nil).
func (r *CartRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidItemID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteByIDs removes all matching items in a single batch. Malformed IDs are
// skipped rather than failing the whole batch.
func (r *CartRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("clear cart items: %w", err)
	}
	return res.DeletedCount, nil
}
