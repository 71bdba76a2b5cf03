package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopcart/cart-backend/internal/core/domain"
)

const orderCollection = "orders"

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(orderCollection)}
}

type mongoOrder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Src       string             `bson:"src"`
	Title     string             `bson:"title"`
	Price     float64            `bson:"price"`
	CreatedAt int64              `bson:"created_at"`
}

// Insert persists the order verbatim and returns it with the assigned ID.
func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, mongoOrder{
		Src:       order.Src,
		Title:     order.Title,
		Price:     order.Price,
		CreatedAt: order.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert order: unexpected id type %T", res.InsertedID)
	}

	return &domain.Order{
		ID:        oid.Hex(),
		Src:       order.Src,
		Title:     order.Title,
		Price:     order.Price,
		CreatedAt: order.CreatedAt,
	}, nil
}
