package tablestore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const ordersTable = "order_history"

type orderRepository struct {
	client *Client
}

// NewOrderRepository creates an order repository backed by the hosted
// `order_history` collection.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

// orderInsert omits the backend-owned id and created_at columns so the
// backend assigns them.
type orderInsert struct {
	UserID          uuid.UUID          `json:"user_id"`
	Email           string             `json:"email"`
	Recipient       entity.Recipient   `json:"recipient"`
	Phone           string             `json:"phone"`
	Items           []entity.OrderItem `json:"items"`
	TotalPrice      float64            `json:"total_price"`
	PaymentCategory string             `json:"payment_category"`
	PaymentMethod   string             `json:"payment_method"`
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	payload := orderInsert{
		UserID:          order.UserID,
		Email:           order.Email,
		Recipient:       order.Recipient,
		Phone:           order.Phone,
		Items:           order.Items,
		TotalPrice:      order.TotalPrice,
		PaymentCategory: order.PaymentCategory,
		PaymentMethod:   order.PaymentMethod,
	}

	var created []entity.Order
	if err := r.client.From(ordersTable).Insert(ctx, payload, &created); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	if len(created) == 0 {
		return nil, errors.New("backend returned no order representation")
	}

	return &created[0], nil
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.client.From(ordersTable).
		Select("*").
		Eq("user_id", userID.String()).
		OrderBy("created_at", true).
		Get(ctx, &orders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (r *orderRepository) FindOrderByID(ctx context.Context, userID uuid.UUID, orderID string) (*entity.Order, error) {
	var orders []entity.Order
	err := r.client.From(ordersTable).
		Select("*").
		Eq("user_id", userID.String()).
		Eq("id", orderID).
		Limit(1).
		Get(ctx, &orders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if len(orders) == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return &orders[0], nil
}
