package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"bazaar/internal/domain"
	"bazaar/internal/repos"
	"bazaar/internal/validate"
)

var (
	ErrOrderFields = errors.New("missing or invalid required fields")
	ErrOrderEmail  = errors.New("invalid email format")
	ErrOrderPhone  = errors.New("invalid phone number format")
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// Place validates and persists a single-shot order submission. claims may
// be nil; when present the buyer id is attached as a weak reference.
// Orders are immutable once stored.
func (s *OrderService) Place(claims *domain.Claims, o domain.Order) (domain.Order, error) {
	if len(o.Items) == 0 || o.CustomerName == "" || o.Email == "" || o.Phone == "" || o.Address == "" {
		return domain.Order{}, ErrOrderFields
	}
	email, ok := validate.Email(o.Email)
	if !ok {
		return domain.Order{}, ErrOrderEmail
	}
	phone, ok := validate.Phone(o.Phone)
	if !ok {
		return domain.Order{}, ErrOrderPhone
	}

	o.ID = uuid.NewString()
	o.Email = email
	o.Phone = phone
	o.UserID = ""
	if claims != nil {
		o.UserID = claims.ID
	}
	for i := range o.Items {
		if o.Items[i].ProductID == "" {
			return domain.Order{}, ErrOrderFields
		}
		o.Items[i].Quantity = validate.Qty(o.Items[i].Quantity)
	}

	if err := s.Orders.Create(o); err != nil {
		return domain.Order{}, err
	}
	return s.Orders.Get(o.ID)
}

func (s *OrderService) Get(id string) (domain.Order, error) {
	o, err := s.Orders.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, ErrNotFound
	}
	return o, err
}
