package repos

import (
	"bazaar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create inserts the order header and its line items.
func (r *OrderRepo) Create(o domain.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, user_id, customer_name, email, phone, address, created_at)
	  VALUES(?,?,?,?,?,?,CURRENT_TIMESTAMP)
	`, o.ID, o.UserID, o.CustomerName, o.Email, o.Phone, o.Address); err != nil {
		return err
	}
	for _, it := range o.Items {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, product_id, qty)
		  VALUES(?,?,?)
		`, o.ID, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
	  SELECT id, user_id, customer_name, email, phone, address, created_at
	  FROM orders WHERE id=?
	`, id); err != nil {
		return domain.Order{}, err
	}

	if err := r.db.Select(&o.Items, `
	  SELECT oi.order_id, oi.product_id, oi.qty, COALESCE(p.name,'') AS product_name
	  FROM order_items oi
	  LEFT JOIN products p ON p.id = oi.product_id
	  WHERE oi.order_id=?
	  ORDER BY oi.product_id
	`, id); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}
