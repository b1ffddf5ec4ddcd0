package domain

type Order struct {
	ID           string      `db:"id" json:"id"`
	UserID       string      `db:"user_id" json:"userId,omitempty"`
	CustomerName string      `db:"customer_name" json:"customerName"`
	Email        string      `db:"email" json:"email"`
	Phone        string      `db:"phone" json:"phone"`
	Address      string      `db:"address" json:"address"`
	CreatedAt    string      `db:"created_at" json:"createdAt"`
	Items        []OrderItem `json:"products"`
}

type OrderItem struct {
	OrderID   string `db:"order_id" json:"-"`
	ProductID string `db:"product_id" json:"productId"`
	Quantity  int    `db:"qty" json:"quantity"`

	// Product snapshot joined on reads; empty when the listing is gone.
	ProductName string `db:"product_name" json:"productName,omitempty"`
}
