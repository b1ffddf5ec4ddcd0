package domain

const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
	RoleBuyer  = "buyer"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

type User struct {
	ID       string `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
	Hash     string `db:"password_hash" json:"-"`
	Role     string `db:"role" json:"role"`
	Status   string `db:"status" json:"status"`
	ShopName string `db:"shop_name" json:"shopName"`
}

// Claims is the verified payload of a bearer token.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
