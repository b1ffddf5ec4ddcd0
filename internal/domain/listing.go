package domain

// Moderation states derived from the approved/rejected pair.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

type Listing struct {
	ID              string  `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	Category        string  `db:"category" json:"category"`
	Price           float64 `db:"price" json:"price"`
	Image           string  `db:"image" json:"image"`
	Description     string  `db:"description" json:"description"`
	Stock           int     `db:"stock" json:"stock"`
	Approved        bool    `db:"approved" json:"approved"`
	Rejected        bool    `db:"rejected" json:"rejected"`
	RejectionReason string  `db:"rejection_reason" json:"rejectionReason"`
	SellerID        string  `db:"seller_id" json:"seller"`
	CreatedAt       string  `db:"created_at" json:"createdAt"`

	// SellerName is only populated on admin-enriched reads.
	SellerName string `db:"seller_name" json:"sellerName,omitempty"`
}

// Status reports the listing's moderation state. A listing that is neither
// approved nor rejected is pending.
func (l Listing) Status() string {
	switch {
	case l.Approved:
		return ModerationApproved
	case l.Rejected:
		return ModerationRejected
	default:
		return ModerationPending
	}
}

type Review struct {
	ID        string `db:"id" json:"id"`
	ListingID string `db:"listing_id" json:"-"`
	UserID    string `db:"user_id" json:"user"`
	Username  string `db:"username" json:"username"`
	Comment   string `db:"comment" json:"comment"`
	Rating    int    `db:"rating" json:"rating"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}
