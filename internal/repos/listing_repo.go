package repos

import (
	"bazaar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ListingRepo struct{ db *sqlx.DB }

func NewListingRepo(db *sqlx.DB) *ListingRepo { return &ListingRepo{db: db} }

const listingCols = `id, name, category, price, image, description, stock,
  approved, rejected, rejection_reason, seller_id, created_at`

func (r *ListingRepo) Create(l domain.Listing) error {
	_, err := r.db.Exec(`
	  INSERT INTO products
	    (id, name, category, price, image, description, stock, approved, rejected, rejection_reason, seller_id, created_at)
	  VALUES
	    (?, ?, ?, ?, ?, ?, ?, 0, 0, '', ?, CURRENT_TIMESTAMP)
	`, l.ID, l.Name, l.Category, l.Price, l.Image, l.Description, l.Stock, l.SellerID)
	return err
}

func (r *ListingRepo) ByID(id string) (domain.Listing, error) {
	var l domain.Listing
	err := r.db.Get(&l, `SELECT `+listingCols+`, '' AS seller_name FROM products WHERE id=?`, id)
	return l, err
}

// List returns listings, optionally restricted to approved ones. When
// enrich is set the owning seller's username is joined in (admin browse).
func (r *ListingRepo) List(approvedOnly, enrich bool) ([]domain.Listing, error) {
	where := `1=1`
	if approvedOnly {
		where = `p.approved=1 AND p.rejected=0`
	}
	sel := `'' AS seller_name`
	join := ``
	if enrich {
		sel = `COALESCE(u.username,'') AS seller_name`
		join = `LEFT JOIN users u ON u.id = p.seller_id`
	}
	var out []domain.Listing
	err := r.db.Select(&out, `
	  SELECT p.id, p.name, p.category, p.price, p.image, p.description, p.stock,
	         p.approved, p.rejected, p.rejection_reason, p.seller_id, p.created_at, `+sel+`
	  FROM products p `+join+`
	  WHERE `+where+`
	  ORDER BY p.created_at DESC
	`)
	return out, err
}

// Pending returns listings awaiting moderation with the seller joined.
func (r *ListingRepo) Pending() ([]domain.Listing, error) {
	var out []domain.Listing
	err := r.db.Select(&out, `
	  SELECT p.id, p.name, p.category, p.price, p.image, p.description, p.stock,
	         p.approved, p.rejected, p.rejection_reason, p.seller_id, p.created_at,
	         COALESCE(u.username,'') AS seller_name
	  FROM products p
	  LEFT JOIN users u ON u.id = p.seller_id
	  WHERE p.approved=0 AND p.rejected=0
	  ORDER BY p.created_at DESC
	`)
	return out, err
}

func (r *ListingRepo) SetModeration(id string, approved, rejected bool, reason string) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE products SET approved=?, rejected=?, rejection_reason=? WHERE id=?
	`, approved, rejected, reason, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ListingRepo) SetStock(id string, stock int) (int64, error) {
	res, err := r.db.Exec(`UPDATE products SET stock=? WHERE id=?`, stock, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ListingRepo) Delete(id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Recommend returns approved listings sharing a category, excluding the
// listing itself.
func (r *ListingRepo) Recommend(category, excludeID string, limit int) ([]domain.Listing, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []domain.Listing
	err := r.db.Select(&out, `
	  SELECT `+listingCols+`, '' AS seller_name
	  FROM products
	  WHERE category=? AND id != ? AND approved=1 AND rejected=0
	  ORDER BY created_at DESC
	  LIMIT ?
	`, category, excludeID, limit)
	return out, err
}
