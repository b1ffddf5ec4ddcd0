package repos

import (
	"bazaar/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Add(rev domain.Review) error {
	_, err := r.db.Exec(`
	  INSERT INTO reviews(id, listing_id, user_id, username, comment, rating, created_at)
	  VALUES(?,?,?,?,?,?,CURRENT_TIMESTAMP)
	`, rev.ID, rev.ListingID, rev.UserID, rev.Username, rev.Comment, rev.Rating)
	return err
}

func (r *ReviewRepo) ForListing(listingID string) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.Select(&out, `
	  SELECT id, listing_id, user_id, username, comment, rating, created_at
	  FROM reviews
	  WHERE listing_id=?
	  ORDER BY datetime(created_at) ASC
	`, listingID)
	return out, err
}
