package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"bazaar/internal/domain"
	"bazaar/internal/repos"
)

type ReviewService struct {
	Listings *repos.ListingRepo
	Reviews  *repos.ReviewRepo
}

func NewReviewService(listings *repos.ListingRepo, reviews *repos.ReviewRepo) *ReviewService {
	return &ReviewService{Listings: listings, Reviews: reviews}
}

func (s *ReviewService) listingExists(id string) error {
	if _, err := s.Listings.ByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ReviewService) ForListing(listingID string) ([]domain.Review, error) {
	if err := s.listingExists(listingID); err != nil {
		return nil, err
	}
	revs, err := s.Reviews.ForListing(listingID)
	if err != nil {
		return nil, err
	}
	if revs == nil {
		revs = []domain.Review{}
	}
	return revs, nil
}

// Add appends a review from an authenticated user. The reviewer's display
// name is snapshotted from the claims at submission time.
func (s *ReviewService) Add(claims domain.Claims, listingID, comment string, rating int) (domain.Review, error) {
	if rating < 1 || rating > 5 {
		return domain.Review{}, ErrInvalidRating
	}
	if err := s.listingExists(listingID); err != nil {
		return domain.Review{}, err
	}
	rev := domain.Review{
		ID:        uuid.NewString(),
		ListingID: listingID,
		UserID:    claims.ID,
		Username:  claims.Username,
		Comment:   comment,
		Rating:    rating,
	}
	if err := s.Reviews.Add(rev); err != nil {
		return domain.Review{}, err
	}
	return rev, nil
}
