package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"bazaar/internal/auth"
	"bazaar/internal/domain"
	"bazaar/internal/repos"
)

type CatalogService struct {
	Listings *repos.ListingRepo
}

func NewCatalogService(listings *repos.ListingRepo) *CatalogService {
	return &CatalogService{Listings: listings}
}

// Create stores a new listing for the seller. Every upload starts pending
// regardless of input.
func (s *CatalogService) Create(l domain.Listing, sellerID string) (domain.Listing, error) {
	l.ID = uuid.NewString()
	l.SellerID = sellerID
	l.Approved = false
	l.Rejected = false
	l.RejectionReason = ""
	if err := s.Listings.Create(l); err != nil {
		return domain.Listing{}, err
	}
	return s.Listings.ByID(l.ID)
}

func (s *CatalogService) List(approvedOnly, enrich bool) ([]domain.Listing, error) {
	return s.Listings.List(approvedOnly, enrich)
}

func (s *CatalogService) Get(id string) (domain.Listing, error) {
	l, err := s.Listings.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Listing{}, ErrNotFound
	}
	return l, err
}

// Delete removes a listing; only the owning seller may do so, whatever the
// moderation state.
func (s *CatalogService) Delete(claims domain.Claims, id string) error {
	l, err := s.Get(id)
	if err != nil {
		return err
	}
	if !auth.CanPerform(&claims, auth.ActionDeleteListing, l.SellerID) {
		return ErrNotOwner
	}
	_, err = s.Listings.Delete(id)
	return err
}

// SetStock updates the stock column only; moderation flags are untouched.
func (s *CatalogService) SetStock(id string, stock int) (domain.Listing, error) {
	n, err := s.Listings.SetStock(id, stock)
	if err != nil {
		return domain.Listing{}, err
	}
	if n == 0 {
		return domain.Listing{}, ErrNotFound
	}
	return s.Listings.ByID(id)
}

func (s *CatalogService) Recommend(id string) ([]domain.Listing, error) {
	l, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return s.Listings.Recommend(l.Category, l.ID, 5)
}
