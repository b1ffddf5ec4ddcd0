package services

import (
	"bazaar/internal/domain"
	"bazaar/internal/repos"
)

// ModerationService drives the listing approval lifecycle. A listing is
// pending until an admin approves or rejects it; re-moderation in either
// direction is allowed.
type ModerationService struct {
	Listings *repos.ListingRepo
}

func NewModerationService(listings *repos.ListingRepo) *ModerationService {
	return &ModerationService{Listings: listings}
}

// SetStatus transitions a listing to approved or rejected. Approval clears
// any rejection reason; rejection stores the given reason (empty when
// omitted). There is no way to move a listing back to pending.
func (s *ModerationService) SetStatus(id, status, reason string) error {
	switch status {
	case domain.ModerationApproved:
		reason = ""
	case domain.ModerationRejected:
		// keep reason as given
	default:
		return ErrInvalidStatus
	}
	n, err := s.Listings.SetModeration(id, status == domain.ModerationApproved, status == domain.ModerationRejected, reason)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Pending lists listings still awaiting a decision, seller joined for the
// moderation queue view.
func (s *ModerationService) Pending() ([]domain.Listing, error) {
	return s.Listings.Pending()
}
