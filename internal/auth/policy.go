package auth

import "bazaar/internal/domain"

// Action names a gated operation.
type Action int

const (
	// Admin-only
	ActionBlockUser Action = iota
	ActionUnblockUser
	ActionDeleteUser
	ActionListUsers
	ActionViewUser
	ActionPatchUser
	ActionModerateListing
	ActionViewPendingQueue
	ActionPatchStock
	// Owner-only
	ActionDeleteListing
	// Authenticated-only
	ActionSubmitReview
	ActionViewProfile
	ActionEditProfile
	// Public
	ActionBrowseListings
	ActionViewOrder
	ActionViewReviews
	ActionRecommend
)

// CanPerform decides whether the (possibly nil) claims may perform action.
// ownerID is only consulted for owner-only actions.
func CanPerform(claims *domain.Claims, action Action, ownerID string) bool {
	switch action {
	case ActionBlockUser, ActionUnblockUser, ActionDeleteUser, ActionListUsers,
		ActionViewUser, ActionPatchUser, ActionModerateListing,
		ActionViewPendingQueue, ActionPatchStock:
		return claims != nil && claims.Role == domain.RoleAdmin
	case ActionDeleteListing:
		return claims != nil && claims.ID == ownerID
	case ActionSubmitReview, ActionViewProfile, ActionEditProfile:
		return claims != nil
	default:
		return true
	}
}
