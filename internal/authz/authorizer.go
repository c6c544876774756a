// Package authz gates operations on the session role before any network call
// is made. The rental service remains the authority; this only spares it
// calls that are certain to be rejected.
package authz

import "frent-client/pkg/auth"

// Action constants define the authorization actions.
const (
	ActionCollectionsManage = "collections:manage" // own cart and wishlist
	ActionRentalCreate      = "rental:create"
	ActionRentalReturn      = "rental:return"
	ActionRentalView        = "rental:view" // own rentals and totals
	ActionCheckout          = "checkout:run"

	ActionCatalogListAll = "catalog:list_all"
	ActionCatalogManage  = "catalog:manage" // create, update, delete, availability
	ActionCatalogPricing = "catalog:pricing"
	ActionArtworkUpload  = "artwork:upload"
	ActionUserList       = "user:list"
	ActionUserManage     = "user:manage"
	ActionRentalViewAny  = "rental:view_any"
	ActionRentalNotify   = "rental:notify"
	ActionCheckoutAudit  = "checkout:audit" // journal-wide partial failures
)

// Role tags as they appear in the token issuer claim.
const (
	RoleMember   = "member"
	RoleEmployee = "employee"
	RoleAdmin    = auth.RoleAdmin
)

// Authorizer defines the interface for authorization checks.
type Authorizer interface {
	// Authorize returns nil when sess is live and its role may perform action,
	// ErrAuthRequired for a missing or expired session and ErrForbidden otherwise.
	Authorize(sess *auth.Session, action string) error

	// CanPerform reports whether role may perform action.
	CanPerform(role, action string) bool
}
