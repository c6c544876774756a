package authz

import (
	"time"

	apperrors "frent-client/internal/errors"
	"frent-client/pkg/auth"
)

// LocalAuthorizer implements Authorizer from a static role table.
type LocalAuthorizer struct {
	now func() time.Time
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer() *LocalAuthorizer {
	return &LocalAuthorizer{now: time.Now}
}

var (
	sessionRoles = []string{RoleMember, RoleEmployee, RoleAdmin}
	// Employees run the catalog but hold no cart or wishlist.
	customerRoles = []string{RoleMember, RoleAdmin}
	staffRoles    = []string{RoleEmployee, RoleAdmin}
)

// rolePermissions maps actions to the roles that can perform them. It
// follows the rental service's authorities.
var rolePermissions = map[string][]string{
	ActionCollectionsManage: customerRoles,
	ActionCheckout:          customerRoles,
	ActionRentalCreate:      sessionRoles,
	ActionRentalReturn:      sessionRoles,
	ActionRentalView:        sessionRoles,

	ActionCatalogManage:  staffRoles,
	ActionCatalogPricing: staffRoles,
	ActionArtworkUpload:  staffRoles,
	ActionRentalNotify:   staffRoles,
	ActionUserList:       staffRoles,

	ActionCatalogListAll: {RoleAdmin},
	ActionUserManage:     {RoleAdmin},
	ActionRentalViewAny:  {RoleAdmin},
	ActionCheckoutAudit:  {RoleAdmin},
}

// Authorize checks liveness first, then the role table.
func (a *LocalAuthorizer) Authorize(sess *auth.Session, action string) error {
	if err := auth.Require(sess, a.now()); err != nil {
		return err
	}
	if !a.CanPerform(sess.Role(), action) {
		return apperrors.ErrForbidden
	}
	return nil
}

// CanPerform reports whether role may perform action. Unknown actions are denied.
func (a *LocalAuthorizer) CanPerform(role, action string) bool {
	allowedRoles, exists := rolePermissions[action]
	if !exists {
		return false
	}

	for _, r := range allowedRoles {
		if role == r {
			return true
		}
	}
	return false
}

var _ Authorizer = (*LocalAuthorizer)(nil)
