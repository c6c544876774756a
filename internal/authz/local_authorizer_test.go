package authz

import (
	"testing"
	"time"

	apperrors "frent-client/internal/errors"
	"frent-client/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, role string, exp time.Time) *auth.Session {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "jdoe",
		Issuer:    role,
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	sess, err := auth.NewSession(token)
	require.NoError(t, err)
	return sess
}

func TestLocalAuthorizer_CanPerform(t *testing.T) {
	a := NewLocalAuthorizer()

	sessionActions := []string{ActionRentalCreate, ActionRentalReturn, ActionRentalView}
	customerActions := []string{ActionCollectionsManage, ActionCheckout}
	staffActions := []string{ActionCatalogManage, ActionCatalogPricing, ActionArtworkUpload, ActionRentalNotify, ActionUserList}
	adminActions := []string{ActionCatalogListAll, ActionUserManage, ActionRentalViewAny, ActionCheckoutAudit}

	for _, action := range sessionActions {
		t.Run("everyone can "+action, func(t *testing.T) {
			assert.True(t, a.CanPerform(RoleMember, action))
			assert.True(t, a.CanPerform(RoleEmployee, action))
			assert.True(t, a.CanPerform(RoleAdmin, action))
		})
	}

	for _, action := range customerActions {
		t.Run("members and admins can "+action, func(t *testing.T) {
			assert.True(t, a.CanPerform(RoleMember, action))
			assert.False(t, a.CanPerform(RoleEmployee, action))
			assert.True(t, a.CanPerform(RoleAdmin, action))
		})
	}

	for _, action := range staffActions {
		t.Run("employees and admins can "+action, func(t *testing.T) {
			assert.False(t, a.CanPerform(RoleMember, action))
			assert.True(t, a.CanPerform(RoleEmployee, action))
			assert.True(t, a.CanPerform(RoleAdmin, action))
		})
	}

	for _, action := range adminActions {
		t.Run("only admin can "+action, func(t *testing.T) {
			assert.False(t, a.CanPerform(RoleMember, action))
			assert.False(t, a.CanPerform(RoleEmployee, action))
			assert.True(t, a.CanPerform(RoleAdmin, action))
		})
	}

	t.Run("unknown action is denied", func(t *testing.T) {
		assert.False(t, a.CanPerform(RoleAdmin, "movie:teleport"))
	})

	t.Run("unknown role is denied", func(t *testing.T) {
		assert.False(t, a.CanPerform("guest", ActionRentalCreate))
	})
}

func TestLocalAuthorizer_Authorize(t *testing.T) {
	a := NewLocalAuthorizer()
	live := time.Now().Add(time.Hour)

	tests := []struct {
		name   string
		sess   *auth.Session
		action string
		want   error
	}{
		{name: "member renting", sess: newSession(t, "member", live), action: ActionRentalCreate},
		{name: "admin role in upper case", sess: newSession(t, "ADMIN", live), action: ActionCatalogManage},
		{name: "member managing catalog", sess: newSession(t, "member", live), action: ActionCatalogManage, want: apperrors.ErrForbidden},
		{name: "employee managing catalog", sess: newSession(t, "employee", live), action: ActionCatalogManage},
		{name: "employee sending warnings", sess: newSession(t, "employee", live), action: ActionRentalNotify},
		{name: "employee using a cart", sess: newSession(t, "employee", live), action: ActionCollectionsManage, want: apperrors.ErrForbidden},
		{name: "employee auditing checkouts", sess: newSession(t, "employee", live), action: ActionCheckoutAudit, want: apperrors.ErrForbidden},
		{name: "expired admin", sess: newSession(t, "admin", time.Now().Add(-time.Minute)), action: ActionCatalogManage, want: apperrors.ErrAuthRequired},
		{name: "no session", sess: nil, action: ActionRentalView, want: apperrors.ErrAuthRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Authorize(tt.sess, tt.action)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
