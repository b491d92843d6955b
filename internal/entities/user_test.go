package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	testCases := []struct {
		name     string
		role     entities.Role
		required []entities.Role
		wantErr  bool
	}{
		{"any role admin", entities.RoleAdmin, nil, false},
		{"any role super admin", entities.RoleSuperAdmin, nil, false},
		{"super admin only, admin", entities.RoleAdmin, []entities.Role{entities.RoleSuperAdmin}, true},
		{"super admin only, super admin", entities.RoleSuperAdmin, []entities.Role{entities.RoleSuperAdmin}, false},
		{"unknown role", entities.Role("GUEST"), nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := entities.Authorize(tc.role, tc.required...)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrForbidden)
				return
			}
			assert.NoError(t, err)
		})
	}
}
