package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
)

func TestRoleValidation(t *testing.T) {
	tests := []struct {
		name     string
		role     types.Role
		expected bool
	}{
		{"Valid admin", types.RoleAdmin, true},
		{"Valid direct_member", types.RoleDirectMember, true},
		{"Invalid empty", types.Role(""), false},
		{"Invalid member", types.Role("member"), false},
		{"Invalid mixed case", types.Role("Admin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.role.IsValid()
			if result != tt.expected {
				t.Errorf("Role(%q).IsValid() = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestTokenMasked(t *testing.T) {
	gt.Equal(t, "****", types.Token("").Masked())
	gt.Equal(t, "****", types.Token("abcd").Masked())
	gt.Equal(t, "****wxyz", types.Token("ghp_abcdefwxyz").Masked())
}

func TestNewProfileID(t *testing.T) {
	id1, err := types.NewProfileID()
	gt.NoError(t, err).Required()
	id2, err := types.NewProfileID()
	gt.NoError(t, err).Required()

	gt.NotEqual(t, id1, id2)
	gt.Equal(t, 36, len(id1.String()))
}
