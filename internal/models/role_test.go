package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleEditor))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.True(t, RoleEditor.AtLeast(RoleUser))
	assert.False(t, RoleEditor.AtLeast(RoleAdmin))
	assert.False(t, RoleUser.AtLeast(RoleEditor))
	assert.False(t, RoleAnonymous.AtLeast(RoleUser))
}

func TestParseRole(t *testing.T) {
	for _, want := range []Role{RoleUser, RoleEditor, RoleAdmin} {
		got, err := ParseRole(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseRole("anonymous")
	assert.Error(t, err, "anonymous is never a stored role")
	_, err = ParseRole("superuser")
	assert.Error(t, err)
}
