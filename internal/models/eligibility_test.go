package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanRegister(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		allUsers  bool
		chapters  []string
		candidate string
		want      bool
	}{
		{name: "all users", allUsers: true, candidate: "Y", want: true},
		{name: "all users without chapter", allUsers: true, candidate: "", want: true},
		{name: "member chapter", chapters: []string{"X", "Y"}, candidate: "Y", want: true},
		{name: "other chapter", chapters: []string{"X"}, candidate: "Y", want: false},
		{name: "no chapter", chapters: []string{"X"}, candidate: "", want: false},
		{name: "empty scope", candidate: "X", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := &Event{AllUsers: tc.allUsers, ChapterIDs: tc.chapters}
			assert.Equal(t, tc.want, e.CanRegister(tc.candidate))
		})
	}
}

func TestRoleCapabilities(t *testing.T) {
	t.Parallel()

	assert.False(t, CanCheckIn(RoleMember))
	assert.True(t, CanCheckIn(RoleAdmin))
	assert.True(t, CanCheckIn(RoleSuperAdmin))
	assert.False(t, CanCheckIn(Role("guest")))

	assert.False(t, IsElevated(RoleMember))
	assert.True(t, IsElevated(RoleSuperAdmin))

	r, err := ParseRole("admin")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("root")
	assert.Error(t, err)
}
