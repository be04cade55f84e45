package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttended(t *testing.T) {
	t.Parallel()

	e := newTestEvent(CapacityUnlimited)

	require.NoError(t, e.MarkAttended("D"))
	assert.ErrorIs(t, e.MarkAttended("D"), ErrAlreadyAttended)
	assert.Equal(t, []string{"D"}, e.Attendees)
	assert.False(t, e.IsRegistered("D"))
}

func TestWalkIns(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		legacy     []string
		current    []string
		attendees  []string
		wantWalkIn []string
	}{
		{name: "nobody attended"},
		{name: "only walk-ins", attendees: []string{"D", "E"}, wantWalkIn: []string{"D", "E"}},
		{name: "legacy registrant attended", legacy: []string{"U"}, attendees: []string{"U"}},
		{
			name:       "mixed",
			legacy:     []string{"U"},
			current:    []string{"V", "W"},
			attendees:  []string{"U", "D", "W", "E"},
			wantWalkIn: []string{"D", "E"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEvent(CapacityUnlimited)
			e.LegacyRSVP = tc.legacy
			for _, id := range tc.current {
				e.Registrations = append(e.Registrations, Registration{UserID: id, RegisteredAt: testNow})
			}
			e.Attendees = tc.attendees

			walkIns := e.WalkIns()
			assert.Equal(t, tc.wantWalkIn, walkIns)

			registered := map[string]bool{}
			for _, id := range e.RegisteredUserIDs() {
				registered[id] = true
			}
			overlap := 0
			for _, id := range e.Attendees {
				if registered[id] {
					overlap++
				}
			}
			assert.Equal(t, len(e.Attendees)-overlap, len(walkIns))
		})
	}
}
