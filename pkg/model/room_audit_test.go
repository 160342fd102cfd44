package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRooms(t *testing.T) {
	t.Run("Shared room that can be reseated", func(t *testing.T) {
		//** Arrange
		input := referenceInput()
		timetable, err := NewSharedRoomTimetabler(Options{}).Build(input)
		require.NoError(t, err)

		//** Act
		audits, err := AuditRooms(timetable, input)

		//** Assert
		require.NoError(t, err)
		require.Len(t, audits, 1)
		audit := audits[0]
		assert.Equal(t, monday9, audit.Slot)
		assert.Equal(t, []string{"Room 102"}, audit.SharedRooms)
		assert.Equal(t, []int{0, 1, 2}, audit.Entries)
		assert.True(t, audit.Reseatable)
		require.Len(t, audit.Reseating, 3)

		capacities := lo.SliceToMap(input.Rooms, func(room Room) (string, uint64) { return room.Name, room.Capacity })
		assert.Len(t, lo.Uniq(lo.Values(audit.Reseating)), 3)
		for entry, room := range audit.Reseating {
			assert.LessOrEqual(t, input.Classes[entry].Size, capacities[room])
		}
	})

	t.Run("Shared room that cannot be reseated", func(t *testing.T) {
		input := ModelInput{
			Classes: []Class{
				{Name: "Art", Professor: "P", Group: "G", Size: 30},
				{Name: "Music", Professor: "Q", Group: "H", Size: 30},
			},
			Professors: []string{"P", "Q"},
			Groups:     []string{"G", "H"},
			TimeSlots:  slotsOf(2),
			Rooms:      []Room{{Name: "Big", Capacity: 30}, {Name: "Small", Capacity: 10}},
		}
		timetable, err := NewSharedRoomTimetabler(Options{}).Build(input)
		require.NoError(t, err)

		audits, err := AuditRooms(timetable, input)

		require.NoError(t, err)
		require.Len(t, audits, 1)
		assert.Equal(t, []string{"Big"}, audits[0].SharedRooms)
		assert.False(t, audits[0].Reseatable)
		assert.Nil(t, audits[0].Reseating)
	})

	t.Run("Exclusive rooms", func(t *testing.T) {
		input := referenceInput()
		timetable, err := NewExclusiveRoomTimetabler(Options{}).Build(input)
		require.NoError(t, err)

		audits, err := AuditRooms(timetable, input)

		require.NoError(t, err)
		assert.Empty(t, audits)
	})

	t.Run("No schedule", func(t *testing.T) {
		audits, err := AuditRooms(Timetable{}, referenceInput())

		require.NoError(t, err)
		assert.Empty(t, audits)
	})
}
