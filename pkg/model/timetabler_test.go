package model

import (
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDirectory = "testdata/"

func TestSharedRoomTimetabler(t *testing.T) {
	timetabler := NewSharedRoomTimetabler(Options{})

	t.Run("Input files", func(t *testing.T) {
		fileExecution(t, timetabler)
	})

	t.Run("Random instances", func(t *testing.T) {
		randomExecution(t, timetabler, false)
	})
}

func TestExclusiveRoomTimetabler(t *testing.T) {
	timetabler := NewExclusiveRoomTimetabler(Options{ExtendedDiagnostics: true})

	t.Run("Input files", func(t *testing.T) {
		fileExecution(t, timetabler)
	})

	t.Run("Random instances", func(t *testing.T) {
		randomExecution(t, timetabler, true)
	})
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	input := referenceInput()
	input.Classes = append(input.Classes, Class{Name: "Ghost", Professor: "Prof. Z", Group: "Group 1", Size: 10})

	_, err := NewSharedRoomTimetabler(Options{}).Build(input)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVerify(t *testing.T) {
	input := referenceInput()

	t.Run("Shared rooms are not exclusive", func(t *testing.T) {
		timetable, err := NewSharedRoomTimetabler(Options{}).Build(input)
		require.NoError(t, err)

		assert.True(t, NewSharedRoomTimetabler(Options{}).Verify(timetable, input))
		// Room 102 hosts Math and Chemistry at Monday 9:00
		assert.False(t, NewExclusiveRoomTimetabler(Options{}).Verify(timetable, input))
	})

	t.Run("Capacity overflow", func(t *testing.T) {
		schedule := newSchedule(input.Professors, input.Groups)
		schedule.commit(0, input.Classes[0], monday9, "Room 101")
		timetable := Timetable{Schedule: schedule, Rejections: []Rejection{{Entry: 1}, {Entry: 2}, {Entry: 3}, {Entry: 4}}}

		assert.False(t, verify(timetable, input, false))
	})

	t.Run("Missing classes", func(t *testing.T) {
		schedule := newSchedule(input.Professors, input.Groups)
		schedule.commit(0, input.Classes[0], monday9, "Room 102")

		assert.False(t, verify(Timetable{Schedule: schedule}, input, false))
	})

	t.Run("Placed and rejected", func(t *testing.T) {
		timetable, err := NewSharedRoomTimetabler(Options{}).Build(input)
		require.NoError(t, err)
		timetable.Rejections = append(timetable.Rejections, Rejection{Entry: 0})

		assert.False(t, verify(timetable, input, false))
	})

	t.Run("Placement of another class", func(t *testing.T) {
		schedule := newSchedule(input.Professors, input.Groups)
		impostor := input.Classes[0]
		impostor.Name = "Poetry"
		schedule.commit(0, impostor, monday9, "Room 102")
		timetable := Timetable{Schedule: schedule, Rejections: []Rejection{{Entry: 1}, {Entry: 2}, {Entry: 3}, {Entry: 4}}}

		assert.False(t, verify(timetable, input, false))
	})

	t.Run("No schedule", func(t *testing.T) {
		assert.False(t, verify(Timetable{}, input, false))
	})
}

func fileExecution(t *testing.T, timetabler Timetabler) {
	testFiles, err := os.ReadDir(testDirectory)
	require.NoError(t, err)

	for _, file := range testFiles {
		//** Arrange
		input, err := InputFromFile(testDirectory + file.Name())
		require.NoError(t, err, file.Name())

		//** Act
		timetable, err := timetabler.Build(input)

		//** Assert
		assert.NoError(t, err, file.Name())
		assert.NotNil(t, timetable.Schedule, file.Name())
		assert.Empty(t, timetable.Rejections, file.Name())
		assert.True(t, timetabler.Verify(timetable, input), file.Name())
	}
}

func randomExecution(t *testing.T, timetabler Timetabler, exclusiveRooms bool) {
	for i := 0; i < 25; i++ {
		//** Arrange
		input := randomInput(rand.Intn(40)+1, rand.Intn(6)+1, rand.Intn(6)+1, rand.Intn(8)+1, rand.Intn(4)+1)

		//** Act
		timetable, err := timetabler.Build(input)

		//** Assert
		require.NoError(t, err)
		assert.True(t, timetabler.Verify(timetable, input))
		assertPreferencesHonored(t, timetable, input, exclusiveRooms)
	}
}

func randomInput(classes, professors, groups, slots, rooms int) ModelInput {
	input := ModelInput{
		Classes:              make([]Class, classes),
		Professors:           make([]string, professors),
		Groups:               make([]string, groups),
		TimeSlots:            slotsOf(slots),
		Rooms:                make([]Room, rooms),
		ProfessorPreferences: make(map[string][]TimeSlot),
		GroupPreferences:     make(map[string][]TimeSlot),
	}

	randomSlots := func() []TimeSlot {
		preferred := make([]TimeSlot, 0)
		for _, slot := range input.TimeSlots {
			if rand.Float32() < 0.4 {
				preferred = append(preferred, slot)
			}
		}
		rand.Shuffle(len(preferred), func(i, j int) { preferred[i], preferred[j] = preferred[j], preferred[i] })
		return preferred
	}

	for i := 0; i < professors; i++ {
		input.Professors[i] = fmt.Sprintf("Prof. %d", i)
		input.ProfessorPreferences[input.Professors[i]] = randomSlots()
	}
	for i := 0; i < groups; i++ {
		input.Groups[i] = fmt.Sprintf("Group %d", i)
		input.GroupPreferences[input.Groups[i]] = randomSlots()
	}
	for i := 0; i < rooms; i++ {
		input.Rooms[i] = Room{Name: fmt.Sprintf("Room %d", i), Capacity: uint64(rand.Intn(40) + 10)}
	}
	for i := 0; i < classes; i++ {
		input.Classes[i] = Class{
			Name:      fmt.Sprintf("Class %d", i),
			Professor: input.Professors[rand.Intn(professors)],
			Group:     input.Groups[rand.Intn(groups)],
			Size:      uint64(rand.Intn(50) + 1),
		}
	}

	return input
}

// Replays the run and checks that whenever a jointly preferred slot was feasible, the class got a preferred slot
func assertPreferencesHonored(t *testing.T, timetable Timetable, input ModelInput, exclusiveRooms bool) {
	replay := NewSession(input, Options{ExclusiveRooms: exclusiveRooms})
	placements := timetable.Schedule.Placements()

	for _, placement := range placements {
		class := input.Classes[placement.Entry]
		preferred := replay.PreferredSlots(class)

		preferredFeasible := false
		for _, slot := range preferred {
			for _, room := range input.Rooms {
				preferredFeasible = preferredFeasible || replay.IsValid(class, slot, room.Name)
			}
		}
		if preferredFeasible {
			assert.Contains(t, preferred, placement.Slot)
		}

		replay.schedule.commit(placement.Entry, class, placement.Slot, placement.Room)
	}
}
