package model

import "fmt"

var (
	monday9   = TimeSlot{Day: "Monday", Period: "9:00-10:00"}
	monday10  = TimeSlot{Day: "Monday", Period: "10:00-11:00"}
	monday11  = TimeSlot{Day: "Monday", Period: "11:00-12:00"}
	tuesday9  = TimeSlot{Day: "Tuesday", Period: "9:00-10:00"}
	tuesday10 = TimeSlot{Day: "Tuesday", Period: "10:00-11:00"}
	tuesday11 = TimeSlot{Day: "Tuesday", Period: "11:00-12:00"}
)

// Same data as testdata/reference.json
func referenceInput() ModelInput {
	return ModelInput{
		Classes: []Class{
			{Name: "Math", Professor: "Prof. A", Group: "Group 1", Size: 25},
			{Name: "Physics", Professor: "Prof. B", Group: "Group 2", Size: 20},
			{Name: "Chemistry", Professor: "Prof. C", Group: "Group 3", Size: 35},
			{Name: "Chemistry", Professor: "Prof. C", Group: "Group 3", Size: 35},
			{Name: "Chemistry", Professor: "Prof. C", Group: "Group 3", Size: 35},
		},
		Professors: []string{"Prof. A", "Prof. B", "Prof. C"},
		Groups:     []string{"Group 1", "Group 2", "Group 3"},
		TimeSlots:  []TimeSlot{monday9, monday10, monday11, tuesday9, tuesday10, tuesday11},
		Rooms: []Room{
			{Name: "Room 101", Capacity: 20},
			{Name: "Room 102", Capacity: 50},
			{Name: "Room 103", Capacity: 40},
		},
		ProfessorPreferences: map[string][]TimeSlot{
			"Prof. A": {monday9, tuesday10},
		},
		GroupPreferences: map[string][]TimeSlot{
			"Group 1": {monday9, monday10},
		},
	}
}

// Builds a universe of n slots on a single day
func slotsOf(n int) []TimeSlot {
	slots := make([]TimeSlot, n)
	for i := 0; i < n; i++ {
		slots[i] = TimeSlot{Day: "Monday", Period: fmt.Sprintf("P%d", i+1)}
	}
	return slots
}
