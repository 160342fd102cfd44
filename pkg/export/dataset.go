package export

import (
	"strconv"

	"github.com/mirva777/timetable-management/pkg/model"
)

// Dataset defines tabular export content.
type Dataset struct {
	Title   string
	Headers []string
	Rows    []map[string]string
}

const (
	HeaderTimeSlot  = "Time Slot"
	HeaderClass     = "Class"
	HeaderRoom      = "Room"
	HeaderGroup     = "Group"
	HeaderProfessor = "Professor"
	HeaderSize      = "Size"
)

// ProfessorDatasets returns one dataset per professor, in input order, listing the professor's
// classes in the order they were scheduled.
func ProfessorDatasets(timetable model.Timetable) []Dataset {
	schedule := timetable.Schedule
	datasets := make([]Dataset, 0, len(schedule.Professors()))
	for _, professor := range schedule.Professors() {
		datasets = append(datasets, ownerDataset("Schedule for "+professor, HeaderGroup, schedule.Professor(professor)))
	}
	return datasets
}

// GroupDatasets returns one dataset per group, in input order.
func GroupDatasets(timetable model.Timetable) []Dataset {
	schedule := timetable.Schedule
	datasets := make([]Dataset, 0, len(schedule.Groups()))
	for _, group := range schedule.Groups() {
		datasets = append(datasets, ownerDataset("Schedule for "+group, HeaderProfessor, schedule.Group(group)))
	}
	return datasets
}

// PlacementDataset flattens the timetable into one row per scheduled class, in scheduling order.
func PlacementDataset(timetable model.Timetable) Dataset {
	data := Dataset{
		Title:   "Timetable",
		Headers: []string{HeaderTimeSlot, HeaderClass, HeaderProfessor, HeaderGroup, HeaderRoom, HeaderSize},
		Rows:    make([]map[string]string, 0),
	}
	for _, placement := range timetable.Schedule.Placements() {
		data.Rows = append(data.Rows, map[string]string{
			HeaderTimeSlot:  placement.Slot.String(),
			HeaderClass:     placement.Class,
			HeaderProfessor: placement.Professor,
			HeaderGroup:     placement.Group,
			HeaderRoom:      placement.Room,
			HeaderSize:      strconv.FormatUint(placement.Size, 10),
		})
	}
	return data
}

func ownerDataset(title, counterpartHeader string, schedule *model.OwnerSchedule) Dataset {
	data := Dataset{
		Title:   title,
		Headers: []string{HeaderTimeSlot, HeaderClass, HeaderRoom, counterpartHeader},
		Rows:    make([]map[string]string, 0, schedule.Len()),
	}
	for _, slot := range schedule.Slots() {
		occupancy, _ := schedule.Get(slot)
		data.Rows = append(data.Rows, map[string]string{
			HeaderTimeSlot:    slot.String(),
			HeaderClass:       occupancy.Class,
			HeaderRoom:        occupancy.Room,
			counterpartHeader: occupancy.Counterpart,
		})
	}
	return data
}
