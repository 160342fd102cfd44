package model

import (
	"github.com/samber/lo"
)

type ownerSlot struct {
	owner string
	slot  TimeSlot
}

type roomSlot struct {
	room string
	slot TimeSlot
}

func build(modelInput ModelInput, options Options) (Timetable, error) {
	if err := validateModelInput(modelInput); err != nil {
		return Timetable{}, err
	}

	session := NewSession(modelInput, options)
	rejections, err := session.Generate()
	if err != nil {
		return Timetable{}, err
	}

	return Timetable{
		Schedule:   session.Schedule(),
		Rejections: rejections,
	}, nil
}

func verify(timetable Timetable, modelInput ModelInput, exclusiveRooms bool) bool {
	if timetable.Schedule == nil {
		return false
	}

	//** Initialize lookups
	capacities := lo.SliceToMap(modelInput.Rooms, func(room Room) (string, uint64) { return room.Name, room.Capacity })
	universe := lo.SliceToMap(modelInput.TimeSlots, func(slot TimeSlot) (TimeSlot, bool) { return slot, true })

	professorAssistance := make(map[ownerSlot]bool)
	groupAssistance := make(map[ownerSlot]bool)
	roomAssistance := make(map[roomSlot]bool)
	placed := make(map[int]bool)

	for _, placement := range timetable.Schedule.Placements() {
		if placement.Entry < 0 || placement.Entry >= len(modelInput.Classes) {
			return false
		}
		class := modelInput.Classes[placement.Entry]
		capacity, roomExists := capacities[placement.Room]
		professorKey := ownerSlot{owner: class.Professor, slot: placement.Slot}
		groupKey := ownerSlot{owner: class.Group, slot: placement.Slot}
		roomKey := roomSlot{room: placement.Room, slot: placement.Slot}

		// Check that:
		// - The placement describes the class found at its entry
		// - The class was placed only once
		// - The slot belongs to the universe and the room exists
		// - The class fits in the room
		// - Neither the professor nor the group is already busy at the slot (no double-booking)
		// - The room is not already taken at the slot when rooms are exclusive
		if placement.Class != class.Name || placement.Professor != class.Professor || placement.Group != class.Group || placement.Size != class.Size ||
			placed[placement.Entry] ||
			!universe[placement.Slot] || !roomExists ||
			class.Size > capacity ||
			professorAssistance[professorKey] || groupAssistance[groupKey] ||
			(exclusiveRooms && roomAssistance[roomKey]) {
			return false
		}

		placed[placement.Entry] = true
		professorAssistance[professorKey] = true
		groupAssistance[groupKey] = true
		roomAssistance[roomKey] = true

		// Both owners must hold the mirrored record
		professorSchedule, groupSchedule := timetable.Schedule.Professor(class.Professor), timetable.Schedule.Group(class.Group)
		if professorSchedule == nil || groupSchedule == nil {
			return false
		}
		professorRecord, ok := professorSchedule.Get(placement.Slot)
		if !ok || professorRecord.Entry != placement.Entry || professorRecord.Room != placement.Room || professorRecord.Counterpart != class.Group {
			return false
		}
		groupRecord, ok := groupSchedule.Get(placement.Slot)
		if !ok || groupRecord.Entry != placement.Entry || groupRecord.Room != placement.Room || groupRecord.Counterpart != class.Professor {
			return false
		}
	}

	// Owner schedules must not hold records other than the placements'
	recorded := lo.SumBy(timetable.Schedule.Professors(), func(professor string) int { return timetable.Schedule.Professor(professor).Len() })
	if recorded != len(placed) {
		return false
	}
	recorded = lo.SumBy(timetable.Schedule.Groups(), func(group string) int { return timetable.Schedule.Group(group).Len() })
	if recorded != len(placed) {
		return false
	}

	// Every class is either placed or rejected, never both
	rejected := make(map[int]bool)
	for _, rejection := range timetable.Rejections {
		if placed[rejection.Entry] || rejected[rejection.Entry] {
			return false
		}
		rejected[rejection.Entry] = true
	}
	return len(placed)+len(rejected) == len(modelInput.Classes)
}
