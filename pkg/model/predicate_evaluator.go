package model

type predicateEvaluator interface {
	// Checks whether the professor holds no class at the given time slot
	ProfessorFree(professor string, slot TimeSlot) bool

	// Checks whether the group attends no class at the given time slot
	GroupFree(group string, slot TimeSlot) bool

	// Checks whether the class' size is smaller than or equal to the room's capacity (i.e. the class fits in the room)
	Fits(class Class, room string) bool

	// Checks whether no class is seated in the room at the given time slot
	RoomFree(room string, slot TimeSlot) bool
}

func newPredicateEvaluator(schedule *Schedule, rooms []Room) predicateEvaluator {
	capacities := make(map[string]uint64, len(rooms))
	for _, room := range rooms {
		capacities[room.Name] = room.Capacity
	}

	return &predicateEvaluatorStandard{
		schedule:   schedule,
		capacities: capacities,
	}
}
