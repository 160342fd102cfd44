package model

type predicateEvaluatorStandard struct {
	schedule   *Schedule
	capacities map[string]uint64
}

func (evaluator *predicateEvaluatorStandard) ProfessorFree(professor string, slot TimeSlot) bool {
	schedule := evaluator.schedule.Professor(professor)
	return schedule != nil && !schedule.Occupied(slot)
}

func (evaluator *predicateEvaluatorStandard) GroupFree(group string, slot TimeSlot) bool {
	schedule := evaluator.schedule.Group(group)
	return schedule != nil && !schedule.Occupied(slot)
}

func (evaluator *predicateEvaluatorStandard) Fits(class Class, room string) bool {
	capacity, ok := evaluator.capacities[room]
	return ok && class.Size <= capacity
}

func (evaluator *predicateEvaluatorStandard) RoomFree(room string, slot TimeSlot) bool {
	return evaluator.schedule.RoomUsage(slot, room) == 0
}
