package model

type exclusiveRoomTimetabler struct {
	options Options
}

// NewExclusiveRoomTimetabler returns a greedy timetabler that never seats two classes in the same room at the same time slot
func NewExclusiveRoomTimetabler(options Options) Timetabler {
	options.ExclusiveRooms = true
	return &exclusiveRoomTimetabler{
		options: options,
	}
}

func (timetabler *exclusiveRoomTimetabler) Build(modelInput ModelInput) (Timetable, error) {
	return build(modelInput, timetabler.options)
}

func (timetabler *exclusiveRoomTimetabler) Verify(timetable Timetable, modelInput ModelInput) bool {
	return verify(timetable, modelInput, true)
}
