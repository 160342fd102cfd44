package model

type sharedRoomTimetabler struct {
	options Options
}

// NewSharedRoomTimetabler returns the reference greedy timetabler: a room may host several classes
// at the same time slot as long as each of them fits
func NewSharedRoomTimetabler(options Options) Timetabler {
	options.ExclusiveRooms = false
	return &sharedRoomTimetabler{
		options: options,
	}
}

func (timetabler *sharedRoomTimetabler) Build(modelInput ModelInput) (Timetable, error) {
	return build(modelInput, timetabler.options)
}

func (timetabler *sharedRoomTimetabler) Verify(timetable Timetable, modelInput ModelInput) bool {
	return verify(timetable, modelInput, false)
}
