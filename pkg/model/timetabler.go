package model

// Timetable is the outcome of a build: the committed schedule and the classes that could not be placed
type Timetable struct {
	Schedule   *Schedule
	Rejections []Rejection
}

type Timetabler interface {
	Build(
		modelInput ModelInput,
	) (timetable Timetable, err error)

	Verify(
		timetable Timetable,
		modelInput ModelInput,
	) bool
}
