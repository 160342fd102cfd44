package model

import (
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var ErrAlreadyGenerated = errors.New("schedule has already been generated for this session")

type Options struct {
	// ExclusiveRooms forbids seating two classes in the same room at the same time slot
	ExclusiveRooms bool
	// ExtendedDiagnostics reports failures caused by partially exhausted owners
	ExtendedDiagnostics bool
	PreferenceOrder     PreferenceOrder
	Logger              *zap.Logger
	// OnRejection is invoked as soon as a class turns out to be unassignable
	OnRejection func(Rejection)
}

// Session owns the state of a single scheduling run. It is not safe for concurrent use
type Session struct {
	input       ModelInput
	options     Options
	logger      *zap.Logger
	indexer     indexer
	preferences *preferenceStore
	schedule    *Schedule
	evaluator   predicateEvaluator
	generator   candidateGenerator
	generated   bool
}

// NewSession builds an empty schedule for the input and seeds the preference store with the input's preferences
func NewSession(input ModelInput, options Options) *Session {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	indexer := newIndexer(input.TimeSlots)
	schedule := newSchedule(input.Professors, input.Groups)

	session := &Session{
		input:       input,
		options:     options,
		logger:      logger.With(zap.String("run", uuid.NewString())),
		indexer:     indexer,
		preferences: newPreferenceStore(input.Professors, input.Groups, indexer, options.PreferenceOrder),
		schedule:    schedule,
		evaluator:   newPredicateEvaluator(schedule, input.Rooms),
		generator:   newCandidateGenerator(indexer),
	}

	// Sorted so that runs over the same input log identically
	professors := lo.Keys(input.ProfessorPreferences)
	slices.Sort(professors)
	for _, professor := range professors {
		session.SetProfessorPreferences(professor, input.ProfessorPreferences[professor])
	}
	groups := lo.Keys(input.GroupPreferences)
	slices.Sort(groups)
	for _, group := range groups {
		session.SetGroupPreferences(group, input.GroupPreferences[group])
	}

	return session
}

// SetProfessorPreferences replaces the preferred slots of a known professor. Unknown professors are ignored
func (session *Session) SetProfessorPreferences(professor string, slots []TimeSlot) {
	if !session.preferences.SetProfessorPreferences(professor, slots) {
		session.logger.Debug("ignoring preferences of unknown professor", zap.String("professor", professor))
	}
}

// SetGroupPreferences replaces the preferred slots of a known group. Unknown groups are ignored
func (session *Session) SetGroupPreferences(group string, slots []TimeSlot) {
	if !session.preferences.SetGroupPreferences(group, slots) {
		session.logger.Debug("ignoring preferences of unknown group", zap.String("group", group))
	}
}

// PreferredSlots returns the slots jointly preferred by the class' professor and group
func (session *Session) PreferredSlots(class Class) []TimeSlot {
	return session.preferences.PreferredSlots(class)
}

// IsValid checks whether the class can be placed at the slot in the room given the current schedule.
// Slots outside the universe are never valid
func (session *Session) IsValid(class Class, slot TimeSlot, room string) bool {
	if _, ok := session.indexer.Index(slot); !ok {
		return false
	}

	return session.evaluator.ProfessorFree(class.Professor, slot) &&
		session.evaluator.GroupFree(class.Group, slot) &&
		session.evaluator.Fits(class, room) &&
		(!session.options.ExclusiveRooms || session.evaluator.RoomFree(room, slot))
}

// Generate walks the classes in input order and commits each one to the first feasible
// (slot, room) pair, trying jointly preferred slots first. Classes without a feasible pair are
// rejected and the walk goes on. A session generates only once
func (session *Session) Generate() ([]Rejection, error) {
	if session.generated {
		return nil, ErrAlreadyGenerated
	}
	session.generated = true

	rejections := make([]Rejection, 0)
	for entry, class := range session.input.Classes {
		slot, room, ok := session.firstFit(class)
		if ok {
			session.Assign(entry, class, slot, room)
			continue
		}

		rejection := Rejection{
			Entry:   entry,
			Class:   class,
			Reasons: session.Feedback(class),
		}
		session.logger.Warn("class could not be assigned",
			zap.Int("entry", entry),
			zap.String("class", class.Name),
			zap.String("professor", class.Professor),
			zap.String("group", class.Group),
			zap.Strings("reasons", rejection.Reasons),
		)
		if session.options.OnRejection != nil {
			session.options.OnRejection(rejection)
		}
		rejections = append(rejections, rejection)
	}

	session.logger.Info("schedule generated",
		zap.Int("classes", len(session.input.Classes)),
		zap.Int("assigned", len(session.input.Classes)-len(rejections)),
		zap.Int("rejected", len(rejections)),
	)
	return rejections, nil
}

// Schedule returns the committed state of the session
func (session *Session) Schedule() *Schedule {
	return session.schedule
}

func (session *Session) firstFit(class Class) (TimeSlot, string, bool) {
	for _, slot := range session.generator.Candidates(session.PreferredSlots(class)) {
		for _, room := range session.input.Rooms {
			if session.IsValid(class, slot, room.Name) {
				return slot, room.Name, true
			}
		}
	}
	return TimeSlot{}, "", false
}

// Assign commits the class found at the input entry to the slot and room, writing the professor
// and group records. Callers must have checked IsValid first: a busy owner makes it panic
func (session *Session) Assign(entry int, class Class, slot TimeSlot, room string) {
	session.schedule.commit(entry, class, slot, room)
	session.logger.Debug("class assigned",
		zap.Int("entry", entry),
		zap.String("class", class.Name),
		zap.Stringer("slot", slot),
		zap.String("room", room),
	)
}
