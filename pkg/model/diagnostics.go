package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Rejection describes a class that could not be assigned. Reasons may be empty when the
// failure is not explained by any of the checked conditions
type Rejection struct {
	Entry   int      `json:"entry"`
	Class   Class    `json:"class"`
	Reasons []string `json:"reasons"`
}

func (rejection Rejection) String() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Unable to assign class %v for group %v by professor %v. Reasons:", rejection.Class.Name, rejection.Class.Group, rejection.Class.Professor)
	for _, reason := range rejection.Reasons {
		fmt.Fprintf(&builder, "\n- %v", reason)
	}
	return builder.String()
}

// Feedback explains why the class cannot be placed given the current schedule. It checks, independently:
//   - every slot of the universe is taken by the class' professor
//   - every slot of the universe is taken by the class' group
//   - the class is larger than every room
//
// With extended diagnostics it also reports owners that are only partially busy but never free
// together, and (with exclusive rooms) common free slots where every fitting room is taken
func (session *Session) Feedback(class Class) []string {
	reasons := make([]string, 0, 3)
	slots := session.indexer.Slots()

	professorExhausted := lo.EveryBy(slots, func(slot TimeSlot) bool {
		return !session.evaluator.ProfessorFree(class.Professor, slot)
	})
	if professorExhausted {
		reasons = append(reasons, fmt.Sprintf("No available time slots for professor %v.", class.Professor))
	}

	groupExhausted := lo.EveryBy(slots, func(slot TimeSlot) bool {
		return !session.evaluator.GroupFree(class.Group, slot)
	})
	if groupExhausted {
		reasons = append(reasons, fmt.Sprintf("No available time slots for group %v.", class.Group))
	}

	noRoomFits := lo.EveryBy(session.input.Rooms, func(room Room) bool {
		return !session.evaluator.Fits(class, room.Name)
	})
	if noRoomFits {
		reasons = append(reasons, fmt.Sprintf("No rooms with sufficient capacity for class %v (size: %v).", class.Name, class.Size))
	}

	if !session.options.ExtendedDiagnostics || professorExhausted || groupExhausted {
		return reasons
	}

	//** Extended diagnostics
	commonFree := lo.Filter(slots, func(slot TimeSlot, _ int) bool {
		return session.evaluator.ProfessorFree(class.Professor, slot) && session.evaluator.GroupFree(class.Group, slot)
	})
	if len(commonFree) == 0 {
		reasons = append(reasons, fmt.Sprintf("No time slot where professor %v and group %v are both free.", class.Professor, class.Group))
	} else if session.options.ExclusiveRooms && !noRoomFits && !lo.SomeBy(commonFree, func(slot TimeSlot) bool {
		return lo.SomeBy(session.input.Rooms, func(room Room) bool {
			return session.evaluator.Fits(class, room.Name) && session.evaluator.RoomFree(room.Name, slot)
		})
	}) {
		reasons = append(reasons, fmt.Sprintf("No free room with sufficient capacity at any time slot where professor %v and group %v are both free.", class.Professor, class.Group))
	}

	return reasons
}
