package model

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// RoomAudit reports a time slot where at least one room hosts more than one class.
// Reseatable tells whether the classes of that slot could each get a distinct room they fit in,
// in which case Reseating maps every class entry to such a room
type RoomAudit struct {
	Slot        TimeSlot       `json:"slot"`
	SharedRooms []string       `json:"sharedRooms"`
	Entries     []int          `json:"entries"`
	Reseatable  bool           `json:"reseatable"`
	Reseating   map[int]string `json:"reseating,omitempty"`
}

// AuditRooms inspects a timetable for rooms hosting several classes at once. It never changes the timetable
func AuditRooms(timetable Timetable, modelInput ModelInput) ([]RoomAudit, error) {
	audits := make([]RoomAudit, 0)
	if timetable.Schedule == nil {
		return audits, nil
	}

	placements := timetable.Schedule.Placements()
	capacities := lo.SliceToMap(modelInput.Rooms, func(room Room) (string, uint64) { return room.Name, room.Capacity })

	for _, slot := range modelInput.TimeSlots {
		simultaneous := lo.Filter(placements, func(placement Placement, _ int) bool { return placement.Slot == slot })

		sharedRooms := lo.FilterMap(modelInput.Rooms, func(room Room, _ int) (string, bool) {
			return room.Name, timetable.Schedule.RoomUsage(slot, room.Name) > 1
		})
		if len(sharedRooms) == 0 {
			continue
		}

		entries := lo.Map(simultaneous, func(placement Placement, _ int) int { return placement.Entry })
		reseating, err := reseat(simultaneous, modelInput.Rooms, capacities)
		if err != nil {
			return nil, err
		}

		audits = append(audits, RoomAudit{
			Slot:        slot,
			SharedRooms: sharedRooms,
			Entries:     entries,
			Reseatable:  reseating != nil,
			Reseating:   reseating,
		})
	}

	return audits, nil
}

// Finds a maximum matching between simultaneous placements and rooms they fit in. It returns nil
// when the matching does not cover every placement
func reseat(placements []Placement, rooms []Room, capacities map[string]uint64) (map[int]string, error) {
	// Build neighbors predicate based on capacities
	neighbors := func(placementAny any, roomAny any) (bool, error) {
		placement := placementAny.(Placement)
		room := roomAny.(Room)

		return placement.Size <= capacities[room.Name], nil
	}

	// Transform placements and rooms to slices of any
	placementsAny, roomsAny := lo.Map(placements, func(placement Placement, _ int) any { return placement }), lo.Map(rooms, func(room Room, _ int) any { return room })

	graph, err := bipartitegraph.NewBipartiteGraph(placementsAny, roomsAny, neighbors)
	if err != nil {
		return nil, err
	}

	matching := graph.LargestMatching()

	// Check the matching is a maximum one
	if len(matching) < len(placements) {
		return nil, nil
	}

	reseating := make(map[int]string, len(placements))
	for _, edge := range matching {
		placementIndex, roomIndex := edge.Node1, edge.Node2-len(placements)
		reseating[placements[placementIndex].Entry] = rooms[roomIndex].Name
	}

	return reseating, nil
}
