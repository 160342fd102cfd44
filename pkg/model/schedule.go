package model

import (
	"fmt"
	"slices"
)

// Occupancy records that an owner (professor or group) is committed to a class at a time slot.
// Counterpart is the group for a professor's record and the professor for a group's record
type Occupancy struct {
	Entry       int    `json:"entry"` // Position of the class in the input
	Class       string `json:"class"`
	Room        string `json:"room"`
	Counterpart string `json:"counterpart"`
	Size        uint64 `json:"size"`
}

// Placement is a committed (class, slot, room) triple as seen from both owners
type Placement struct {
	Entry     int      `json:"entry"`
	Class     string   `json:"class"`
	Professor string   `json:"professor"`
	Group     string   `json:"group"`
	Size      uint64   `json:"size"`
	Slot      TimeSlot `json:"slot"`
	Room      string   `json:"room"`
}

// OwnerSchedule maps time slots to occupancy records, keeping insertion order
type OwnerSchedule struct {
	slots   []TimeSlot
	records map[TimeSlot]Occupancy
}

func newOwnerSchedule() *OwnerSchedule {
	return &OwnerSchedule{
		slots:   make([]TimeSlot, 0),
		records: make(map[TimeSlot]Occupancy),
	}
}

func (schedule *OwnerSchedule) Occupied(slot TimeSlot) bool {
	_, ok := schedule.records[slot]
	return ok
}

func (schedule *OwnerSchedule) Get(slot TimeSlot) (Occupancy, bool) {
	occupancy, ok := schedule.records[slot]
	return occupancy, ok
}

// Slots returns the occupied slots in insertion order
func (schedule *OwnerSchedule) Slots() []TimeSlot {
	return slices.Clone(schedule.slots)
}

func (schedule *OwnerSchedule) Len() int {
	return len(schedule.slots)
}

func (schedule *OwnerSchedule) add(slot TimeSlot, occupancy Occupancy) {
	if schedule.Occupied(slot) {
		panic(fmt.Sprintf("slot %v is already occupied by class \"%v\"", slot, schedule.records[slot].Class))
	}
	schedule.slots = append(schedule.slots, slot)
	schedule.records[slot] = occupancy
}

// Schedule is the committed state of one scheduling run: a professor-side and a group-side
// mapping of owner -> slot -> occupancy. Records are only ever added
type Schedule struct {
	professors     map[string]*OwnerSchedule
	groups         map[string]*OwnerSchedule
	professorOrder []string
	groupOrder     []string
	roomUsage      map[TimeSlot]map[string]int
	placements     []Placement
}

func newSchedule(professors, groups []string) *Schedule {
	schedule := &Schedule{
		professors:     make(map[string]*OwnerSchedule, len(professors)),
		groups:         make(map[string]*OwnerSchedule, len(groups)),
		professorOrder: slices.Clone(professors),
		groupOrder:     slices.Clone(groups),
		roomUsage:      make(map[TimeSlot]map[string]int),
		placements:     make([]Placement, 0),
	}
	for _, professor := range professors {
		schedule.professors[professor] = newOwnerSchedule()
	}
	for _, group := range groups {
		schedule.groups[group] = newOwnerSchedule()
	}
	return schedule
}

// Professors returns the professor ids in input order
func (schedule *Schedule) Professors() []string {
	return slices.Clone(schedule.professorOrder)
}

// Groups returns the group ids in input order
func (schedule *Schedule) Groups() []string {
	return slices.Clone(schedule.groupOrder)
}

// Professor returns the professor's schedule, or nil for an unknown professor
func (schedule *Schedule) Professor(professor string) *OwnerSchedule {
	return schedule.professors[professor]
}

// Group returns the group's schedule, or nil for an unknown group
func (schedule *Schedule) Group(group string) *OwnerSchedule {
	return schedule.groups[group]
}

// RoomUsage returns how many classes are seated in the room at the slot
func (schedule *Schedule) RoomUsage(slot TimeSlot, room string) int {
	return schedule.roomUsage[slot][room]
}

// Placements returns every committed placement in commit order
func (schedule *Schedule) Placements() []Placement {
	return slices.Clone(schedule.placements)
}

func (schedule *Schedule) commit(entry int, class Class, slot TimeSlot, room string) {
	schedule.professors[class.Professor].add(slot, Occupancy{
		Entry:       entry,
		Class:       class.Name,
		Room:        room,
		Counterpart: class.Group,
		Size:        class.Size,
	})
	schedule.groups[class.Group].add(slot, Occupancy{
		Entry:       entry,
		Class:       class.Name,
		Room:        room,
		Counterpart: class.Professor,
		Size:        class.Size,
	})

	if _, ok := schedule.roomUsage[slot]; !ok {
		schedule.roomUsage[slot] = make(map[string]int)
	}
	schedule.roomUsage[slot][room]++

	schedule.placements = append(schedule.placements, Placement{
		Entry:     entry,
		Class:     class.Name,
		Professor: class.Professor,
		Group:     class.Group,
		Size:      class.Size,
		Slot:      slot,
		Room:      room,
	})
}
