package model

import (
	"slices"

	"github.com/samber/lo"
)

// PreferenceOrder decides which owner's list orders the common preferred slots
type PreferenceOrder int

const (
	PreferProfessorOrder PreferenceOrder = iota
	PreferGroupOrder
)

type preferenceStore struct {
	professors map[string][]TimeSlot
	groups     map[string][]TimeSlot
	indexer    indexer
	order      PreferenceOrder
}

func newPreferenceStore(professors, groups []string, indexer indexer, order PreferenceOrder) *preferenceStore {
	toEmptyLists := func(owner string) (string, []TimeSlot) { return owner, []TimeSlot{} }
	return &preferenceStore{
		professors: lo.SliceToMap(professors, toEmptyLists),
		groups:     lo.SliceToMap(groups, toEmptyLists),
		indexer:    indexer,
		order:      order,
	}
}

// SetProfessorPreferences replaces the professor's list; it reports false (and changes nothing) for an unknown professor
func (store *preferenceStore) SetProfessorPreferences(professor string, slots []TimeSlot) bool {
	if _, ok := store.professors[professor]; !ok {
		return false
	}
	store.professors[professor] = slices.Clone(slots)
	return true
}

// SetGroupPreferences replaces the group's list; it reports false (and changes nothing) for an unknown group
func (store *preferenceStore) SetGroupPreferences(group string, slots []TimeSlot) bool {
	if _, ok := store.groups[group]; !ok {
		return false
	}
	store.groups[group] = slices.Clone(slots)
	return true
}

// PreferredSlots returns the slots preferred by both the class' professor and its group, without repetitions,
// in the order of the list selected by the store's PreferenceOrder. Slots outside the universe are dropped
func (store *preferenceStore) PreferredSlots(class Class) []TimeSlot {
	primary, secondary := store.professors[class.Professor], store.groups[class.Group]
	if store.order == PreferGroupOrder {
		primary, secondary = secondary, primary
	}

	return lo.Uniq(lo.Filter(primary, func(slot TimeSlot, _ int) bool {
		_, inUniverse := store.indexer.Index(slot)
		return inUniverse && slices.Contains(secondary, slot)
	}))
}
