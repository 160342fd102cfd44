package model

import "slices"

type indexerImplementation struct {
	slots     []TimeSlot
	positions map[TimeSlot]uint64
}

func (indexer *indexerImplementation) Index(slot TimeSlot) (uint64, bool) {
	index, ok := indexer.positions[slot]
	return index, ok
}

func (indexer *indexerImplementation) Slot(index uint64) TimeSlot {
	return indexer.slots[index]
}

func (indexer *indexerImplementation) Slots() []TimeSlot {
	return slices.Clone(indexer.slots)
}
