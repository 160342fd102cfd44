package model

// indexer interface is design to give every time slot of the universe its input position and vice versa
type indexer interface {
	// Returns the input position of the slot and whether the slot belongs to the universe
	Index(slot TimeSlot) (uint64, bool)
	// Returns the slot found at the given input position
	Slot(index uint64) TimeSlot
	// Returns the universe in input order
	Slots() []TimeSlot
}

func newIndexer(slots []TimeSlot) indexer {
	positions := make(map[TimeSlot]uint64, len(slots))
	for i, slot := range slots {
		positions[slot] = uint64(i)
	}

	return &indexerImplementation{
		slots:     slots,
		positions: positions,
	}
}
