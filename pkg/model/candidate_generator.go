package model

type candidateGenerator interface {
	// Returns the preferred slots followed by the remaining slots of the universe in input order.
	// Every slot appears once and slots outside the universe are skipped
	Candidates(preferred []TimeSlot) []TimeSlot
}

func newCandidateGenerator(indexer indexer) candidateGenerator {
	return &candidateGeneratorImplementation{indexer: indexer}
}

type candidateGeneratorImplementation struct {
	indexer indexer
}

func (generator *candidateGeneratorImplementation) Candidates(preferred []TimeSlot) []TimeSlot {
	universe := generator.indexer.Slots()
	seen := make([]bool, len(universe))
	candidates := make([]TimeSlot, 0, len(universe))

	for _, slot := range preferred {
		if index, ok := generator.indexer.Index(slot); ok && !seen[index] {
			seen[index] = true
			candidates = append(candidates, slot)
		}
	}
	for index, slot := range universe {
		if !seen[index] {
			candidates = append(candidates, slot)
		}
	}

	return candidates
}
