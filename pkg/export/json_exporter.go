package export

import (
	"encoding/json"
	"fmt"

	"github.com/mirva777/timetable-management/pkg/model"
)

type Document struct {
	Professors []OwnerDocument   `json:"professors"`
	Groups     []OwnerDocument   `json:"groups"`
	Rejections []model.Rejection `json:"rejections"`
	Audits     []model.RoomAudit `json:"audits,omitempty"`
}

type OwnerDocument struct {
	Owner   string          `json:"owner"`
	Entries []EntryDocument `json:"entries"`
}

type EntryDocument struct {
	Slot      model.TimeSlot  `json:"slot"`
	Occupancy model.Occupancy `json:"occupancy"`
}

// NewDocument gathers both owner axes of a timetable, keeping input order for owners and insertion order for entries.
func NewDocument(timetable model.Timetable, audits []model.RoomAudit) Document {
	schedule := timetable.Schedule
	rejections := timetable.Rejections
	if rejections == nil {
		rejections = []model.Rejection{}
	}

	return Document{
		Professors: ownerDocuments(schedule.Professors(), schedule.Professor),
		Groups:     ownerDocuments(schedule.Groups(), schedule.Group),
		Rejections: rejections,
		Audits:     audits,
	}
}

func ownerDocuments(owners []string, lookup func(string) *model.OwnerSchedule) []OwnerDocument {
	documents := make([]OwnerDocument, 0, len(owners))
	for _, owner := range owners {
		schedule := lookup(owner)
		entries := make([]EntryDocument, 0, schedule.Len())
		for _, slot := range schedule.Slots() {
			occupancy, _ := schedule.Get(slot)
			entries = append(entries, EntryDocument{Slot: slot, Occupancy: occupancy})
		}
		documents = append(documents, OwnerDocument{Owner: owner, Entries: entries})
	}
	return documents
}

// JSONExporter renders documents as indented JSON.
type JSONExporter struct{}

// NewJSONExporter builds a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Render(document Document) ([]byte, error) {
	bytes, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return bytes, nil
}
