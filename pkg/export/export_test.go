package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirva777/timetable-management/pkg/model"
)

var (
	monday9  = model.TimeSlot{Day: "Monday", Period: "9:00-10:00"}
	monday10 = model.TimeSlot{Day: "Monday", Period: "10:00-11:00"}
)

func buildTimetable(t *testing.T) model.Timetable {
	t.Helper()
	input := model.ModelInput{
		Classes: []model.Class{
			{Name: "Math", Professor: "Prof. A", Group: "Group 1", Size: 25},
			{Name: "Physics", Professor: "Prof. B", Group: "Group 1", Size: 20},
			{Name: "Astronomy", Professor: "Prof. B", Group: "Group 1", Size: 90},
		},
		Professors: []string{"Prof. A", "Prof. B"},
		Groups:     []string{"Group 1"},
		TimeSlots:  []model.TimeSlot{monday9, monday10},
		Rooms:      []model.Room{{Name: "Room 101", Capacity: 30}},
	}

	timetable, err := model.NewSharedRoomTimetabler(model.Options{}).Build(input)
	require.NoError(t, err)
	require.Len(t, timetable.Rejections, 1)
	return timetable
}

func TestTableExporter(t *testing.T) {
	//** Arrange
	timetable := buildTimetable(t)
	var buf bytes.Buffer

	//** Act
	err := NewTableExporter().Render(&buf, ProfessorDatasets(timetable)[0])

	//** Assert
	require.NoError(t, err)
	expected := `
Schedule for Prof. A:
+-------------------+-------+----------+---------+
| Time Slot         | Class | Room     | Group   |
+===================+=======+==========+=========+
| Monday 9:00-10:00 | Math  | Room 101 | Group 1 |
+-------------------+-------+----------+---------+
`
	assert.Equal(t, expected, buf.String())
}

func TestTableExporterEmptyDataset(t *testing.T) {
	var buf bytes.Buffer

	err := NewTableExporter().Render(&buf, Dataset{Headers: []string{HeaderTimeSlot, HeaderClass}})

	require.NoError(t, err)
	assert.Equal(t, "+-----------+-------+\n| Time Slot | Class |\n+-----------+-------+\n", buf.String())

	assert.Error(t, NewTableExporter().Render(&buf, Dataset{}))
}

func TestDatasets(t *testing.T) {
	timetable := buildTimetable(t)

	professors := ProfessorDatasets(timetable)
	require.Len(t, professors, 2)
	assert.Equal(t, "Schedule for Prof. B", professors[1].Title)
	assert.Equal(t, []map[string]string{
		{HeaderTimeSlot: "Monday 10:00-11:00", HeaderClass: "Physics", HeaderRoom: "Room 101", HeaderGroup: "Group 1"},
	}, professors[1].Rows)

	groups := GroupDatasets(timetable)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{HeaderTimeSlot, HeaderClass, HeaderRoom, HeaderProfessor}, groups[0].Headers)
	assert.Equal(t, []string{"Math", "Physics"}, []string{groups[0].Rows[0][HeaderClass], groups[0].Rows[1][HeaderClass]})
}

func TestCSVExporter(t *testing.T) {
	timetable := buildTimetable(t)

	content, err := NewCSVExporter().Render(PlacementDataset(timetable))

	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{HeaderTimeSlot, HeaderClass, HeaderProfessor, HeaderGroup, HeaderRoom, HeaderSize},
		{"Monday 9:00-10:00", "Math", "Prof. A", "Group 1", "Room 101", "25"},
		{"Monday 10:00-11:00", "Physics", "Prof. B", "Group 1", "Room 101", "20"},
	}, records)

	_, err = NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporter(t *testing.T) {
	timetable := buildTimetable(t)

	content, err := NewPDFExporter().Render(append(ProfessorDatasets(timetable), GroupDatasets(timetable)...), "Timetable")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))

	_, err = NewPDFExporter().Render(nil, "Timetable")
	assert.Error(t, err)
}

func TestJSONExporter(t *testing.T) {
	timetable := buildTimetable(t)

	content, err := NewJSONExporter().Render(NewDocument(timetable, nil))
	require.NoError(t, err)

	var document map[string]any
	require.NoError(t, json.Unmarshal(content, &document))
	assert.NotContains(t, document, "audits")

	professors := document["professors"].([]any)
	require.Len(t, professors, 2)
	assert.Equal(t, "Prof. A", professors[0].(map[string]any)["owner"])

	rejections := document["rejections"].([]any)
	require.Len(t, rejections, 1)
	rejection := rejections[0].(map[string]any)
	assert.Equal(t, float64(2), rejection["entry"])
	assert.Equal(t, []any{
		"No available time slots for group Group 1.",
		"No rooms with sufficient capacity for class Astronomy (size: 90).",
	}, rejection["reasons"])
}
