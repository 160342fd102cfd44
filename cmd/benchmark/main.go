package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mirva777/timetable-management/pkg/model"
)

type TimetablerType int

const (
	shared TimetablerType = iota
	exclusive
)

var (
	timetablerTypes = map[TimetablerType]string{
		shared:    "shared",
		exclusive: "exclusive",
	}
	timetablerBuilders = map[TimetablerType]func(model.Options) model.Timetabler{
		shared:    model.NewSharedRoomTimetabler,
		exclusive: model.NewExclusiveRoomTimetabler,
	}
	defaultScenarios = []string{
		"classes=20,professors=5,groups=5,slots=10,rooms=3",
		"classes=100,professors=20,groups=15,slots=30,rooms=8",
		"classes=500,professors=60,groups=40,slots=40,rooms=20",
		"classes=2000,professors=150,groups=120,slots=50,rooms=40",
	}
)

// Scenario describes the dimensions of a randomly generated instance
type Scenario struct {
	Classes    int
	Professors int
	Groups     int
	Slots      int
	Rooms      int
}

type BenchmarkResult struct {
	Timetabler TimetablerType
	Scenario   Scenario
	Seed       int64
	Duration   int64
	Assigned   int
	Rejected   int
	Verified   bool
}

func main() {
	scenariosPtr := flag.String("scenarios", strings.Join(defaultScenarios, ";"), "Semicolon separated list of scenarios, each one as \"classes=N,professors=N,groups=N,slots=N,rooms=N\"")
	seedPtr := flag.Int64("seed", 1, "Seed of the instance generator")
	runsPtr := flag.Int("runs", 3, "Number of instances generated per scenario")
	outFilePathPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	scenarios := lo.Map(strings.Split(*scenariosPtr, ";"), func(raw string, _ int) Scenario {
		scenario, err := parseScenario(raw)
		if err != nil {
			log.Fatalf("cannot parse scenario: %v", err)
		}
		return scenario
	})

	results := make([]BenchmarkResult, 0, len(scenarios)*len(timetablerTypes)*(*runsPtr))
	for _, scenario := range scenarios {
		for run := 0; run < *runsPtr; run++ {
			seed := *seedPtr + int64(run)
			input := generateInput(scenario, rand.New(rand.NewSource(seed)))

			for _, timetablerType := range []TimetablerType{shared, exclusive} {
				fmt.Printf("Benchmarking scenario \"%v\" with strategy \"%v\" and seed \"%v\"\n", formatScenario(scenario), timetablerTypes[timetablerType], seed)

				result, err := measure(timetablerType, input)
				if err != nil {
					log.Fatalf("an error occurred at scenario \"%v\" using strategy \"%v\": %v", formatScenario(scenario), timetablerTypes[timetablerType], err)
				}
				result.Scenario, result.Seed = scenario, seed
				results = append(results, result)
			}
		}
	}

	toCsv(results, *outFilePathPtr)
}

func parseScenario(raw string) (Scenario, error) {
	var scenario Scenario
	fields := map[string]*int{
		"classes":    &scenario.Classes,
		"professors": &scenario.Professors,
		"groups":     &scenario.Groups,
		"slots":      &scenario.Slots,
		"rooms":      &scenario.Rooms,
	}

	for _, pair := range strings.Split(strings.TrimSpace(raw), ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return Scenario{}, fmt.Errorf("\"%v\" is not a key=value pair", pair)
		}
		field, ok := fields[strings.ToLower(key)]
		if !ok {
			return Scenario{}, fmt.Errorf("unknown scenario dimension \"%v\"", key)
		}
		number, err := strconv.Atoi(value)
		if err != nil || number <= 0 {
			return Scenario{}, fmt.Errorf("dimension \"%v\" must be a positive integer", key)
		}
		*field = number
	}

	for key, field := range fields {
		if *field == 0 {
			return Scenario{}, fmt.Errorf("missing scenario dimension \"%v\"", key)
		}
	}
	return scenario, nil
}

func formatScenario(scenario Scenario) string {
	return fmt.Sprintf("classes=%d,professors=%d,groups=%d,slots=%d,rooms=%d", scenario.Classes, scenario.Professors, scenario.Groups, scenario.Slots, scenario.Rooms)
}

func generateInput(scenario Scenario, random *rand.Rand) model.ModelInput {
	professors := lo.Times(scenario.Professors, func(i int) string { return fmt.Sprintf("Professor %d", i+1) })
	groups := lo.Times(scenario.Groups, func(i int) string { return fmt.Sprintf("Group %d", i+1) })
	slots := lo.Times(scenario.Slots, func(i int) model.TimeSlot {
		return model.TimeSlot{Day: fmt.Sprintf("Day %d", i/8+1), Period: fmt.Sprintf("Period %d", i%8+1)}
	})
	rooms := lo.Times(scenario.Rooms, func(i int) model.Room {
		return model.Room{Name: fmt.Sprintf("Room %d", i+1), Capacity: uint64(20 + random.Intn(40))}
	})
	classes := lo.Times(scenario.Classes, func(i int) model.Class {
		return model.Class{
			Name:      fmt.Sprintf("Class %d", i+1),
			Professor: professors[random.Intn(len(professors))],
			Group:     groups[random.Intn(len(groups))],
			Size:      uint64(10 + random.Intn(50)),
		}
	})

	preferences := func(owners []string) map[string][]model.TimeSlot {
		return lo.SliceToMap(owners, func(owner string) (string, []model.TimeSlot) {
			return owner, lo.Samples(slots, 1+random.Intn(len(slots)))
		})
	}

	return model.ModelInput{
		Classes:              classes,
		Professors:           professors,
		Groups:               groups,
		TimeSlots:            slots,
		Rooms:                rooms,
		ProfessorPreferences: preferences(professors),
		GroupPreferences:     preferences(groups),
	}
}

func measure(timetablerType TimetablerType, input model.ModelInput) (BenchmarkResult, error) {
	timetabler := timetablerBuilders[timetablerType](model.Options{})

	start := time.Now()
	timetable, err := timetabler.Build(input)
	duration := time.Since(start)
	if err != nil {
		return BenchmarkResult{}, err
	}

	return BenchmarkResult{
		Timetabler: timetablerType,
		Duration:   duration.Microseconds(),
		Assigned:   len(timetable.Schedule.Placements()),
		Rejected:   len(timetable.Rejections),
		Verified:   timetabler.Verify(timetable, input),
	}, nil
}

func toCsv(results []BenchmarkResult, path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Timetabler", "Classes", "Professors", "Groups", "Slots", "Rooms", "Seed", "Duration(us)", "Assigned", "Rejected", "Verified"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			timetablerTypes[result.Timetabler],
			fmt.Sprintf("%d", result.Scenario.Classes),
			fmt.Sprintf("%d", result.Scenario.Professors),
			fmt.Sprintf("%d", result.Scenario.Groups),
			fmt.Sprintf("%d", result.Scenario.Slots),
			fmt.Sprintf("%d", result.Scenario.Rooms),
			fmt.Sprintf("%d", result.Seed),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%d", result.Assigned),
			fmt.Sprintf("%d", result.Rejected),
			fmt.Sprintf("%v", result.Verified),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
