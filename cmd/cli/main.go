package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mirva777/timetable-management/pkg/config"
	"github.com/mirva777/timetable-management/pkg/export"
	"github.com/mirva777/timetable-management/pkg/logger"
	"github.com/mirva777/timetable-management/pkg/model"
)

const (
	exitAssigned = 0
	exitFailure  = 1
	exitRejected = 3
)

var (
	timetablers = map[string]func(model.Options) model.Timetabler{
		"shared":    model.NewSharedRoomTimetabler,
		"exclusive": model.NewExclusiveRoomTimetabler,
	}
	preferenceOrders = map[string]model.PreferenceOrder{
		"professor": model.PreferProfessorOrder,
		"group":     model.PreferGroupOrder,
	}
)

type arguments struct {
	file            string
	outFile         string
	strategy        string
	format          string
	diagnostics     string
	preferenceOrder string
	audit           bool
}

func main() {
	flag.String("env", "", "Path to the env file holding the configuration, where \".env\" is the default")
	defaults := loadConfig(os.Args[1:])

	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file (.json, .yaml or .yml)")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	strategyPtr := flag.String("strategy", defaults.Timetable.Strategy, `Strategy to build the timetable. Allowed values are:
- "shared" (A room may host several classes at the same time slot as long as each fits) and
- "exclusive" (A room hosts at most one class per time slot)`)
	formatPtr := flag.String("format", defaults.Timetable.Format, "Output format. Allowed values are: \"table\", \"json\", \"csv\", \"pdf\"")
	diagnosticsPtr := flag.String("diagnostics", defaults.Timetable.Diagnostics, "Diagnostics mode. Allowed values are: \"faithful\" and \"extended\" (also explains owners that are never free together)")
	orderPtr := flag.String("order", defaults.Timetable.PreferenceOrder, "List that orders jointly preferred slots. Allowed values are: \"professor\" and \"group\"")
	auditPtr := flag.Bool("audit", defaults.Timetable.Audit, "Report rooms hosting several classes at the same time slot")
	flag.Parse()

	args := arguments{
		file:            *filePathPtr,
		outFile:         *outFilePathPtr,
		strategy:        strings.ToLower(*strategyPtr),
		format:          strings.ToLower(*formatPtr),
		diagnostics:     strings.ToLower(*diagnosticsPtr),
		preferenceOrder: strings.ToLower(*orderPtr),
		audit:           *auditPtr,
	}

	// Validate arguments
	if err := validateArguments(args); err != nil {
		log.Fatal(err)
	}

	defaults.Timetable.Strategy, defaults.Timetable.Format = args.strategy, args.format
	zapLogger, err := logger.New(defaults)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	os.Exit(run(args, zapLogger, os.Stdout))
}

// Reads the configuration before flags are parsed since it provides their defaults
func loadConfig(args []string) *config.Config {
	envFile := ""
	for i, arg := range args {
		if value, ok := strings.CutPrefix(arg, "-env="); ok {
			envFile = value
		} else if value, ok := strings.CutPrefix(arg, "--env="); ok {
			envFile = value
		} else if (arg == "-env" || arg == "--env") && i+1 < len(args) {
			envFile = args[i+1]
		}
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	return cfg
}

func validateArguments(args arguments) error {
	if _, ok := timetablers[args.strategy]; !ok {
		return fmt.Errorf("%v is not a valid strategy", args.strategy)
	} else if !slices.Contains(config.ValidFormats, args.format) {
		return fmt.Errorf("%v is not a valid output format", args.format)
	} else if !slices.Contains(config.ValidDiagnostics, args.diagnostics) {
		return fmt.Errorf("%v is not a valid diagnostics mode", args.diagnostics)
	} else if _, ok := preferenceOrders[args.preferenceOrder]; !ok {
		return fmt.Errorf("%v is not a valid preference order", args.preferenceOrder)
	} else if args.file == "" {
		return fmt.Errorf("an input file must be specified")
	} else if args.format == "pdf" && args.outFile == "" {
		return fmt.Errorf("pdf output requires an output file")
	}
	return nil
}

// run builds the timetable and writes it; it returns the process exit code
func run(args arguments, zapLogger *zap.Logger, stdout io.Writer) int {
	// Extract input
	input, err := model.InputFromFile(args.file)
	if err != nil {
		zapLogger.Error("cannot parse input file", zap.String("file", args.file), zap.Error(err))
		return exitFailure
	}

	// Rejections are reported as soon as they happen when the output is meant for reading
	var feedback bytes.Buffer
	options := model.Options{
		ExtendedDiagnostics: args.diagnostics == "extended",
		PreferenceOrder:     preferenceOrders[args.preferenceOrder],
		Logger:              zapLogger,
		OnRejection: func(rejection model.Rejection) {
			if args.format == "table" {
				fmt.Fprintln(&feedback, rejection.String())
			}
		},
	}
	timetabler := timetablers[args.strategy](options)

	// Build timetable
	timetable, err := timetabler.Build(input)
	if err != nil {
		zapLogger.Error("an error occurred during timetable construction", zap.Error(err))
		return exitFailure
	}

	// Verify timetable correctness
	if !timetabler.Verify(timetable, input) {
		zapLogger.Error("timetable verification failed")
		return exitFailure
	}

	var audits []model.RoomAudit
	if args.audit {
		audits, err = model.AuditRooms(timetable, input)
		if err != nil {
			zapLogger.Error("cannot audit rooms", zap.Error(err))
			return exitFailure
		}
		for _, audit := range audits {
			zapLogger.Warn("room hosts several classes at once",
				zap.Stringer("slot", audit.Slot),
				zap.Strings("rooms", audit.SharedRooms),
				zap.Bool("reseatable", audit.Reseatable),
			)
		}
	}

	output, err := render(args.format, feedback.Bytes(), timetable, audits)
	if err != nil {
		zapLogger.Error("an error occurred while rendering the timetable", zap.Error(err))
		return exitFailure
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if args.outFile == "" {
		if _, err := stdout.Write(output); err != nil {
			zapLogger.Error("an error occurred while writing the output", zap.Error(err))
			return exitFailure
		}
	} else if err := os.WriteFile(args.outFile, output, 0666); err != nil {
		zapLogger.Error("an error occurred while writing to the output file", zap.String("file", args.outFile), zap.Error(err))
		return exitFailure
	}

	if len(timetable.Rejections) > 0 {
		return exitRejected
	}
	return exitAssigned
}

func render(format string, feedback []byte, timetable model.Timetable, audits []model.RoomAudit) ([]byte, error) {
	switch format {
	case "json":
		return export.NewJSONExporter().Render(export.NewDocument(timetable, audits))
	case "csv":
		return export.NewCSVExporter().Render(export.PlacementDataset(timetable))
	case "pdf":
		return export.NewPDFExporter().Render(append(export.ProfessorDatasets(timetable), export.GroupDatasets(timetable)...), "Timetable")
	}

	var buf bytes.Buffer
	buf.Write(feedback)
	exporter := export.NewTableExporter()
	sections := lo.Zip2(
		[]string{"\nProfessor Schedules:\n", "\nGroup Schedules:\n"},
		[][]export.Dataset{export.ProfessorDatasets(timetable), export.GroupDatasets(timetable)},
	)
	for _, section := range sections {
		heading, datasets := section.A, section.B
		buf.WriteString(heading)
		for _, data := range datasets {
			if err := exporter.Render(&buf, data); err != nil {
				return nil, err
			}
		}
	}
	return buf.Bytes(), nil
}
