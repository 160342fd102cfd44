package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultClassSize    uint64 = 20
	DefaultRoomCapacity uint64 = 30
)

var ErrInvalidInput = errors.New("invalid model input")

var validate = validator.New()

type TimeSlot struct {
	Day    string `mapstructure:"day" json:"day" validate:"required"`
	Period string `mapstructure:"period" json:"period" validate:"required"`
}

func (slot TimeSlot) String() string {
	return slot.Day + " " + slot.Period
}

type Class struct {
	Name      string `mapstructure:"name" json:"name" validate:"required"`
	Professor string `mapstructure:"professor" json:"professor" validate:"required"`
	Group     string `mapstructure:"group" json:"group" validate:"required"`
	Size      uint64 `mapstructure:"size" json:"size"` // Zero stands for unspecified
}

type Room struct {
	Name     string `json:"name"`
	Capacity uint64 `json:"capacity"`
}

// RawModelInput mirrors the input file. Rooms are plain names whose capacities
// are looked up in RoomCapacities.
type RawModelInput struct {
	Classes              []Class               `mapstructure:"classes" validate:"dive"`
	Professors           []string              `mapstructure:"professors" validate:"required,min=1,dive,required"`
	Groups               []string              `mapstructure:"groups" validate:"required,min=1,dive,required"`
	TimeSlots            []TimeSlot            `mapstructure:"timeSlots" validate:"required,min=1,dive"`
	Rooms                []string              `mapstructure:"rooms" validate:"required,min=1,dive,required"`
	RoomCapacities       map[string]uint64     `mapstructure:"roomCapacities" validate:"dive,gt=0"`
	ProfessorPreferences map[string][]TimeSlot `mapstructure:"professorPreferences"`
	GroupPreferences     map[string][]TimeSlot `mapstructure:"groupPreferences"`
}

type ModelInput struct {
	Classes              []Class
	Professors           []string
	Groups               []string
	TimeSlots            []TimeSlot // Universe of time slots in input order
	Rooms                []Room     // Rooms in input order with their resolved capacities
	ProfessorPreferences map[string][]TimeSlot
	GroupPreferences     map[string][]TimeSlot
}

// InputFromFile reads a JSON or YAML input file (chosen by extension) and turns it into a validated ModelInput
func InputFromFile(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputMap map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &inputMap)
	default:
		err = json.Unmarshal(bytes, &inputMap)
	}
	if err != nil {
		return ModelInput{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	rawInput, err := DecodeRawInput(inputMap)
	if err != nil {
		return ModelInput{}, err
	}
	return ProcessRawInput(rawInput)
}

// DecodeRawInput decodes a generic document into a RawModelInput. Time slots may be
// written either as {"day": ..., "period": ...} objects or as [day, period] pairs
func DecodeRawInput(inputMap map[string]any) (RawModelInput, error) {
	var rawInput RawModelInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: timeSlotHook,
		Result:     &rawInput,
	})
	if err != nil {
		return RawModelInput{}, err
	}

	if err := decoder.Decode(inputMap); err != nil {
		return RawModelInput{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return rawInput, nil
}

func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	if err := validate.Struct(rawInput); err != nil {
		return ModelInput{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	for name := range rawInput.RoomCapacities {
		if !lo.Contains(rawInput.Rooms, name) {
			return ModelInput{}, fmt.Errorf("%w: capacity given for unknown room \"%v\"", ErrInvalidInput, name)
		}
	}

	//** Resolve rooms
	rooms := lo.Map(rawInput.Rooms, func(name string, _ int) Room {
		capacity, ok := rawInput.RoomCapacities[name]
		if !ok {
			capacity = DefaultRoomCapacity
		}
		return Room{Name: name, Capacity: capacity}
	})

	//** Resolve classes
	classes := lo.Map(rawInput.Classes, func(class Class, _ int) Class {
		if class.Size == 0 {
			class.Size = DefaultClassSize
		}
		return class
	})

	input := ModelInput{
		Classes:              classes,
		Professors:           rawInput.Professors,
		Groups:               rawInput.Groups,
		TimeSlots:            rawInput.TimeSlots,
		Rooms:                rooms,
		ProfessorPreferences: rawInput.ProfessorPreferences,
		GroupPreferences:     rawInput.GroupPreferences,
	}
	if err := validateModelInput(input); err != nil {
		return ModelInput{}, err
	}
	return input, nil
}

// Checks the cross references of an input that the struct tags cannot express
func validateModelInput(input ModelInput) error {
	if len(input.TimeSlots) == 0 {
		return fmt.Errorf("%w: at least one time slot is required", ErrInvalidInput)
	} else if len(input.Rooms) == 0 {
		return fmt.Errorf("%w: at least one room is required", ErrInvalidInput)
	}

	if duplicates := lo.FindDuplicates(input.Professors); len(duplicates) > 0 {
		return fmt.Errorf("%w: duplicate professors %v", ErrInvalidInput, duplicates)
	} else if duplicates := lo.FindDuplicates(input.Groups); len(duplicates) > 0 {
		return fmt.Errorf("%w: duplicate groups %v", ErrInvalidInput, duplicates)
	} else if duplicates := lo.FindDuplicates(input.TimeSlots); len(duplicates) > 0 {
		return fmt.Errorf("%w: duplicate time slots %v", ErrInvalidInput, duplicates)
	}

	roomNames := lo.Map(input.Rooms, func(room Room, _ int) string { return room.Name })
	if duplicates := lo.FindDuplicates(roomNames); len(duplicates) > 0 {
		return fmt.Errorf("%w: duplicate rooms %v", ErrInvalidInput, duplicates)
	}
	if room, ok := lo.Find(input.Rooms, func(room Room) bool { return room.Capacity == 0 }); ok {
		return fmt.Errorf("%w: room \"%v\" has no capacity", ErrInvalidInput, room.Name)
	}

	for entry, class := range input.Classes {
		if !lo.Contains(input.Professors, class.Professor) {
			return fmt.Errorf("%w: class \"%v\" (entry %d) references unknown professor \"%v\"", ErrInvalidInput, class.Name, entry, class.Professor)
		} else if !lo.Contains(input.Groups, class.Group) {
			return fmt.Errorf("%w: class \"%v\" (entry %d) references unknown group \"%v\"", ErrInvalidInput, class.Name, entry, class.Group)
		} else if class.Size == 0 {
			return fmt.Errorf("%w: class \"%v\" (entry %d) has no size", ErrInvalidInput, class.Name, entry)
		}
	}

	return nil
}

// Decodes [day, period] pairs into time slots
func timeSlotHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(TimeSlot{}) || from.Kind() != reflect.Slice {
		return data, nil
	}

	pair, ok := data.([]any)
	if !ok || len(pair) != 2 {
		return nil, fmt.Errorf("a time slot must be a [day, period] pair: %v", data)
	}
	day, dayOk := pair[0].(string)
	period, periodOk := pair[1].(string)
	if !dayOk || !periodOk {
		return nil, fmt.Errorf("a time slot must be a pair of strings: %v", data)
	}
	return TimeSlot{Day: day, Period: period}, nil
}
