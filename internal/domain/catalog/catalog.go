package catalog

import (
	"fmt"

	"tello-block-adapter/internal/domain/locale"
	"tello-block-adapter/internal/domain/model"
)

const (
	ArgX        = "X"
	ArgTakeput  = "TAKEPUT"
	MenuTakeput = "takeput"
)

// FlipDirections is the fixed menu offered for the flip block.
var FlipDirections = []string{"Forward", "Back", "Left", "Right"}

var specs []model.CommandSpec
var index map[model.Opcode]int

// telemetryKeys maps reporter opcodes to the state datagram field they read.
var telemetryKeys = map[model.Opcode]model.TelemetryKey{
	model.OpPitch:  "pitch",
	model.OpRoll:   "roll",
	model.OpYaw:    "yaw",
	model.OpVgx:    "vgx",
	model.OpVgy:    "vgy",
	model.OpVgz:    "vgz",
	model.OpTof:    "tof",
	model.OpHeight: "h",
	model.OpBat:    "bat",
	model.OpBaro:   "baro",
	model.OpTime:   "time",
	model.OpAgx:    "agx",
	model.OpAgy:    "agy",
	model.OpAgz:    "agz",
}

func init() {
	verb := func(op model.Opcode) model.CommandSpec {
		return model.CommandSpec{Opcode: op, Kind: model.BlockKindCommand, ArgumentType: model.ArgumentTypeNone}
	}
	numeric := func(op model.Opcode, def int) model.CommandSpec {
		return model.CommandSpec{
			Opcode:       op,
			Kind:         model.BlockKindCommand,
			ArgumentName: ArgX,
			ArgumentType: model.ArgumentTypeNumber,
			DefaultValue: def,
		}
	}
	reporter := func(op model.Opcode) model.CommandSpec {
		return model.CommandSpec{Opcode: op, Kind: model.BlockKindReporter, ArgumentType: model.ArgumentTypeNone}
	}

	specs = []model.CommandSpec{
		verb(model.OpTakeoff),
		verb(model.OpLand),
		numeric(model.OpUp, 20),
		numeric(model.OpDown, 20),
		numeric(model.OpLeft, 20),
		numeric(model.OpRight, 20),
		numeric(model.OpForward, 20),
		numeric(model.OpBack, 20),
		numeric(model.OpCW, 90),
		numeric(model.OpCCW, 90),
		{
			Opcode:       model.OpFlip,
			Kind:         model.BlockKindCommand,
			ArgumentName: ArgTakeput,
			ArgumentType: model.ArgumentTypeString,
			DefaultValue: "Forward",
			Menu:         MenuTakeput,
		},
		verb(model.OpStop),
		numeric(model.OpSpeed, 50),
		reporter(model.OpPitch),
		reporter(model.OpRoll),
		reporter(model.OpYaw),
		reporter(model.OpVgx),
		reporter(model.OpVgy),
		reporter(model.OpVgz),
		reporter(model.OpTof),
		reporter(model.OpHeight),
		reporter(model.OpBat),
		reporter(model.OpBaro),
		reporter(model.OpTime),
		reporter(model.OpAgx),
		reporter(model.OpAgy),
		reporter(model.OpAgz),
	}

	if err := checkLabels(specs); err != nil {
		panic(err)
	}
	index = make(map[model.Opcode]int, len(specs))
	for i, s := range specs {
		index[s.Opcode] = i
	}
}

// checkLabels fails when an opcode has no English label to fall back to.
func checkLabels(list []model.CommandSpec) error {
	for _, s := range list {
		if !locale.HasLabel(s.Opcode) {
			return fmt.Errorf("catalog: opcode %q has no en label", s.Opcode)
		}
	}
	return nil
}

// All returns the catalog in block order. The slice is a copy.
func All() []model.CommandSpec {
	out := make([]model.CommandSpec, len(specs))
	copy(out, specs)
	return out
}

func Lookup(op model.Opcode) (model.CommandSpec, bool) {
	i, ok := index[op]
	if !ok {
		return model.CommandSpec{}, false
	}
	return specs[i], true
}

// Reporters returns the reporter opcodes in block order.
func Reporters() []model.Opcode {
	var out []model.Opcode
	for _, s := range specs {
		if s.Kind == model.BlockKindReporter {
			out = append(out, s.Opcode)
		}
	}
	return out
}

// Menus returns the menu table published with the block list.
func Menus() map[string][]string {
	dirs := make([]string, len(FlipDirections))
	copy(dirs, FlipDirections)
	return map[string][]string{MenuTakeput: dirs}
}

// TelemetryKey maps a reporter to its state field. Every reporter reads its own
// name except height, which reads "h".
func TelemetryKey(op model.Opcode) (model.TelemetryKey, bool) {
	k, ok := telemetryKeys[op]
	return k, ok
}
