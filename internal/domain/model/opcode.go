package model

type Opcode string

const (
	OpTakeoff Opcode = "takeoff"
	OpLand    Opcode = "land"
	OpUp      Opcode = "up"
	OpDown    Opcode = "down"
	OpLeft    Opcode = "left"
	OpRight   Opcode = "right"
	OpForward Opcode = "forward"
	OpBack    Opcode = "back"
	OpCW      Opcode = "cw"
	OpCCW     Opcode = "ccw"
	OpFlip    Opcode = "flip"
	OpStop    Opcode = "stop"
	OpSpeed   Opcode = "speed"

	OpPitch  Opcode = "pitch"
	OpRoll   Opcode = "roll"
	OpYaw    Opcode = "yaw"
	OpVgx    Opcode = "vgx"
	OpVgy    Opcode = "vgy"
	OpVgz    Opcode = "vgz"
	OpTof    Opcode = "tof"
	OpHeight Opcode = "height"
	OpBat    Opcode = "bat"
	OpBaro   Opcode = "baro"
	OpTime   Opcode = "time"
	OpAgx    Opcode = "agx"
	OpAgy    Opcode = "agy"
	OpAgz    Opcode = "agz"
)

type BlockKind string

const (
	BlockKindCommand  BlockKind = "command"
	BlockKindReporter BlockKind = "reporter"
)

type ArgumentType string

const (
	ArgumentTypeNone   ArgumentType = "none"
	ArgumentTypeNumber ArgumentType = "number"
	ArgumentTypeString ArgumentType = "string"
)

// CommandSpec is the fixed argument schema of one opcode.
type CommandSpec struct {
	Opcode       Opcode
	Kind         BlockKind
	ArgumentName string       // "X" or "TAKEPUT", empty when ArgumentType is none
	ArgumentType ArgumentType
	DefaultValue interface{}
	Menu         string // menu id for enumerated arguments
}

func (s CommandSpec) HasArgument() bool {
	return s.ArgumentType != ArgumentTypeNone
}

// Arguments is the validated form of a block's argument bag.
type Arguments struct {
	Number string // numeric argument in its plain decimal text form
	Choice string // enumerated argument value
}

// CommandLine is the wire-level text sent to the vehicle.
type CommandLine string

// TelemetryKey names one scalar reading in the vehicle state datagram.
type TelemetryKey string
