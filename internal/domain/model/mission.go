package model

import "time"

// Mission is an ordered list of block invocations run against one vehicle.
type Mission struct {
	Name  string `yaml:"name" json:"name"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// Step invokes one block. Command steps dispatch, reporter steps read a value.
// Wait pauses after the step before the next one starts.
type Step struct {
	Block Opcode                 `yaml:"block" json:"block"`
	Args  map[string]interface{} `yaml:"args,omitempty" json:"args,omitempty"`
	Wait  time.Duration          `yaml:"wait,omitempty" json:"wait,omitempty"`
}

type Reading struct {
	Step   int    `json:"step"`
	Opcode Opcode `json:"opcode"`
	Value  string `json:"value"`
}

type MissionReport struct {
	RunID     string    `json:"run_id"`
	Mission   string    `json:"mission"`
	Completed int       `json:"completed"`
	Readings  []Reading `json:"readings,omitempty"`
}
