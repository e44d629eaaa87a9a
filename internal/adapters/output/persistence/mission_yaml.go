package persistence

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"tello-block-adapter/internal/domain/model"
)

// LoadMission reads a YAML mission file:
//
//	name: hop
//	steps:
//	  - block: takeoff
//	    wait: 5s
//	  - block: up
//	    args: {X: "= 100 - height"}
//	  - block: land
func LoadMission(path string) (*model.Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseMission(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func ParseMission(data []byte) (*model.Mission, error) {
	var m model.Mission
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
