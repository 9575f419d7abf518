package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultInitialCapacity = 5

// Op names accepted in a script.
const (
	OpPush      = "push"
	OpPop       = "pop"
	OpShift     = "shift"
	OpUnshift   = "unshift"
	OpSet       = "set"
	OpFind      = "find_gt"
	OpFindIndex = "find_index"
)

// Op is a single scripted operation. Value is the operand for push,
// unshift and set; the probe target for find_gt and find_index.
// Index is only read by set.
type Op struct {
	Op    string `yaml:"op"`
	Value int    `yaml:"value,omitempty"`
	Index int    `yaml:"index,omitempty"`
}

// Script is a reproducible sequence of array operations.
type Script struct {
	Name            string `yaml:"name"`
	InitialCapacity int    `yaml:"initial_capacity"`
	Ops             []Op   `yaml:"ops"`
}

// DefaultScript returns the built-in demonstration sequence: nine
// pushes across one resize, an unshift, a pop, a shift, and two
// search probes.
func DefaultScript() *Script {
	ops := []Op{}
	for _, v := range []int{1, 2, 3, 4, 5, 6, 1, 2, 3} {
		ops = append(ops, Op{Op: OpPush, Value: v})
	}
	ops = append(ops,
		Op{Op: OpUnshift, Value: 0},
		Op{Op: OpPop},
		Op{Op: OpShift},
		Op{Op: OpFindIndex, Value: 2},
		Op{Op: OpFind, Value: 3},
	)
	return &Script{
		Name:            "demo",
		InitialCapacity: DefaultInitialCapacity,
		Ops:             ops,
	}
}

// Load reads a script from a yaml file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	s := &Script{InitialCapacity: DefaultInitialCapacity}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects unknown op names and negative set indices.
func (s *Script) Validate() error {
	for i, op := range s.Ops {
		switch op.Op {
		case OpPush, OpPop, OpShift, OpUnshift, OpFind, OpFindIndex:
		case OpSet:
			if op.Index < 0 {
				return fmt.Errorf("op %d: set index must not be negative, got %d", i, op.Index)
			}
		default:
			return fmt.Errorf("op %d: unknown op %q", i, op.Op)
		}
	}
	return nil
}
