// Package replay executes demonstration scripts against a vec.Array
// and records a per-step trace for printing, plotting and storage.
package replay

import (
	"fmt"

	"github.com/san-kum/dynarr/internal/config"
	"github.com/san-kum/dynarr/internal/vec"
)

// Step is the observable state after one scripted operation.
type Step struct {
	Op     string // op name from the script
	Detail string // human-readable outcome, e.g. "pop -> 3"
	Len    int
	Cap    int
	Items  []int
}

// Result is the trace of a full script run.
type Result struct {
	Script *config.Script
	Steps  []Step
	Array  *vec.Array[int]
}

// Run executes every op of the script in order. The first failing op
// aborts the run; removal errors from the array surface unchanged
// under the step index.
func Run(s *config.Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	a := vec.WithCapacity[int](s.InitialCapacity)
	res := &Result{Script: s, Array: a}

	for i, op := range s.Ops {
		detail, err := apply(a, op)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
		res.Steps = append(res.Steps, Step{
			Op:     op.Op,
			Detail: detail,
			Len:    a.Len(),
			Cap:    a.Cap(),
			Items:  a.Items(),
		})
	}
	return res, nil
}

func apply(a *vec.Array[int], op config.Op) (string, error) {
	switch op.Op {
	case config.OpPush:
		a.Push(op.Value)
		return fmt.Sprintf("push %d", op.Value), nil
	case config.OpUnshift:
		a.Unshift(op.Value)
		return fmt.Sprintf("unshift %d", op.Value), nil
	case config.OpPop:
		v, err := a.Pop()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("pop -> %d", v), nil
	case config.OpShift:
		v, err := a.Shift()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("shift -> %d", v), nil
	case config.OpSet:
		if err := a.Set(op.Index, op.Value); err != nil {
			return "", err
		}
		return fmt.Sprintf("set [%d] = %d", op.Index, op.Value), nil
	case config.OpFindIndex:
		idx := a.FindIndex(func(v int) bool { return v == op.Value })
		return fmt.Sprintf("find_index %d -> %d", op.Value, idx), nil
	case config.OpFind:
		p := a.Find(func(v int) bool { return v > op.Value })
		if p == nil {
			return fmt.Sprintf("find_gt %d -> none", op.Value), nil
		}
		return fmt.Sprintf("find_gt %d -> %d", op.Value, *p), nil
	default:
		return "", fmt.Errorf("unknown op %q", op.Op)
	}
}
