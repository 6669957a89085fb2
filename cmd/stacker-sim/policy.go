package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/plus3/stacker/engine"
)

// Policy decides, once per frame while a block is bouncing, whether to drop it.
type Policy interface {
	Name() string
	ShouldDrop(state engine.State) bool
}

func newPolicy(name string, jitter float64, seed uint64) (Policy, error) {
	switch name {
	case "perfect":
		return perfectPolicy{}, nil
	case "jitter":
		if jitter < 0 {
			return nil, fmt.Errorf("jitter must be non-negative, got %v", jitter)
		}
		return jitterPolicy{tolerance: jitter}, nil
	case "eager":
		return eagerPolicy{}, nil
	case "random":
		return newRandomPolicy(seed, 0.02), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

// offset is the active block's x relative to the block beneath it.
func offset(state engine.State) (float64, bool) {
	active, ok := state.Active()
	if !ok || state.Current < 1 {
		return 0, false
	}
	return active.X - state.Boxes[state.Current-1].X, true
}

// perfectPolicy drops when the block is within half a step of alignment.
type perfectPolicy struct{}

func (perfectPolicy) Name() string { return "perfect" }

func (perfectPolicy) ShouldDrop(state engine.State) bool {
	diff, ok := offset(state)
	return ok && math.Abs(diff) < math.Abs(state.XSpeed)/2
}

// jitterPolicy drops as soon as the block is within tolerance of alignment.
type jitterPolicy struct {
	tolerance float64
}

func (jitterPolicy) Name() string { return "jitter" }

func (p jitterPolicy) ShouldDrop(state engine.State) bool {
	diff, ok := offset(state)
	return ok && math.Abs(diff) <= p.tolerance
}

// eagerPolicy drops every block the moment it spawns.
type eagerPolicy struct{}

func (eagerPolicy) Name() string { return "eager" }

func (eagerPolicy) ShouldDrop(engine.State) bool { return true }

type randomPolicy struct {
	rng  *rand.Rand
	prob float64
}

func newRandomPolicy(seed uint64, prob float64) *randomPolicy {
	return &randomPolicy{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		prob: prob,
	}
}

func (*randomPolicy) Name() string { return "random" }

func (p *randomPolicy) ShouldDrop(engine.State) bool {
	return p.rng.Float64() < p.prob
}
