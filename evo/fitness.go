package evo

import (
	"math"

	"github.com/evolab/evogp/cpu"
)

// Fitness scores a CPU after an evaluation run. Higher is better. The
// engine assigns no meaning to the score beyond ordering.
type Fitness interface {
	Score(cp *cpu.Cpu) float64
}

// TargetFitness scores by how close output 0 lands to a target value.
// An organism that never writes output 0 reads it as 0.0.
type TargetFitness struct {
	Target float64
}

func (tf TargetFitness) Score(cp *cpu.Cpu) float64 {
	return -math.Abs(cp.Output(0) - tf.Target)
}
