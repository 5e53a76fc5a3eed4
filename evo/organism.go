package evo

import (
	"github.com/evolab/evogp/cpu"
)

// Organism is one member of a population: a genome plus the results of
// its last evaluation.
type Organism struct {
	Genome  cpu.Genome
	Fitness float64
	Traits  []float64
}

// Clone returns an independent copy of the organism's genome wrapped in
// a fresh, unevaluated organism.
func (org *Organism) Clone() *Organism {
	return &Organism{Genome: org.Genome.Clone()}
}
