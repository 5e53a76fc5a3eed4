package evo

import (
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/evolab/evogp/cpu"
)

// Population is one evolving pool of organisms. It owns a single
// scratch CPU reused for every evaluation; a Population must not be
// driven from more than one goroutine.
type Population struct {
	Verbose bool

	Config  Config
	Fitness Fitness
	Orgs    []*Organism
	Gen     int

	cpu *cpu.Cpu
	rng *rand.Rand
}

// NewPopulation creates a population of random genomes. A nil lib
// selects the shared default instruction library.
func NewPopulation(cfg Config, lib *cpu.Library, fitness Fitness) (pop *Population) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pop = &Population{
		Config:  cfg,
		Fitness: fitness,
		cpu:     cpu.New(lib),
		rng:     rand.New(rand.NewSource(seed)),
	}

	for range cfg.PopSize {
		genome := make(cpu.Genome, 0, cfg.GenomeLen)
		for range cfg.GenomeLen {
			genome = append(genome, pop.cpu.Library().RandomInst(pop.rng))
		}
		pop.Orgs = append(pop.Orgs, &Organism{Genome: genome})
	}

	return
}

// Lib returns the instruction library this population dispatches
// through.
func (pop *Population) Lib() *cpu.Library {
	return pop.cpu.Library()
}

// Evaluate runs every organism on fresh hardware and records its
// fitness and trait snapshot.
func (pop *Population) Evaluate() {
	for _, org := range pop.Orgs {
		pop.cpu.Reset()
		pop.cpu.SetGenome(org.Genome)
		for id, value := range pop.Config.Inputs {
			pop.cpu.SetInput(id, value)
		}

		pop.cpu.Process(pop.Config.Steps)

		org.Fitness = pop.Fitness.Score(pop.cpu)
		org.Traits = append(org.Traits[:0], pop.cpu.Traits()...)
	}

	sort.SliceStable(pop.Orgs, func(i, j int) bool {
		return pop.Orgs[i].Fitness > pop.Orgs[j].Fitness
	})
}

// Best returns the fittest organism of the last Evaluate.
func (pop *Population) Best() *Organism {
	return pop.Orgs[0]
}

// tournament picks the fittest of a random sample.
func (pop *Population) tournament() (best *Organism) {
	for n := 0; n < pop.Config.TournamentSize; n++ {
		org := pop.Orgs[pop.rng.Intn(len(pop.Orgs))]
		if best == nil || org.Fitness > best.Fitness {
			best = org
		}
	}

	return
}

// Mutate applies point rewrites plus occasional single-instruction
// insertion and deletion, keeping at least one instruction.
func (pop *Population) Mutate(genome cpu.Genome) cpu.Genome {
	lib := pop.cpu.Library()

	for n := range genome {
		if pop.rng.Float64() < pop.Config.PointRate {
			genome[n] = lib.RandomInst(pop.rng)
		}
	}

	if pop.rng.Float64() < pop.Config.InsertRate {
		at := pop.rng.Intn(len(genome) + 1)
		genome = append(genome, cpu.Instruction{})
		copy(genome[at+1:], genome[at:])
		genome[at] = lib.RandomInst(pop.rng)
	}

	if len(genome) > 1 && pop.rng.Float64() < pop.Config.DeleteRate {
		at := pop.rng.Intn(len(genome))
		genome = append(genome[:at], genome[at+1:]...)
	}

	return genome
}

// Step advances one generation: evaluate, keep the elites, refill the
// rest with mutated tournament winners. It returns the evaluated best
// of the generation just scored.
func (pop *Population) Step() (best *Organism) {
	pop.Evaluate()
	best = pop.Best()

	next := make([]*Organism, 0, len(pop.Orgs))
	for n := 0; n < pop.Config.Elites && n < len(pop.Orgs); n++ {
		next = append(next, pop.Orgs[n].Clone())
	}
	for len(next) < len(pop.Orgs) {
		child := pop.tournament().Clone()
		child.Genome = pop.Mutate(child.Genome)
		next = append(next, child)
	}

	pop.Orgs = next
	pop.Gen++

	return
}

// Run executes the configured number of generations and returns the
// best organism of a final evaluation.
func (pop *Population) Run() (best *Organism) {
	for n := 0; n < pop.Config.Generations; n++ {
		best = pop.Step()
		if pop.Verbose {
			log.Printf("evo: gen %v best %v", pop.Gen, best.Fitness)
		}
	}

	pop.Evaluate()
	return pop.Best()
}
