package evo

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evolab/evogp/cpu"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PopSize = 20
	cfg.GenomeLen = 20
	cfg.Generations = 10
	cfg.Steps = 100
	cfg.Seed = 1
	return cfg
}

func TestPopulation_New(t *testing.T) {
	assert := assert.New(t)

	pop := NewPopulation(testConfig(), nil, TargetFitness{Target: 10})
	assert.Equal(20, len(pop.Orgs))
	for _, org := range pop.Orgs {
		assert.Equal(20, len(org.Genome))
	}
	assert.Equal(0, pop.Gen)
}

func TestPopulation_EvaluateSorts(t *testing.T) {
	assert := assert.New(t)

	pop := NewPopulation(testConfig(), nil, TargetFitness{Target: 10})
	pop.Evaluate()

	for n := 1; n < len(pop.Orgs); n++ {
		assert.GreaterOrEqual(pop.Orgs[n-1].Fitness, pop.Orgs[n].Fitness)
	}
	assert.LessOrEqual(pop.Best().Fitness, 0.0)
}

func TestPopulation_MutateKeepsGenome(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig()
	cfg.DeleteRate = 1.0
	cfg.InsertRate = 0.0
	pop := NewPopulation(cfg, nil, TargetFitness{})

	genome := make(cpu.Genome, 2)
	for range 10 {
		genome = pop.Mutate(genome)
	}
	assert.Equal(1, len(genome)) // deletion never empties a genome
}

func TestPopulation_StepKeepsSize(t *testing.T) {
	assert := assert.New(t)

	pop := NewPopulation(testConfig(), nil, TargetFitness{Target: 10})
	best := pop.Step()

	assert.NotNil(best)
	assert.Equal(20, len(pop.Orgs))
	assert.Equal(1, pop.Gen)
}

func TestPopulation_RunNeverRegresses(t *testing.T) {
	assert := assert.New(t)

	pop := NewPopulation(testConfig(), nil, TargetFitness{Target: 10})
	first := pop.Step()

	best := pop.Run()

	// Elitism plus deterministic evaluation: the best organism can
	// only improve or hold.
	assert.GreaterOrEqual(best.Fitness, first.Fitness)
}

func TestPopulation_Checkpoint(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "pop.cbor")

	pop := NewPopulation(testConfig(), nil, TargetFitness{})
	pop.Step()
	assert.NoError(pop.SaveCheckpoint(path))

	other := NewPopulation(testConfig(), nil, TargetFitness{})
	assert.NoError(other.LoadCheckpoint(path))

	assert.Equal(pop.Gen, other.Gen)
	assert.Equal(len(pop.Orgs), len(other.Orgs))
	for n := range pop.Orgs {
		assert.Equal(pop.Orgs[n].Genome, other.Orgs[n].Genome)
	}
}

func TestPopulation_LoadCheckpointMissing(t *testing.T) {
	assert := assert.New(t)

	pop := NewPopulation(testConfig(), nil, TargetFitness{})
	assert.Error(pop.LoadCheckpoint(filepath.Join(t.TempDir(), "absent.cbor")))
}
