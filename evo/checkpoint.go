package evo

import (
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/evolab/evogp/cpu"
)

// checkpoint is the on-disk snapshot of a run: the generation counter
// plus every genome. Fitness is recomputed on resume.
type checkpoint struct {
	Gen     int          `cbor:"gen"`
	Genomes []cpu.Genome `cbor:"genomes"`
}

// SaveCheckpoint writes the population state as CBOR.
func (pop *Population) SaveCheckpoint(path string) (err error) {
	state := checkpoint{
		Gen:     pop.Gen,
		Genomes: make([]cpu.Genome, 0, len(pop.Orgs)),
	}
	for _, org := range pop.Orgs {
		state.Genomes = append(state.Genomes, org.Genome)
	}

	data, err := cbor.Marshal(state)
	if err != nil {
		return
	}

	return os.WriteFile(path, data, 0o644)
}

// LoadCheckpoint replaces the population's organisms and generation
// counter with a saved snapshot.
func (pop *Population) LoadCheckpoint(path string) (err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var state checkpoint
	err = cbor.Unmarshal(data, &state)
	if err != nil {
		return
	}

	pop.Gen = state.Gen
	pop.Orgs = pop.Orgs[:0]
	for _, genome := range state.Genomes {
		pop.Orgs = append(pop.Orgs, &Organism{Genome: genome})
	}

	return
}
