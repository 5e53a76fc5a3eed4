package evo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evolab/evogp/cpu"
)

func writeScript(t *testing.T, text string) (path string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "fitness.star")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return
}

func TestScriptFitness_Score(t *testing.T) {
	assert := assert.New(t)

	path := writeScript(t, `
def fitness(outputs, regs, traits):
    return regs[5] + outputs.get(1, 0.0)
`)

	sf, err := LoadScriptFitness(path)
	assert.NoError(err)

	cp := cpu.New(nil)
	assert.NoError(cp.PushNamed("Output", 5, 1)) // reg5 -> output[reg1=1]
	cp.Process(1)

	assert.Equal(10.0, sf.Score(cp))
}

func TestScriptFitness_Traits(t *testing.T) {
	assert := assert.New(t)

	path := writeScript(t, `
def fitness(outputs, regs, traits):
    return traits[0] if len(traits) else -1.0
`)

	sf, err := LoadScriptFitness(path)
	assert.NoError(err)

	cp := cpu.New(nil)
	assert.Equal(-1.0, sf.Score(cp))

	cp.PushTrait(2.5)
	assert.Equal(2.5, sf.Score(cp))
}

func TestScriptFitness_MissingFunction(t *testing.T) {
	assert := assert.New(t)

	path := writeScript(t, `x = 1`)
	_, err := LoadScriptFitness(path)
	assert.ErrorIs(err, ErrScriptFitness(path))
}

func TestScriptFitness_ScriptError(t *testing.T) {
	assert := assert.New(t)

	path := writeScript(t, `
def fitness(outputs, regs, traits):
    fail("no")
`)

	sf, err := LoadScriptFitness(path)
	assert.NoError(err)

	// Script failures score at -inf instead of aborting the run.
	cp := cpu.New(nil)
	assert.True(sf.Score(cp) < -1e308)
}

func TestScriptFitness_DrivesRun(t *testing.T) {
	assert := assert.New(t)

	path := writeScript(t, `
def fitness(outputs, regs, traits):
    return -abs(outputs.get(0, 0.0) - 5.0)
`)

	sf, err := LoadScriptFitness(path)
	assert.NoError(err)

	cfg := testConfig()
	cfg.Generations = 3
	pop := NewPopulation(cfg, nil, sf)
	best := pop.Run()
	assert.NotNil(best)
}
