package evo

import (
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/evolab/evogp/cpu"
)

// ScriptFitness scores organisms with a user-supplied Starlark
// function:
//
//	def fitness(outputs, regs, traits):
//	    return -abs(outputs.get(0, 0.0) - 42.0)
//
// outputs is a dict of output position to value; regs and traits are
// lists of floats. A script error scores the organism at -inf rather
// than aborting the run.
type ScriptFitness struct {
	thread *starlark.Thread
	fn     starlark.Callable
}

// LoadScriptFitness parses and executes a fitness script, capturing its
// top-level fitness function.
func LoadScriptFitness(path string) (sf *ScriptFitness, err error) {
	thread := &starlark.Thread{Name: "fitness"}

	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, path, nil, nil)
	if err != nil {
		return
	}

	fn, ok := globals["fitness"].(starlark.Callable)
	if !ok {
		err = ErrScriptFitness(path)
		return
	}

	sf = &ScriptFitness{
		thread: thread,
		fn:     fn,
	}
	return
}

func (sf *ScriptFitness) Score(cp *cpu.Cpu) float64 {
	outputs := starlark.NewDict(cp.NumOutputs())
	for id, value := range cp.Outputs() {
		_ = outputs.SetKey(starlark.MakeInt(id), starlark.Float(value))
	}

	regs := make([]starlark.Value, cpu.CPU_SIZE)
	for n := range regs {
		regs[n] = starlark.Float(cp.Reg(cpu.RegID(n)))
	}

	traits := make([]starlark.Value, cp.NumTraits())
	for n := range traits {
		traits[n] = starlark.Float(cp.Trait(n))
	}

	args := starlark.Tuple{outputs, starlark.NewList(regs), starlark.NewList(traits)}
	result, err := starlark.Call(sf.thread, sf.fn, args, nil)
	if err != nil {
		return math.Inf(-1)
	}

	score, ok := starlark.AsFloat(result)
	if !ok {
		return math.Inf(-1)
	}

	return score
}
