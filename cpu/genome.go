package cpu

import (
	"math/rand"
)

// Genome is an ordered, mutable instruction sequence. Length is
// unbounded here; the evolutionary configuration bounds it externally.
type Genome []Instruction

// Clone returns an independent copy of the genome.
func (g Genome) Clone() (out Genome) {
	out = make(Genome, len(g))
	copy(out, g)
	return
}

// Genome returns the CPU's current genome.
func (cp *Cpu) Genome() Genome {
	return cp.genome
}

// SetGenome replaces the genome. Hardware state is left alone; callers
// normally follow with ResetHardware or at least ResetIP.
func (cp *Cpu) SetGenome(g Genome) {
	cp.genome = g
}

// GetInst returns the instruction at pos.
func (cp *Cpu) GetInst(pos int) Instruction {
	return cp.genome[pos]
}

// SetInst overwrites the instruction at pos.
func (cp *Cpu) SetInst(pos int, inst Instruction) {
	cp.genome[pos] = inst
}

// PushInst appends an instruction by opcode id.
func (cp *Cpu) PushInst(op OpID, args ...Arg) {
	cp.genome = append(cp.genome, NewInst(op, args...))
}

// PushNamed appends an instruction by registered opcode name.
func (cp *Cpu) PushNamed(name string, args ...Arg) (err error) {
	op, ok := cp.lib.ByName(name)
	if !ok {
		err = ErrInstUnknown(name)
		return
	}

	cp.PushInst(op, args...)
	return
}

// RandomInst draws a uniformly random instruction over the library's
// opcodes and the bounded argument space.
func (lib *Library) RandomInst(rng *rand.Rand) Instruction {
	return NewInst(OpID(rng.Intn(lib.Size())),
		Arg(rng.Intn(CPU_SIZE)), Arg(rng.Intn(CPU_SIZE)), Arg(rng.Intn(CPU_SIZE)))
}

// RandomizeInst overwrites the instruction at pos with a random one.
func (cp *Cpu) RandomizeInst(pos int, rng *rand.Rand) {
	cp.SetInst(pos, cp.lib.RandomInst(rng))
}

// PushRandom appends count random instructions.
func (cp *Cpu) PushRandom(rng *rand.Rand, count int) {
	for range count {
		cp.genome = append(cp.genome, cp.lib.RandomInst(rng))
	}
}
