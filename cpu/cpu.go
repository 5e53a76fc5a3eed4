package cpu

import (
	"io"
	"log"
	"os"
)

// ScopeInfo is one open scope: its stored depth (root is 0), behavior
// type, and the position of the instruction that opened it.
type ScopeInfo struct {
	Depth    int
	Type     ScopeType
	StartPos int
}

// RegBackup is one saved register value, restored when the owning scope
// exits.
type RegBackup struct {
	Scope int
	Reg   int
	Value float64
}

// Cpu is one virtual CPU instance. It owns all mutable state for one
// genome; nothing is shared between instances except the read-only
// instruction Library.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	lib *Library

	genome    Genome
	regs      [CPU_SIZE]float64
	inputs    map[int]float64
	outputs   map[int]float64
	stacks    [CPU_SIZE]Stack
	funStarts [CPU_SIZE]int

	ip         int
	scopeStack []ScopeInfo
	regStack   []RegBackup
	callStack  []int

	errors int

	// Traits are opaque to control flow; external fitness evaluation
	// reads and writes them by index.
	traits []float64
}

// New creates a CPU with an empty genome, dispatching through lib.
// A nil lib selects the shared default library.
func New(lib *Library) (cp *Cpu) {
	if lib == nil {
		lib = DefaultLibrary()
	}

	cp = &Cpu{
		lib:     lib,
		inputs:  map[int]float64{},
		outputs: map[int]float64{},
	}
	cp.scopeStack = append(cp.scopeStack, ScopeInfo{0, SCOPE_ROOT, 0})
	cp.Reset()

	return
}

// Library returns the instruction library this CPU dispatches through.
func (cp *Cpu) Library() *Library {
	return cp.lib
}

// Reset clears the CPU to a starting state with no genome.
func (cp *Cpu) Reset() {
	if cp.Verbose {
		log.Printf("cpu: reset")
	}

	cp.genome = cp.genome[:0]
	cp.traits = cp.traits[:0]
	cp.ResetHardware()
}

// ResetHardware clears registers, stacks, I/O, the function table, and
// the error counter, but keeps the genome and traits.
func (cp *Cpu) ResetHardware() {
	// Registers default to their own index, so arithmetic is
	// meaningful before any explicit writes.
	for n := range CPU_SIZE {
		cp.regs[n] = float64(n)
		cp.stacks[n].Reset()
		cp.funStarts[n] = -1
	}
	clear(cp.inputs)
	clear(cp.outputs)
	cp.errors = 0
	cp.ResetIP()
}

// ResetIP rewinds the instruction pointer, unwinds every non-root scope
// (restoring their register backups), and clears the call stack.
// Register contents are otherwise untouched.
func (cp *Cpu) ResetIP() {
	cp.ip = 0
	for len(cp.scopeStack) > 1 {
		cp.exitScope()
	}
	cp.callStack = cp.callStack[:0]
}

// SingleProcess executes the instruction at the pointer and advances.
// A pointer at or past the end of the genome wraps to the start first,
// unwinding all open scopes. The advance is unconditional, even when
// dispatch redirected the pointer; the instruction at a redirect target
// is handled by the redirect itself.
func (cp *Cpu) SingleProcess() {
	if len(cp.genome) == 0 {
		return
	}
	if cp.ip >= len(cp.genome) {
		cp.ResetIP()
	}
	cp.lib.Dispatch(cp, cp.genome[cp.ip])
	cp.ip++
	if cp.ip > len(cp.genome) {
		// A call into a function defined at the very end can leave the
		// pointer one past the genome; the next step wraps either way.
		cp.ip = len(cp.genome)
	}
}

// Process runs count instructions, strictly sequentially.
func (cp *Cpu) Process(count int) {
	for range count {
		cp.SingleProcess()
	}
}

// Trace runs count instructions, dumping the CPU state to w before each.
func (cp *Cpu) Trace(count int, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	for range count {
		cp.PrintState(w)
		cp.SingleProcess()
	}
}

// Accessors

func (cp *Cpu) IP() int {
	return cp.ip
}

func (cp *Cpu) Reg(id RegID) float64 {
	return cp.regs[ridx(Arg(id))]
}

func (cp *Cpu) SetReg(id RegID, value float64) {
	cp.regs[ridx(Arg(id))] = value
}

func (cp *Cpu) Errors() int {
	return cp.errors
}

// FunStart returns the recorded definition position for a function
// slot, or -1 when undefined.
func (cp *Cpu) FunStart(id FunID) int {
	return cp.funStarts[ridx(Arg(id))]
}

// ScopeDepth returns the number of open scopes, including the root.
func (cp *Cpu) ScopeDepth() int {
	return len(cp.scopeStack)
}

func (cp *Cpu) SetInput(id int, value float64) {
	cp.inputs[id] = value
}

func (cp *Cpu) SetInputs(values map[int]float64) {
	clear(cp.inputs)
	for id, value := range values {
		cp.inputs[id] = value
	}
}

func (cp *Cpu) Input(id int) float64 {
	return cp.inputs[id]
}

func (cp *Cpu) Output(id int) float64 {
	return cp.outputs[id]
}

func (cp *Cpu) Outputs() map[int]float64 {
	return cp.outputs
}

func (cp *Cpu) NumOutputs() int {
	return len(cp.outputs)
}

func (cp *Cpu) Trait(id int) float64 {
	return cp.traits[id]
}

func (cp *Cpu) Traits() []float64 {
	return cp.traits
}

func (cp *Cpu) NumTraits() int {
	return len(cp.traits)
}

// SetTrait writes a trait slot, growing the vector as needed.
func (cp *Cpu) SetTrait(id int, value float64) {
	for id >= len(cp.traits) {
		cp.traits = append(cp.traits, 0.0)
	}
	cp.traits[id] = value
}

func (cp *Cpu) PushTrait(value float64) {
	cp.traits = append(cp.traits, value)
}
