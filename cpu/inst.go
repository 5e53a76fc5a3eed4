package cpu

const (
	CPU_SIZE    = 16 // Register, stack, scope, and function slots.
	INST_ARGS   = 3  // Maximum arguments per instruction.
	STACK_LIMIT = 16 // Maximum per-register stack depth.
)

// OpID is an index into an instruction Library.
type OpID int

// Arg is a raw instruction argument. Whether it names a register, a
// scope, a function slot, or a literal is decided by the opcode's
// metadata, not by the instruction itself.
type Arg int

// RegID names one of the CPU_SIZE registers.
type RegID int

// ScopeID names a target nested scope, as written in a genome.
// Stored scope depths are one higher; depth 0 is the root.
type ScopeID int

// FunID names one of the CPU_SIZE function table slots.
type FunID int

// ArgSet is the full argument vector of an instruction.
type ArgSet [INST_ARGS]Arg

// Instruction is an immutable opcode plus argument vector.
type Instruction struct {
	Op   OpID
	Args ArgSet
}

// NewInst builds an instruction from an opcode and up to INST_ARGS
// arguments. Missing arguments are zero.
func NewInst(op OpID, args ...Arg) (inst Instruction) {
	inst.Op = op
	for n, arg := range args {
		if n >= INST_ARGS {
			break
		}
		inst.Args[n] = arg
	}

	return
}

// ridx folds an argument into the register/scope index space.
// Arguments are interpreted modulo CPU_SIZE so that every mutated
// instruction stays executable.
func ridx(a Arg) int {
	n := int(a) % CPU_SIZE
	if n < 0 {
		n += CPU_SIZE
	}
	return n
}
