// Package cpu implements a small register-based virtual CPU for
// evolvable genetic programs.
//
// A program ("genome") is an ordered sequence of instructions, each an
// opcode plus up to three small integer arguments. The CPU owns sixteen
// floating-point registers, one bounded stack per register, sparse
// input/output maps, and a trait vector read by external fitness
// evaluation. Branching, looping, and function definition/call are all
// expressed through a single scope-management primitive rather than
// explicit jump targets, so any instruction sequence produced by random
// mutation remains executable.
//
// Opcode behavior and metadata live in a Library, built once and shared
// read-only between CPU instances. Each instance is single-threaded;
// independent instances may run in parallel.
package cpu
