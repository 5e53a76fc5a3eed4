// Package evo drives populations of genetic programs through the
// mutate/evaluate/select loop.
//
// Each organism is a genome run on its own virtual CPU; fitness is
// scored from the CPU's outputs, registers, and traits, either by a
// built-in scorer or by a user-supplied Starlark function. Populations
// can be checkpointed to disk and resumed.
package evo
