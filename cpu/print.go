package cpu

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// InstString formats one instruction as its name followed by the
// arguments the opcode declares.
func (lib *Library) InstString(inst Instruction) string {
	var sb strings.Builder
	sb.WriteString(lib.Name(inst.Op))
	for n := range lib.NumArgs(inst.Op) {
		fmt.Fprintf(&sb, " %d", int(inst.Args[n]))
	}

	return sb.String()
}

// AsString renders a genome as one mnemonic character per instruction.
func (lib *Library) AsString(g Genome) string {
	var sb strings.Builder
	for _, inst := range g {
		sb.WriteByte(lib.Mnemonic(inst.Op))
	}

	return sb.String()
}

// PrintInst writes one instruction with its arguments.
func (cp *Cpu) PrintInst(inst Instruction, w io.Writer) {
	fmt.Fprint(w, cp.lib.InstString(inst))
}

// PrintGenome writes the program with indentation proportional to scope
// depth, "--->" markers on scope entry, and "----" separators where a
// scope is re-opened at the same depth.
func (cp *Cpu) PrintGenome(w io.Writer) {
	cur := 0

	for _, inst := range cp.genome {
		newScope := cp.lib.InstScope(inst)

		if newScope != 0 {
			if newScope == cur {
				fmt.Fprintf(w, "%s----\n", strings.Repeat(" ", cur))
			}
			if newScope < cur {
				cur = newScope - 1
			}
		}

		fmt.Fprint(w, strings.Repeat(" ", cur))
		cp.PrintInst(inst, w)
		if newScope != 0 {
			if newScope > cur {
				fmt.Fprint(w, " --> ")
			}
			cur = newScope
		}
		fmt.Fprintln(w)
	}
}

// PrintState dumps registers, sparse I/O, the pointer with its
// predicted next instruction, the scope depth, and the error count.
func (cp *Cpu) PrintState(w io.Writer) {
	next := cp.PredictNextInst()

	fmt.Fprint(w, " REGS: ")
	for n := range CPU_SIZE {
		fmt.Fprintf(w, "[%g] ", cp.regs[n])
	}
	fmt.Fprint(w, "\n INPUTS: ")
	for _, id := range sortedKeys(cp.inputs) {
		fmt.Fprintf(w, "[%d,%g] ", id, cp.inputs[id])
	}
	fmt.Fprint(w, "\n OUTPUTS: ")
	for _, id := range sortedKeys(cp.outputs) {
		fmt.Fprintf(w, "[%d,%g] ", id, cp.outputs[id])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "IP:%d", cp.ip)
	if cp.ip != next {
		fmt.Fprintf(w, "(-> %d)", next)
	}
	fmt.Fprintf(w, " scope:%d", cp.curScope())
	if next < len(cp.genome) {
		fmt.Fprintf(w, " (%s)", cp.lib.InstString(cp.genome[next]))
	}
	fmt.Fprintf(w, " errors: %d\n", cp.errors)
}

// String returns the state dump, for logs.
func (cp *Cpu) String() string {
	var sb strings.Builder
	cp.PrintState(&sb)
	return sb.String()
}

// sortedKeys keeps the sparse map dumps deterministic.
func sortedKeys(m map[int]float64) (keys []int) {
	for id := range m {
		keys = append(keys, id)
	}
	sort.Ints(keys)
	return
}
