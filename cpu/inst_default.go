package cpu

import (
	"math"
)

// Behaviors of the standard instruction set. Register-index arguments
// go through ridx; literal arguments are used raw.

func b2f(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

func (cp *Cpu) instInc(args ArgSet) { cp.regs[ridx(args[0])]++ }
func (cp *Cpu) instDec(args ArgSet) { cp.regs[ridx(args[0])]-- }

func (cp *Cpu) instNot(args ArgSet) {
	reg := ridx(args[0])
	cp.regs[reg] = b2f(cp.regs[reg] == 0.0)
}

func (cp *Cpu) instSetReg(args ArgSet) {
	cp.regs[ridx(args[0])] = float64(args[1])
}

func (cp *Cpu) instAdd(args ArgSet) {
	cp.regs[ridx(args[2])] = cp.regs[ridx(args[0])] + cp.regs[ridx(args[1])]
}

func (cp *Cpu) instSub(args ArgSet) {
	cp.regs[ridx(args[2])] = cp.regs[ridx(args[0])] - cp.regs[ridx(args[1])]
}

func (cp *Cpu) instMult(args ArgSet) {
	cp.regs[ridx(args[2])] = cp.regs[ridx(args[0])] * cp.regs[ridx(args[1])]
}

// Division and modulo by zero count an error and leave the destination
// unchanged; execution continues.

func (cp *Cpu) instDiv(args ArgSet) {
	denom := cp.regs[ridx(args[1])]
	if denom == 0.0 {
		cp.errors++
		return
	}
	cp.regs[ridx(args[2])] = cp.regs[ridx(args[0])] / denom
}

func (cp *Cpu) instMod(args ArgSet) {
	base := cp.regs[ridx(args[1])]
	if base == 0.0 {
		cp.errors++
		return
	}
	cp.regs[ridx(args[2])] = math.Mod(cp.regs[ridx(args[0])], base)
}

func (cp *Cpu) instTestEqu(args ArgSet) {
	cp.regs[ridx(args[2])] = b2f(cp.regs[ridx(args[0])] == cp.regs[ridx(args[1])])
}

func (cp *Cpu) instTestNEqu(args ArgSet) {
	cp.regs[ridx(args[2])] = b2f(cp.regs[ridx(args[0])] != cp.regs[ridx(args[1])])
}

func (cp *Cpu) instTestLess(args ArgSet) {
	cp.regs[ridx(args[2])] = b2f(cp.regs[ridx(args[0])] < cp.regs[ridx(args[1])])
}

func (cp *Cpu) instIf(args ArgSet) { // args[0] = test, args[1] = scope
	if !cp.UpdateScope(ScopeID(args[1]), SCOPE_BASIC) {
		return // A previous scope resolved instead; stop here.
	}
	if cp.regs[ridx(args[0])] == 0.0 {
		cp.BypassScope(ScopeID(args[1])) // Test failed; skip the body.
	}
}

func (cp *Cpu) instWhile(args ArgSet) {
	if !cp.UpdateScope(ScopeID(args[1]), SCOPE_LOOP) {
		return
	}
	if cp.regs[ridx(args[0])] == 0.0 {
		cp.BypassScope(ScopeID(args[1]))
	}
}

// Same as While, but decrements the test register each pass.
func (cp *Cpu) instCountdown(args ArgSet) {
	if !cp.UpdateScope(ScopeID(args[1]), SCOPE_LOOP) {
		return
	}
	reg := ridx(args[0])
	if cp.regs[reg] == 0.0 {
		cp.BypassScope(ScopeID(args[1]))
	} else {
		cp.regs[reg]--
	}
}

func (cp *Cpu) instBreak(args ArgSet) { cp.BypassScope(ScopeID(args[0])) }
func (cp *Cpu) instScope(args ArgSet) { cp.UpdateScope(ScopeID(args[0]), SCOPE_BASIC) }

func (cp *Cpu) instDefine(args ArgSet) { // args[0] = function, args[1] = scope
	if !cp.UpdateScope(ScopeID(args[1]), SCOPE_BASIC) {
		return
	}
	cp.funStarts[ridx(args[0])] = cp.ip // Record where the body starts.
	cp.BypassScope(ScopeID(args[1]))    // Skip the body for now.
}

func (cp *Cpu) instCall(args ArgSet) {
	// The target slot must hold an in-bounds position whose opcode is
	// still FUNCTION-classified; genome edits can leave slots stale.
	defPos := cp.funStarts[ridx(args[0])]
	if defPos < 0 || defPos >= len(cp.genome) {
		return
	}
	def := cp.genome[defPos]
	if cp.lib.ScopeType(def.Op) != SCOPE_FUNCTION {
		return
	}

	// Re-enter the function's own declared scope; the body is in it.
	funScope := ScopeID(def.Args[cp.lib.ScopeArg(def.Op)])
	if !cp.UpdateScope(funScope, SCOPE_FUNCTION) {
		return
	}
	cp.callStack = append(cp.callStack, cp.ip+1)
	cp.ip = defPos + 1 // Jump to the body (the advance still applies).
}

func (cp *Cpu) instPush(args ArgSet) {
	cp.stacks[ridx(args[1])].Push(cp.regs[ridx(args[0])])
}

func (cp *Cpu) instPop(args ArgSet) {
	cp.regs[ridx(args[1])] = cp.stacks[ridx(args[0])].Pop()
}

func (cp *Cpu) instInput(args ArgSet) {
	id := int(cp.regs[ridx(args[0])])
	cp.regs[ridx(args[1])] = cp.inputs[id] // Missing inputs read 0.0.
}

func (cp *Cpu) instOutput(args ArgSet) {
	id := int(cp.regs[ridx(args[1])])
	cp.outputs[id] = cp.regs[ridx(args[0])]
}

func (cp *Cpu) instCopyVal(args ArgSet) {
	cp.regs[ridx(args[1])] = cp.regs[ridx(args[0])]
}

func (cp *Cpu) instScopeReg(args ArgSet) {
	reg := ridx(args[0])
	cp.regStack = append(cp.regStack, RegBackup{cp.curScope(), reg, cp.regs[reg]})
}

// buildDefaultLibrary assembles the standard instruction set.
func buildDefaultLibrary() (lib *Library) {
	lib = NewLibrary()

	add := func(name string, call InstDef, nargs int, desc string, opts ...InstOption) {
		_, err := lib.Add(name, call, nargs, desc, opts...)
		if err != nil {
			panic(err)
		}
	}

	add("Inc", (*Cpu).instInc, 1, "Increment value in reg Arg1")
	add("Dec", (*Cpu).instDec, 1, "Decrement value in reg Arg1")
	add("Not", (*Cpu).instNot, 1, "Logically toggle value in reg Arg1")
	add("SetReg", (*Cpu).instSetReg, 2, "Set reg Arg1 to numerical value Arg2")
	add("Add", (*Cpu).instAdd, 3, "regs: Arg3 = Arg1 + Arg2")
	add("Sub", (*Cpu).instSub, 3, "regs: Arg3 = Arg1 - Arg2")
	add("Mult", (*Cpu).instMult, 3, "regs: Arg3 = Arg1 * Arg2")
	add("Div", (*Cpu).instDiv, 3, "regs: Arg3 = Arg1 / Arg2")
	add("Mod", (*Cpu).instMod, 3, "regs: Arg3 = Arg1 % Arg2")
	add("TestEqu", (*Cpu).instTestEqu, 3, "regs: Arg3 = (Arg1 == Arg2)")
	add("TestNEqu", (*Cpu).instTestNEqu, 3, "regs: Arg3 = (Arg1 != Arg2)")
	add("TestLess", (*Cpu).instTestLess, 3, "regs: Arg3 = (Arg1 < Arg2)")
	add("If", (*Cpu).instIf, 2, "If reg Arg1 != 0, scope -> Arg2; else skip scope",
		WithScope(SCOPE_BASIC, 1))
	add("While", (*Cpu).instWhile, 2, "Until reg Arg1 != 0, repeat scope Arg2; else skip",
		WithScope(SCOPE_LOOP, 1))
	add("Countdown", (*Cpu).instCountdown, 2, "Countdown reg Arg1 to zero; scope to Arg2",
		WithScope(SCOPE_LOOP, 1))
	add("Break", (*Cpu).instBreak, 1, "Break out of scope Arg1")
	add("Scope", (*Cpu).instScope, 1, "Enter scope Arg1",
		WithScope(SCOPE_BASIC, 0))
	add("Define", (*Cpu).instDefine, 2, "Build function Arg1 in scope Arg2",
		WithScope(SCOPE_FUNCTION, 1))
	add("Call", (*Cpu).instCall, 1, "Call previously defined function Arg1")
	add("Push", (*Cpu).instPush, 2, "Push reg Arg1 onto stack Arg2")
	add("Pop", (*Cpu).instPop, 2, "Pop stack Arg1 into reg Arg2")
	add("Input", (*Cpu).instInput, 2, "Pull next value from input Arg1 into reg Arg2")
	add("Output", (*Cpu).instOutput, 2, "Push reg Arg1 into output Arg2")
	add("CopyVal", (*Cpu).instCopyVal, 2, "Copy reg Arg1 into reg Arg2")
	add("ScopeReg", (*Cpu).instScopeReg, 1, "Backup reg Arg1; restore at end of scope")

	return
}
