package cpu

func (cp *Cpu) curScope() int {
	return cp.scopeStack[len(cp.scopeStack)-1].Depth
}

func (cp *Cpu) curScopeType() ScopeType {
	return cp.scopeStack[len(cp.scopeStack)-1].Type
}

// exitScope closes the innermost scope, restoring every register backup
// it owns, most recent first. Leaving the root is genome/library
// corruption and panics.
func (cp *Cpu) exitScope() {
	if len(cp.scopeStack) <= 1 {
		panic("cpu: root scope exit")
	}

	cur := cp.curScope()
	for len(cp.regStack) > 0 && cp.regStack[len(cp.regStack)-1].Scope == cur {
		backup := cp.regStack[len(cp.regStack)-1]
		cp.regs[backup.Reg] = backup.Value
		cp.regStack = cp.regStack[:len(cp.regStack)-1]
	}

	cp.scopeStack = cp.scopeStack[:len(cp.scopeStack)-1]
}

// UpdateScope is the single primitive behind all control flow. It moves
// the CPU into scope target of the given type, closing shallower scopes
// on the way. It reports whether the new scope was entered; when an
// innermost loop or function scope had to resolve first (looping back
// or returning, then re-dispatching at the redirect target), it reports
// false and the calling behavior must do no further work.
func (cp *Cpu) UpdateScope(target ScopeID, t ScopeType) (entered bool) {
	// Stored depths are one higher than genome scope ids; root is 0.
	depth := ridx(Arg(target)) + 1

	for {
		if depth > cp.curScope() {
			cp.scopeStack = append(cp.scopeStack, ScopeInfo{depth, t, cp.ip})
			entered = true
			return
		}

		switch cp.curScopeType() {
		case SCOPE_LOOP:
			// Move back to the top of the loop and run it again.
			cp.ip = cp.scopeStack[len(cp.scopeStack)-1].StartPos
			cp.exitScope()
			cp.lib.Dispatch(cp, cp.genome[cp.ip])
			return

		case SCOPE_FUNCTION:
			// Return to the caller. The call may have been at the end
			// of the genome, in which case start over.
			cp.ip = cp.callStack[len(cp.callStack)-1]
			if cp.ip >= len(cp.genome) {
				cp.ResetIP()
			} else {
				cp.callStack = cp.callStack[:len(cp.callStack)-1]
				cp.exitScope()
			}
			cp.lib.Dispatch(cp, cp.genome[cp.ip])
			return

		default:
			// A basic scope simply closes; retry against the new top.
			cp.exitScope()
		}
	}
}

// BypassScope skips past the rest of the named scope without executing
// it, used for untaken branches and function bodies at definition. The
// innermost scope always exits, no matter the target; the pointer then
// scans forward and parks one before the first instruction whose own
// scope target (from library metadata, no execution) is at or outside
// the bypassed scope.
func (cp *Cpu) BypassScope(target ScopeID) {
	depth := ridx(Arg(target)) + 1
	if cp.curScope() < depth {
		return
	}

	cp.exitScope()
	for cp.ip+1 < len(cp.genome) {
		cp.ip++
		test := cp.lib.InstScope(cp.genome[cp.ip])
		if test != 0 && test <= depth {
			cp.ip--
			break
		}
	}
}

// PredictNextInst reports the position of the instruction the next
// SingleProcess would execute, without mutating any state. It mirrors
// the live end-of-genome wrap, loop-back, and function-return handling.
func (cp *Cpu) PredictNextInst() (pos int) {
	// Determine if the next dispatch changes scope.
	newScope := CPU_SIZE + 1
	if cp.ip >= len(cp.genome) {
		newScope = 0
	} else if instScope := cp.lib.InstScope(cp.genome[cp.ip]); instScope != 0 {
		newScope = instScope
	}

	// Not a scope change, or a deeper scope: the pointed-at
	// instruction runs as-is.
	if newScope > CPU_SIZE || newScope > cp.curScope() {
		return cp.ip
	}

	if cp.curScopeType() == SCOPE_LOOP {
		return cp.scopeStack[len(cp.scopeStack)-1].StartPos
	}

	if cp.curScopeType() == SCOPE_FUNCTION {
		pos = cp.callStack[len(cp.callStack)-1]
		if pos >= len(cp.genome) {
			pos = 0
		}
		return
	}

	if cp.ip >= len(cp.genome) {
		return 0
	}

	return cp.ip
}
