package cpu

import (
	"sync"
)

// InstDef is the behavior of one opcode. It mutates the CPU directly
// and reports nothing; bad operands are handled internally (saturate
// or count, never fault).
type InstDef func(cp *Cpu, args ArgSet)

// InstInfo is the metadata recorded for one opcode.
type InstInfo struct {
	ID        OpID
	Name      string
	Mnemonic  byte
	Desc      string
	CycleCost int
	NumArgs   int
	Scope     ScopeType // SCOPE_NONE unless the opcode opens a scope.
	ScopeArg  int       // Argument slot naming the target scope; -1 if none.
}

// Mnemonics are assigned sequentially from this chart; opcodes past the
// chart share MNEMONIC_OVERFLOW and are not decodable from the symbol
// alone. Mnemonics are for printing only, never for semantics.
var mnemonicChart = []byte(
	"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!@$%^&*_=-")

const MNEMONIC_OVERFLOW = byte('+')

// Library is an append-only registry mapping opcode id, name, and
// mnemonic to dispatch behavior and metadata. Build it fully before
// sharing; all reads after construction are lock-free.
type Library struct {
	// Calls are kept apart from the metadata for dispatch locality.
	calls []InstDef
	info  []InstInfo

	names     map[string]OpID
	mnemonics map[byte]OpID
}

// NewLibrary creates an empty instruction library.
func NewLibrary() (lib *Library) {
	lib = &Library{
		names:     map[string]OpID{},
		mnemonics: map[byte]OpID{},
	}

	return
}

// InstOption adjusts the metadata of an opcode being added.
type InstOption func(*InstInfo)

// WithScope classifies the opcode as opening a scope of the given type,
// naming which argument slot holds the target scope.
func WithScope(t ScopeType, argSlot int) InstOption {
	return func(info *InstInfo) {
		info.Scope = t
		info.ScopeArg = argSlot
	}
}

// WithCycleCost overrides the default cycle cost of 1. The engine does
// not consume the cost itself; external schedulers read it.
func WithCycleCost(cost int) InstOption {
	return func(info *InstInfo) {
		info.CycleCost = cost
	}
}

// Add registers a new opcode and returns its id. Names must be unique;
// there is no removal.
func (lib *Library) Add(name string, call InstDef, nargs int, desc string, opts ...InstOption) (id OpID, err error) {
	if _, ok := lib.names[name]; ok {
		err = ErrInstDuplicate
		return
	}
	if nargs < 0 || nargs > INST_ARGS {
		err = ErrInstArgs
		return
	}

	id = OpID(len(lib.info))

	mnemonic := MNEMONIC_OVERFLOW
	if int(id) < len(mnemonicChart) {
		mnemonic = mnemonicChart[id]
	}

	info := InstInfo{
		ID:        id,
		Name:      name,
		Mnemonic:  mnemonic,
		Desc:      desc,
		CycleCost: 1,
		NumArgs:   nargs,
		Scope:     SCOPE_NONE,
		ScopeArg:  -1,
	}
	for _, opt := range opts {
		opt(&info)
	}
	if info.Scope != SCOPE_NONE && (info.ScopeArg < 0 || info.ScopeArg >= nargs) {
		err = ErrScopeArg
		return
	}

	lib.calls = append(lib.calls, call)
	lib.info = append(lib.info, info)
	lib.names[name] = id
	if mnemonic != MNEMONIC_OVERFLOW {
		lib.mnemonics[mnemonic] = id
	}

	return
}

// Size returns the number of registered opcodes.
func (lib *Library) Size() int {
	return len(lib.info)
}

// Info returns the metadata for an opcode id. An out-of-range id is
// genome/library corruption and panics.
func (lib *Library) Info(id OpID) InstInfo {
	return lib.info[id]
}

// ByName looks up an opcode id by registered name.
func (lib *Library) ByName(name string) (id OpID, ok bool) {
	id, ok = lib.names[name]
	return
}

// ByMnemonic looks up an opcode id by its single-character mnemonic.
// Overflow-symbol opcodes cannot be resolved this way.
func (lib *Library) ByMnemonic(m byte) (id OpID, ok bool) {
	id, ok = lib.mnemonics[m]
	return
}

func (lib *Library) Name(id OpID) string { return lib.info[id].Name }

func (lib *Library) Mnemonic(id OpID) byte { return lib.info[id].Mnemonic }

func (lib *Library) CycleCost(id OpID) int { return lib.info[id].CycleCost }

func (lib *Library) NumArgs(id OpID) int { return lib.info[id].NumArgs }

func (lib *Library) ScopeType(id OpID) ScopeType { return lib.info[id].Scope }

func (lib *Library) ScopeArg(id OpID) int { return lib.info[id].ScopeArg }

// Dispatch runs the behavior of one instruction against a CPU.
func (lib *Library) Dispatch(cp *Cpu, inst Instruction) {
	lib.calls[inst.Op](cp, inst.Args)
}

// InstScope returns the scope depth an instruction targets, or 0 for
// instructions that do not open a scope. Stored depths are one higher
// than the genome-level scope ids; 0 is reserved for the root.
func (lib *Library) InstScope(inst Instruction) int {
	info := lib.info[inst.Op]
	if info.Scope == SCOPE_NONE {
		return 0
	}
	return ridx(inst.Args[info.ScopeArg]) + 1
}

var (
	defaultLib  *Library
	defaultOnce sync.Once
)

// DefaultLibrary returns the shared standard instruction set. It is
// built once on first use and read-only thereafter, so it is safe to
// hand to CPU instances running on different goroutines.
func DefaultLibrary() *Library {
	defaultOnce.Do(func() {
		defaultLib = buildDefaultLibrary()
	})

	return defaultLib
}
