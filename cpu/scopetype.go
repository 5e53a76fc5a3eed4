package cpu

// ScopeType classifies how a scope behaves when control reaches its
// end: basic scopes simply close, loops jump back to their start, and
// function scopes return through the call stack.
type ScopeType int

//go:generate go tool stringer -linecomment -type=ScopeType
const (
	SCOPE_NONE     = ScopeType(0) // none
	SCOPE_ROOT     = ScopeType(1) // root
	SCOPE_BASIC    = ScopeType(2) // basic
	SCOPE_LOOP     = ScopeType(3) // loop
	SCOPE_FUNCTION = ScopeType(4) // function
)
