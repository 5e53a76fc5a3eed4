package cpu

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func nopInst(cp *Cpu, args ArgSet) {}

func TestLibrary_Add(t *testing.T) {
	assert := assert.New(t)

	lib := NewLibrary()
	id, err := lib.Add("Nop", nopInst, 0, "Do nothing")
	assert.NoError(err)
	assert.Equal(OpID(0), id)
	assert.Equal(1, lib.Size())

	info := lib.Info(id)
	assert.Equal("Nop", info.Name)
	assert.Equal(byte('a'), info.Mnemonic)
	assert.Equal(1, info.CycleCost)
	assert.Equal(0, info.NumArgs)
	assert.Equal(SCOPE_NONE, info.Scope)
	assert.Equal(-1, info.ScopeArg)
}

func TestLibrary_AddDuplicate(t *testing.T) {
	assert := assert.New(t)

	lib := NewLibrary()
	_, err := lib.Add("Nop", nopInst, 0, "Do nothing")
	assert.NoError(err)

	_, err = lib.Add("Nop", nopInst, 1, "Do nothing, differently")
	assert.ErrorIs(err, ErrInstDuplicate)
	assert.Equal(1, lib.Size())
}

func TestLibrary_AddBadMetadata(t *testing.T) {
	assert := assert.New(t)

	lib := NewLibrary()
	_, err := lib.Add("TooMany", nopInst, INST_ARGS+1, "")
	assert.ErrorIs(err, ErrInstArgs)

	_, err = lib.Add("BadSlot", nopInst, 1, "", WithScope(SCOPE_BASIC, 2))
	assert.ErrorIs(err, ErrScopeArg)
}

func TestLibrary_Lookup(t *testing.T) {
	assert := assert.New(t)

	lib := DefaultLibrary()

	id, ok := lib.ByName("While")
	assert.True(ok)
	assert.Equal("While", lib.Name(id))
	assert.Equal(SCOPE_LOOP, lib.ScopeType(id))
	assert.Equal(1, lib.ScopeArg(id))
	assert.Equal(2, lib.NumArgs(id))

	byMnem, ok := lib.ByMnemonic(lib.Mnemonic(id))
	assert.True(ok)
	assert.Equal(id, byMnem)

	_, ok = lib.ByName("NoSuchInst")
	assert.False(ok)
}

func TestLibrary_MnemonicSequence(t *testing.T) {
	assert := assert.New(t)

	lib := NewLibrary()
	for n := range 80 {
		_, err := lib.Add(fmt.Sprintf("Nop%d", n), nopInst, 0, "")
		assert.NoError(err)
	}

	assert.Equal(byte('a'), lib.Mnemonic(0))
	assert.Equal(byte('z'), lib.Mnemonic(25))
	assert.Equal(byte('A'), lib.Mnemonic(26))
	assert.Equal(byte('0'), lib.Mnemonic(52))

	// Opcodes past the 72-symbol chart share the overflow symbol and
	// are not decodable from it.
	assert.Equal(byte('-'), lib.Mnemonic(71))
	assert.Equal(MNEMONIC_OVERFLOW, lib.Mnemonic(72))
	assert.Equal(MNEMONIC_OVERFLOW, lib.Mnemonic(79))
	_, ok := lib.ByMnemonic(MNEMONIC_OVERFLOW)
	assert.False(ok)
}

func TestLibrary_InstScope(t *testing.T) {
	assert := assert.New(t)

	lib := DefaultLibrary()
	while, _ := lib.ByName("While")
	inc, _ := lib.ByName("Inc")
	scope, _ := lib.ByName("Scope")

	// Scope targets are stored one higher than the genome-level id.
	assert.Equal(6, lib.InstScope(NewInst(while, 0, 5)))
	assert.Equal(1, lib.InstScope(NewInst(scope, 0)))
	assert.Equal(0, lib.InstScope(NewInst(inc, 5)))

	// Arguments fold into the bounded scope space.
	assert.Equal(ridx(Arg(20))+1, lib.InstScope(NewInst(while, 0, 20)))
}

func TestDefaultLibrary_Shared(t *testing.T) {
	assert := assert.New(t)

	var wg sync.WaitGroup
	libs := make([]*Library, 8)
	for n := range libs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			libs[n] = DefaultLibrary()
		}()
	}
	wg.Wait()

	for _, lib := range libs {
		assert.Same(DefaultLibrary(), lib)
	}
	assert.Equal(25, DefaultLibrary().Size())
}

func TestLibrary_Dispatch(t *testing.T) {
	assert := assert.New(t)

	lib := NewLibrary()
	ran := 0
	id, err := lib.Add("Count", func(cp *Cpu, args ArgSet) { ran += int(args[0]) }, 1, "")
	assert.NoError(err)

	lib.Dispatch(nil, NewInst(id, 7))
	assert.Equal(7, ran)
}
