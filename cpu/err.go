package cpu

import (
	"errors"

	"github.com/evolab/evogp/translate"
)

var f = translate.From

var (
	// Library errors
	ErrInstDuplicate = errors.New(f("instruction name duplicated"))
	ErrInstArgs      = errors.New(f("instruction argument count invalid"))
	ErrScopeArg      = errors.New(f("scope argument slot invalid"))
)

// ErrInstUnknown reports a name with no library entry.
type ErrInstUnknown string

func (e ErrInstUnknown) Error() string {
	return f("instruction '%v' unknown", string(e))
}

func (e ErrInstUnknown) Is(err error) (ok bool) {
	_, ok = err.(ErrInstUnknown)
	return
}
