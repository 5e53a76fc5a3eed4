package evo

import (
	"github.com/evolab/evogp/translate"
)

var f = translate.From

// ErrScriptFitness reports a script that defines no fitness function.
type ErrScriptFitness string

func (e ErrScriptFitness) Error() string {
	return f("script '%v' does not define fitness()", string(e))
}
