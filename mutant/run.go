// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package mutant

import (
	"github.com/db47h/hwadd"
	"github.com/db47h/hwadd/hwtest"
	"github.com/pkg/errors"
)

// Outcome is the result of running a mutant against a reference adder.
//
type Outcome struct {
	Mutant *Mutant
	// Counterexample is nil if the mutant survived.
	Counterexample *hwtest.Counterexample
}

// Killed returns true if a counterexample was found.
//
func (o Outcome) Killed() bool { return o.Counterexample != nil }

// Run runs each mutant against the reference adder on the given samples.
//
func Run(ref hwadd.Adder, ms []*Mutant, samples []hwadd.Operands) ([]Outcome, error) {
	out := make([]Outcome, 0, len(ms))
	for _, m := range ms {
		c, err := hwtest.FindCounterexample(ref, m, samples)
		if err != nil {
			return nil, errors.Wrapf(err, "mutant %s", m)
		}
		if c != nil {
			hwadd.T().Debugf("mutant %s killed by %s", m, c)
		} else {
			hwadd.T().Infof("mutant %s survived %d samples", m, len(samples))
		}
		out = append(out, Outcome{Mutant: m, Counterexample: c})
	}
	return out, nil
}
