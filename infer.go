package pedigree

import (
	"github.com/carbocation/pfx"
)

// Infer computes the exact posterior marginal distributions over gene count
// and trait presence for every person in the pedigree, conditioned on the
// pedigree's known traits. It enumerates the full hypothesis space, so cost
// is exponential in the number of people; see MaxPeople.
func Infer(ped *Pedigree, tables ProbabilityTables) (Marginals, error) {
	if err := tables.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	m := NewMarginals(ped)

	hr := ped.NewHypothesisReader()
	for {
		h := hr.Read()
		if h == nil {
			break
		}

		p, err := JointProbability(ped, tables, h)
		if err != nil {
			return nil, pfx.Err(err)
		}

		if err := m.Accumulate(h, p); err != nil {
			return nil, pfx.Err(err)
		}
	}
	if hr.Error() != nil {
		return nil, pfx.Err(hr.Error())
	}

	if err := m.Normalize(); err != nil {
		return nil, pfx.Err(err)
	}

	return m, nil
}
