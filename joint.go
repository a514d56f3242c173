package pedigree

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// JointProbability computes the probability that every person in the
// pedigree simultaneously carries the gene count and shows the trait status
// that the hypothesis assigns to them. Under the network's conditional
// independence structure this is a product of per-person terms: a founder's
// gene count is drawn from the prior, a child's from both parents'
// transmission probabilities, and the trait term depends only on the
// person's own gene count.
func JointProbability(ped *Pedigree, tables ProbabilityTables, h *Hypothesis) (float64, error) {
	probability := 1.0

	for _, name := range ped.Names {
		person := ped.People[name]

		genes, assigned := h.Genes[name]
		if !assigned {
			return 0, pfx.Err(fmt.Errorf("the hypothesis assigns no gene count to %s", name))
		}

		var geneProbability float64
		if person.Founder() {
			prior, err := tables.Prior(genes)
			if err != nil {
				return 0, pfx.Err(err)
			}
			geneProbability = prior
		} else {
			passMother, err := tables.PassProbability(h.Genes[person.Mother])
			if err != nil {
				return 0, pfx.Err(err)
			}
			passFather, err := tables.PassProbability(h.Genes[person.Father])
			if err != nil {
				return 0, pfx.Err(err)
			}

			switch genes {
			case GeneTwo:
				geneProbability = passMother * passFather
			case GeneOne:
				geneProbability = passMother*(1-passFather) + (1-passMother)*passFather
			case GeneZero:
				geneProbability = (1 - passMother) * (1 - passFather)
			default:
				return 0, pfx.Err(fmt.Errorf("gene count %d is outside {0,1,2}", int(genes)))
			}
		}

		traitProbability, err := tables.Trait(genes, h.Traits[name])
		if err != nil {
			return 0, pfx.Err(err)
		}

		probability *= geneProbability * traitProbability
	}

	return probability, nil
}
