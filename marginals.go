package pedigree

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// PersonMarginal accumulates one person's share of the joint probability
// mass, bucketed by gene count and by trait presence. Until Normalize runs
// the values are unnormalized sums; afterwards each array sums to 1.
type PersonMarginal struct {
	Gene  [NGeneCounts]float64
	Trait [2]float64
}

// GeneProbability returns the (possibly still unnormalized) mass assigned to
// carrying g copies of the gene.
func (pm *PersonMarginal) GeneProbability(g GeneCount) float64 {
	if !g.Valid() {
		return 0
	}

	return pm.Gene[g]
}

// TraitProbability returns the (possibly still unnormalized) mass assigned
// to showing or not showing the trait.
func (pm *PersonMarginal) TraitProbability(present bool) float64 {
	return pm.Trait[traitIndex(present)]
}

func traitIndex(present bool) int {
	if present {
		return 1
	}

	return 0
}

// Marginals holds the accumulator for every person in one pedigree. It has a
// single owner during accumulation; parallel callers keep private copies and
// fold them together with Merge.
type Marginals map[string]*PersonMarginal

// NewMarginals returns zero-valued accumulators for every person in the
// pedigree.
func NewMarginals(ped *Pedigree) Marginals {
	m := make(Marginals, len(ped.Names))
	for _, name := range ped.Names {
		m[name] = &PersonMarginal{}
	}

	return m
}

// Accumulate folds one hypothesis's joint probability into the bucket that
// the hypothesis selects for each person.
func (m Marginals) Accumulate(h *Hypothesis, p float64) error {
	for name, pm := range m {
		genes, assigned := h.Genes[name]
		if !assigned {
			return pfx.Err(fmt.Errorf("the hypothesis assigns no gene count to %s", name))
		}
		if !genes.Valid() {
			return pfx.Err(fmt.Errorf("gene count %d is outside {0,1,2}", int(genes)))
		}

		pm.Gene[genes] += p
		pm.Trait[traitIndex(h.Traits[name])] += p
	}

	return nil
}

// Merge adds another accumulator element-wise into this one. The sum is
// associative and commutative, so partial accumulators produced by parallel
// workers can be folded in any order.
func (m Marginals) Merge(other Marginals) error {
	for name, theirs := range other {
		ours, found := m[name]
		if !found {
			return pfx.Err(fmt.Errorf("cannot merge marginals for %s: the person is unknown here", name))
		}

		for g := range ours.Gene {
			ours.Gene[g] += theirs.Gene[g]
		}
		for i := range ours.Trait {
			ours.Trait[i] += theirs.Trait[i]
		}
	}

	return nil
}

// Normalize rescales every person's gene and trait buckets in place so that
// each sums to 1, preserving their ratios. A zero sum means no hypothesis
// survived the evidence filter (or the accumulator was never fed) and is
// reported rather than divided by.
func (m Marginals) Normalize() error {
	for name, pm := range m {
		var geneSum float64
		for _, p := range pm.Gene {
			geneSum += p
		}
		if geneSum == 0 {
			return pfx.Err(fmt.Errorf("the gene distribution for %s sums to zero; no hypothesis was accumulated", name))
		}
		for g := range pm.Gene {
			pm.Gene[g] /= geneSum
		}

		traitSum := pm.Trait[0] + pm.Trait[1]
		if traitSum == 0 {
			return pfx.Err(fmt.Errorf("the trait distribution for %s sums to zero; no hypothesis was accumulated", name))
		}
		pm.Trait[0] /= traitSum
		pm.Trait[1] /= traitSum
	}

	return nil
}
