package pedigree

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// TraitProbability holds the chance of showing or not showing the trait,
// conditioned on one gene count. Present + Absent must sum to 1.
type TraitProbability struct {
	Present float64
	Absent  float64
}

// ProbabilityTables defines the conditional structure of the network: the
// unconditional gene-count prior for founders, the trait probability given
// each gene count, and the per-allele transmission mutation rate. Tables are
// plain values; callers pass them in rather than mutating package state, so
// alternate tables can be used side by side.
type ProbabilityTables struct {
	GenePrior      [NGeneCounts]float64
	TraitGivenGene [NGeneCounts]TraitProbability
	MutationRate   float64
}

// DefaultTables returns the standard tables for the modeled gene.
func DefaultTables() ProbabilityTables {
	return ProbabilityTables{
		GenePrior: [NGeneCounts]float64{
			GeneZero: 0.96,
			GeneOne:  0.03,
			GeneTwo:  0.01,
		},
		TraitGivenGene: [NGeneCounts]TraitProbability{
			GeneZero: {Present: 0.01, Absent: 0.99},
			GeneOne:  {Present: 0.56, Absent: 0.44},
			GeneTwo:  {Present: 0.65, Absent: 0.35},
		},
		MutationRate: 0.01,
	}
}

// Prior returns the unconditional probability that a founder carries g
// copies of the gene.
func (t ProbabilityTables) Prior(g GeneCount) (float64, error) {
	if !g.Valid() {
		return 0, pfx.Err(fmt.Errorf("gene count %d is outside {0,1,2}", int(g)))
	}

	return t.GenePrior[g], nil
}

// Trait returns the probability of showing (or not showing) the trait given
// a gene count.
func (t ProbabilityTables) Trait(g GeneCount, present bool) (float64, error) {
	if !g.Valid() {
		return 0, pfx.Err(fmt.Errorf("gene count %d is outside {0,1,2}", int(g)))
	}

	if present {
		return t.TraitGivenGene[g].Present, nil
	}

	return t.TraitGivenGene[g].Absent, nil
}

// PassProbability returns the chance that a parent carrying g copies
// transmits the gene to a child. Mutation is symmetric: a transmitted copy
// can mutate away, and a non-transmitted one can mutate in.
func (t ProbabilityTables) PassProbability(g GeneCount) (float64, error) {
	switch g {
	case GeneTwo:
		return 1 - t.MutationRate, nil
	case GeneOne:
		return 0.5, nil
	case GeneZero:
		return t.MutationRate, nil
	}

	return 0, pfx.Err(fmt.Errorf("gene count %d is outside {0,1,2}", int(g)))
}

// Validate confirms that every distribution in the tables sums to 1 and that
// every entry is strictly positive, which in turn guarantees that the
// accumulated marginals can always be normalized.
func (t ProbabilityTables) Validate() error {
	const tolerance = 1e-9

	var priorSum float64
	for g, p := range t.GenePrior {
		if p <= 0 || p >= 1 {
			return pfx.Err(fmt.Errorf("gene prior for %d copies is %f; expected a value in (0,1)", g, p))
		}
		priorSum += p
	}
	if math.Abs(priorSum-1) > tolerance {
		return pfx.Err(fmt.Errorf("gene prior sums to %f; expected 1", priorSum))
	}

	for g, tp := range t.TraitGivenGene {
		if tp.Present <= 0 || tp.Absent <= 0 {
			return pfx.Err(fmt.Errorf("trait table for %d copies contains a non-positive entry", g))
		}
		if math.Abs(tp.Present+tp.Absent-1) > tolerance {
			return pfx.Err(fmt.Errorf("trait table for %d copies sums to %f; expected 1", g, tp.Present+tp.Absent))
		}
	}

	if t.MutationRate <= 0 || t.MutationRate >= 0.5 {
		return pfx.Err(fmt.Errorf("mutation rate %f is outside (0, 0.5)", t.MutationRate))
	}

	return nil
}
