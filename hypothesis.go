package pedigree

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// Hypothesis is one complete assignment of a gene count and a trait status
// to every person in the pedigree. Assignments are explicit: every name in
// the pedigree appears in both maps.
type Hypothesis struct {
	Genes  map[string]GeneCount
	Traits map[string]bool
}

// HypothesisReader streams every hypothesis consistent with the pedigree's
// trait evidence, in the same style as a sequential record reader: call Read
// until it returns nil, then check Error.
//
// Trait subsets that contradict a known trait are pruned before any gene
// assignment is generated for them. Gene assignments are produced by walking
// every one-gene subset and, within it, every two-gene subset of the
// remaining people, so the two sets are disjoint by construction and the
// rest implicitly carry zero copies.
type HypothesisReader struct {
	HypothesesSeen uint64

	ped        *Pedigree
	includeAll bool

	full      uint64
	traitMask uint64
	oneMask   uint64
	twoMask   uint64
	primed    bool
	done      bool
	err       error
}

// NewHypothesisReader returns a reader over all hypotheses that agree with
// the pedigree's known traits.
func (ped *Pedigree) NewHypothesisReader() *HypothesisReader {
	return &HypothesisReader{
		ped:  ped,
		full: uint64(1)<<uint(len(ped.Names)) - 1,
	}
}

// NewExhaustiveHypothesisReader returns a reader over the entire hypothesis
// space, ignoring trait evidence. The joint probabilities it yields sum to 1
// across the whole stream, which makes it useful for checking that a set of
// probability tables conserves mass.
func (ped *Pedigree) NewExhaustiveHypothesisReader() *HypothesisReader {
	hr := ped.NewHypothesisReader()
	hr.includeAll = true

	return hr
}

func (hr *HypothesisReader) Error() error {
	return hr.err
}

// Read returns the next hypothesis, or nil once the space is exhausted or an
// error has occurred.
func (hr *HypothesisReader) Read() *Hypothesis {
	if hr.done {
		return nil
	}

	if !hr.primed {
		if !hr.seekTraitMask(0) {
			hr.done = true
			return nil
		}
		hr.oneMask = 0
		hr.twoMask = hr.full
		hr.primed = true
	} else if !hr.advance() {
		hr.done = true
		return nil
	}

	h, err := hr.build()
	if err != nil {
		hr.err = pfx.Err(err)
		hr.done = true
		return nil
	}

	hr.HypothesesSeen++

	return h
}

// advance steps to the next (trait, one-gene, two-gene) combination. The
// two-gene subset iterates over submasks of the people left over by the
// one-gene subset, ending with the empty set.
func (hr *HypothesisReader) advance() bool {
	rest := hr.full &^ hr.oneMask

	if hr.twoMask != 0 {
		hr.twoMask = (hr.twoMask - 1) & rest
		return true
	}

	if hr.oneMask == hr.full {
		if !hr.seekTraitMask(hr.traitMask + 1) {
			return false
		}
		hr.oneMask = 0
	} else {
		hr.oneMask++
	}
	hr.twoMask = hr.full &^ hr.oneMask

	return true
}

// seekTraitMask finds the first trait subset at or after the candidate mask
// that does not contradict a known trait, returning false when none remains.
func (hr *HypothesisReader) seekTraitMask(candidate uint64) bool {
	for ; candidate <= hr.full; candidate++ {
		if hr.includeAll || hr.consistent(candidate) {
			hr.traitMask = candidate
			return true
		}
	}

	return false
}

func (hr *HypothesisReader) consistent(traitMask uint64) bool {
	for i, name := range hr.ped.Names {
		known := hr.ped.People[name].Trait
		if !known.Known() {
			continue
		}

		inSubset := traitMask&(uint64(1)<<uint(i)) != 0
		if inSubset != (known == TraitPresent) {
			return false
		}
	}

	return true
}

// build materializes the current bitmask state into explicit per-person
// assignments. Disjointness of the one- and two-gene subsets is re-checked
// here so a bookkeeping bug fails loudly instead of double-assigning.
func (hr *HypothesisReader) build() (*Hypothesis, error) {
	if hr.oneMask&hr.twoMask != 0 {
		return nil, fmt.Errorf("the one-gene and two-gene subsets overlap (masks %b and %b)", hr.oneMask, hr.twoMask)
	}

	h := &Hypothesis{
		Genes:  make(map[string]GeneCount, len(hr.ped.Names)),
		Traits: make(map[string]bool, len(hr.ped.Names)),
	}

	for i, name := range hr.ped.Names {
		bit := uint64(1) << uint(i)

		switch {
		case hr.twoMask&bit != 0:
			h.Genes[name] = GeneTwo
		case hr.oneMask&bit != 0:
			h.Genes[name] = GeneOne
		default:
			h.Genes[name] = GeneZero
		}

		h.Traits[name] = hr.traitMask&bit != 0
	}

	return h, nil
}
