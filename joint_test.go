package pedigree

import (
	"math"
	"testing"
)

func testFamily(t *testing.T) *Pedigree {
	t.Helper()

	ped, err := NewPedigree([]Person{
		{Name: "Harry", Mother: "Lily", Father: "James", Trait: TraitPresent},
		{Name: "James", Trait: TraitPresent},
		{Name: "Lily", Trait: TraitAbsent},
	})
	if err != nil {
		t.Fatal(err)
	}

	return ped
}

func TestJointProbability(t *testing.T) {
	// Harry's trait is left unknown so both of his trait assignments below
	// are legitimate hypotheses for this family.
	ped, err := NewPedigree([]Person{
		{Name: "Harry", Mother: "Lily", Father: "James"},
		{Name: "James", Trait: TraitPresent},
		{Name: "Lily", Trait: TraitAbsent},
	})
	if err != nil {
		t.Fatal(err)
	}

	h := &Hypothesis{
		Genes: map[string]GeneCount{
			"Harry": GeneOne,
			"James": GeneTwo,
			"Lily":  GeneZero,
		},
		Traits: map[string]bool{
			"Harry": false,
			"James": true,
			"Lily":  false,
		},
	}

	p, err := JointProbability(ped, DefaultTables(), h)
	if err != nil {
		t.Fatal(err)
	}

	// Lily: 0.96 * 0.99, James: 0.01 * 0.65,
	// Harry: (0.01*0.01 + 0.99*0.99) * 0.44
	expected := 0.0026643247488
	if math.Abs(p-expected) > 1e-15 {
		t.Errorf("Got %v, expected %v", p, expected)
	}

	// The same assignment with Harry showing the trait swaps his 0.44
	// factor for 0.56.
	h.Traits["Harry"] = true
	p, err = JointProbability(ped, DefaultTables(), h)
	if err != nil {
		t.Fatal(err)
	}

	expected = 0.0033909587712
	if math.Abs(p-expected) > 1e-15 {
		t.Errorf("Got %v, expected %v", p, expected)
	}
}

func TestJointProbabilityPositive(t *testing.T) {
	ped := testFamily(t)
	tables := DefaultTables()

	hr := ped.NewExhaustiveHypothesisReader()
	for {
		h := hr.Read()
		if h == nil {
			break
		}

		p, err := JointProbability(ped, tables, h)
		if err != nil {
			t.Fatal(err)
		}
		if p <= 0 {
			t.Fatalf("Joint probability %v is not strictly positive", p)
		}
	}
	if hr.Error() != nil {
		t.Fatal(hr.Error())
	}
}

func TestJointProbabilityRejectsBadGeneCount(t *testing.T) {
	ped := testFamily(t)

	h := &Hypothesis{
		Genes: map[string]GeneCount{
			"Harry": GeneCount(3),
			"James": GeneZero,
			"Lily":  GeneZero,
		},
		Traits: map[string]bool{"Harry": true, "James": true, "Lily": false},
	}

	if _, err := JointProbability(ped, DefaultTables(), h); err == nil {
		t.Error("Expected an error for a gene count outside {0,1,2}")
	}
}

func TestJointProbabilityRequiresCompleteAssignment(t *testing.T) {
	ped := testFamily(t)

	h := &Hypothesis{
		Genes:  map[string]GeneCount{"Harry": GeneOne},
		Traits: map[string]bool{"Harry": true},
	}

	if _, err := JointProbability(ped, DefaultTables(), h); err == nil {
		t.Error("Expected an error for a hypothesis that skips people")
	}
}
