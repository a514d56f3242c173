package pedigree

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// MaxPeople bounds the size of a pedigree. Enumeration walks the full joint
// hypothesis space, which grows as 6^n, so the practical ceiling is far
// lower; this limit only keeps the subset bitmasks within one word.
const MaxPeople = 32

// Person is one individual in the family tree. Mother and Father are either
// both empty (a founder) or both name other people in the same pedigree.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  TraitStatus
}

// Founder reports whether the person has no recorded parents, in which case
// their gene count follows the unconditional prior.
func (p Person) Founder() bool {
	return p.Mother == "" && p.Father == ""
}

// Pedigree is the family graph that inference runs over. It is built once
// and read-only afterwards: enumeration indexes people by their position in
// Names, so the ordering must not change once a reader has been created.
type Pedigree struct {
	People map[string]Person
	Names  []string
}

// NewPedigree validates the supplied people and assembles them into a
// Pedigree. Every structural problem is rejected here so that enumeration
// and evaluation can assume a well-formed graph.
func NewPedigree(people []Person) (*Pedigree, error) {
	if len(people) == 0 {
		return nil, pfx.Err(fmt.Errorf("a pedigree requires at least one person"))
	}
	if len(people) > MaxPeople {
		return nil, pfx.Err(fmt.Errorf("pedigree holds %d people; the enumeration limit is %d", len(people), MaxPeople))
	}

	ped := &Pedigree{
		People: make(map[string]Person, len(people)),
		Names:  make([]string, 0, len(people)),
	}

	for _, person := range people {
		if person.Name == "" {
			return nil, pfx.Err(fmt.Errorf("a person with an empty name was supplied"))
		}
		if _, seen := ped.People[person.Name]; seen {
			return nil, pfx.Err(fmt.Errorf("the name %s appears more than once", person.Name))
		}
		ped.People[person.Name] = person
		ped.Names = append(ped.Names, person.Name)
	}

	for _, person := range people {
		if (person.Mother == "") != (person.Father == "") {
			return nil, pfx.Err(fmt.Errorf("%s has exactly one recorded parent; expected both or neither", person.Name))
		}
		if person.Founder() {
			continue
		}
		if _, found := ped.People[person.Mother]; !found {
			return nil, pfx.Err(fmt.Errorf("the mother %s of %s is not in the pedigree", person.Mother, person.Name))
		}
		if _, found := ped.People[person.Father]; !found {
			return nil, pfx.Err(fmt.Errorf("the father %s of %s is not in the pedigree", person.Father, person.Name))
		}
	}

	return ped, nil
}
