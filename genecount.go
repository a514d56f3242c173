package pedigree

// GeneCount is the number of copies of the gene variant that a person
// carries under one hypothesis.
type GeneCount int

const (
	GeneZero GeneCount = iota
	GeneOne
	GeneTwo
)

// NGeneCounts is the number of valid gene-count states.
const NGeneCounts = 3

func (g GeneCount) Valid() bool {
	return g >= GeneZero && g <= GeneTwo
}

func (g GeneCount) String() string {
	switch g {
	case GeneZero:
		return "0"
	case GeneOne:
		return "1"
	case GeneTwo:
		return "2"

	default:
		return "Illegal selection"
	}
}
