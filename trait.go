package pedigree

// TraitStatus records what is known about a person's trait before
// inference begins. Most datasets leave at least one person unknown.
type TraitStatus uint32

const (
	TraitUnknown TraitStatus = iota
	TraitAbsent
	TraitPresent
)

func (t TraitStatus) Known() bool {
	return t != TraitUnknown
}

func (t TraitStatus) String() string {
	switch t {
	case TraitUnknown:
		return "Unknown"
	case TraitAbsent:
		return "Absent"
	case TraitPresent:
		return "Present"

	default:
		return "Illegal selection"
	}
}
