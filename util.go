package pedigree

import "math"

// HypothesisSpaceSize returns the number of joint assignments enumerated for
// n people before evidence pruning: 3^n gene assignments for each of the 2^n
// trait subsets. The result saturates at MaxUint64, which is already far
// beyond any feasible enumeration. Callers can use it to bound runtime
// before committing to a full inference.
func HypothesisSpaceSize(n int) uint64 {
	size := uint64(1)
	for i := 0; i < n; i++ {
		if size > math.MaxUint64/6 {
			return math.MaxUint64
		}
		size *= 6
	}

	return size
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
