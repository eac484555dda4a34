package flow

import "golang.org/x/exp/constraints"

// Integer is the capacity type accepted by the max-flow solvers.
type Integer interface {
	constraints.Integer
}

// Signed is the capacity and cost type accepted by MinCostFlow.
type Signed interface {
	constraints.Signed
}

// MaxValue returns the largest value representable by F. It is the
// "infinite" capacity sentinel for every solver in this package.
//
// The value is found by filling low bits until the next shift would wrap,
// which gives 2^(k-1)-1 for signed and 2^k-1 for unsigned k-bit types
// without reflection or unsafe.
func MaxValue[F Integer]() F {
	m := F(1)
	for {
		next := m<<1 | 1
		if next <= m {
			return m
		}
		m = next
	}
}

func minOf[F Integer](a, b F) F {
	if b < a {
		return b
	}

	return a
}
