package entity

import (
	"sort"
	"time"
)

// comparePackages orders packages by start date ascending, treating a
// missing start date as the zero time, with the identifier string as
// the tie-breaker so the order is total and deterministic.
func comparePackages(a, b *SessionPackage) bool {
	var startA, startB time.Time
	if a.StartDate != nil {
		startA = *a.StartDate
	}
	if b.StartDate != nil {
		startB = *b.StartDate
	}
	if !startA.Equal(startB) {
		return startA.Before(startB)
	}
	return a.ID.String() < b.ID.String()
}

// SelectCurrentActivePackage partitions a client's packages into the
// single package currently being drawn down and the queue waiting
// behind it. Only active, non-exhausted packages are eligible; they
// are drained in acquisition order, never two at once. Returns a nil
// current and an empty queue when no package is eligible.
func SelectCurrentActivePackage(pkgs []SessionPackage) (*SessionPackage, []SessionPackage) {
	eligible := make([]SessionPackage, 0, len(pkgs))
	for _, p := range pkgs {
		if p.Status == PackageStatusActive && !p.IsExhausted() {
			eligible = append(eligible, p)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return comparePackages(&eligible[i], &eligible[j])
	})

	if len(eligible) == 0 {
		return nil, []SessionPackage{}
	}

	current := eligible[0]
	return &current, eligible[1:]
}
