package portfolio

import (
	"slices"
	"time"

	"github.com/khoahotran/portfolio/pkg/datefmt"
)

type endKind int

// Ordering of end markers, lowest first.
const (
	endUnparseable endKind = iota
	endDated
	endOngoing
)

type endKey struct {
	kind endKind
	at   time.Time
}

func keyOf(end *string) endKey {
	if end == nil || datefmt.IsOngoing(*end) {
		return endKey{kind: endOngoing}
	}
	t, ok := datefmt.Parse(*end)
	if !ok {
		return endKey{kind: endUnparseable}
	}
	return endKey{kind: endDated, at: t}
}

// compareEndDesc orders a before b when a ends later.
func compareEndDesc(a, b endKey) int {
	if a.kind != b.kind {
		if a.kind > b.kind {
			return -1
		}
		return 1
	}
	if a.kind != endDated {
		return 0
	}
	return b.at.Compare(a.at)
}

// SortByEndDesc returns a copy of items ordered most recent end first.
// Ongoing ends (nil, empty, "Present") sort to the top, unparseable ends to
// the bottom. Items with equal ends keep their relative order.
func SortByEndDesc[T any](items []T, end func(T) *string) []T {
	keys := make([]endKey, len(items))
	idx := make([]int, len(items))
	for i, it := range items {
		idx[i] = i
		keys[i] = keyOf(end(it))
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return compareEndDesc(keys[a], keys[b])
	})

	out := make([]T, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

// SortedExperience returns the experience entries most recent first.
func (d *Dataset) SortedExperience() []Experience {
	return SortByEndDesc(d.Professional.Experience, func(e Experience) *string { return e.EndDate })
}

// SortedEducation returns the education entries most recent first.
func (d *Dataset) SortedEducation() []Education {
	return SortByEndDesc(d.Education, func(e Education) *string { return &e.EndYear })
}

// SortedCertifications orders certifications by expiry, lifetime ones first.
func (d *Dataset) SortedCertifications() []Certification {
	return SortByEndDesc(d.Certifications, func(c Certification) *string { return c.ExpiryDate })
}
