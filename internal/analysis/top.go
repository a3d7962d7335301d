package analysis

import (
	"sort"
)

// SortKey selects the measure TopShortage ranks by.
type SortKey string

const (
	SortByGapQuantity   SortKey = "gap_quantity"
	SortByGapPercentage SortKey = "gap_percentage"
	SortByDemand        SortKey = "total_remaining_demand"
)

// Valid reports whether k is supported
func (k SortKey) Valid() bool {
	switch k {
	case SortByGapQuantity, SortByGapPercentage, SortByDemand:
		return true
	}
	return false
}

// Top-N bounds
const (
	DefaultTopN = 15
	MinTopN     = 5
	MaxTopN     = 50
)

// ClampTopN applies the default and the allowed range to n
func ClampTopN(n int) int {
	switch {
	case n <= 0:
		return DefaultTopN
	case n < MinTopN:
		return MinTopN
	case n > MaxTopN:
		return MaxTopN
	}
	return n
}

func (k SortKey) value(p ProductSummary) *float64 {
	switch k {
	case SortByGapPercentage:
		return p.GapPercentage
	case SortByDemand:
		d := p.TotalRemainingDemand
		return &d
	}
	return p.GapQuantity
}

// TopShortage ranks products by key, descending, with ties broken by product
// id. Gap keys keep only products with a positive gap. Unknown values rank
// last.
func TopShortage(a *ProductAnalysis, n int, key SortKey) []ProductSummary {
	if !key.Valid() {
		key = SortByGapQuantity
	}
	n = ClampTopN(n)

	out := []ProductSummary{}
	if a == nil {
		return out
	}
	for _, p := range a.Products {
		if key != SortByDemand && !p.HasGap() {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := key.value(out[i]), key.value(out[j])
		switch {
		case vi == nil && vj == nil:
		case vi == nil:
			return false
		case vj == nil:
			return true
		case *vi != *vj:
			return *vi > *vj
		}
		return out[i].ProductID < out[j].ProductID
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
