package models

// HoldingFilter selects a subset of a merged holding sequence. A nil
// predicate is vacuously true; Source "" means all sources. Filters are
// applied before any price lookup so excluded holdings cost no external call.
type HoldingFilter struct {
	Source   string
	SharesGT *int
	SharesLT *int
}

// IsZero reports whether the filter keeps everything.
func (f HoldingFilter) IsZero() bool {
	return f.Source == "" && f.SharesGT == nil && f.SharesLT == nil
}

// Match reports whether a holding satisfies every specified predicate.
func (f HoldingFilter) Match(h Holding) bool {
	if f.SharesGT != nil && h.Shares <= *f.SharesGT {
		return false
	}
	if f.SharesLT != nil && h.Shares >= *f.SharesLT {
		return false
	}
	return true
}

// Apply returns the order-preserving subsequence of holdings matching f.
func (f HoldingFilter) Apply(holdings []Holding) []Holding {
	if f.SharesGT == nil && f.SharesLT == nil {
		return holdings
	}
	kept := make([]Holding, 0, len(holdings))
	for _, h := range holdings {
		if f.Match(h) {
			kept = append(kept, h)
		}
	}
	return kept
}
