// Package models defines data structures for portview
package models

import (
	"strings"
	"time"
)

// Holding represents one recorded stock position. Holdings are immutable
// snapshots once fetched for a request; the valuation path never mutates
// or persists them.
type Holding struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
	Shares        int     `json:"shares"`

	// Source names the portfolio store this holding came from. It is stamped
	// by the source adapter after fetch and never appears on the store wire.
	Source string `json:"-"`

	// Seq is the store insertion counter. List results are ordered by Seq so
	// iteration order matches insertion order.
	Seq uint64 `json:"-" badgerhold:"index"`
}

// FieldValue returns the wire value of a holding field by its JSON name.
// Used for the generic field=value query filtering on GET /stocks.
func (h Holding) FieldValue(name string) (string, bool) {
	switch name {
	case "id":
		return h.ID, true
	case "name":
		return h.Name, true
	case "symbol":
		return h.Symbol, true
	case "purchase price", "purchase_price":
		return formatAmount(h.PurchasePrice), true
	case "purchase date", "purchase_date":
		return h.PurchaseDate, true
	case "shares":
		return formatShares(h.Shares), true
	default:
		return "", false
	}
}

// ValidPurchaseDate reports whether s is a DD-MM-YYYY date.
func ValidPurchaseDate(s string) bool {
	_, err := time.Parse("02-01-2006", s)
	return err == nil
}

// NormalizeSymbol uppercases and trims a ticker symbol.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
