package catalog

import (
	"math"
	"strings"
)

// ApplyFilters narrows the given products by every active criterion in spec.
// It is a pure function: the input slice is never modified and the output
// preserves its relative order. Narrowing happens step by step — category,
// free text, stock, then price bounds — each step a plain intersection, so
// the order only matters for how much work later steps see.
//
// A min bound greater than the max bound is not validated or swapped; both
// apply independently and the result is simply empty. NaN bounds are treated
// as unset.
func ApplyFilters(products []Product, spec FilterSpec) []Product {
	matched := append([]Product(nil), products...)

	if spec.Category != "" && spec.Category != CategoryAll {
		matched = keep(matched, func(p Product) bool {
			return p.Category == spec.Category
		})
	}

	if q := strings.TrimSpace(spec.Query); q != "" {
		q = strings.ToLower(q)
		matched = keep(matched, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Brand), q) ||
				strings.Contains(strings.ToLower(p.Model), q)
		})
	}

	if spec.InStockOnly {
		matched = keep(matched, func(p Product) bool {
			return p.InStock
		})
	}

	if min := spec.MinPrice; min != nil && !math.IsNaN(*min) {
		matched = keep(matched, func(p Product) bool {
			return p.Price >= *min
		})
	}

	if max := spec.MaxPrice; max != nil && !math.IsNaN(*max) {
		matched = keep(matched, func(p Product) bool {
			return p.Price <= *max
		})
	}

	return matched
}

func keep(products []Product, pred func(Product) bool) []Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
