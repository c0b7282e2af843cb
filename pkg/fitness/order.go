package fitness

import (
	"cmp"
	"fmt"
)

// Order is the configured fitness ordering. Under either order a sorted
// population keeps its best member at the tail.
//
//   - Desc: lower raw fitness is better; members are sorted by descending
//     fitness so the smallest error ends up last.
//   - Asc: higher raw fitness is better; members are sorted ascending.
type Order int

const (
	Desc Order = iota
	Asc
)

// ParseOrder maps "desc"/"asc" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "desc":
		return Desc, nil
	case "asc":
		return Asc, nil
	default:
		return Desc, fmt.Errorf("unknown fitness order: %q (want desc or asc)", s)
	}
}

func (o Order) String() string {
	if o == Asc {
		return "asc"
	}
	return "desc"
}

// Compare orders two fitness values so that the better one sorts later.
func (o Order) Compare(a, b float64) int {
	if o == Asc {
		return cmp.Compare(a, b)
	}
	return cmp.Compare(b, a)
}

// Better reports whether a is strictly better than b.
func (o Order) Better(a, b float64) bool {
	return o.Compare(a, b) > 0
}

// Sentinel is the fitness assigned to trees whose error is NaN: the worst
// value under the order.
func (o Order) Sentinel() float64 {
	if o == Asc {
		return 0
	}
	return 9999999
}
