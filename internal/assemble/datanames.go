package assemble

import (
	"sort"
	"strconv"
)

// DataNames maps logical dataset names to their concrete materialized
// names and counts every consultation. The counts tell the data
// assembly collaborator which datasets must actually be materialized;
// incrementing is monotonic and commutative, so it is safe in any
// visitation order.
type DataNames struct {
	concrete map[string]string
	counts   map[string]int
	order    []string
}

// NewDataNames returns an empty registry.
func NewDataNames() *DataNames {
	return &DataNames{
		concrete: make(map[string]string),
		counts:   make(map[string]int),
	}
}

// Lookup resolves a logical dataset name to its concrete backing name,
// assigning one on first consultation, and increments the dataset's
// reference count.
func (d *DataNames) Lookup(logical string) string {
	name, ok := d.concrete[logical]
	if !ok {
		name = "source_" + strconv.Itoa(len(d.order))
		d.concrete[logical] = name
		d.order = append(d.order, logical)
	}
	d.counts[logical]++
	return name
}

// Count returns the number of consultations for a logical name.
func (d *DataNames) Count(logical string) int { return d.counts[logical] }

// Logical returns every consulted logical name in sorted order.
func (d *DataNames) Logical() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	sort.Strings(out)
	return out
}
