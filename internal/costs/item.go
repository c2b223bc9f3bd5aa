// Package costs holds the cumulative upgrade cost tables and the arithmetic
// that turns a milestone level range into a concrete material list.
package costs

// MoraName is the single name every currency contribution collapses into,
// regardless of which dimension produced it.
const MoraName = "Mora"

// Item is a named resource quantity: a material or currency needed to
// complete an upgrade step. Name is the merge key.
type Item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Merge folds any number of item lists into one, summing counts for items
// that share a name. Items keep the order of their first appearance, so
// merging is commutative on totals but not on display order.
func Merge(lists ...[]Item) []Item {
	index := make(map[string]int)
	var merged []Item
	for _, list := range lists {
		for _, it := range list {
			if i, ok := index[it.Name]; ok {
				merged[i].Count += it.Count
				continue
			}
			index[it.Name] = len(merged)
			merged = append(merged, it)
		}
	}
	return merged
}
