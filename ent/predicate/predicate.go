// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
