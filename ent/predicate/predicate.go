// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// SessionArchive is the predicate function for sessionarchive builders.
type SessionArchive func(*sql.Selector)
