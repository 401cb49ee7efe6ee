// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CurationJob is the predicate function for curationjob builders.
type CurationJob func(*sql.Selector)

// ImageEmbedding is the predicate function for imageembedding builders.
type ImageEmbedding func(*sql.Selector)
