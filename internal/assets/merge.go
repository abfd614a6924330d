// Package assets implements the reference-merge rules for media attached to
// entity records. References are opaque durable URLs handed back by object
// storage; this package only decides which of them a record keeps and in what
// order. It never touches the stored objects themselves: a reference dropped
// from a record leaves the underlying object in place. Orphaned objects are an
// accepted consequence of that narrow contract.
package assets

// MergeOnCreate adopts the uploaded references as-is, preserving upload order.
func MergeOnCreate(uploaded []string) []string {
	out := make([]string, 0, len(uploaded))
	return append(out, uploaded...)
}

// MergeOnUpdate appends newly uploaded references after the kept ones. The
// kept list is caller-supplied: any previously stored reference absent from it
// is dropped from the record. Order is preserved exactly and duplicates are
// not collapsed.
func MergeOnUpdate(kept, uploaded []string) []string {
	out := make([]string, 0, len(kept)+len(uploaded))
	out = append(out, kept...)
	return append(out, uploaded...)
}
