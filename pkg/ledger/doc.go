// Package ledger records which files the last apply produced.
//
// The ledger is a newline-delimited list of absolute destination paths kept
// in the cache directory. It is replaced wholesale on every apply, so after
// a successful apply it names exactly the files that exist because of it.
// Diff compares a candidate set against the stored one by plain path
// equality; callers normalize paths before handing them in.
package ledger
