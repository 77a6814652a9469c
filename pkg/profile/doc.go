// Package profile loads the variables a stage is rendered with.
//
// A profile is a YAML document at <stage>/.dotrs-profiles/<name>.yaml (or
// .yml). It decodes into a Value tree whose leaves may be encrypted:
//
//	github:
//	  token:
//	    $encrypted: 3q2+7w...
//
// Decoding keeps encrypted leaves intact. Resolve is a separate pass that
// decrypts every encrypted leaf into a string, and fails as a whole if any
// leaf cannot be decrypted.
//
// The name of the last successfully applied profile is kept in the cache
// directory so later applies (including those triggered by the watch
// service) reuse it when no profile is named.
package profile
