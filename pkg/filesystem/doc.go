// Package filesystem provides the filesystem used by dotrs.
//
// Every component that touches the stage, home or cache trees takes an
// afero.Fs, so production code runs on the OS filesystem and tests run on
// an in-memory one. The helpers here cover the few compound operations the
// apply and clean paths share.
package filesystem
