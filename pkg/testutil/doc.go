// Package testutil provides utilities for testing dotrs components.
//
// Key components:
//   - TestEnvironment: stage, home and cache trees on one afero.Fs
//   - StageBuilder: declarative stage setup (files, profiles, ignore files)
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - EnvIsolated is for code that shells out or watches the real filesystem
//   - All test data should be defined inline, not in external files
package testutil
