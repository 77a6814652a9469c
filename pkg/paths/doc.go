// Package paths provides centralized path handling for dotrs.
//
// It knows the fixed names dotrs relies on inside the stage and cache
// directories and resolves the user-level locations (home, XDG state and
// config) the rest of the codebase builds on.
//
// # Environment Variables
//
//   - XDG_STATE_HOME: log file location (default: ~/.local/state/dotrs)
//   - XDG_CONFIG_HOME: config file location (default: ~/.config/dotrs)
//   - DOTRS_CONFIG: explicit config file path, overrides the XDG location
//
// # Layout
//
//	<stage>/.git                      version control metadata
//	<stage>/.dotrs-profiles/<n>.yaml  profile documents
//	<stage>/.dotrsignore              ignore patterns (any directory level)
//	<cache>/tracked_files             ledger of files written by the last apply
//	<cache>/.dotrs-applied-profile    name of the last applied profile
package paths
