// Package dotfiles implements the operations dotrs performs on a stage.
//
// A Syncer ties together the configuration, the filesystem, the stage
// repository and the home directory:
//
//   - Apply renders every stage file against the selected profile, writes
//     the result below the home directory and reconciles the ledger so that
//     files produced by an earlier apply but not by this one are removed.
//   - Pull and Update synchronize the stage with its remote.
//   - Import turns an empty stage directory into a checkout of a remote.
//   - Clean removes everything the ledger tracks.
//
// Apply is not transactional. If rendering or writing fails halfway, files
// already written stay on disk and the ledger is left untouched.
package dotfiles
