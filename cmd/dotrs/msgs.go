package dotrs

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render a git managed stage of dotfile templates into your home"
	MsgApplyShort      = "Render the stage into the home directory"
	MsgCleanShort      = "Remove every file written by the last apply"
	MsgListShort       = "List files written by the last apply"
	MsgImportShort     = "Initialize the stage from an existing repository"
	MsgEncryptShort    = "Encrypt a value for use in a profile"
	MsgKeygenShort     = "Generate a new encryption key"
	MsgPullShort       = "Pull the stage from its remote"
	MsgUpdateShort     = "Commit and push local stage changes"
	MsgCdShort         = "Print the stage directory"
	MsgStatusShort     = "Show stage changes the next update would publish"
	MsgServiceShort    = "Watch the stage and keep the home directory in sync"
	MsgConfigShort     = "Print the effective configuration"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics, or one topic when a name is given."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgApplied          = "Applied %d files"
	MsgAppliedProfile   = "Applied %d files with profile %s"
	MsgCleaned          = "Removed %d files"
	MsgCleanKept        = "%d files could not be removed and are still tracked; use --force to forget them"
	MsgCleanForgotten   = "%d files could not be removed and are no longer tracked"
	MsgStaleKept        = "could not remove %s: %v"
	MsgNoTrackedFiles   = "No tracked files."
	MsgTrackedFiles     = "Tracked files"
	MsgImported         = "Imported %s into %s"
	MsgPulled           = "Stage is up to date with origin"
	MsgStageClean       = "Stage has no pending changes."
	MsgPendingChanges   = "Pending stage changes"
	MsgUpdateStatus     = "Update finished: %s"
	MsgServiceStarting  = "Watching %s (apply %s, update %s, pull every %s)"
	MsgVersionFormat    = "dotrs %s (commit %s, built %s)"
	MsgKeyPrompt        = "Encryption key: "
	MsgEncryptedSnippet = "Paste into a profile:"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrNoCommand    = "no command specified"
	MsgErrNoKey        = "an encryption key is required: pass --key or set DOTRS_DECRYPTION_KEY"
	MsgErrReadKey      = "failed to read key: %w"
	MsgErrUnknownTopic = "unknown topic %q, run 'dotrs topics' to list them"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProfile       = "Profile to render with (defaults to the last applied one)"
	MsgFlagKey           = "Base64 encoded 32 byte encryption key"
	MsgFlagForce         = "Forget files that could not be removed"
	MsgFlagTree          = "Show tracked files as a tree below the home directory"
	MsgFlagBranch        = "Branch to check out"
	MsgFlagMessage       = "Commit message (generated from the changed files when empty)"
	MsgFlagAuthor        = "Commit author"
	MsgFlagApplyDelay    = "Delay between a stage change and the apply it triggers"
	MsgFlagUpdateDelay   = "Delay between a stage change and the update it triggers"
	MsgFlagPullFrequency = "Interval between pulls from origin"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/clean-long.txt
	msgCleanLongRaw string
	MsgCleanLong    = strings.TrimSpace(msgCleanLongRaw)

	//go:embed msgs/import-long.txt
	msgImportLongRaw string
	MsgImportLong    = strings.TrimSpace(msgImportLongRaw)

	//go:embed msgs/import-example.txt
	msgImportExampleRaw string
	MsgImportExample    = strings.TrimRight(msgImportExampleRaw, "\n")

	//go:embed msgs/encrypt-long.txt
	msgEncryptLongRaw string
	MsgEncryptLong    = strings.TrimSpace(msgEncryptLongRaw)

	//go:embed msgs/encrypt-example.txt
	msgEncryptExampleRaw string
	MsgEncryptExample    = strings.TrimRight(msgEncryptExampleRaw, "\n")

	//go:embed msgs/update-long.txt
	msgUpdateLongRaw string
	MsgUpdateLong    = strings.TrimSpace(msgUpdateLongRaw)

	//go:embed msgs/service-long.txt
	msgServiceLongRaw string
	MsgServiceLong    = strings.TrimSpace(msgServiceLongRaw)

	//go:embed msgs/cd-long.txt
	msgCdLongRaw string
	MsgCdLong    = strings.TrimSpace(msgCdLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
