package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Status describes what an operation did to a single home file
type Status string

const (
	StatusWritten Status = "written" // Rendered and written by apply
	StatusRemoved Status = "removed" // Stale file deleted
	StatusFailed  Status = "failed"  // Stale file that could not be deleted
	StatusTracked Status = "tracked" // Listed in the ledger
)

// StatusStyle returns the pterm style used for a status label
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusWritten:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusRemoved:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusLine renders "<status> : <path>" with a fixed width label. Styling is
// applied only when styled is true.
func StatusLine(status Status, path string, styled bool) string {
	label := fmt.Sprintf("%-8s", status)
	if styled {
		label = StatusStyle(status).Sprint(label)
	}
	return fmt.Sprintf("  %s : %s", label, path)
}
