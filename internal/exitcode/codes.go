// Package exitcode defines named exit codes for the preflight CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and the parent application's first-run check.
package exitcode

// Exit code constants for a preflight audit run.
const (
	Success       = 0   // All capabilities satisfied, either already or after install
	InstallFailed = 1   // The package manager reported an error
	ManualAction  = 2   // Missing packages were only reported; a human must install them
	Interrupted   = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case InstallFailed:
		return "InstallFailed"
	case ManualAction:
		return "ManualAction"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
