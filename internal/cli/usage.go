// Package cli provides help text and usage formatting for the preflight CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `preflight - host dependency audit and remediation

USAGE
  preflight [flags]

  Runs a full audit of the host, prints one line per required capability,
  and installs whatever is missing through the host package manager. When
  the process is unprivileged and escalation is declined, the exact install
  command is printed instead.

FLAGS
  Catalog & Configuration:
    --catalog <path>        Path to a YAML catalog replacing the built-in requirement table
    --config <path>         Path to additional config file

  Probes:
    --fallback-dir <dir>    Directory searched for executables missing from PATH (repeatable;
                            default: /sbin, /usr/sbin, /usr/local/sbin)
    --python <cmd>          Interpreter used for binding probes (default: python3)

  Remediation:
    --installer <cmd>       Package manager command (default: apt-get)
    --escalator <cmd>       Privilege escalation command (default: sudo)
    -y, --yes               Run the package manager non-interactively (default: true)
    --report-only           Audit and report without installing anything

  Output:
    -v, --verbose           Enable debug output

  Help & Version:
    -h, --help              Show this help
    --version               Show version information

EXIT CODES
  0   All capabilities satisfied (already, or after a successful install)
  1   The package manager reported an error
  2   Missing packages were only reported; a human must install them
  130 Interrupted
`

// SetCustomHelp installs the custom help template on the root command.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
