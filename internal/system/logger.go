package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for diagnostics.
// Per-tool results go to stdout; the logger writes to stderr.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "oreutils",
	Level:           clog.WarnLevel,
})

// SetVerbose switches the logger to debug output.
func SetVerbose(on bool) {
	if on {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.WarnLevel)
}
