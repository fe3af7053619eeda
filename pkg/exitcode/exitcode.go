// Package exitcode centralizes how the CLI tools translate errors into
// process exit codes. The tools rely on it to keep their mains thin and
// uniform.
package exitcode

import (
	"errors"

	"github.com/maxviazov/portal-tools/internal/config"
	"github.com/maxviazov/portal-tools/internal/portal"
)

// Exit codes. Anything non-zero is a failure; the split lets wrapper scripts
// tell a bad keyfile from a portal rejection.
const (
	OK          = 0
	Failed      = 1
	ConfigError = 2
	PortalError = 3
)

// FromError converts an error into an exit code and a short kind label for
// the final diagnostic line. Extend here as new error categories emerge.
func FromError(err error) (int, string) {
	if err == nil {
		return OK, "ok"
	}
	switch {
	case errors.Is(err, config.ErrUnknownTarget):
		return ConfigError, "config_error"
	case errors.Is(err, portal.ErrStatus):
		return PortalError, "portal_error"
	default:
		return Failed, "error"
	}
}
