package infra

import (
	"os"
	"os/user"
	"strconv"
)

// ExecMode is the privilege level activity runs with.
type ExecMode string

const (
	// ExecModeUser can only signal the invoking user's processes.
	ExecModeUser ExecMode = "user"
	// ExecModeSystem runs as root and can signal any process the kernel allows.
	ExecModeSystem ExecMode = "system"
)

// ExecModeConfig describes the current privileges.
type ExecModeConfig struct {
	Mode   ExecMode
	IsRoot bool
	User   string // effective user name, or the numeric uid if unknown
}

// DetectExecMode determines the execution mode based on effective UID.
func DetectExecMode() *ExecModeConfig {
	return execModeFor(os.Geteuid())
}

func execModeFor(euid int) *ExecModeConfig {
	uid := strconv.Itoa(euid)
	name := uid
	if u, err := user.LookupId(uid); err == nil {
		name = u.Username
	}

	if euid == 0 {
		return &ExecModeConfig{Mode: ExecModeSystem, IsRoot: true, User: name}
	}
	return &ExecModeConfig{Mode: ExecModeUser, User: name}
}

// String returns a human-readable description of the mode.
func (m ExecMode) String() string {
	switch m {
	case ExecModeSystem:
		return "system (root)"
	case ExecModeUser:
		return "user (non-root)"
	default:
		return "unknown"
	}
}

// PermissionHint is the advice shown when a termination is refused.
// Root is refused only for processes the system protects.
func (c *ExecModeConfig) PermissionHint() string {
	if c.IsRoot {
		return "The process is protected by the system and cannot be signalled."
	}
	return "Try running with sudo."
}

// RealUserHome returns the invoking user's home directory, even under sudo,
// where os.UserHomeDir reports root's home.
func RealUserHome() string {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		if u, err := user.Lookup(sudoUser); err == nil {
			return u.HomeDir
		}
	}
	home, _ := os.UserHomeDir()
	return home
}
