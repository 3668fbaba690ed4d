// Package pkgmgr knows the fixed set of JavaScript package managers the
// generator can install dependencies with, and how each one spells its
// install and run-script commands.
package pkgmgr

import (
	"fmt"
	"strings"
)

// Supported package manager identifiers.
const (
	NPM  = "npm"
	PNPM = "pnpm"
	Yarn = "yarn"
	Bun  = "bun"
)

// Default is used when no package manager is requested.
const Default = NPM

// Supported lists the accepted names in help-text order.
var Supported = []string{NPM, PNPM, Yarn, Bun}

// Manager is a resolved package manager.
type Manager struct {
	Name string
}

// UnsupportedError is returned by Resolve for names outside Supported.
type UnsupportedError struct {
	Name string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("Unsupported package manager: %s (use %s)", e.Name, strings.Join(Supported, "|"))
}

// Resolve validates name against the supported set. An empty name resolves
// to Default; matching is case-insensitive.
func Resolve(name string) (Manager, error) {
	if strings.TrimSpace(name) == "" {
		return Manager{Name: Default}, nil
	}
	pm := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Supported {
		if pm == s {
			return Manager{Name: s}, nil
		}
	}
	return Manager{}, &UnsupportedError{Name: name}
}

// InstallCommand returns the command and arguments that install the
// project's dependencies. Yarn installs when run without arguments.
func (m Manager) InstallCommand() (string, []string) {
	switch m.Name {
	case PNPM:
		return PNPM, []string{"install"}
	case Yarn:
		return Yarn, []string{}
	case Bun:
		return Bun, []string{"install"}
	default:
		return NPM, []string{"install"}
	}
}

// RunScript returns the shell line that runs a package.json script.
func (m Manager) RunScript(script string) string {
	switch m.Name {
	case PNPM, Yarn:
		return m.Name + " " + script
	case Bun:
		return "bun run " + script
	default:
		return "npm run " + script
	}
}

// InstallLine returns the install command as the user would type it.
func (m Manager) InstallLine() string {
	cmd, args := m.InstallCommand()
	return strings.TrimSpace(cmd + " " + strings.Join(args, " "))
}
