// Package version checks template compatibility constraints against the
// running tool's build version.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dev is the version string of binaries built without ldflags.
const Dev = "dev"

// IsDevBuild reports whether v identifies an unreleased build. Development
// builds satisfy every constraint.
func IsDevBuild(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == Dev
}

// Satisfies reports whether the tool version current meets constraint
// (e.g. ">= 0.2.0"). An empty constraint always passes.
func Satisfies(current, constraint string) (bool, error) {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" || IsDevBuild(current) {
		return true, nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	v, err := parseSemver(current)
	if err != nil {
		return false, fmt.Errorf("parsing tool version %q: %w", current, err)
	}
	return c.Check(v), nil
}

// ValidConstraint reports whether s parses as a semver constraint.
func ValidConstraint(s string) error {
	if _, err := semver.NewConstraint(s); err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", s, err)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
