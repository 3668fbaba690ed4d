package scaffold

import (
	"regexp"
	"strings"
)

// FallbackName is used when nothing usable survives sanitizing.
const FallbackName = "mcp-server"

var (
	invalidRunRE  = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRunRE   = regexp.MustCompile(`-+`)
	leadingDotsRE = regexp.MustCompile(`^[._]+`)
)

// PackageName turns arbitrary input (a --name value or the target
// directory's base name) into an npm package name.
func PackageName(input string) string {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return FallbackName
	}

	slug := strings.ToLower(raw)
	slug = invalidRunRE.ReplaceAllString(slug, "-")
	slug = hyphenRunRE.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return FallbackName
	}

	// npm names must not start with '.' or '_'.
	slug = leadingDotsRE.ReplaceAllString(slug, "")
	if slug == "" {
		return FallbackName
	}
	return slug
}
