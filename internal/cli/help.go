package cli

import (
	"fmt"
	"strings"

	"github.com/mcp-kit/create-mcp-server-kit/internal/branding"
	"github.com/mcp-kit/create-mcp-server-kit/internal/pkgmgr"
	"github.com/mcp-kit/create-mcp-server-kit/internal/templates"
)

// HelpText renders the usage screen. Templates that fail to load are
// listed by name only.
func HelpText(version, defaultTemplate string, reg *templates.Registry) string {
	name := branding.CLIName()

	var b strings.Builder
	fmt.Fprintf(&b, "%s v%s\n\n", branding.DisplayName(), strings.TrimPrefix(version, "v"))
	fmt.Fprintf(&b, "%s\n\n", branding.Tagline())

	b.WriteString("Usage:\n")
	fmt.Fprintf(&b, "  npx %s@latest <dir> [options]\n", name)
	fmt.Fprintf(&b, "  %s <dir> [options]\n\n", name)

	b.WriteString("Options:\n")
	fmt.Fprintf(&b, "  --template <name>     Template name (default: %s)\n", defaultTemplate)
	fmt.Fprintf(&b, "  --pm <%s>\n", strings.Join(pkgmgr.Supported, "|"))
	b.WriteString("                        Package manager to use for install\n")
	b.WriteString("  --name <pkg-name>     Override generated package name\n")
	b.WriteString("  --description <text>  Override generated description\n")
	b.WriteString("  --no-install          Skip dependency install\n")
	b.WriteString("  --no-git              Skip `git init`\n")
	b.WriteString("  --force               Write into a non-empty directory\n")
	b.WriteString("  -h, --help            Show help\n")
	b.WriteString("  -v, --version         Show version\n")

	if reg != nil {
		if names := reg.List(); len(names) > 0 {
			b.WriteString("\nTemplates:\n")
			for _, n := range names {
				desc := ""
				if t, err := reg.Lookup(n); err == nil && t.Manifest != nil {
					desc = t.Manifest.Description
				}
				if desc == "" {
					fmt.Fprintf(&b, "  %s\n", n)
					continue
				}
				fmt.Fprintf(&b, "  %-20s  %s\n", n, desc)
			}
		}
	}

	fmt.Fprintf(&b, "\nDocs: https://github.com/%s\n", branding.GitHubRepo())

	return strings.TrimRight(b.String(), "\n")
}
